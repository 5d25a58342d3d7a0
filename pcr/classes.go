// SPDX-License-Identifier: MIT
// File: classes.go
// Role: risk-class extraction and read-only model accessors.

package pcr

import (
	"math"

	"github.com/katalvlaran/sheafrisk/cohomology"
	"github.com/katalvlaran/sheafrisk/persistence"
	"github.com/katalvlaran/sheafrisk/simplex"
)

// RiskClasses promotes every H1 interval whose lifetime reaches the
// threshold into a RiskClass record. IDs are interval indices in birth
// order, so lowering the threshold only ever grows the returned id set.
// The vertex shortlist is the fit-time global ranking shared by all
// classes.
func (m *Model) RiskClasses(threshold float64) ([]RiskClass, error) {
	if err := m.ready(); err != nil {
		return nil, err
	}

	var out []RiskClass
	for i, iv := range m.diagram.H1 {
		life := iv.Lifetime()
		if life < threshold {
			continue
		}
		out = append(out, RiskClass{
			ID:          i,
			Birth:       iv.Birth,
			Death:       iv.Death,
			Persistence: life,
			RiskLevel:   math.Min(life*riskLevelScale, 1),
			Vertices:    append([]string(nil), m.top...),
		})
	}

	return out, nil
}

// Cohomology computes H^p of the fitted complex, a static structural
// view next to the filtration-aware diagram.
func (m *Model) Cohomology(p int) (cohomology.Group, error) {
	if err := m.ready(); err != nil {
		return cohomology.Group{}, err
	}

	return cohomology.Compute(m.complex, p)
}

// Diagram returns a copy of the persistence diagram, nil on the zero
// Model.
func (m *Model) Diagram() *persistence.Diagram {
	if m.ready() != nil {
		return nil
	}

	return &persistence.Diagram{
		H0: append([]persistence.Interval(nil), m.diagram.H0...),
		H1: append([]persistence.Interval(nil), m.diagram.H1...),
	}
}

// Complex returns the fitted complex; its accessors copy, so sharing
// the pointer is safe. Nil on the zero Model.
func (m *Model) Complex() *simplex.Complex {
	if m.ready() != nil {
		return nil
	}

	return m.complex
}

// FitID returns the unique identity of this fit, empty on the zero
// Model.
func (m *Model) FitID() string {
	if m.ready() != nil {
		return ""
	}

	return m.fitID
}
