package persistence

import (
	"errors"
	"math"

	"github.com/katalvlaran/sheafrisk/core"
)

// Sentinel errors returned by Compute.
var (
	// ErrNilGraph is returned when Compute receives a nil *core.Graph.
	ErrNilGraph = errors.New("persistence: nil *core.Graph provided")
	// ErrNilComplex is returned when Compute receives a nil *simplex.Complex.
	ErrNilComplex = errors.New("persistence: nil *simplex.Complex provided")
	// ErrUnknownFiltrationParam is returned when the configured filtration
	// parameter is neither ParamWeight nor an attribute the graph declares.
	ErrUnknownFiltrationParam = errors.New("persistence: unknown filtration parameter")
)

// Filtration parameter names. ParamWeight reads Edge.Weight; the other
// two read the corresponding edge attribute, falling back to
// DefaultAttrFiltration on edges that lack it.
const (
	ParamWeight = "weight"
	ParamTime   = core.AttrTime
	ParamAmount = core.AttrAmount
)

// DefaultAttrFiltration is the filtration value assumed for an edge that
// does not carry the configured attribute. Only attribute-based params
// use it; ParamWeight is total by construction.
const DefaultAttrFiltration = 1.0

// Interval is a single persistent feature: a Dim-dimensional class born
// at Birth and destroyed at Death. Death is +Inf for classes that
// survive the whole filtration.
type Interval struct {
	Dim   int     // homological dimension: 0 for components, 1 for cycles
	Birth float64 // filtration value at which the class appears
	Death float64 // filtration value at which it disappears, or +Inf
}

// Infinite reports whether the class survives the entire filtration.
func (iv Interval) Infinite() bool { return math.IsInf(iv.Death, 1) }

// Lifetime returns Death-Birth for finite intervals and Birth for
// infinite ones, so the sentinel never propagates into arithmetic.
// Downstream scoring weights intervals by this value.
func (iv Interval) Lifetime() float64 {
	if iv.Infinite() {
		return iv.Birth
	}

	return iv.Death - iv.Birth
}

// Diagram collects the intervals of one persistence run, per dimension,
// each slice ordered by birth (ties by sweep insertion order).
type Diagram struct {
	H0 []Interval // connected-component intervals
	H1 []Interval // independent-cycle intervals
}

// Option adjusts Compute behaviour.
type Option func(*config)

// config carries the resolved Compute settings.
type config struct {
	param string // filtration parameter name
}

// defaultConfig returns the baseline settings: filtration by edge weight.
func defaultConfig() config {
	return config{param: ParamWeight}
}

// WithFiltrationParam selects the edge attribute that drives the
// filtration. ParamWeight (the default) uses Edge.Weight; any attribute
// name the graph declares is legal. Unknown names surface as
// ErrUnknownFiltrationParam from Compute.
func WithFiltrationParam(name string) Option {
	return func(c *config) { c.param = name }
}
