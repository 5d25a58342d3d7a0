// SPDX-License-Identifier: MIT
// File: csv.go
// Role: transaction-log ingestion into a graph plus feature maps.

package builder

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sheafrisk/core"
	"github.com/katalvlaran/sheafrisk/sheaf"
)

// transactionColumns is the required header of a transaction log.
var transactionColumns = [4]string{"source", "target", "amount", "timestamp"}

// LoadTransactionsCSV reads a "source,target,amount,timestamp" log into
// the triple the scoring pipeline consumes: a weighted graph, per-account
// feature vectors [incoming volume, outgoing volume, degree], and edge
// stalks holding the transaction amounts.
//
// Each row upserts its account pair: the edge keeps the latest amount as
// weight and as the "amount" attribute plus the latest timestamp as
// "time", while the volume features accumulate every row. Self-transfers
// are legal and count toward both volumes.
//
// Error conditions:
//   - ErrBadHeader      : the first row is not the expected header.
//   - ErrBadRecord      : a row fails to parse (wrap names the row).
//   - core.ErrBadWeight : a negative or non-finite amount (wrapped with
//     the row number).
func LoadTransactionsCSV(r io.Reader) (*core.Graph, map[string][]float64, map[sheaf.EdgeKey]float64, error) {
	rd := csv.NewReader(r)
	rd.TrimLeadingSpace = true

	// 1. Demand the exact header, case-insensitively.
	header, err := rd.Read()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("builder: reading header: %w", ErrBadHeader)
	}
	if len(header) != len(transactionColumns) {
		return nil, nil, nil, fmt.Errorf("builder: %d header columns, want %d: %w",
			len(header), len(transactionColumns), ErrBadHeader)
	}
	for i, want := range transactionColumns {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return nil, nil, nil, fmt.Errorf("builder: header column %d is %q, want %q: %w",
				i, header[i], want, ErrBadHeader)
		}
	}

	// 2. Ingest rows: graph upserts plus running volume aggregates.
	type volume struct{ in, out float64 }
	g := core.NewGraph(core.WithLoops())
	volumes := make(map[string]*volume)
	efeat := make(map[sheaf.EdgeKey]float64)
	volumeOf := func(id string) *volume {
		v, ok := volumes[id]
		if !ok {
			v = &volume{}
			volumes[id] = v
		}

		return v
	}

	for row := 2; ; row++ {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, nil, fmt.Errorf("builder: row %d: %w", row, ErrBadRecord)
		}
		src := strings.TrimSpace(rec[0])
		dst := strings.TrimSpace(rec[1])
		amount, amountErr := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
		ts, tsErr := strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
		if src == "" || dst == "" || amountErr != nil || tsErr != nil {
			return nil, nil, nil, fmt.Errorf("builder: row %d: %w", row, ErrBadRecord)
		}
		err = g.AddEdge(src, dst, amount,
			core.WithEdgeAmount(amount),
			core.WithEdgeTime(ts),
		)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("builder: row %d: %w", row, err)
		}
		efeat[sheaf.NewEdgeKey(src, dst)] = amount
		volumeOf(src).out += amount
		volumeOf(dst).in += amount
	}

	// 3. Freeze the per-account aggregates.
	vfeat := make(map[string][]float64, g.VertexCount())
	for _, id := range g.VertexIDs() {
		deg, degErr := g.Degree(id)
		if degErr != nil {
			return nil, nil, nil, degErr
		}
		v := volumeOf(id)
		vfeat[id] = []float64{v.in, v.out, float64(deg)}
	}

	return g, vfeat, efeat, nil
}
