// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sheafrisk/builder"
)

// ExampleLoadTransactionsCSV ingests a three-account ledger and prints
// the headline network statistics.
func ExampleLoadTransactionsCSV() {
	ledger := `source,target,amount,timestamp
alice,bob,120,1
bob,carol,80,2
carol,alice,40,3
`
	g, vfeat, _, err := builder.LoadTransactionsCSV(strings.NewReader(ledger))
	if err != nil {
		fmt.Println("load:", err)
		return
	}

	st, _ := builder.NetworkStats(g)
	fmt.Printf("accounts=%d transfers=%d components=%d clustering=%.2f\n",
		st.Nodes, st.Edges, st.Components, st.AvgClustering)
	fmt.Printf("bob: in=%.0f out=%.0f degree=%.0f\n",
		vfeat["bob"][0], vfeat["bob"][1], vfeat["bob"][2])

	// Output:
	// accounts=3 transfers=3 components=1 clustering=1.00
	// bob: in=120 out=80 degree=2
}

// ExampleNormalizeFeatures scales a feature row to unit length.
func ExampleNormalizeFeatures() {
	out, err := builder.NormalizeFeatures(map[string][]float64{
		"acct": {3, 4},
	}, builder.NormL2)
	if err != nil {
		fmt.Println("normalize:", err)
		return
	}

	fmt.Printf("%.2f %.2f\n", out["acct"][0], out["acct"][1])

	// Output:
	// 0.60 0.80
}
