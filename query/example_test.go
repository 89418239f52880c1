package query_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/shortreach/query"
)

// ExampleReadText decodes one query, solves it, and writes the answer line.
func ExampleReadText() {
	qs, err := query.ReadText(strings.NewReader("1\n4 2\n1 2\n1 3\n1\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	results := make([]query.Result, 0, len(qs))
	for i, q := range qs {
		if err := q.Validate(); err != nil {
			fmt.Println("error:", err)
			return
		}
		dist, _ := q.Solve()
		results = append(results, query.Result{Index: i, Source: q.Source, Distances: dist})
	}
	_ = query.WriteText(os.Stdout, results)
	// Output:
	// 6 6 -1
}
