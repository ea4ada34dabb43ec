// A small runnable demonstration of the library: build a tiny corpus, index
// it, run a couple of queries, and print the ranked results.
package main

import (
	"fmt"
	"log"

	"github.com/huichen/tfsearch/engine"
	"github.com/huichen/tfsearch/types"
)

func main() {
	searcher, err := engine.New([]string{"and", "with", "the"})
	if err != nil {
		log.Fatal(err)
	}

	corpus := []struct {
		id     int
		text   string
		rating []int
	}{
		{0, "white cat and fashionable collar", []int{8, -3}},
		{1, "fluffy cat fluffy tail", []int{7}},
		{2, "groomed dog expressive eyes", []int{5}},
		{3, "big dog the city scary eyes", []int{9}},
	}
	for _, doc := range corpus {
		if err := searcher.AddDocument(doc.id, doc.text, types.StatusActual, doc.rating); err != nil {
			log.Fatal(err)
		}
	}

	for _, query := range []string{"fluffy groomed cat", "cat -city"} {
		docs, err := searcher.FindTopDocuments(query)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("query %q:\n", query)
		for _, d := range docs {
			fmt.Printf("  doc %d  relevance=%.4f  rating=%d\n", d.ID, d.Relevance, d.Rating)
		}
	}
}
