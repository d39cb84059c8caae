package main

import (
	"fmt"

	"github.com/Vikramardham/mcplibrary"
	"github.com/Vikramardham/mcplibrary/tree"
)

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	result, err := deps.Store.LoadResult(deps.Ctx, c.URL)
	if err != nil {
		if mcplibrary.ErrorCode(err) == mcplibrary.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "No crawl found for %s. Run 'mcplibrary crawl %s' first.\n", c.URL, c.URL)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", mcplibrary.ErrorMessage(err))
		}
		return err
	}

	retriever := &tree.Retriever{Ranker: deps.Ranker}
	results, err := retriever.Retrieve(deps.Ctx, c.Query, result.Enhanced, result.Pages, tree.RetrieveOptions{
		MaxResults:     c.MaxResults,
		IncludeContent: c.Content,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mcplibrary.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching pages found.")
		return nil
	}

	for i, r := range results {
		fmt.Fprintf(deps.Stdout, "%d. %s (%.2f)\n   %s\n", i+1, r.Title, r.Relevance, r.URL)
		if c.Content && r.Content != "" {
			fmt.Fprintf(deps.Stdout, "\n%s\n\n", r.Content)
		}
	}

	return nil
}
