package main

import (
	"fmt"

	"github.com/Vikramardham/mcplibrary"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	roots, err := deps.Store.ListRoots(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mcplibrary.ErrorMessage(err))
		return err
	}

	if len(roots) == 0 {
		fmt.Fprintln(deps.Stdout, "No crawled sites. Use 'mcplibrary crawl' to add one.")
		return nil
	}

	for _, root := range roots {
		fmt.Fprintln(deps.Stdout, root)
	}

	return nil
}
