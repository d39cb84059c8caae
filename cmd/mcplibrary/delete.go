package main

import (
	"fmt"

	"github.com/Vikramardham/mcplibrary"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Store.DeleteResult(deps.Ctx, c.URL); err != nil {
		if mcplibrary.ErrorCode(err) == mcplibrary.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "No crawl found for %s\n", c.URL)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", mcplibrary.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %s\n", c.URL)
	return nil
}
