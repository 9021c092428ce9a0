package main

import (
	"fmt"

	"docdex"
	"docdex/tool"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	out, err := deps.Service.Call(deps.Ctx, tool.OpListCachedURLs, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdex.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}
