package main

import (
	"fmt"

	"docdex"
	"docdex/tool"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	out, err := deps.Service.Call(deps.Ctx, tool.OpCrawlStats, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdex.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}
