package main

import (
	"fmt"

	"docdex"
	"docdex/tool"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	args := map[string]any{}
	if c.MaxDepth >= 0 {
		args["max_depth"] = c.MaxDepth
	}

	out, err := deps.Service.Call(deps.Ctx, tool.OpCrawlDocs, args)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdex.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}
