package main

import (
	"fmt"
	"strings"

	"docdex"
	"docdex/tool"
)

// Run executes the source command.
func (c *SourceCmd) Run(deps *Dependencies) error {
	out, err := deps.Service.Call(deps.Ctx, tool.OpGetSourceLink, map[string]any{
		"query": strings.Join(c.Query, " "),
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdex.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}
