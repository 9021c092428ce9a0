package main

import (
	"fmt"
	"strings"

	"docdex"
	"docdex/tool"
)

// Run executes the guide command.
func (c *GuideCmd) Run(deps *Dependencies) error {
	out, err := deps.Service.Call(deps.Ctx, tool.OpGetGuidance, map[string]any{
		"context":      c.Context,
		"requirements": strings.Join(c.Requirements, " "),
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdex.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}
