package main

import (
	"bytes"
	"strings"
)

// runCLI executes bstctl with args, feeding stdin, and returns stdout.
func runCLI(stdin string, args ...string) (string, error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
