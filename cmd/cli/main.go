package main

import (
	"context"
	"fmt"
	"os"
)

var (
	rootCommand = newRootCommand
	osExit      = os.Exit
)

func main() {
	cmd := rootCommand(defaultDeps())
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		osExit(1)
	}
}
