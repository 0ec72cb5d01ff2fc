package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/littletsp/cmd/root"
)

func main() {
	rootCmd := root.NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
