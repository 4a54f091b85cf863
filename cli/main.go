package main

import (
	"context"
	"fmt"
	"os"

	"github.com/trebuchet-org/ignis/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := cli.Execute(context.Background(), rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
