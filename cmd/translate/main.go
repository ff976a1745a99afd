// Package main is the entry point for the translate command-line tool.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/pricofy/text-translator/internal/cli"
	"github.com/pricofy/text-translator/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	flags := cli.NewFlags()
	rootCmd := cli.CreateRootCommand(flags, config.New())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cli.PrintFatal(os.Stderr, err)
		return 1
	}
	return 0
}
