package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/cli"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/tui"
)

func main() {
	// Parse command-line arguments
	var args cli.Args
	parser := arg.MustParse(&args)

	cliHandler, err := cli.NewFromArgs(&args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer cliHandler.Close()

	// No subcommand: open the interactive assistant.
	if args.Say == nil && args.Show == nil && args.Suggest == nil && args.Clear == nil && args.Config == nil {
		if err := tui.Run(cliHandler.Store(), cliHandler.Parser(), 10*time.Second); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := cliHandler.Execute(&args); err != nil {
		fmt.Printf("Error: %v\n", err)
		fmt.Println()
		parser.WriteUsage(os.Stderr)
		os.Exit(1)
	}
}
