package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/balcao-cafe/balcao/internal/cli"
	"github.com/balcao-cafe/balcao/internal/config"
)

func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Root flags (apply to every subcommand)
	api := flag.String("api", cfg.Endpoint, "catalog endpoint URL")
	data := flag.String("data", cfg.DataDir, "directory holding the persisted cart")
	yes := flag.Bool("yes", false, "assume yes on confirmation prompts")
	flag.Parse()

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		Endpoint: *api,
		DataDir:  *data,
		Yes:      *yes,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
