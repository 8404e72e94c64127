package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/newsletter-lists/src/internal/api"
	"github.com/maksimkurb/newsletter-lists/src/internal/commands"
	"github.com/maksimkurb/newsletter-lists/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", "/etc/newsletter-lists/newsletter-lists.toml", "Path to configuration file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Newsletter list registry\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  resolve [name]          Print the list a name resolves to (default list if omitted)\n")
		fmt.Fprintf(os.Stderr, "  lists                   Print all configured lists\n")
		fmt.Fprintf(os.Stderr, "  set-default <name>      Change the default list in the configuration file\n")
		fmt.Fprintf(os.Stderr, "  self-check              Validate the configuration, including the default list\n")
		fmt.Fprintf(os.Stderr, "  server                  Serve the read-only HTTP API\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	// Command output goes to stdout, so keep it free of log lines
	log.SetForceStdErr(true)
	if ctx.Verbose {
		log.SetVerbose(true)
	}

	api.Version = version
	api.Commit = commit
	api.Date = date

	cmds := []commands.Runner{
		commands.CreateResolveCommand(),
		commands.CreateListsCommand(),
		commands.CreateSetDefaultCommand(),
		commands.CreateSelfCheckCommand(),
		commands.CreateServerCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
