package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/maksimkurb/newsletter-lists/src/internal/config"
	"github.com/maksimkurb/newsletter-lists/src/internal/log"
	"github.com/maksimkurb/newsletter-lists/src/internal/newsletter"
)

func CreateSelfCheckCommand() *SelfCheckCommand {
	gc := &SelfCheckCommand{
		fs: flag.NewFlagSet("self-check", flag.ContinueOnError),
	}
	return gc
}

// SelfCheckCommand validates the configuration file, including the default
// list that is otherwise only checked when it is requested.
type SelfCheckCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
}

func (g *SelfCheckCommand) Name() string {
	return g.fs.Name()
}

func (g *SelfCheckCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx
	return g.fs.Parse(args)
}

func (g *SelfCheckCommand) Run() error {
	out := g.ctx.stdout()
	failed := 0

	check := func(name string, err error) {
		if err != nil {
			failed++
			fmt.Fprintf(out, "[FAIL] %s: %v\n", name, err)
			return
		}
		fmt.Fprintf(out, "[ OK ] %s\n", name)
	}

	log.Infof("Running self-check...")

	cfg, err := config.LoadConfig(g.ctx.ConfigPath)
	check("configuration file is readable", err)
	if err != nil {
		return fmt.Errorf("self-check failed")
	}

	structureErr := cfg.ValidateConfig()
	check("configuration structure", structureErr)
	check("default list name", cfg.ValidateDefaultList())

	if structureErr == nil {
		collection, err := newsletter.CreateFromConfig(cfg)
		check("newsletter lists", err)
		if err == nil {
			for _, name := range collection.Names() {
				list, err := collection.FindByName(name)
				if err == nil {
					fmt.Fprintf(out, "       %s\n", list)
				}
			}
			_, err = collection.FindByName("")
			var invalid *newsletter.InvalidListError
			if errors.As(err, &invalid) {
				log.Debugf("Default list resolution failed: %s", invalid.Reason)
			}
			check("default list resolves", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("self-check failed with %d problem(s)", failed)
	}

	log.Infof("Self-check passed")
	return nil
}
