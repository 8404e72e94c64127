package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/newsletter-lists/src/internal/config"
	"github.com/maksimkurb/newsletter-lists/src/internal/log"
	"github.com/maksimkurb/newsletter-lists/src/internal/newsletter"
)

func CreateSetDefaultCommand() *SetDefaultCommand {
	gc := &SetDefaultCommand{
		fs: flag.NewFlagSet("set-default", flag.ContinueOnError),
	}
	return gc
}

// SetDefaultCommand changes default_list_name in the configuration file.
// The new default must name a configured list.
type SetDefaultCommand struct {
	fs       *flag.FlagSet
	ctx      *AppContext
	cfg      *config.Config
	listName string
}

func (g *SetDefaultCommand) Name() string {
	return g.fs.Name()
}

func (g *SetDefaultCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.fs.NArg() != 1 || g.fs.Arg(0) == "" {
		return fmt.Errorf("set-default requires exactly one list name")
	}
	g.listName = g.fs.Arg(0)

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	g.cfg = cfg

	return nil
}

func (g *SetDefaultCommand) Run() error {
	collection, err := newsletter.CreateFromConfig(g.cfg)
	if err != nil {
		return err
	}

	if _, err := collection.FindByName(g.listName); err != nil {
		return err
	}

	if g.cfg.DefaultListName == g.listName {
		log.Infof("Default list is already %q", g.listName)
		return nil
	}

	previous := g.cfg.DefaultListName
	g.cfg.DefaultListName = g.listName
	if err := g.cfg.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	log.Infof("Default list changed from %q to %q", previous, g.listName)
	return nil
}
