package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/newsletter-lists/src/internal/log"
	"github.com/maksimkurb/newsletter-lists/src/internal/newsletter"
)

const defaultListsFormat = "{{name}}\t{{id}}\t{{default}}"

func CreateListsCommand() *ListsCommand {
	gc := &ListsCommand{
		fs: flag.NewFlagSet("lists", flag.ContinueOnError),
	}
	gc.fs.StringVar(&gc.format, "format", defaultListsFormat, "Output template ({{name}}, {{id}}, {{default}})")
	return gc
}

// ListsCommand prints every configured list, one per line, ordered by name.
type ListsCommand struct {
	fs         *flag.FlagSet
	ctx        *AppContext
	format     string
	formatter  *listFormatter
	collection *newsletter.Collection
}

func (g *ListsCommand) Name() string {
	return g.fs.Name()
}

func (g *ListsCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	formatter, err := newListFormatter(g.format)
	if err != nil {
		return err
	}
	g.formatter = formatter

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}

	if g.collection, err = newsletter.CreateFromConfig(cfg); err != nil {
		return err
	}

	return nil
}

func (g *ListsCommand) Run() error {
	if g.collection.Len() == 0 {
		log.Warnf("No newsletter lists configured")
		return nil
	}

	for _, list := range g.collection.Lists() {
		line, err := g.formatter.format(list, list.Name() == g.collection.DefaultListName())
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(g.ctx.stdout(), line); err != nil {
			return err
		}
	}

	if !g.collection.Has(g.collection.DefaultListName()) {
		log.Warnf("Default list %q is not configured", g.collection.DefaultListName())
	}

	return nil
}
