package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/newsletter-lists/src/internal/log"
	"github.com/maksimkurb/newsletter-lists/src/internal/newsletter"
)

const defaultResolveFormat = "{{name}}\t{{id}}"

func CreateResolveCommand() *ResolveCommand {
	gc := &ResolveCommand{
		fs: flag.NewFlagSet("resolve", flag.ContinueOnError),
	}
	gc.fs.StringVar(&gc.format, "format", defaultResolveFormat, "Output template ({{name}}, {{id}}, {{default}})")
	return gc
}

// ResolveCommand prints the list a name resolves to. Without a name it
// resolves the default list.
type ResolveCommand struct {
	fs         *flag.FlagSet
	ctx        *AppContext
	format     string
	formatter  *listFormatter
	collection *newsletter.Collection
	listName   string
}

func (g *ResolveCommand) Name() string {
	return g.fs.Name()
}

func (g *ResolveCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	switch g.fs.NArg() {
	case 0:
	case 1:
		g.listName = g.fs.Arg(0)
	default:
		return fmt.Errorf("resolve accepts at most one list name, got %d", g.fs.NArg())
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

func (g *ResolveCommand) Run() error {
	list, err := g.collection.FindByName(g.listName)
	if err != nil {
		return err
	}

	log.Debugf("Resolved %q to %s", g.listName, list)

	line, err := g.formatter.format(list, list.Name() == g.collection.DefaultListName())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(g.ctx.stdout(), line)
	return err
}
