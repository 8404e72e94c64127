package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/newsletter-lists/src/internal/config"
	apperrors "github.com/maksimkurb/newsletter-lists/src/internal/errors"
	"github.com/maksimkurb/newsletter-lists/src/internal/newsletter"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
	// Stdout receives command output. Defaults to os.Stdout.
	Stdout io.Writer
}

func (ctx *AppContext) stdout() io.Writer {
	if ctx.Stdout == nil {
		return os.Stdout
	}
	return ctx.Stdout
}

// loadAndValidateConfigOrFail loads configuration from file and validates its structure.
// The default list name is not checked here.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, apperrors.NewValidationError("configuration validation failed", err)
	}

	return cfg, nil
}

const (
	listTmplName    = "name"
	listTmplID      = "id"
	listTmplDefault = "default"
)

var formatEscapes = strings.NewReplacer(`\t`, "\t", `\n`, "\n")

// listFormatter renders lists with a user-supplied {{tag}} template.
type listFormatter struct {
	tmpl *fasttemplate.Template
}

func newListFormatter(format string) (*listFormatter, error) {
	tmpl, err := fasttemplate.NewTemplate(formatEscapes.Replace(format), "{{", "}}")
	if err != nil {
		return nil, fmt.Errorf("invalid format %q: %w", format, err)
	}

	f := &listFormatter{tmpl: tmpl}
	// Render once to reject unknown placeholders before any output is written
	if _, err := f.format(newsletter.NewList("", newsletter.StringID("")), false); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *listFormatter) format(list newsletter.List, isDefault bool) (string, error) {
	var sb strings.Builder
	_, err := f.tmpl.ExecuteFunc(&sb, func(w io.Writer, tag string) (int, error) {
		switch strings.TrimSpace(tag) {
		case listTmplName:
			return io.WriteString(w, list.Name())
		case listTmplID:
			return io.WriteString(w, list.ID().String())
		case listTmplDefault:
			return io.WriteString(w, strconv.FormatBool(isDefault))
		default:
			return 0, fmt.Errorf("unknown format placeholder {{%s}} (supported: {{%s}}, {{%s}}, {{%s}})",
				tag, listTmplName, listTmplID, listTmplDefault)
		}
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
