package newsletter

import (
	"errors"
	"testing"

	"pgregory.net/rapid"

	"github.com/maksimkurb/newsletter-lists/src/internal/config"
)

func drawConfig(t *rapid.T) *config.Config {
	names := rapid.MapOf(
		rapid.StringMatching(`[a-z][a-z0-9_-]{0,7}`),
		rapid.Bool(),
	).Draw(t, "names")

	lists := make(map[string]*config.ListConfig, len(names))
	for name, intID := range names {
		if intID {
			lists[name] = &config.ListConfig{ID: rapid.Int64().Draw(t, "int id")}
		} else {
			lists[name] = &config.ListConfig{ID: rapid.StringMatching(`[0-9a-f]{1,10}`).Draw(t, "string id")}
		}
	}

	return &config.Config{
		Lists:           lists,
		DefaultListName: rapid.StringMatching(`[a-z][a-z0-9_-]{0,7}`).Draw(t, "default"),
	}
}

func TestFindByName_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := drawConfig(t)

		c, err := CreateFromConfig(cfg)
		if err != nil {
			t.Fatalf("CreateFromConfig() error = %v", err)
		}
		if c.Len() != len(cfg.Lists) {
			t.Fatalf("Len() = %d, want %d", c.Len(), len(cfg.Lists))
		}

		// every configured name resolves to its own entry
		for name, listConfig := range cfg.Lists {
			want, _ := ParseListID(listConfig.ID)
			list, err := c.FindByName(name)
			if err != nil {
				t.Fatalf("FindByName(%q) error = %v", name, err)
			}
			if list.Name() != name || list.ID() != want {
				t.Fatalf("FindByName(%q) = %v, want %s(%s)", name, list, name, want)
			}
		}

		// the empty name is the default name, or a misconfigured-default error
		list, err := c.FindByName("")
		if _, ok := cfg.Lists[cfg.DefaultListName]; ok {
			if err != nil || list.Name() != cfg.DefaultListName {
				t.Fatalf("FindByName(\"\") = %v, %v; want %s", list, err, cfg.DefaultListName)
			}
		} else {
			var invalid *InvalidListError
			if !errors.As(err, &invalid) || invalid.Reason != ReasonDefaultMisconfigured || invalid.ListName != cfg.DefaultListName {
				t.Fatalf("FindByName(\"\") error = %v, want misconfigured default %q", err, cfg.DefaultListName)
			}
		}

		// names outside the configuration are reported as not found
		unknown := rapid.StringMatching(`[A-Z][A-Z0-9]{0,7}`).Draw(t, "unknown")
		_, err = c.FindByName(unknown)
		var invalid *InvalidListError
		if !errors.As(err, &invalid) || invalid.Reason != ReasonNotFound || invalid.ListName != unknown {
			t.Fatalf("FindByName(%q) error = %v, want not found", unknown, err)
		}
	})
}
