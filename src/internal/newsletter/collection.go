package newsletter

import (
	"sort"

	"github.com/maksimkurb/newsletter-lists/src/internal/config"
	apperrors "github.com/maksimkurb/newsletter-lists/src/internal/errors"
	"github.com/maksimkurb/newsletter-lists/src/internal/log"
)

// Collection holds the configured newsletter lists and the default list name.
// It is never modified after construction.
type Collection struct {
	lists           map[string]List
	defaultListName string
}

// NewCollection builds a collection from ready-made lists. When two lists
// share a name, the last one wins.
func NewCollection(lists []List, defaultListName string) *Collection {
	c := &Collection{
		lists:           make(map[string]List, len(lists)),
		defaultListName: defaultListName,
	}
	for _, list := range lists {
		c.lists[list.Name()] = list
	}
	return c
}

// CreateFromConfig builds a collection with one List per configured list.
// The default list name is stored as is; it is checked by FindByName("").
func CreateFromConfig(cfg *config.Config) (*Collection, error) {
	c := &Collection{
		lists:           make(map[string]List, len(cfg.Lists)),
		defaultListName: cfg.DefaultListName,
	}

	for name, listConfig := range cfg.Lists {
		var rawID any
		if listConfig != nil {
			rawID = listConfig.ID
		}

		id, err := ParseListID(rawID)
		if err != nil {
			return nil, apperrors.NewConfigError("invalid id for list "+name, err)
		}

		c.lists[name] = NewList(name, id)
	}

	log.Debugf("Loaded %d newsletter lists, default list is %q", len(c.lists), c.defaultListName)

	return c, nil
}

// FindByName returns the list with the given name. The empty name selects
// the default list. It returns *InvalidListError when no such list exists.
func (c *Collection) FindByName(name string) (List, error) {
	if name == "" {
		list, ok := c.lists[c.defaultListName]
		if !ok {
			return List{}, &InvalidListError{Reason: ReasonDefaultMisconfigured, ListName: c.defaultListName}
		}
		return list, nil
	}

	list, ok := c.lists[name]
	if !ok {
		return List{}, &InvalidListError{Reason: ReasonNotFound, ListName: name}
	}
	return list, nil
}

// DefaultListName returns the configured default list name, which may not exist.
func (c *Collection) DefaultListName() string {
	return c.defaultListName
}

// Has reports whether a list with the given name is configured.
func (c *Collection) Has(name string) bool {
	_, ok := c.lists[name]
	return ok
}

// Len returns the number of configured lists.
func (c *Collection) Len() int {
	return len(c.lists)
}

// Names returns the configured list names in lexical order.
func (c *Collection) Names() []string {
	names := make([]string, 0, len(c.lists))
	for name := range c.lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lists returns the configured lists ordered by name.
func (c *Collection) Lists() []List {
	names := c.Names()
	lists := make([]List, len(names))
	for i, name := range names {
		lists[i] = c.lists[name]
	}
	return lists
}
