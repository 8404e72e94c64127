package newsletter

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

type listIDKind uint8

const (
	listIDString listIDKind = iota + 1
	listIDInt
)

// ListID is the provider-defined identifier of a list, either a string or an integer.
// The zero value is an unset identifier. ListIDs are comparable with ==.
type ListID struct {
	kind listIDKind
	str  string
	num  int64
}

// StringID returns a string list identifier.
func StringID(id string) ListID {
	return ListID{kind: listIDString, str: id}
}

// IntID returns an integer list identifier.
func IntID(id int64) ListID {
	return ListID{kind: listIDInt, num: id}
}

// ParseListID converts a decoded configuration value to a ListID.
// Strings and integer types are accepted.
func ParseListID(v any) (ListID, error) {
	switch id := v.(type) {
	case ListID:
		if id.IsZero() {
			return ListID{}, fmt.Errorf("list id is missing")
		}
		return id, nil
	case string:
		return StringID(id), nil
	case int:
		return IntID(int64(id)), nil
	case int8:
		return IntID(int64(id)), nil
	case int16:
		return IntID(int64(id)), nil
	case int32:
		return IntID(int64(id)), nil
	case int64:
		return IntID(id), nil
	case uint:
		return uintID(uint64(id))
	case uint8:
		return IntID(int64(id)), nil
	case uint16:
		return IntID(int64(id)), nil
	case uint32:
		return IntID(int64(id)), nil
	case uint64:
		return uintID(id)
	case nil:
		return ListID{}, fmt.Errorf("list id is missing")
	default:
		return ListID{}, fmt.Errorf("unsupported list id type %T", v)
	}
}

func uintID(id uint64) (ListID, error) {
	if id > math.MaxInt64 {
		return ListID{}, fmt.Errorf("list id %d overflows int64", id)
	}
	return IntID(int64(id)), nil
}

// IsZero reports whether the identifier is unset.
func (id ListID) IsZero() bool {
	return id.kind == 0
}

// Value returns the identifier as a string or an int64, or nil when unset.
func (id ListID) Value() any {
	switch id.kind {
	case listIDString:
		return id.str
	case listIDInt:
		return id.num
	default:
		return nil
	}
}

// String returns the raw identifier, as a provider API would expect it.
func (id ListID) String() string {
	switch id.kind {
	case listIDString:
		return id.str
	case listIDInt:
		return strconv.FormatInt(id.num, 10)
	default:
		return ""
	}
}

// MarshalJSON encodes integer identifiers as JSON numbers and string identifiers as JSON strings.
func (id ListID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.Value())
}

// List is a named newsletter list of an email-marketing provider.
// It is an immutable value and may be copied freely.
type List struct {
	name string
	id   ListID
}

// NewList returns a list with the given name and identifier. No validation
// is done here; an empty name is allowed.
func NewList(name string, id ListID) List {
	return List{name: name, id: id}
}

// Name returns the configured list name.
func (l List) Name() string {
	return l.name
}

// ID returns the provider-defined list identifier.
func (l List) ID() ListID {
	return l.id
}

// String returns the list as name(id).
func (l List) String() string {
	return fmt.Sprintf("%s(%s)", l.name, l.id)
}
