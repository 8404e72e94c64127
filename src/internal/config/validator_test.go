package config

import (
	"errors"
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		DefaultListName: "subscribers",
		Lists: map[string]*ListConfig{
			"subscribers": {ID: "abc123"},
			"partners":    {ID: int64(42)},
		},
	}
}

func assertHasFieldError(t *testing.T, err error, fieldPath string) {
	t.Helper()

	var validationErrors ValidationErrors
	if !errors.As(err, &validationErrors) {
		t.Fatalf("Expected ValidationErrors, got %T: %v", err, err)
	}
	for _, e := range validationErrors {
		if e.FieldPath == fieldPath {
			return
		}
	}
	t.Errorf("Expected validation error for %s, got: %v", fieldPath, err)
}

func TestValidateConfig_Success(t *testing.T) {
	if err := validConfig().ValidateConfig(); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestValidateConfig_EmptyListsAllowed(t *testing.T) {
	config := &Config{DefaultListName: "main", Lists: map[string]*ListConfig{}}
	if err := config.ValidateConfig(); err != nil {
		t.Errorf("Expected empty lists to be valid, got: %v", err)
	}
}

func TestValidateConfig_DoesNotCheckDefaultExists(t *testing.T) {
	config := validConfig()
	config.DefaultListName = "unknown"

	if err := config.ValidateConfig(); err != nil {
		t.Errorf("Expected structural validation to ignore the default list, got: %v", err)
	}
}

func TestValidateConfig_Errors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		fieldPath string
	}{
		{
			name:      "missing default list name",
			mutate:    func(c *Config) { c.DefaultListName = "" },
			fieldPath: "default_list_name",
		},
		{
			name:      "missing lists",
			mutate:    func(c *Config) { c.Lists = nil },
			fieldPath: "lists",
		},
		{
			name:      "missing id",
			mutate:    func(c *Config) { c.Lists["broken"] = &ListConfig{} },
			fieldPath: "lists.broken.id",
		},
		{
			name:      "nil list table",
			mutate:    func(c *Config) { c.Lists["broken"] = nil },
			fieldPath: "lists.broken.id",
		},
		{
			name:      "empty string id",
			mutate:    func(c *Config) { c.Lists["broken"] = &ListConfig{ID: "  "} },
			fieldPath: "lists.broken.id",
		},
		{
			name:      "float id",
			mutate:    func(c *Config) { c.Lists["broken"] = &ListConfig{ID: 1.5} },
			fieldPath: "lists.broken.id",
		},
		{
			name:      "table id",
			mutate:    func(c *Config) { c.Lists["broken"] = &ListConfig{ID: map[string]any{"a": 1}} },
			fieldPath: "lists.broken.id",
		},
		{
			name:      "empty list name",
			mutate:    func(c *Config) { c.Lists[""] = &ListConfig{ID: 1} },
			fieldPath: "lists.",
		},
		{
			name:      "list name with whitespace",
			mutate:    func(c *Config) { c.Lists[" padded "] = &ListConfig{ID: 1} },
			fieldPath: "lists. padded ",
		},
		{
			name:      "invalid api listen address",
			mutate:    func(c *Config) { c.General = &GeneralConfig{APIListenAddr: "no-port"} },
			fieldPath: "general.api_listen_addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.mutate(config)

			err := config.ValidateConfig()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			assertHasFieldError(t, err, tt.fieldPath)
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	config := &Config{
		Lists: map[string]*ListConfig{
			"a": {},
			"b": {ID: false},
		},
	}

	err := config.ValidateConfig()

	var validationErrors ValidationErrors
	if !errors.As(err, &validationErrors) {
		t.Fatalf("Expected ValidationErrors, got %v", err)
	}
	if len(validationErrors) != 3 {
		t.Errorf("Expected 3 errors, got %d: %v", len(validationErrors), err)
	}
	if validationErrors[1].ItemName != "a" || validationErrors[2].ItemName != "b" {
		t.Errorf("Expected list errors in name order, got %v", validationErrors)
	}
}

func TestValidateDefaultList(t *testing.T) {
	tests := []struct {
		name        string
		defaultName string
		wantErr     string
	}{
		{"configured default", "subscribers", ""},
		{"unknown default", "newsletter", "unknown list: newsletter"},
		{"empty default", "", "field is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			config.DefaultListName = tt.defaultName

			err := config.ValidateDefaultList()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
			assertHasFieldError(t, err, "default_list_name")
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	ve := ValidationErrors{
		{FieldPath: "default_list_name", Message: "field is required"},
		{ItemName: "partners", FieldPath: "lists.partners.id", Message: "must be a non-empty string or an integer"},
	}

	got := ve.Error()
	want := "validation failed with 2 error(s):\n" +
		"  1. default_list_name: field is required\n" +
		"  2. [partners] lists.partners.id: must be a non-empty string or an integer\n"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if (ValidationErrors{}).Error() != "no validation errors" {
		t.Errorf("Expected empty message for no errors")
	}
}
