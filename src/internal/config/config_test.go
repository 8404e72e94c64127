package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	apperrors "github.com/maksimkurb/newsletter-lists/src/internal/errors"
)

const validTOML = `default_list_name = "list3"

[general]
api_listen_addr = "127.0.0.1:9000"

[lists.list1]
id = 1

[lists.list2]
id = 2

[lists.list3]
id = "abc123"
web_id = 555
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "newsletter-lists.toml")
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return configFile
}

func TestLoadConfig_NonExistentFile(t *testing.T) {
	_, err := LoadConfig("/non/existent/file.toml")
	if err == nil {
		t.Fatal("Expected error for non-existent file")
	}
	if !errors.Is(err, apperrors.New(apperrors.ErrCodeConfig, "")) {
		t.Errorf("Expected CONFIG_ERROR, got %v", err)
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	configFile := writeConfig(t, `[lists.list1
id = 1`)

	_, err := LoadConfig(configFile)
	if err == nil {
		t.Fatal("Expected error for invalid TOML")
	}
	if !strings.Contains(err.Error(), "line") {
		t.Errorf("Expected error to mention the position, got %v", err)
	}
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	configFile := writeConfig(t, validTOML)

	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error for valid config: %v", err)
	}

	if config.DefaultListName != "list3" {
		t.Errorf("Expected default_list_name 'list3', got %q", config.DefaultListName)
	}
	if len(config.Lists) != 3 {
		t.Fatalf("Expected 3 lists, got %d", len(config.Lists))
	}
	if id, ok := config.Lists["list1"].ID.(int64); !ok || id != 1 {
		t.Errorf("Expected list1 id to be int64(1), got %#v", config.Lists["list1"].ID)
	}
	if id, ok := config.Lists["list3"].ID.(string); !ok || id != "abc123" {
		t.Errorf("Expected list3 id to be \"abc123\", got %#v", config.Lists["list3"].ID)
	}
	if config.GetAPIListenAddr() != "127.0.0.1:9000" {
		t.Errorf("Expected api_listen_addr '127.0.0.1:9000', got %s", config.GetAPIListenAddr())
	}
	if config.GetConfigPath() != configFile {
		t.Errorf("Expected config path %s, got %s", configFile, config.GetConfigPath())
	}
}

func TestLoadConfig_RelativePath(t *testing.T) {
	configFile := writeConfig(t, validTOML)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(filepath.Dir(configFile)); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	config, err := LoadConfig(filepath.Base(configFile))
	if err != nil {
		t.Fatalf("Expected no error: %v", err)
	}
	if !filepath.IsAbs(config.GetConfigPath()) {
		t.Errorf("Expected absolute config path, got %s", config.GetConfigPath())
	}
}

func TestParseConfig_EmptyLists(t *testing.T) {
	config, err := ParseConfig([]byte(`default_list_name = "main"
lists = {}
`))
	if err != nil {
		t.Fatalf("Expected no error: %v", err)
	}
	if config.Lists == nil || len(config.Lists) != 0 {
		t.Errorf("Expected empty non-nil lists, got %#v", config.Lists)
	}
	if config.GetAPIListenAddr() != DefaultAPIListenAddr {
		t.Errorf("Expected default listen address, got %s", config.GetAPIListenAddr())
	}
}

func TestListNames_Sorted(t *testing.T) {
	config := &Config{Lists: map[string]*ListConfig{
		"zeta":  {ID: 1},
		"alpha": {ID: 2},
		"mid":   {ID: 3},
	}}

	got := strings.Join(config.ListNames(), ",")
	if got != "alpha,mid,zeta" {
		t.Errorf("ListNames() = %s, want alpha,mid,zeta", got)
	}
}

func TestWriteConfig_RoundTrip(t *testing.T) {
	configFile := writeConfig(t, validTOML)

	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	config.DefaultListName = "list1"
	if err := config.WriteConfig(); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	reloaded, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Failed to reload config: %v", err)
	}
	if reloaded.DefaultListName != "list1" {
		t.Errorf("Expected default_list_name 'list1' after write, got %q", reloaded.DefaultListName)
	}
	if len(reloaded.Lists) != 3 {
		t.Errorf("Expected 3 lists after write, got %d", len(reloaded.Lists))
	}
	if id, ok := reloaded.Lists["list3"].ID.(string); !ok || id != "abc123" {
		t.Errorf("Expected list3 id to survive the write, got %#v", reloaded.Lists["list3"].ID)
	}
}

func TestWriteConfig_KeepsUnknownKeys(t *testing.T) {
	configFile := writeConfig(t, `default_list_name = "a"
owner = "marketing"

[general]
api_listen_addr = "127.0.0.1:9000"
timezone = "UTC"

[lists.a]
id = "abc"
marketing_permissions = true

[lists.b]
id = 2
segment = "vip"

[lists.c]
id = 3
`)

	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	config.DefaultListName = "b"
	config.Lists["b"].ID = int64(20)
	config.Lists["d"] = &ListConfig{ID: "new"}
	delete(config.Lists, "c")
	if err := config.WriteConfig(); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	var doc map[string]any
	if err := toml.Unmarshal(content, &doc); err != nil {
		t.Fatalf("Written config is not valid TOML: %v\n%s", err, content)
	}

	table := func(v any) map[string]any {
		m, _ := v.(map[string]any)
		return m
	}
	lists := table(doc["lists"])

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"default_list_name", doc["default_list_name"], "b"},
		{"top-level key", doc["owner"], "marketing"},
		{"general.api_listen_addr", table(doc["general"])["api_listen_addr"], "127.0.0.1:9000"},
		{"general.timezone", table(doc["general"])["timezone"], "UTC"},
		{"lists.a.id", table(lists["a"])["id"], "abc"},
		{"lists.a.marketing_permissions", table(lists["a"])["marketing_permissions"], true},
		{"lists.b.id", table(lists["b"])["id"], int64(20)},
		{"lists.b.segment", table(lists["b"])["segment"], "vip"},
		{"lists.d.id", table(lists["d"])["id"], "new"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %#v, want %#v\n%s", tt.name, tt.got, tt.want, content)
			}
		})
	}

	if _, ok := lists["c"]; ok {
		t.Errorf("Expected removed list c to be gone:\n%s", content)
	}
}

func TestWriteConfig_NotLoadedFromFile(t *testing.T) {
	config := &Config{DefaultListName: "a", Lists: map[string]*ListConfig{}}
	if err := config.WriteConfig(); err == nil {
		t.Error("Expected error when writing a config without a file path")
	}
}
