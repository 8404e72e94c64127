package config

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	hashCacheTTL     = 5 * time.Second
	currentHashKey   = "current"
	hashCacheCleanup = time.Minute
)

// ConfigHasher calculates an MD5 hash of the list configuration.
// It keeps a cached hash of the file on disk ("current") and the hash of the
// configuration the running server was built from ("active"), so callers can
// tell when a reload is required.
type ConfigHasher struct {
	configPath string

	cache *gocache.Cache

	activeHash string

	mu sync.RWMutex
}

// NewConfigHasher creates a new config hasher for the file at configPath.
func NewConfigHasher(configPath string) *ConfigHasher {
	return &ConfigHasher{
		configPath: configPath,
		cache:      gocache.New(hashCacheTTL, hashCacheCleanup),
	}
}

// GetCurrentConfigHash returns the cached hash of the config file,
// recalculating it when the cache is older than hashCacheTTL.
func (h *ConfigHasher) GetCurrentConfigHash() (string, error) {
	if cached, found := h.cache.Get(currentHashKey); found {
		if hash, ok := cached.(string); ok {
			return hash, nil
		}
	}

	return h.UpdateCurrentConfigHash()
}

// UpdateCurrentConfigHash re-reads the config file and refreshes the cached hash.
func (h *ConfigHasher) UpdateCurrentConfigHash() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	cfg, err := LoadConfig(h.configPath)
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}

	hash, err := CalculateHash(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to calculate hash: %w", err)
	}

	h.cache.SetDefault(currentHashKey, hash)

	return hash, nil
}

// InvalidateCurrentConfigHash drops the cached hash so the next
// GetCurrentConfigHash re-reads the file.
func (h *ConfigHasher) InvalidateCurrentConfigHash() {
	h.cache.Delete(currentHashKey)
}

// GetActiveConfigHash returns the hash of the configuration currently in use.
func (h *ConfigHasher) GetActiveConfigHash() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.activeHash
}

// SetActiveConfigHash records the hash of the configuration currently in use.
func (h *ConfigHasher) SetActiveConfigHash(hash string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.activeHash = hash
}

// CalculateHash returns the MD5 hash of the modelled configuration: the
// default list, the list ids and the effective API address. Keys that are
// not modelled do not affect it.
func CalculateHash(cfg *Config) (string, error) {
	hashData := ConfigHashData{
		APIListenAddr:   cfg.GetAPIListenAddr(),
		DefaultListName: cfg.DefaultListName,
		Lists:           make(map[string]any, len(cfg.Lists)),
	}
	for name, list := range cfg.Lists {
		if list == nil {
			hashData.Lists[name] = nil
			continue
		}
		hashData.Lists[name] = list.ID
	}

	// encoding/json sorts map keys, which keeps the hash deterministic
	jsonBytes, err := json.Marshal(hashData)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config data: %w", err)
	}

	hash := md5.Sum(jsonBytes)
	return hex.EncodeToString(hash[:]), nil
}

// ConfigHashData represents the structure used for hashing
type ConfigHashData struct {
	APIListenAddr   string         `json:"api_listen_addr"`
	DefaultListName string         `json:"default_list_name"`
	Lists           map[string]any `json:"lists"`
}
