package service

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/maksimkurb/newsletter-lists/src/internal/config"
	apperrors "github.com/maksimkurb/newsletter-lists/src/internal/errors"
	"github.com/maksimkurb/newsletter-lists/src/internal/log"
	"github.com/maksimkurb/newsletter-lists/src/internal/newsletter"
)

// snapshot is a configuration together with the collection built from it.
type snapshot struct {
	cfg        *config.Config
	collection *newsletter.Collection
	hash       string
}

// ListService owns the newsletter lists loaded from a configuration file.
type ListService struct {
	configPath string
	hasher     *config.ConfigHasher

	reloadMu sync.Mutex
	current  atomic.Pointer[snapshot]
}

// Status describes the configuration in use and the one on disk.
type Status struct {
	ConfigPath        string `json:"config_path"`
	ActiveConfigHash  string `json:"active_config_hash"`
	CurrentConfigHash string `json:"current_config_hash,omitempty"`
	ReloadRequired    bool   `json:"reload_required"`
	ListCount         int    `json:"list_count"`
	DefaultListName   string `json:"default_list_name"`
}

// NewListService creates a service for the configuration file at configPath.
// Load must be called before the service is used.
func NewListService(configPath string) *ListService {
	return &ListService{
		configPath: configPath,
		hasher:     config.NewConfigHasher(configPath),
	}
}

// Load reads, validates and applies the configuration file.
func (s *ListService) Load() error {
	_, err := s.Reload()
	return err
}

// Reload re-reads the configuration file and swaps in a new collection when
// the lists changed. On error the previous collection stays in use.
func (s *ListService) Reload() (bool, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	cfg, err := config.LoadConfig(s.configPath)
	if err != nil {
		return false, err
	}

	if err := cfg.ValidateConfig(); err != nil {
		return false, apperrors.NewValidationError("configuration validation failed", err)
	}

	hash, err := config.CalculateHash(cfg)
	if err != nil {
		return false, err
	}

	if prev := s.current.Load(); prev != nil && prev.hash == hash {
		log.Debugf("Configuration unchanged (%s), keeping current lists", hash)
		return false, nil
	}

	collection, err := newsletter.CreateFromConfig(cfg)
	if err != nil {
		return false, err
	}

	if err := cfg.ValidateDefaultList(); err != nil {
		log.Warnf("Default list is misconfigured: %v", err)
	}

	if prev := s.current.Load(); prev != nil && prev.cfg.GetAPIListenAddr() != cfg.GetAPIListenAddr() {
		log.Warnf("api_listen_addr changed from %s to %s, restart the server to apply it",
			prev.cfg.GetAPIListenAddr(), cfg.GetAPIListenAddr())
	}

	s.current.Store(&snapshot{cfg: cfg, collection: collection, hash: hash})
	s.hasher.SetActiveConfigHash(hash)
	s.hasher.InvalidateCurrentConfigHash()

	log.Infof("Loaded %d newsletter lists from %s", collection.Len(), cfg.GetConfigPath())

	return true, nil
}

// Collection returns the collection currently in use.
func (s *ListService) Collection() *newsletter.Collection {
	return s.mustSnapshot().collection
}

// Config returns the configuration currently in use.
func (s *ListService) Config() *config.Config {
	return s.mustSnapshot().cfg
}

// Resolve resolves a list name against the current collection.
// The empty name selects the default list.
func (s *ListService) Resolve(name string) (newsletter.List, error) {
	list, err := s.Collection().FindByName(name)
	if err != nil {
		return newsletter.List{}, err
	}
	log.Debugf("Resolved list %q to %s", name, list)
	return list, nil
}

// CheckConfig reports configuration problems that do not prevent loading,
// such as a default list name that matches no list.
func (s *ListService) CheckConfig() error {
	return s.Config().ValidateDefaultList()
}

// Status compares the active configuration with the file on disk.
func (s *ListService) Status() Status {
	snap := s.mustSnapshot()

	status := Status{
		ConfigPath:       snap.cfg.GetConfigPath(),
		ActiveConfigHash: snap.hash,
		ListCount:        snap.collection.Len(),
		DefaultListName:  snap.collection.DefaultListName(),
	}

	current, err := s.hasher.GetCurrentConfigHash()
	if err != nil {
		log.Warnf("Failed to hash configuration file: %v", err)
		return status
	}
	status.CurrentConfigHash = current
	status.ReloadRequired = current != s.hasher.GetActiveConfigHash()

	return status
}

func (s *ListService) mustSnapshot() *snapshot {
	snap := s.current.Load()
	if snap == nil {
		panic(fmt.Sprintf("service: lists from %s used before Load", s.configPath))
	}
	return snap
}
