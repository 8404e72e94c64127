package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maksimkurb/newsletter-lists/src/internal/api"
	"github.com/maksimkurb/newsletter-lists/src/internal/config"
	"github.com/maksimkurb/newsletter-lists/src/internal/log"
	"github.com/maksimkurb/newsletter-lists/src/internal/service"
	"github.com/maksimkurb/newsletter-lists/src/internal/watcher"
)

func CreateServerCommand() *ServerCommand {
	c := &ServerCommand{
		fs: flag.NewFlagSet("server", flag.ContinueOnError),
	}
	c.fs.StringVar(&c.bindAddr, "bind", "", "Address to bind the HTTP server (default: general.api_listen_addr or "+config.DefaultAPIListenAddr+")")
	c.fs.BoolVar(&c.watch, "watch", true, "Reload the configuration when the file changes")
	return c
}

// ServerCommand serves the read-only HTTP API. The configuration is reloaded
// on SIGHUP and, unless disabled, whenever the file changes.
type ServerCommand struct {
	fs       *flag.FlagSet
	ctx      *AppContext
	bindAddr string
	watch    bool
	lists    *service.ListService
}

// Name returns the command name.
func (c *ServerCommand) Name() string {
	return c.fs.Name()
}

// Init parses flags and loads the configuration.
func (c *ServerCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	c.lists = service.NewListService(ctx.ConfigPath)
	if err := c.lists.Load(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if c.bindAddr == "" {
		c.bindAddr = c.lists.Config().GetAPIListenAddr()
	}

	return nil
}

// Run starts the HTTP API server and blocks until SIGINT or SIGTERM.
func (c *ServerCommand) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := api.NewServer(c.lists, c.bindAddr)

	var configWatcher *RestartableRunner
	if c.watch {
		configPath := c.lists.Config().GetConfigPath()
		configWatcher = NewRestartableRunner(RunnerConfig{Name: "config-watcher"}, func(ctx context.Context) error {
			return watchConfig(ctx, c.lists, configPath, watcher.DefaultDebounce)
		})
		if err := configWatcher.Start(ctx); err != nil {
			return err
		}
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	for {
		select {
		case err := <-serverErrors:
			c.stopWatcher(configWatcher)
			if err != nil {
				return fmt.Errorf("API server on %s: %w", server.Addr(), err)
			}
			return nil

		case sig := <-signals:
			if sig == syscall.SIGHUP {
				reloadConfig(c.lists)
				continue
			}

			log.Infof("Received signal %v, shutting down server...", sig)
			c.stopWatcher(configWatcher)

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer shutdownCancel()

			if err := server.Stop(shutdownCtx); err != nil {
				return fmt.Errorf("server shutdown failed: %w", err)
			}

			log.Infof("Server stopped gracefully")
			return nil
		}
	}
}

func (c *ServerCommand) stopWatcher(runner *RestartableRunner) {
	if runner == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := runner.Stop(ctx); err != nil {
		log.Warnf("Failed to stop config watcher: %v", err)
	}
}

// configReloader is the part of service.ListService used by watchConfig.
type configReloader interface {
	Reload() (bool, error)
}

// watchConfig reloads the configuration whenever the file at path changes,
// until ctx is done. Reload errors are logged and the previous lists stay in
// use; watch errors are returned so the caller can restart watching.
func watchConfig(ctx context.Context, lists configReloader, path string, debounce time.Duration) error {
	w, err := watcher.New(watcher.Config{Path: path, DebounceDur: debounce})
	if err != nil {
		return err
	}
	defer w.Stop()

	changes, err := w.Start()
	if err != nil {
		return err
	}
	log.Infof("Watching %s for changes", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-w.Errors():
			return fmt.Errorf("watching %s: %w", path, err)
		case <-changes:
			log.Debugf("Configuration file %s changed", path)
			reloadConfig(lists)
		}
	}
}

func reloadConfig(lists configReloader) {
	changed, err := lists.Reload()
	if err != nil {
		log.Errorf("Failed to reload configuration, keeping current lists: %v", err)
		return
	}
	if changed {
		log.Infof("Configuration reloaded")
	}
}
