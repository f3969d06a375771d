package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/uemcp/uemcp/internal/bridge"
	"github.com/uemcp/uemcp/internal/config"
	"github.com/uemcp/uemcp/internal/history"
	"github.com/uemcp/uemcp/internal/logger"
	"github.com/uemcp/uemcp/internal/mcp"
	"github.com/uemcp/uemcp/internal/snippets"
	"github.com/uemcp/uemcp/internal/tools"
	"github.com/uemcp/uemcp/internal/tools/editor"
	"github.com/uemcp/uemcp/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "uemcp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return fmt.Errorf("prepare directories: %w", err)
	}

	// Stdout carries the MCP stream; logs go to stderr or a file.
	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.ParseLevel(cfg.LogLevel)
	if cfg.LogFile != "" {
		f, err := logger.OpenLogFile(cfg.LogFile)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logCfg.Output = f
	}
	logger.Init(logCfg)

	log := logger.ForComponent("main")
	log.Info("starting Unreal MCP bridge",
		"version", version.Version,
		"unreal_addr", cfg.Addr())

	var recorder bridge.Recorder
	if cfg.HistoryEnabled {
		store, err := history.NewStore(cfg.HistoryDBPath)
		if err != nil {
			log.Warn("command history disabled", "error", err)
		} else {
			defer store.Close()
			recorder = store
		}
	}

	client := bridge.NewClient(bridge.Options{
		Addr:     cfg.Addr(),
		Timeout:  cfg.CommandTimeout,
		Recorder: recorder,
	})

	lib := snippets.NewLibrary(cfg.SnippetsDir)
	if cfg.SnippetsDir != "" {
		if err := lib.StartWatcher(); err != nil {
			log.Warn("snippet watcher unavailable", "error", err)
		}
		defer lib.Close()
	}

	registry := tools.NewRegistry()
	for _, tool := range editor.GetTools(client, lib) {
		if err := registry.Register(tool); err != nil {
			return fmt.Errorf("register tool: %w", err)
		}
	}
	if err := registry.Register(tools.NewHealthTool(client, func() int {
		return len(registry.Names())
	})); err != nil {
		return fmt.Errorf("register tool: %w", err)
	}
	if store, ok := recorder.(*history.Store); ok {
		if err := registry.Register(history.NewTool(store)); err != nil {
			return fmt.Errorf("register tool: %w", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info("shutting down", "signal", sig.String())
		cancel()
	}()

	// The editor may not be running yet; tools reconnect per command,
	// so a failed probe is not fatal.
	if err := client.EnsureConnected(ctx); err != nil {
		log.Warn("Unreal Engine not reachable at startup", "addr", cfg.Addr(), "error", err)
	} else {
		log.Info("Unreal Engine connection verified", "addr", cfg.Addr())
	}

	server := mcp.NewServer(registry)
	if err := server.ServeStdio(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("serve: %w", err)
	}

	log.Info("server stopped")
	return nil
}
