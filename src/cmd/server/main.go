package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"molsim/src/internal/api"
	"molsim/src/internal/config"
	"molsim/src/internal/presets"
	"molsim/src/internal/rdkit"
	"molsim/src/internal/simulator"
)

func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "", "path to config file to load first")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	cfg, err := config.Load(configFile)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// PID file management; deploy.sh uses it for stop/restart
	pidPath := filepath.Join(cfg.StorageDir, "molsim.pid")

	if pidBytes, err := os.ReadFile(pidPath); err == nil {
		pidStr := strings.TrimSpace(string(pidBytes))
		if pid, err := strconv.Atoi(pidStr); err == nil && pid > 0 {
			if syscall.Kill(pid, 0) == nil {
				slog.Error("molsim already running", "pid", pid, "pidfile", pidPath)
				os.Exit(1)
			}
			if err := os.Remove(pidPath); err != nil {
				slog.Warn("failed to remove stale pidfile", "path", pidPath, "error", err)
			} else {
				slog.Info("cleaned stale pidfile", "pid", pid)
			}
		}
	}

	pidFile, err := os.OpenFile(pidPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		slog.Error("failed to create pidfile", "path", pidPath, "error", err)
		os.Exit(1)
	}
	defer pidFile.Close()

	if _, err := fmt.Fprintf(pidFile, "%d\n", os.Getpid()); err != nil {
		slog.Error("failed to write pidfile", "path", pidPath, "error", err)
		os.Exit(1)
	}

	defer func(name string) {
		if err := os.Remove(name); err != nil {
			slog.Error("failed to remove pidfile", "path", name, "error", err)
		}
	}(pidPath)

	// Warn if non-loopback bind without key
	isLoopback := cfg.Server.EffectiveHost == "127.0.0.1" || cfg.Server.EffectiveHost == "localhost" || cfg.Server.EffectiveHost == "::1" || cfg.Server.EffectiveHost == "[::1]"
	if !isLoopback && cfg.Server.Key == "" {
		slog.Warn("binding to non-loopback address without server key; the JSON API is open", "host", cfg.Server.EffectiveHost, "port", cfg.Server.Port)
	}

	toolkit := rdkit.New()
	slog.Info("chemistry toolkit ready", "version", toolkit.Version())

	catalog, err := presets.Load(cfg.Presets.File)
	if err != nil {
		slog.Error("failed to load preset catalog", "file", cfg.Presets.File, "error", err)
		os.Exit(1)
	}

	sim := simulator.New(toolkit, cfg.Chemistry)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := api.NewServer(cfg, sim, toolkit, catalog)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		slog.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	slog.Info("starting molecule viewer service", "host", cfg.Server.EffectiveHost, "port", cfg.Server.Port, "presets", len(catalog))
	if err := server.ListenAndServe(ctx, cfg.Server.Addr); err != nil {
		slog.Error("server ListenAndServe failed", "error", err)
		os.Exit(1)
	}
}
