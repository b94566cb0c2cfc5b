// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-dabria/internal/client"
	"github.com/MKhiriev/go-dabria/internal/config"
	"github.com/MKhiriev/go-dabria/internal/crypto"
	"github.com/MKhiriev/go-dabria/internal/live"
	"github.com/MKhiriev/go-dabria/internal/logger"
	"github.com/MKhiriev/go-dabria/internal/quota"
	"github.com/MKhiriev/go-dabria/internal/service"
	"github.com/MKhiriev/go-dabria/internal/store"
	"github.com/MKhiriev/go-dabria/internal/tui"
	"github.com/MKhiriev/go-dabria/internal/workers"
	"github.com/MKhiriev/go-dabria/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("dabria", cfg.Log.Path)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	hub := live.NewHub(log)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, hub, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	hasher, err := crypto.NewPasswordHasher(cfg.App.PasswordHasher, cfg.App.PasswordHashKey)
	if err != nil {
		log.Fatal().Err(err).Msg("create password hasher")
	}

	services := service.NewServices(storages, hub, hasher, quota.NewPolicy(cfg.Storage.Quota.LimitBytes), log)

	autosaver := workers.NewAutosaver(services.JournalService, cfg.Workers.AutosaveDelay, log)

	ui, err := tui.New(services, autosaver, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, workers.NewWorkers(autosaver), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
