// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-utils/internal/client"
	"github.com/MKhiriev/go-utils/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(os.Stdout, os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "confstore: %v\n", err)
		stop()
		os.Exit(1)
	}
}
