package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/oskarbin/internal/api"
	"github.com/samcharles93/oskarbin/internal/logger"
	"github.com/samcharles93/oskarbin/pkg/oskar"
)

func serveCmd() *cli.Command {
	var (
		addr        string
		readTimeout time.Duration
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve a read-only HTTP API over one OSKAR binary file",
		Flags: append(append(fileFlag(), loggingFlags()...),
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
			&cli.DurationFlag{
				Name:        "read-timeout",
				Usage:       "read timeout",
				Value:       30 * time.Second,
				Destination: &readTimeout,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg := LoadConfig()
			applyLoggingConfig(c, cfg)
			applyServeConfig(c, cfg, &addr)
			log := newLogger()
			ctx = logger.WithContext(ctx, log)

			// Fail early on unreadable or malformed files instead of at
			// the first request.
			sc, err := oskar.Open(filePath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: open: %v", err), 1)
			}
			header := sc.Header()
			_ = sc.Close()
			log.Info("serving container", "file", filePath,
				"version", header.Version, "checksums", header.HasChecksums())

			server := api.NewServer(filePath, log)
			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			server.Register(e)

			log.Info("starting server", "address", addr)
			start := echo.StartConfig{
				Address: addr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = readTimeout
					return nil
				},
			}
			return start.Start(ctx, e)
		},
	}
}
