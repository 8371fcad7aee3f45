package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/samcharles93/normlab/internal/api"
	"github.com/urfave/cli/v3"
)

func serveCmd() *cli.Command {
	var (
		addr         string
		readTimeout  time.Duration
		sessionLimit int64
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the playground HTTP API and web page",
		Flags: append(append(labCommandFlags(), loggingFlags()...),
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Value:       "127.0.0.1:8418",
				Destination: &addr,
			},
			&cli.DurationFlag{
				Name:        "read-timeout",
				Usage:       "read timeout",
				Value:       30 * time.Second,
				Destination: &readTimeout,
			},
			&cli.Int64Flag{
				Name:        "session-limit",
				Usage:       "maximum number of live sessions",
				Value:       api.DefaultSessionLimit,
				Destination: &sessionLimit,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := LoadConfig()
			applyLabConfig(cmd, cfg)
			applyServeConfig(cmd, cfg, &addr, &sessionLimit)
			log := newLogger()

			defaults, err := paramsFromFlags()
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			store := api.NewSessionStore(int(sessionLimit))
			server := api.NewServer(store, defaults, log)
			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			server.Register(e)
			log.Info("starting server", "address", addr, "session_limit", sessionLimit)
			sc := echo.StartConfig{
				Address: addr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = readTimeout
					return nil
				},
			}
			return sc.Start(ctx, e)
		},
	}
}
