package commands

import (
	"context"
	"fmt"
	"lectioassist-backend/internal/components/telemetry"
	"lectioassist-backend/pkg/serviceutil"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8080", "Address to serve the http api on.")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve [--addr <host:port>]",
	Short: "Serves the json api over http.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		if app.cfg.AccessToken == "" && !serviceutil.IsLoopback(serveAddr) {
			serviceutil.Fatal(
				"refusing to serve without an access token",
				fmt.Errorf("%s is reachable from other hosts, set access_token or LECTIO_ACCESS_TOKEN", serveAddr),
			)
		}

		otel, err := telemetry.Setup(ctx, "lectio-cli", app.cfg.Telemetry)
		if err != nil {
			serviceutil.Fatal("failed to setup telemetry", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
			defer cancel()
			err := otel.Shutdown(shutdownCtx)
			if err != nil {
				slog.Warn("failed to shutdown telemetry", "err", err)
			}
		}()

		tel := telemetry.NewMetricsAPI(telemetry.SlogAPI{})
		setup(app.cfg, tel)
		telemetry.InstrumentPerfStats(ctx, tel)

		// a configured account is logged in up front, otherwise clients use POST /api/login.
		if app.cfg.Institution != "" && app.cfg.Username != "" && app.cfg.Password != "" {
			result := parseLogin(app.service.Login(ctx, app.cfg.Institution, app.cfg.Username, app.cfg.Password))
			slog.Info("logged in with configured account", "status", result.Status, "verified", result.Verified)
		}

		err = serviceutil.StartHttpServer(ctx, serveAddr, app.service.Handler())
		if err != nil {
			serviceutil.Fatal("failed to serve", err)
		}
	},
}
