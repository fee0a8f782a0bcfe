package commands

import (
	"context"
	"fmt"
	"lectioassist-backend/internal/components/chrono"
	"lectioassist-backend/internal/components/telemetry"
	"lectioassist-backend/internal/scrapers/lectio"
	"lectioassist-backend/internal/service"
	"lectioassist-backend/pkg/serviceutil"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	verbose     bool
	jsonOutput  bool
	institution string
)

// app is everything the commands share, it is built before any command runs.
var app struct {
	cfg     Config
	tel     telemetry.API
	store   *lectio.SessionStore
	scraper lectio.Scraper
	service service.Service
}

var rootCmd = &cobra.Command{
	Use:   "lectio-cli",
	Short: "lectio-cli scrapes schedule, absence, assignments and grades from lectio.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)

		cfg, err := loadConfig(configPath)
		if err != nil {
			serviceutil.Fatal("failed to load config", err)
		}
		if institution != "" {
			cfg.Institution = institution
		}
		setup(cfg, telemetry.SlogAPI{})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a json5 config file (default: nearest config.json5).")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print raw json instead of tables.")
	rootCmd.PersistentFlags().StringVarP(&institution, "institution", "i", "", "Institution id, overrides the config.")
}

func setup(cfg Config, tel telemetry.API) {
	app.cfg = cfg
	app.tel = tel
	app.store = lectio.NewSessionStore()
	app.scraper = lectio.NewScraper(app.store, cfg.clientOptions(), chrono.NewStandardTime(), tel)
	app.service = service.New(
		app.scraper,
		app.store,
		service.WithCustomTelemetryAPI(tel),
		service.WithAccessToken(cfg.AccessToken),
	)
}

// requireLogin logs in with the configured credentials, every authenticated
// command calls it first.
func requireLogin(ctx context.Context) loginEnvelope {
	if app.cfg.Institution == "" || app.cfg.Username == "" || app.cfg.Password == "" {
		fmt.Fprintln(os.Stderr, "institution, username and password must be configured (config.json5, .env or LECTIO_* variables).")
		os.Exit(1)
	}

	result := parseLogin(app.service.Login(ctx, app.cfg.Institution, app.cfg.Username, app.cfg.Password))
	if result.Status != "success" {
		fmt.Fprintln(os.Stderr, "login failed:", result.Message)
		os.Exit(1)
	}
	if !result.Verified {
		fmt.Fprintln(os.Stderr, "warning: login did not reach the dashboard, the credentials are probably wrong.")
	}
	return result
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
