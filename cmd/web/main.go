package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/fin-tools/finsight/pkg/logging"
	"github.com/fin-tools/finsight/pkg/server"
	"github.com/fin-tools/finsight/pkg/services/alerts"
	"github.com/fin-tools/finsight/pkg/services/chat"
	"github.com/fin-tools/finsight/pkg/services/config"
	"github.com/fin-tools/finsight/pkg/services/insight"
	"github.com/fin-tools/finsight/pkg/services/nudge"
	"github.com/fin-tools/finsight/pkg/services/registry"
	"github.com/fin-tools/finsight/pkg/services/snapshot"
	"github.com/fin-tools/finsight/pkg/services/whatif"
	alertstore "github.com/fin-tools/finsight/pkg/store/alert"
	"github.com/fin-tools/finsight/pkg/store/duckdb"
	duckdbalert "github.com/fin-tools/finsight/pkg/store/duckdb/alert"
	"github.com/fin-tools/finsight/pkg/store/duckdb/ledger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	verbose bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the finsight web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the server config file (FINSIGHT_* env vars override it)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.Setup(cfg.LogDir, verbose)
	ctx := logger.WithContext(cmd.Context())

	companies, err := registry.NewCompanyRegistry(cfg.RegistryPath)
	if err != nil {
		return fmt.Errorf("failed to create company registry: %w", err)
	}

	profiles, err := companies.GetProfiles()
	if err != nil {
		return fmt.Errorf("failed to read company profiles: %w", err)
	}
	logger.Info().Msgf("Registry found at `%s` successfully loaded.", cfg.RegistryPath)
	for _, profile := range profiles {
		logger.Info().Msgf("Company: %s", profile)
	}

	company, err := companies.GetProfile(cfg.Profile)
	if err != nil {
		return fmt.Errorf("failed to resolve profile %q: %w", cfg.Profile, err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: company.LedgerPath})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	defer func() { _ = db.Close() }()

	ledgerStore, err := ledger.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create ledger store: %w", err)
	}

	var alertStore alertstore.Store
	switch cfg.AlertStore {
	case config.AlertStoreMemory:
		alertStore = alertstore.NewMemoryStore()
	default:
		alertStore, err = duckdbalert.NewStore(db)
		if err != nil {
			return fmt.Errorf("failed to create alert store: %w", err)
		}
	}

	accessor := snapshot.NewLedgerAccessor(ledgerStore)
	reasoner := insight.NewReasoner(accessor, insight.Config{
		ThresholdPct:   cfg.ThresholdPct,
		TopDrivers:     cfg.TopDrivers,
		CurrencySymbol: company.Currency,
	})
	simulator := whatif.NewSimulator(accessor)
	router := chat.NewRouter(reasoner, simulator, company.Currency)
	generator := nudge.NewGenerator(company.Currency)
	alertsCtrl := alerts.NewController(company, reasoner, accessor, generator, alertStore)

	go alertsCtrl.Run(ctx, cfg.AlertInterval)

	webAPI := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(cfg.Host, cfg.Port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Company:  company,
			Reasoner: reasoner,
			Chat:     router,
			Alerts:   alertsCtrl,
			Logger:   logger,
		},
	})

	return webAPI.Start()
}
