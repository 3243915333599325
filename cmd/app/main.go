package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"khata-ledger/internal/adapters/cli"
	"khata-ledger/internal/adapters/repl"
	"khata-ledger/internal/adapters/report"
	"khata-ledger/internal/app"
	"khata-ledger/internal/config"
	"khata-ledger/internal/core"
	"khata-ledger/internal/currency"
	"khata-ledger/internal/logger"
	"khata-ledger/internal/seed"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	ctx := context.Background()
	ledger := core.NewLedger()
	inventory := core.NewInventory()

	if err := loadSeed(cfg.Ledger, ledger, inventory); err != nil {
		zl.Fatal("failed to load seed data", zap.Error(err))
	}
	zl.Debug("stores ready",
		zap.Int("customers", len(ledger.Customers())),
		zap.Int("items", len(inventory.Items())),
		zap.String("env", cfg.App.Env),
	)

	svc := app.NewAppService(ledger, inventory, zl)
	settings := report.Settings{
		Title:     cfg.Report.Title,
		PageLines: cfg.Report.PageLines,
		Money:     currency.NewFormatter(cfg.Ledger.CurrencySymbol, cfg.Ledger.Locale),
	}

	if len(os.Args) > 1 {
		if err := cli.Run(ctx, svc, os.Args[1:], os.Stdout, settings); err != nil {
			if errors.Is(err, cli.ErrUsage) {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			log.Fatalf("%v", err)
		}
		return
	}

	repl.Run(ctx, svc, bufio.NewReader(os.Stdin), os.Stdout, settings)
}

// loadSeed fills empty stores from the configured seed file, or from the
// embedded demo data when seeding is enabled and no file is given.
func loadSeed(cfg config.LedgerConfig, ledger core.LedgerService, inventory core.InventoryService) error {
	var (
		data *seed.Data
		err  error
	)
	switch {
	case cfg.SeedFile != "":
		f, openErr := os.Open(cfg.SeedFile)
		if openErr != nil {
			return fmt.Errorf("open seed file: %w", openErr)
		}
		defer f.Close()
		data, err = seed.Parse(f)
	case cfg.SeedDemo:
		data, err = seed.Demo()
	default:
		return nil
	}
	if err != nil {
		return err
	}
	return seed.Apply(data, ledger, inventory)
}
