// Command bms loads the persisted snapshot, wires the ledger to its
// persistence and reporting collaborators, and logs the business summary.
// The ledger itself is a library; forms and tooling link it directly.
package main

import (
	"github.com/nawiri/nawiri-bms/internal/application/ledger"
	"github.com/nawiri/nawiri-bms/internal/application/reports"
	"github.com/nawiri/nawiri-bms/internal/infrastructure/persistence"
	"github.com/nawiri/nawiri-bms/pkg/config"
	"github.com/nawiri/nawiri-bms/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting")

	store := persistence.NewFileStore(cfg.Storage.Dir, cfg.Storage.Blob)
	snap, err := store.Load()
	if err != nil {
		log.Fatal().Err(err).Str("path", store.Path()).Msg("load snapshot blob")
	}

	led := ledger.New(log, store)
	led.Restore(snap)

	summary := reports.NewService(led).Summary()
	log.Info().
		Str("path", store.Path()).
		Int("customers", summary.Customers).
		Int("products", summary.Products).
		Int("low_stock", len(summary.LowStock)).
		Str("total_sales", summary.TotalSales.String()).
		Str("total_expenses", summary.TotalExpenses.String()).
		Str("profit", summary.Profit.String()).
		Msg("ledger ready")
}
