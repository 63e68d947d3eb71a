package main

import (
	"context"
	"fmt"

	appinventory "github.com/stockroom/core/internal/application/inventory"
	"github.com/stockroom/core/internal/infrastructure/config"
	"github.com/stockroom/core/internal/infrastructure/eventbus"
	"github.com/stockroom/core/internal/infrastructure/id"
	"github.com/stockroom/core/internal/infrastructure/jsonstore"
	obsprovider "github.com/stockroom/core/internal/infrastructure/observability"
	"github.com/stockroom/core/internal/infrastructure/observability/oteltrace"
	"github.com/stockroom/core/internal/infrastructure/observability/prometrics"
	"github.com/stockroom/core/internal/infrastructure/observability/zaplogger"
	"github.com/stockroom/core/internal/infrastructure/watch"
	"github.com/stockroom/core/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := zaplogger.New(cfg.Logger.Level,
		observability.F("service", cfg.App.Name),
		observability.F("env", cfg.App.Environment),
	)
	if s, ok := logger.(interface{ Sync() error }); ok {
		defer func() { _ = s.Sync() }()
	}

	registry := prometrics.New(cfg.App.Name, "")
	counters := map[observability.MetricKey]observability.Counter{
		observability.MInventoryOps: registry.Counter(
			string(observability.MInventoryOps),
			"Total inventory operations.",
			"op", "outcome",
		),
		observability.MStoreOps: registry.Counter(
			string(observability.MStoreOps),
			"Total store load/save operations.",
			"op", "outcome",
		),
		observability.MLowStockChecks: registry.Counter(
			string(observability.MLowStockChecks),
			"Total low-stock checks.",
			"outcome",
		),
	}
	histograms := map[observability.MetricKey]observability.Histogram{
		observability.MInventoryOpDuration: registry.Histogram(
			string(observability.MInventoryOpDuration),
			"Duration of inventory operations in seconds.",
			nil,
			"op",
		),
		observability.MStoreOpDuration: registry.Histogram(
			string(observability.MStoreOpDuration),
			"Duration of store load/save operations in seconds.",
			nil,
			"op",
		),
	}
	tel := obsprovider.New(oteltrace.New(cfg.App.Name), logger, counters, histograms)

	ctx := context.Background()

	bus := eventbus.New(logger)
	bus.Start(ctx)
	defer bus.Stop(ctx)

	store := jsonstore.New(cfg.Store.Path)
	svc := appinventory.NewService(store, bus, id.NewUUIDGenerator(), tel)

	watcher := watch.New(bus, appinventory.NewCheckLowStockUseCase(svc, tel), cfg.Stock.LowStockThreshold, logger)
	watcher.Start()

	svc.Restore(ctx)

	_ = svc.AddStock(ctx, "apple", 10)
	_ = svc.AddStock(ctx, "banana", 15)

	// Exercises the boundary rejection path: quantities must be integers.
	_ = svc.AddStockValue(ctx, "cherry", "ten")

	_, _ = svc.RemoveStock(ctx, "apple", 3)
	_, _ = svc.RemoveStock(ctx, "orange", 1) // absent, warns only

	fmt.Println()
	fmt.Println(svc.Describe())
	fmt.Println()

	fmt.Printf("Apple stock: %d\n", svc.Quantity("apple"))
	fmt.Printf("Low items: %v\n", svc.LowItems(10))

	_ = svc.Persist(ctx)

	logger.Info("run_finished")
}
