package watch

import (
	"context"

	"github.com/stockroom/core/internal/application"
	domevent "github.com/stockroom/core/internal/domain/event"
	dominv "github.com/stockroom/core/internal/domain/inventory"
	"github.com/stockroom/core/internal/observability"
	"github.com/stockroom/core/internal/observability/logctx"
)

const watcherComponent = "low_stock_watcher"

// LowStockWatcher re-checks the low-stock list after every stock movement
// and warns when any item sits at or below the configured threshold.
type LowStockWatcher struct {
	subscriber domevent.Subscriber
	check      application.UseCase[int, []string]
	threshold  int
	log        observability.Logger
}

func New(
	subscriber domevent.Subscriber,
	check application.UseCase[int, []string],
	threshold int,
	logger observability.Logger,
) *LowStockWatcher {
	if logger == nil {
		logger = observability.NopLogger()
	}
	if threshold <= 0 {
		threshold = dominv.DefaultLowStockThreshold
	}
	return &LowStockWatcher{
		subscriber: subscriber,
		check:      check,
		threshold:  threshold,
		log:        logger.With(observability.F("component", watcherComponent)),
	}
}

func (w *LowStockWatcher) Start() {
	if w.subscriber == nil || w.check == nil {
		return
	}
	for _, name := range []string{
		dominv.StockAddedEvent{}.EventName(),
		dominv.StockRemovedEvent{}.EventName(),
		dominv.StockDepletedEvent{}.EventName(),
	} {
		w.subscriber.Subscribe(name, w.handleStockChanged)
	}
}

func (w *LowStockWatcher) handleStockChanged(ctx context.Context, e domevent.Event) error {
	logger := logctx.FromOr(ctx, w.log).With(
		observability.F("event", e.EventName()),
		observability.F("threshold", w.threshold),
	)

	low, err := w.check.Execute(ctx, w.threshold)
	if err != nil {
		return err
	}
	if len(low) > 0 {
		logger.Warn("low_stock_items", observability.F("items", low))
	}
	return nil
}
