package inventory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	domevent "github.com/stockroom/core/internal/domain/event"
	dominv "github.com/stockroom/core/internal/domain/inventory"
	"github.com/stockroom/core/internal/observability"
	"github.com/stockroom/core/internal/observability/logctx"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	stockService = "inventory-service"
	spanPrefix   = "Stock."

	opAdd     = "add"
	opRemove  = "remove"
	opRestore = "restore"
	opPersist = "persist"
)

// Store loads and saves the persisted inventory.
type Store interface {
	Load(ctx context.Context) (dominv.Inventory, error)
	Save(ctx context.Context, inv dominv.Inventory) error
}

// IDGenerator supplies identifiers for journal entries.
type IDGenerator interface {
	NewID() string
}

// Service owns the in-memory inventory and journal, applies stock
// operations, and emits the per-operation signals: structured logs, metrics,
// spans, and domain events. The mutex exists only for decoupled observers
// (the event bus fans out on other goroutines); callers of the mutating API
// are expected to be a single owner.
type Service struct {
	mu        sync.RWMutex
	inv       dominv.Inventory
	journal   *dominv.Journal
	store     Store
	publisher domevent.Publisher
	ids       IDGenerator

	log         observability.Logger
	tracer      observability.Tracer
	opCounter   observability.Counter
	opHistogram observability.Histogram
	ioCounter   observability.Counter
	ioHistogram observability.Histogram
}

func NewService(store Store, publisher domevent.Publisher, ids IDGenerator, tel observability.Observability) *Service {
	if tel == nil {
		tel = observability.Nop()
	}
	metrics := tel.Metrics()
	return &Service{
		inv:         dominv.New(),
		journal:     dominv.NewJournal(),
		store:       store,
		publisher:   publisher,
		ids:         ids,
		log:         tel.Logger().With(observability.F("service", stockService)),
		tracer:      tel.Tracer(),
		opCounter:   metrics.Counter(observability.MInventoryOps),
		opHistogram: metrics.Histogram(observability.MInventoryOpDuration),
		ioCounter:   metrics.Counter(observability.MStoreOps),
		ioHistogram: metrics.Histogram(observability.MStoreOpDuration),
	}
}

// AddStock increases the stock of name by qty and records a journal entry.
// An empty name is rejected at warn severity; the inventory is untouched.
func (s *Service) AddStock(ctx context.Context, name string, qty int) (err error) {
	ctx, span := s.tracer.Start(ctx, spanPrefix+"Add",
		attribute.String("item.name", name),
		attribute.Int("item.quantity", qty),
	)
	start := time.Now()
	outcome := "success"
	defer func() { s.finish(span, opAdd, outcome, start, err) }()

	logger := logctx.FromOr(ctx, s.log).With(
		observability.F("op", opAdd),
		observability.F("item", name),
		observability.F("quantity", qty),
	)

	s.mu.Lock()
	if err = s.inv.Add(name, qty); err != nil {
		s.mu.Unlock()
		outcome = "rejected"
		logger.Warn("add_skipped_no_item_name")
		return err
	}
	total := s.inv.QuantityOf(name)
	s.journal.Append(s.newID(), fmt.Sprintf("Added %d of %s", qty, name))
	s.mu.Unlock()

	logger.Info("stock_added", observability.F("total", total))
	s.publish(ctx, logger, dominv.NewStockAddedEvent(name, qty, total))
	return nil
}

// AddStockValue is the untyped boundary form of AddStock: qty arrives as an
// arbitrary decoded value and is coerced before any mutation. Non-integer
// quantities are rejected at error severity; the inventory is untouched.
func (s *Service) AddStockValue(ctx context.Context, name string, qty any) error {
	n, err := dominv.AsQuantity(qty)
	if err != nil {
		logctx.FromOr(ctx, s.log).Error("add_rejected_bad_quantity",
			observability.F("op", opAdd),
			observability.F("item", name),
			observability.F("quantity", fmt.Sprintf("%v", qty)),
			observability.F("error", err.Error()),
		)
		s.opCounter.Add(1,
			observability.L("op", opAdd),
			observability.L("outcome", "rejected"),
		)
		return err
	}
	return s.AddStock(ctx, name, n)
}

// RemoveStock decreases the stock of name by qty. An absent item is a warn
// no-op; a non-positive qty is an error no-op. When the removal depletes the
// item it is deleted and the depletion is logged; a plain decrement is
// silent beyond debug level.
func (s *Service) RemoveStock(ctx context.Context, name string, qty int) (res dominv.Removal, err error) {
	ctx, span := s.tracer.Start(ctx, spanPrefix+"Remove",
		attribute.String("item.name", name),
		attribute.Int("item.quantity", qty),
	)
	start := time.Now()
	outcome := "success"
	defer func() { s.finish(span, opRemove, outcome, start, err) }()

	logger := logctx.FromOr(ctx, s.log).With(
		observability.F("op", opRemove),
		observability.F("item", name),
		observability.F("quantity", qty),
	)

	s.mu.Lock()
	res, err = s.inv.Remove(name, qty)
	s.mu.Unlock()
	if err != nil {
		outcome = "rejected"
		switch {
		case errors.Is(err, dominv.ErrNotFound):
			logger.Warn("remove_skipped_not_found")
		default:
			logger.Error("remove_rejected_bad_quantity",
				observability.F("error", err.Error()),
			)
		}
		return res, err
	}

	if res.Depleted {
		logger.Info("item_depleted")
		s.publish(ctx, logger, dominv.NewStockDepletedEvent(name, qty))
		return res, nil
	}

	logger.Debug("stock_removed", observability.F("remaining", res.Remaining))
	s.publish(ctx, logger, dominv.NewStockRemovedEvent(name, qty, res.Remaining))
	return res, nil
}

// Quantity returns the stored quantity of name, or 0 when absent.
func (s *Service) Quantity(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inv.QuantityOf(name)
}

// LowItems returns the items at or below threshold, sorted by name.
func (s *Service) LowItems(threshold int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inv.LowStock(threshold)
}

// Describe renders the line-per-item report.
func (s *Service) Describe() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inv.Report()
}

// Snapshot returns an independent copy of the current inventory.
func (s *Service) Snapshot() dominv.Inventory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inv.Clone()
}

// Journal returns the recorded add entries in append order.
func (s *Service) Journal() []dominv.JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.journal.Entries()
}

// Restore replaces the in-memory inventory with the persisted one. A missing
// file starts empty at warn severity, malformed content starts empty at
// error severity; neither is surfaced to the caller.
func (s *Service) Restore(ctx context.Context) {
	start := time.Now()
	logger := logctx.FromOr(ctx, s.log).With(observability.F("op", opRestore))

	loaded, err := s.store.Load(ctx)
	outcome := "success"
	switch {
	case err == nil:
		logger.Info("inventory_loaded", observability.F("items", len(loaded)))
	case errors.Is(err, os.ErrNotExist):
		outcome = "missing"
		logger.Warn("store_file_missing_starting_empty",
			observability.F("error", err.Error()),
		)
	default:
		outcome = "corrupt"
		logger.Error("store_file_unreadable_starting_empty",
			observability.F("error", err.Error()),
		)
	}

	s.mu.Lock()
	s.inv = loaded
	s.mu.Unlock()

	s.ioCounter.Add(1,
		observability.L("op", opRestore),
		observability.L("outcome", outcome),
	)
	s.ioHistogram.Observe(time.Since(start).Seconds(),
		observability.L("op", opRestore),
	)
}

// Persist writes the current inventory to the store, overwriting the prior
// file. Failures are logged at error severity and returned; the in-memory
// state is unaffected either way.
func (s *Service) Persist(ctx context.Context) error {
	start := time.Now()
	logger := logctx.FromOr(ctx, s.log).With(observability.F("op", opPersist))

	snapshot := s.Snapshot()
	err := s.store.Save(ctx, snapshot)
	outcome := "success"
	if err != nil {
		outcome = "error"
		logger.Error("inventory_save_failed",
			observability.F("error", err.Error()),
		)
	} else {
		logger.Info("inventory_saved", observability.F("items", len(snapshot)))
	}

	s.ioCounter.Add(1,
		observability.L("op", opPersist),
		observability.L("outcome", outcome),
	)
	s.ioHistogram.Observe(time.Since(start).Seconds(),
		observability.L("op", opPersist),
	)
	return err
}

func (s *Service) publish(ctx context.Context, logger observability.Logger, e domevent.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		logger.Warn("event_publish_failed",
			observability.F("event", e.EventName()),
			observability.F("error", err.Error()),
		)
	}
}

func (s *Service) newID() string {
	if s.ids == nil {
		return ""
	}
	return s.ids.NewID()
}

func (s *Service) finish(span trace.Span, op, outcome string, start time.Time, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	} else {
		span.SetStatus(codes.Ok, outcome)
	}
	span.End()

	s.opCounter.Add(1,
		observability.L("op", op),
		observability.L("outcome", outcome),
	)
	s.opHistogram.Observe(time.Since(start).Seconds(),
		observability.L("op", op),
	)
}
