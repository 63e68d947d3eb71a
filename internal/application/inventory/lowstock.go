package inventory

import (
	"context"

	"github.com/stockroom/core/internal/observability"
)

// CheckLowStockUseCase produces the list of items at or below a threshold.
// It backs the low-stock watcher but is usable anywhere a point-in-time
// check is needed.
type CheckLowStockUseCase struct {
	svc    *Service
	checks observability.Counter
}

func NewCheckLowStockUseCase(svc *Service, tel observability.Observability) *CheckLowStockUseCase {
	if tel == nil {
		tel = observability.Nop()
	}
	return &CheckLowStockUseCase{
		svc:    svc,
		checks: tel.Metrics().Counter(observability.MLowStockChecks),
	}
}

func (uc *CheckLowStockUseCase) Execute(ctx context.Context, threshold int) ([]string, error) {
	_ = ctx

	low := uc.svc.LowItems(threshold)
	outcome := "ok"
	if len(low) > 0 {
		outcome = "low"
	}
	uc.checks.Add(1, observability.L("outcome", outcome))
	return low, nil
}
