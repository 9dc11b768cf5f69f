package alerts

import (
	"context"
	"time"

	"github.com/fin-tools/finsight/pkg/models/domain"
	storemodels "github.com/fin-tools/finsight/pkg/models/store"
	"github.com/fin-tools/finsight/pkg/services/nudge"
	"github.com/fin-tools/finsight/pkg/services/snapshot"
	alertstore "github.com/fin-tools/finsight/pkg/store/alert"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultInterval is the scheduler cadence for alert refresh.
const DefaultInterval = 24 * time.Hour

// Reasoner is the slice of the reasoning orchestrator the controller needs.
type Reasoner interface {
	ReasonLatest(ctx context.Context) (*domain.ReasoningResult, error)
}

// Controller evaluates threshold nudges for one company and persists them
// through the injected alert store.
type Controller struct {
	company   domain.CompanyProfile
	reasoner  Reasoner
	accessor  snapshot.Accessor
	generator *nudge.Generator
	store     alertstore.Store
}

func NewController(
	company domain.CompanyProfile,
	reasoner Reasoner,
	accessor snapshot.Accessor,
	generator *nudge.Generator,
	store alertstore.Store,
) *Controller {
	return &Controller{
		company:   company,
		reasoner:  reasoner,
		accessor:  accessor,
		generator: generator,
		store:     store,
	}
}

// Nudges computes the current nudge list without persisting anything.
func (c *Controller) Nudges(ctx context.Context) ([]domain.Nudge, error) {
	result, err := c.reasoner.ReasonLatest(ctx)
	if err != nil {
		return nil, err
	}
	receivables, err := c.accessor.Receivables(ctx)
	if err != nil {
		return nil, err
	}
	return c.generator.Generate(result.Kpis, receivables), nil
}

// Evaluate recomputes the active alert set and replaces whatever was stored
// for the company before. Idempotent; safe to re-run on a schedule.
func (c *Controller) Evaluate(ctx context.Context) ([]storemodels.AlertRecord, error) {
	nudges, err := c.Nudges(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	records := make([]storemodels.AlertRecord, 0, len(nudges))
	for _, n := range nudges {
		records = append(records, storemodels.AlertRecord{
			ID:        uuid.NewString(),
			CompanyID: c.company.ID,
			Severity:  string(n.Severity),
			Message:   n.Message,
			CreatedAt: now,
		})
	}

	if err := c.store.Replace(ctx, c.company.ID, records); err != nil {
		return nil, err
	}
	return records, nil
}

// Active returns the stored alert set from the last evaluation.
func (c *Controller) Active(ctx context.Context) ([]storemodels.AlertRecord, error) {
	return c.store.Active(ctx, c.company.ID)
}

// Run evaluates immediately, then on every interval tick until the context
// is cancelled. Each evaluation is independent, so the loop is restartable
// at any point.
func (c *Controller) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	logger := zerolog.Ctx(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if records, err := c.Evaluate(ctx); err != nil {
			logger.Error().Err(err).Str("company", c.company.ID).Msg("alert evaluation failed")
		} else {
			logger.Info().Int("alerts", len(records)).Str("company", c.company.ID).Msg("alerts refreshed")
		}

		select {
		case <-ctx.Done():
			logger.Info().Msg("alert scheduler stopped")
			return
		case <-ticker.C:
		}
	}
}
