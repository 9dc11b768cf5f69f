package insight

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fin-tools/finsight/pkg/adapters"
	"github.com/fin-tools/finsight/pkg/models/api"
	"github.com/fin-tools/finsight/pkg/models/domain"
	storemodels "github.com/fin-tools/finsight/pkg/models/store"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Reasoner produces the KPI report for the latest two ledger periods.
type Reasoner interface {
	ReasonLatest(ctx context.Context) (*domain.ReasoningResult, error)
}

// Chat answers a free-form finance question.
type Chat interface {
	Handle(ctx context.Context, query string) (*domain.ChatReply, error)
}

// Alerts exposes nudge computation and the persisted alert set.
type Alerts interface {
	Nudges(ctx context.Context) ([]domain.Nudge, error)
	Evaluate(ctx context.Context) ([]storemodels.AlertRecord, error)
	Active(ctx context.Context) ([]storemodels.AlertRecord, error)
}

type Handler struct {
	company  domain.CompanyProfile
	reasoner Reasoner
	chat     Chat
	alerts   Alerts
}

func NewHandler(company domain.CompanyProfile, reasoner Reasoner, chat Chat, alerts Alerts) *Handler {
	return &Handler{
		company:  company,
		reasoner: reasoner,
		chat:     chat,
		alerts:   alerts,
	}
}

// resolveCompany checks the path parameter against the configured profile.
// The server hosts a single company per process, so anything else is a 404.
func (h *Handler) resolveCompany(w http.ResponseWriter, r *http.Request) bool {
	company := chi.URLParam(r, "company")
	if company != h.company.ID {
		http.Error(w, "unknown company", http.StatusNotFound)
		return false
	}
	return true
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	if !h.resolveCompany(w, r) {
		return
	}

	result, err := h.reasoner.ReasonLatest(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build report")
		http.Error(w, "failed to build report", http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(adapters.MapReasoningResultDomainToApi(result)); err != nil {
		logger.Error().Err(err).Msg("failed to encode report")
	}
}

func (h *Handler) PostChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	if !h.resolveCompany(w, r) {
		return
	}

	var req api.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Query == "" {
		http.Error(w, "query is required", http.StatusBadRequest)
		return
	}

	reply, err := h.chat.Handle(ctx, req.Query)
	if err != nil {
		logger.Error().Err(err).Str("query", req.Query).Msg("chat handling failed")
		http.Error(w, "failed to answer query", http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(adapters.MapChatReplyDomainToApi(reply)); err != nil {
		logger.Error().Err(err).Msg("failed to encode chat reply")
	}
}

func (h *Handler) GetNudges(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	if !h.resolveCompany(w, r) {
		return
	}

	nudges, err := h.alerts.Nudges(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to compute nudges")
		http.Error(w, "failed to compute nudges", http.StatusInternalServerError)
		return
	}

	response := api.NudgeList{CompanyID: h.company.ID, Nudges: make([]api.Nudge, 0, len(nudges))}
	for _, n := range nudges {
		response.Nudges = append(response.Nudges, adapters.MapNudgeDomainToApi(n))
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode nudges")
	}
}

func (h *Handler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	if !h.resolveCompany(w, r) {
		return
	}

	records, err := h.alerts.Active(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load alerts")
		http.Error(w, "failed to load alerts", http.StatusInternalServerError)
		return
	}

	h.writeAlerts(w, logger, records)
}

func (h *Handler) EvaluateAlerts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	if !h.resolveCompany(w, r) {
		return
	}

	records, err := h.alerts.Evaluate(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to evaluate alerts")
		http.Error(w, "failed to evaluate alerts", http.StatusInternalServerError)
		return
	}

	h.writeAlerts(w, logger, records)
}

func (h *Handler) writeAlerts(w http.ResponseWriter, logger *zerolog.Logger, records []storemodels.AlertRecord) {
	response := api.AlertList{CompanyID: h.company.ID, Alerts: make([]api.Alert, 0, len(records))}
	for _, rec := range records {
		response.Alerts = append(response.Alerts, adapters.MapAlertRecordStoreToApi(rec))
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode alerts")
	}
}
