package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fin-tools/finsight/pkg/models/api"
	"github.com/fin-tools/finsight/pkg/models/domain"
	storemodels "github.com/fin-tools/finsight/pkg/models/store"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockReasoner struct {
	mock.Mock
}

func (m *mockReasoner) ReasonLatest(ctx context.Context) (*domain.ReasoningResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReasoningResult), args.Error(1)
}

type mockChat struct {
	mock.Mock
}

func (m *mockChat) Handle(ctx context.Context, query string) (*domain.ChatReply, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatReply), args.Error(1)
}

type mockAlerts struct {
	mock.Mock
}

func (m *mockAlerts) Nudges(ctx context.Context) ([]domain.Nudge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Nudge), args.Error(1)
}

func (m *mockAlerts) Evaluate(ctx context.Context) ([]storemodels.AlertRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storemodels.AlertRecord), args.Error(1)
}

func (m *mockAlerts) Active(ctx context.Context) ([]storemodels.AlertRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storemodels.AlertRecord), args.Error(1)
}

var testCompany = domain.CompanyProfile{ID: "acme", Name: "Acme", Currency: "₹"}

func withCompanyParam(req *http.Request, company string) *http.Request {
	ctx := chi.NewRouteContext()
	ctx.URLParams.Add("company", company)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, ctx))
}

func TestGetReport(t *testing.T) {
	runway := 4.2
	tests := []struct {
		name           string
		company        string
		setupMock      func(*mockReasoner)
		expectedStatus int
	}{
		{
			name:    "successful response",
			company: "acme",
			setupMock: func(m *mockReasoner) {
				m.On("ReasonLatest", mock.Anything).Return(&domain.ReasoningResult{
					Kpis: domain.KpiSnapshot{
						PeriodCurrent:  "2025-06",
						PeriodPrevious: "2025-05",
						Burn:           domain.MoneyPair{Current: 440000, Previous: 400000},
						Revenue:        domain.RevenueKpi{Current: 300000, Previous: 280000, GrowthPct: 0.0714},
						ProfitLoss:     domain.ProfitLoss{Amount: -140000, Status: domain.ProfitStatusLoss},
						CashBalance:    700000,
						RunwayMonths:   &runway,
					},
					Causes:      []string{"Burn rose because Payroll grew."},
					Predictions: []string{"At the current burn rate, runway is about 4.2 months."},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown company",
			company:        "other",
			setupMock:      func(m *mockReasoner) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:    "reasoner failure",
			company: "acme",
			setupMock: func(m *mockReasoner) {
				m.On("ReasonLatest", mock.Anything).Return(nil, fmt.Errorf("ledger unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reasoner := new(mockReasoner)
			tt.setupMock(reasoner)
			handler := NewHandler(testCompany, reasoner, new(mockChat), new(mockAlerts))

			req := httptest.NewRequest("GET", "/companies/"+tt.company+"/report", nil)
			req = withCompanyParam(req, tt.company)
			rec := httptest.NewRecorder()

			handler.GetReport(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var response api.ReasoningResult
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, "2025-06", response.Kpis.PeriodCurrent)
				assert.Equal(t, []string{"Burn rose because Payroll grew."}, response.Causes)
			}
			reasoner.AssertExpectations(t)
		})
	}
}

func TestPostChat(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mockChat)
		expectedStatus int
		expectedAnswer string
	}{
		{
			name: "successful response",
			body: `{"query": "what's our runway?"}`,
			setupMock: func(m *mockChat) {
				m.On("Handle", mock.Anything, "what's our runway?").Return(&domain.ChatReply{
					Answer: "Runway is 4.2 months at the current burn rate.",
					Intent: domain.IntentRunway,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedAnswer: "Runway is 4.2 months at the current burn rate.",
		},
		{
			name:           "missing query",
			body:           `{}`,
			setupMock:      func(m *mockChat) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{not json`,
			setupMock:      func(m *mockChat) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chatSvc := new(mockChat)
			tt.setupMock(chatSvc)
			handler := NewHandler(testCompany, new(mockReasoner), chatSvc, new(mockAlerts))

			req := httptest.NewRequest("POST", "/companies/acme/chat", strings.NewReader(tt.body))
			req = withCompanyParam(req, "acme")
			rec := httptest.NewRecorder()

			handler.PostChat(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var response api.ChatReply
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, tt.expectedAnswer, response.Answer)
				assert.Equal(t, "runway", response.Intent)
			}
			chatSvc.AssertExpectations(t)
		})
	}
}

func TestGetNudges(t *testing.T) {
	alerts := new(mockAlerts)
	alerts.On("Nudges", mock.Anything).Return([]domain.Nudge{
		{Severity: domain.SeverityHigh, Message: "Runway under 3 months (2.50). Immediate action required."},
	}, nil)
	handler := NewHandler(testCompany, new(mockReasoner), new(mockChat), alerts)

	req := httptest.NewRequest("GET", "/companies/acme/nudges", nil)
	req = withCompanyParam(req, "acme")
	rec := httptest.NewRecorder()

	handler.GetNudges(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var response api.NudgeList
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "acme", response.CompanyID)
	assert.Len(t, response.Nudges, 1)
	assert.Equal(t, api.SeverityHigh, response.Nudges[0].Severity)
	alerts.AssertExpectations(t)
}

func TestEvaluateAlerts(t *testing.T) {
	createdAt := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	alerts := new(mockAlerts)
	alerts.On("Evaluate", mock.Anything).Return([]storemodels.AlertRecord{
		{ID: "a1", CompanyID: "acme", Severity: "medium", Message: "Runway under 6 months (4.20). Consider cost controls.", CreatedAt: createdAt},
	}, nil)
	handler := NewHandler(testCompany, new(mockReasoner), new(mockChat), alerts)

	req := httptest.NewRequest("POST", "/companies/acme/alerts/evaluate", nil)
	req = withCompanyParam(req, "acme")
	rec := httptest.NewRecorder()

	handler.EvaluateAlerts(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var response api.AlertList
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "acme", response.CompanyID)
	assert.Len(t, response.Alerts, 1)
	assert.Equal(t, "a1", response.Alerts[0].ID)
	assert.Equal(t, createdAt, response.Alerts[0].CreatedAt)
	alerts.AssertExpectations(t)
}
