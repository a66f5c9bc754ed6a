package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gestorx/vendas-api/internal/entity"
	"github.com/gestorx/vendas-api/internal/infra/http/handlers"
	"github.com/gestorx/vendas-api/internal/insights"
	"github.com/gestorx/vendas-api/internal/usecase"
)

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) FindByID(ctx context.Context, id string) (*entity.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindAll(ctx context.Context) ([]entity.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Sale), args.Error(1)
}

func (m *MockSaleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newSaleHandler(repo *MockSaleRepository) *handlers.SaleHandler {
	return handlers.NewSaleHandler(
		usecase.NewCreateSaleUseCase(repo, nil),
		usecase.NewUpdateSaleUseCase(repo, nil),
		usecase.NewListSalesUseCase(repo),
		repo,
	)
}

func TestHandleListParsesQueryFilters(t *testing.T) {
	repo := new(MockSaleRepository)
	repo.On("FindAll", mock.Anything).Return([]entity.Sale{
		{ID: "1", Stage: entity.StageFinalizado, Vendedor: "u1"},
		{ID: "2", Stage: entity.StageNegociar, Vendedor: "u1"},
		{ID: "3", Stage: entity.StageFinalizado, Vendedor: "u2"},
	}, nil)

	handler := newSaleHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/sales?stage=finalizado&vendedor=u1", nil)
	rec := httptest.NewRecorder()

	handler.HandleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var sales []entity.Sale
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&sales))
	assert.Len(t, sales, 1)
	assert.Equal(t, "1", sales[0].ID)
}

func TestHandleListEmptyResultIsJSONArray(t *testing.T) {
	repo := new(MockSaleRepository)
	repo.On("FindAll", mock.Anything).Return([]entity.Sale{}, nil)

	handler := newSaleHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/sales", nil)
	rec := httptest.NewRecorder()

	handler.HandleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestHandleCreateValidationError(t *testing.T) {
	repo := new(MockSaleRepository)
	handler := newSaleHandler(repo)

	body := strings.NewReader(`{"companyName":"","contactName":""}`)
	req := httptest.NewRequest(http.MethodPost, "/sales", body)
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandleCreateInvalidJSON(t *testing.T) {
	handler := newSaleHandler(new(MockSaleRepository))

	req := httptest.NewRequest(http.MethodPost, "/sales", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardMetricsEndpoint(t *testing.T) {
	repo := new(MockSaleRepository)
	repo.On("FindAll", mock.Anything).Return([]entity.Sale{
		{Stage: entity.StageFinalizado, Date: "15/03/2025"},
		{Stage: entity.StageFinalizado, Date: "20/02/2025"},
	}, nil)

	uc := usecase.NewDashboardUseCase(repo)
	uc.Now = func() time.Time {
		return time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	}
	handler := handlers.NewDashboardHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/metrics", nil)
	rec := httptest.NewRecorder()

	handler.HandleMetrics(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var m insights.Metrics
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&m))
	assert.Equal(t, 2, m.TotalClosed)
	assert.Equal(t, 1, m.ClosedThisMonth)
	assert.Equal(t, 0.0, m.GrowthPct)
}
