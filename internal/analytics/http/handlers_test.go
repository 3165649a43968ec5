package analytichttp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/analytics"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/business"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/costs"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/pricing"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/products"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/shared"
)

type fakeBizRepo struct {
	biz business.Business
}

func (f *fakeBizRepo) ListByOwner(ctx context.Context, ownerID int64) ([]business.Business, error) {
	return []business.Business{f.biz}, nil
}

func (f *fakeBizRepo) Get(ctx context.Context, ownerID, id int64) (business.Business, error) {
	return f.biz, nil
}

func (f *fakeBizRepo) Create(ctx context.Context, biz business.Business) (business.Business, error) {
	return biz, nil
}

func (f *fakeBizRepo) Update(ctx context.Context, ownerID, id int64, biz business.Business) (business.Business, error) {
	return biz, nil
}

func (f *fakeBizRepo) Delete(ctx context.Context, ownerID, id int64) error {
	return nil
}

type fakeCostRepo struct {
	items []costs.Item
}

func (f *fakeCostRepo) ListByBusiness(ctx context.Context, businessID int64) ([]costs.Item, error) {
	return f.items, nil
}

func (f *fakeCostRepo) Get(ctx context.Context, businessID, id int64) (costs.Item, error) {
	return costs.Item{}, nil
}

func (f *fakeCostRepo) Create(ctx context.Context, item costs.Item) (costs.Item, error) {
	return item, nil
}

func (f *fakeCostRepo) Replace(ctx context.Context, businessID, id int64, item costs.Item) (costs.Item, error) {
	return item, nil
}

func (f *fakeCostRepo) Delete(ctx context.Context, businessID, id int64) error {
	return nil
}

type fakeRecordSource struct {
	records  []pricing.Record
	overhead []products.AdditionalCost
}

func (f *fakeRecordSource) Records(ctx context.Context, businessID int64) ([]pricing.Record, error) {
	return f.records, nil
}

func (f *fakeRecordSource) Overhead(ctx context.Context, businessID int64) ([]products.AdditionalCost, error) {
	return f.overhead, nil
}

func newTestHandler(t *testing.T, biz business.Business, items []costs.Item, records []pricing.Record) *Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	costSvc := costs.NewService(&fakeCostRepo{items: items})
	analyticsSvc := analytics.NewService(&fakeRecordSource{records: records}, costSvc)
	bizSvc := business.NewService(&fakeBizRepo{biz: biz})
	return NewHandler(logger, analyticsSvc, bizSvc, costSvc)
}

func doRequest(handler *Handler, target string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Route("/businesses/{businessID}", func(r chi.Router) {
		handler.MountRoutes(r)
	})

	req := httptest.NewRequest(http.MethodGet, target, nil)
	sess := &shared.Session{}
	sess.SetUser("7")
	req = req.WithContext(shared.ContextWithSession(req.Context(), sess))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func testBusiness() business.Business {
	return business.Business{
		ID:                  1,
		OwnerID:             7,
		Name:                "Cafe Andina",
		Type:                business.TypeCafeteria,
		Zone:                "downtown",
		MonthlyCapacity:     400,
		ReferenceInvestment: 12000,
	}
}

func TestHandleBreakEven(t *testing.T) {
	items := []costs.Item{{Name: "Rent", Amount: 1000, Frequency: costs.FrequencyMonthly, Category: "rent"}}
	records := []pricing.Record{{ProductID: 1, CostTotal: 3, ClientPrice: 8, SuggestedPrice: 3.6}}
	handler := newTestHandler(t, testBusiness(), items, records)

	rec := doRequest(handler, "/businesses/1/break-even")
	require.Equal(t, http.StatusOK, rec.Code)

	var vm BreakEvenVM
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vm))
	require.False(t, vm.Undefined)
	require.NotNil(t, vm.Units)
	require.Equal(t, 200.0, *vm.Units)
	require.NotNil(t, vm.Revenue)
	require.Equal(t, 1600.0, *vm.Revenue)
}

func TestHandleBreakEvenUndefinedRendersNullUnits(t *testing.T) {
	items := []costs.Item{{Name: "Rent", Amount: 1000, Frequency: costs.FrequencyMonthly, Category: "rent"}}
	// Selling price below unit cost: no positive contribution margin.
	records := []pricing.Record{{ProductID: 1, CostTotal: 8, ClientPrice: 3}}
	handler := newTestHandler(t, testBusiness(), items, records)

	rec := doRequest(handler, "/businesses/1/break-even")
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.JSONEq(t, "true", string(raw["undefined"]))
	require.JSONEq(t, "null", string(raw["units"]))
	require.JSONEq(t, "null", string(raw["revenue"]))
}

func TestHandleBreakEvenRejectsNegativeTarget(t *testing.T) {
	handler := newTestHandler(t, testBusiness(), nil, nil)

	rec := doRequest(handler, "/businesses/1/break-even?target_profit=-50")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDashboard(t *testing.T) {
	items := []costs.Item{{Name: "Rent", Amount: 400, Frequency: costs.FrequencyMonthly, Category: "rent"}}
	records := []pricing.Record{{ProductID: 1, CostTotal: 4, ClientPrice: 6, SuggestedPrice: 4.8, MarginReal: 33.33}}
	handler := newTestHandler(t, testBusiness(), items, records)

	rec := doRequest(handler, "/businesses/1/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)

	var vm DashboardVM
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vm))
	require.Equal(t, 1, vm.Summary.ProductCount)
	require.NotEmpty(t, vm.Findings, "downtown rent of 400 sits below the market floor")
	require.NotEmpty(t, vm.Missing, "a cafeteria with only rent is missing essentials")
}

func TestHandleSummaryExportCSV(t *testing.T) {
	records := []pricing.Record{{ProductID: 1, ProductName: "Latte", CostTotal: 2, ClientPrice: 4}}
	handler := newTestHandler(t, testBusiness(), nil, records)

	rec := doRequest(handler, "/businesses/1/summary/export")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	require.Contains(t, rec.Header().Get("Content-Disposition"), "summary-cafe-andina.csv")
	require.Contains(t, rec.Body.String(), "Metric,Value")
}
