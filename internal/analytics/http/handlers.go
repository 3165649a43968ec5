package analytichttp

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"golang.org/x/sync/errgroup"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/analytics"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/analytics/export"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/auth"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/business"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/costs"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/marketcheck"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/platform/httpx"
)

// Handler serves the aggregated business figures: summary, break-even
// analysis, the combined dashboard and the CSV export.
type Handler struct {
	logger    *slog.Logger
	service   *analytics.Service
	bizs      *business.Service
	fixed     *costs.Service
	rateLimit func(http.Handler) http.Handler
}

// NewHandler constructs the analytics HTTP handler.
func NewHandler(logger *slog.Logger, service *analytics.Service, bizs *business.Service, fixed *costs.Service) *Handler {
	limiter := httprate.Limit(10, time.Minute, httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
		if id := auth.UserID(r); id > 0 {
			return "user:" + strconv.FormatInt(id, 10), nil
		}
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return "ip:" + r.RemoteAddr, nil
		}
		return "ip:" + host, nil
	}))
	return &Handler{logger: logger, service: service, bizs: bizs, fixed: fixed, rateLimit: limiter}
}

// MountRoutes registers the analytics endpoints nested under a business.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/summary", h.HandleSummary)
	r.Get("/break-even", h.HandleBreakEven)
	r.Get("/dashboard", h.HandleDashboard)
	r.Group(func(r chi.Router) {
		r.Use(h.rateLimit)
		r.Get("/summary/export", h.HandleExportCSV)
	})
}

func (h *Handler) resolveBusiness(r *http.Request) (business.Business, error) {
	id, err := business.ParseID(r)
	if err != nil {
		return business.Business{}, err
	}
	return h.bizs.Get(r.Context(), auth.UserID(r), id)
}

// HandleSummary returns the aggregated cost and revenue totals. Concurrent
// requests for the same business share a single computation.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	biz, err := h.resolveBusiness(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	key := fmt.Sprintf("summary:%d", biz.ID)
	result, err, _ := singleflightSummary(r.Context(), key, func(ctx context.Context) (interface{}, error) {
		return h.service.Summary(ctx, biz.ID)
	})
	if err != nil {
		h.logger.Error("build summary", slog.Any("error", err), slog.Int64("business_id", biz.ID))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result.(analytics.Summary))
}

// HandleBreakEven runs the break-even analysis. An optional target_profit
// query parameter switches to the target-profit mode.
func (h *Handler) HandleBreakEven(w http.ResponseWriter, r *http.Request) {
	biz, err := h.resolveBusiness(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	targetProfit, err := parseTargetProfit(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "target_profit must be a non-negative number")
		return
	}
	result, err := h.service.BreakEven(r.Context(), biz, targetProfit)
	if err != nil {
		h.logger.Error("break-even analysis", slog.Any("error", err), slog.Int64("business_id", biz.ID))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, FromBreakEven(result))
}

// HandleDashboard fetches the summary, break-even analysis and market
// findings concurrently and returns them in one payload.
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	biz, err := h.resolveBusiness(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	var vm DashboardVM
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		summary, err := h.service.Summary(ctx, biz.ID)
		if err != nil {
			return err
		}
		vm.Summary = summary
		return nil
	})

	g.Go(func() error {
		result, err := h.service.BreakEven(ctx, biz, 0)
		if err != nil {
			return err
		}
		vm.BreakEven = FromBreakEven(result)
		return nil
	})

	g.Go(func() error {
		items, err := h.fixed.List(ctx, biz.ID)
		if err != nil {
			return err
		}
		findings := marketcheck.ValidateAll(items, biz.Zone)
		if findings == nil {
			findings = []marketcheck.Finding{}
		}
		missing := marketcheck.DetectMissing(biz.Type, items)
		if missing == nil {
			missing = []marketcheck.MissingCost{}
		}
		vm.Findings = findings
		vm.Missing = missing
		return nil
	})

	if err := g.Wait(); err != nil {
		h.logger.Error("build dashboard", slog.Any("error", err), slog.Int64("business_id", biz.ID))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, vm)
}

// HandleExportCSV streams the business summary as a CSV download.
func (h *Handler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	biz, err := h.resolveBusiness(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	summary, err := h.service.Summary(r.Context(), biz.ID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	filename := exportFilename(biz.Name)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := export.WriteSummaryCSV(w, biz.Name, summary); err != nil {
		h.logger.Error("write summary csv", slog.Any("error", err), slog.Int64("business_id", biz.ID))
	}
}

func parseTargetProfit(r *http.Request) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("target_profit"))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return 0, httpx.ErrInvalidInput
	}
	return value, nil
}

func exportFilename(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "business"
	}
	return "summary-" + slug + ".csv"
}
