package marketcheck

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/auth"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/business"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/costs"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/platform/httpx"
)

// Handler serves advisory cost validations, nested under a business.
type Handler struct {
	logger    *slog.Logger
	costs     *costs.Service
	bizs      *business.Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, costService *costs.Service, bizs *business.Service) *Handler {
	return &Handler{logger: logger, costs: costService, bizs: bizs, validator: validator.New()}
}

// MountRoutes registers validation routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/validate", h.handleValidate)
	r.Get("/missing", h.handleMissing)
}

// handleValidate checks a candidate cost entry against the market-range
// table before the user saves it. The check never blocks persistence.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	biz, err := h.resolveBusiness(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	var input costs.CreateItemInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "malformed request body")
		return
	}
	if err := h.validator.Struct(input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", err.Error())
		return
	}

	findings := ValidateCost(costs.Item{
		Name:      input.Name,
		Amount:    input.Amount,
		Frequency: input.Frequency,
		Category:  input.Category,
	}, biz.Zone)
	httpx.JSON(w, http.StatusOK, findings)
}

// handleMissing reports essential cost categories the business has not
// entered yet.
func (h *Handler) handleMissing(w http.ResponseWriter, r *http.Request) {
	biz, err := h.resolveBusiness(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	items, err := h.costs.List(r.Context(), biz.ID)
	if err != nil {
		h.logger.Error("list fixed costs", slog.Any("error", err), slog.Int64("business_id", biz.ID))
		httpx.RespondError(w, err)
		return
	}
	missing := DetectMissing(biz.Type, items)
	if missing == nil {
		missing = []MissingCost{}
	}
	httpx.JSON(w, http.StatusOK, missing)
}

func (h *Handler) resolveBusiness(r *http.Request) (business.Business, error) {
	id, err := business.ParseID(r)
	if err != nil {
		return business.Business{}, err
	}
	return h.bizs.Get(r.Context(), auth.UserID(r), id)
}
