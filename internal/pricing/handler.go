package pricing

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/auth"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/business"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/platform/httpx"
)

// Handler exposes computed pricing records over HTTP.
type Handler struct {
	logger  *slog.Logger
	service *Service
	bizs    *business.Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, bizs *business.Service) *Handler {
	return &Handler{logger: logger, service: service, bizs: bizs}
}

// MountRoutes registers the full pricing record list.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleList)
}

// MountProductRoutes registers the per-product pricing routes alongside
// the product resource.
func (h *Handler) MountProductRoutes(r chi.Router) {
	r.Get("/{productID}/pricing", h.handleGet)
	r.Put("/{productID}/client-price", h.handleUpdateClientPrice)
}

func (h *Handler) resolveBusiness(r *http.Request) (business.Business, error) {
	id, err := business.ParseID(r)
	if err != nil {
		return business.Business{}, err
	}
	return h.bizs.Get(r.Context(), auth.UserID(r), id)
}

func parseProductID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, httpx.ErrInvalidInput
	}
	return id, nil
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	biz, err := h.resolveBusiness(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	records, err := h.service.Records(r.Context(), biz.ID)
	if err != nil {
		h.logger.Error("compute pricing records", slog.Any("error", err), slog.Int64("business_id", biz.ID))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, records)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	biz, err := h.resolveBusiness(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	productID, err := parseProductID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	record, err := h.service.ComputeProductPricing(r.Context(), biz.ID, productID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, record)
}

type clientPriceInput struct {
	ClientPrice float64 `json:"client_price"`
}

func (h *Handler) handleUpdateClientPrice(w http.ResponseWriter, r *http.Request) {
	biz, err := h.resolveBusiness(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	productID, err := parseProductID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	var input clientPriceInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "malformed request body")
		return
	}

	record, err := h.service.UpdateClientPrice(r.Context(), biz.ID, productID, input.ClientPrice)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, record)
}
