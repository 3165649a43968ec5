package costs

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/auth"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/business"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/platform/httpx"
)

// Handler wires HTTP endpoints for fixed costs, nested under a business.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	bizs      *business.Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, bizs *business.Service) *Handler {
	return &Handler{logger: logger, service: service, bizs: bizs, validator: validator.New()}
}

// MountRoutes registers fixed cost routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleList)
	r.Post("/", h.handleCreate)
	r.Put("/{costID}", h.handleReplace)
	r.Delete("/{costID}", h.handleDelete)
}

// resolveBusiness enforces that the business exists and belongs to the
// session user before any cost operation touches it.
func (h *Handler) resolveBusiness(r *http.Request) (business.Business, error) {
	id, err := business.ParseID(r)
	if err != nil {
		return business.Business{}, err
	}
	return h.bizs.Get(r.Context(), auth.UserID(r), id)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	biz, err := h.resolveBusiness(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	items, err := h.service.List(r.Context(), biz.ID)
	if err != nil {
		h.logger.Error("list fixed costs", slog.Any("error", err), slog.Int64("business_id", biz.ID))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	biz, err := h.resolveBusiness(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	var input CreateItemInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "malformed request body")
		return
	}
	if err := h.validator.Struct(input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", err.Error())
		return
	}

	item, err := h.service.Create(r.Context(), biz.ID, input)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, item)
}

func (h *Handler) handleReplace(w http.ResponseWriter, r *http.Request) {
	biz, err := h.resolveBusiness(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	costID, err := strconv.ParseInt(chi.URLParam(r, "costID"), 10, 64)
	if err != nil || costID <= 0 {
		httpx.RespondError(w, httpx.ErrInvalidInput)
		return
	}
	var input CreateItemInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "malformed request body")
		return
	}
	if err := h.validator.Struct(input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", err.Error())
		return
	}

	item, err := h.service.Replace(r.Context(), biz.ID, costID, input)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	biz, err := h.resolveBusiness(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	costID, err := strconv.ParseInt(chi.URLParam(r, "costID"), 10, 64)
	if err != nil || costID <= 0 {
		httpx.RespondError(w, httpx.ErrInvalidInput)
		return
	}
	if err := h.service.Delete(r.Context(), biz.ID, costID); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
