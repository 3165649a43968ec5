package products

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

// Handler wires HTTP endpoints for products, nested under a business.
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

// MountRoutes registers product routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleList)
	r.Post("/", h.handleCreate)
	r.Get("/{productID}", h.handleGet)
	r.Put("/{productID}", h.handleReplace)
	r.Delete("/{productID}", h.handleDelete)
}

// MountAdditionalCostRoutes registers the business-wide variable cost routes.
func (h *Handler) MountAdditionalCostRoutes(r chi.Router) {
	r.Get("/", h.handleListAdditional)
	r.Post("/", h.handleCreateAdditional)
	r.Delete("/{costID}", h.handleDeleteAdditional)
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
	list, err := h.service.List(r.Context(), biz.ID)
	if err != nil {
		h.logger.Error("list products", slog.Any("error", err), slog.Int64("business_id", biz.ID))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	biz, err := h.resolveBusiness(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	var input CreateProductInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "malformed request body")
		return
	}
	if err := h.validator.Struct(input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", err.Error())
		return
	}

	created, err := h.service.Create(r.Context(), biz.ID, input)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
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
	product, err := h.service.Get(r.Context(), biz.ID, productID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) handleReplace(w http.ResponseWriter, r *http.Request) {
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
	var input CreateProductInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "malformed request body")
		return
	}
	if err := h.validator.Struct(input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", err.Error())
		return
	}

	updated, err := h.service.Replace(r.Context(), biz.ID, productID, input)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.service.Delete(r.Context(), biz.ID, productID); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListAdditional(w http.ResponseWriter, r *http.Request) {
	biz, err := h.resolveBusiness(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	list, err := h.service.ListAdditionalCosts(r.Context(), biz.ID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}

func (h *Handler) handleCreateAdditional(w http.ResponseWriter, r *http.Request) {
	biz, err := h.resolveBusiness(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	var input CreateAdditionalCostInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "malformed request body")
		return
	}
	if err := h.validator.Struct(input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", err.Error())
		return
	}

	created, err := h.service.CreateAdditionalCost(r.Context(), biz.ID, input)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) handleDeleteAdditional(w http.ResponseWriter, r *http.Request) {
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
	if err := h.service.DeleteAdditionalCost(r.Context(), biz.ID, costID); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
