package get_catalog

import (
	"errors"
	"net/http"

	"github.com/jazyl-tech/JZL-BookingService/internal/api/handlers"
	getCatalog "github.com/jazyl-tech/JZL-BookingService/internal/usecase/get_catalog"
)

const (
	msgMissingCategoryID = "ID категории обязателен"
	msgInvalidParams     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetCatalogUseCase
	logger  Logger
}

func NewHandler(useCase GetCatalogUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog/salons
// Query params: category_id (required), city, search, sort, page, per_page (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	categoryIDStr := query.Get("category_id")
	if categoryIDStr == "" {
		h.logger.Warn("GET /catalog/salons - Missing category ID")
		handlers.RespondBadRequest(w, msgMissingCategoryID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(
		categoryIDStr,
		query.Get("city"),
		query.Get("search"),
		query.Get("sort"),
		query.Get("page"),
		query.Get("per_page"),
	)
	if err != nil {
		h.logger.Warn("GET /catalog/salons - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, getCatalog.ErrInvalidInput) {
			h.logger.Warn("GET /catalog/salons - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /catalog/salons - Failed to get catalog: category_id=%s, error=%v",
			categoryIDStr, err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /catalog/salons - Catalog retrieved successfully: category_id=%s, total=%d, page=%d",
		categoryIDStr, result.Total, result.Page)
	handlers.RespondJSON(w, http.StatusOK, response)
}
