package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"holdings-backend/internal/services"
)

type ValuationHandler struct {
	service services.ValuationService
	logger  *zap.Logger
}

func NewValuationHandler(service services.ValuationService, logger *zap.Logger) *ValuationHandler {
	return &ValuationHandler{service: service, logger: logger}
}

// HandleStockValue handles GET /stock-value/{id}
// @Summary Current value of one holding
// @Description Fetch the live quote for the holding's symbol and compute quote × shares
// @Tags valuation
// @Produce json
// @Param id path string true "Holding ID"
// @Success 200 {object} models.StockValue
// @Failure 404 {string} string "Not found"
// @Failure 500 {object} map[string]string
// @Router /stock-value/{id} [get]
func (h *ValuationHandler) HandleStockValue(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := mux.Vars(r)["id"]

	value, err := h.service.GetStockValue(r.Context(), id)
	if err != nil {
		writeServerError(w, h.logger, "stock value", err)
		return
	}
	if value == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, value)
}

// HandlePortfolioValue handles GET /portfolio-value
// @Summary Aggregate portfolio value
// @Description Query the pricing API once per holding, serially, and sum the results
// @Tags valuation
// @Produce json
// @Success 200 {object} models.PortfolioValue
// @Failure 500 {object} map[string]string
// @Router /portfolio-value [get]
func (h *ValuationHandler) HandlePortfolioValue(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	value, err := h.service.GetPortfolioValue(r.Context())
	if err != nil {
		writeServerError(w, h.logger, "portfolio value", err)
		return
	}

	writeJSON(w, http.StatusOK, value)
}
