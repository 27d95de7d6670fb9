package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"holdings-backend/internal/models"
	"holdings-backend/internal/services"
)

type HoldingHandler struct {
	service services.HoldingService
	logger  *zap.Logger
}

func NewHoldingHandler(service services.HoldingService, logger *zap.Logger) *HoldingHandler {
	return &HoldingHandler{service: service, logger: logger}
}

// HandleHoldings handles collection-level operations for holdings.
// @Summary List, filter or create holdings
// @Description Get all holdings (optionally filtered by exact match) or create a new one
// @Tags stocks
// @Accept json
// @Produce json
// @Param symbol query string false "Exact symbol"
// @Param name query string false "Exact name"
// @Param purchase_price query number false "Exact purchase price"
// @Param purchase_date query string false "Exact purchase date"
// @Param shares query int false "Exact share count"
// @Success 200 {array} models.Holding
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /stocks [get]
// @Router /stocks [post]
func (h *HoldingHandler) HandleHoldings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case http.MethodGet:
		h.listHoldings(w, r)
	case http.MethodPost:
		h.createHolding(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleHolding handles item-level operations for a holding.
// @Summary Get, update, or delete a holding
// @Description Operate on a single holding by ID
// @Tags stocks
// @Accept json
// @Produce json
// @Param id path string true "Holding ID"
// @Success 200 {object} models.Holding
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /stocks/{id} [get]
// @Router /stocks/{id} [put]
// @Router /stocks/{id} [delete]
func (h *HoldingHandler) HandleHolding(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id := mux.Vars(r)["id"]
	if id == "" {
		writeMalformed(w)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.getHolding(w, r, id)
	case http.MethodPut:
		h.updateHolding(w, r, id)
	case http.MethodDelete:
		h.deleteHolding(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *HoldingHandler) createHolding(w http.ResponseWriter, r *http.Request) {
	var holding models.Holding
	if err := json.NewDecoder(r.Body).Decode(&holding); err != nil {
		writeMalformed(w)
		return
	}

	if !holding.IsPostValid() {
		writeMalformed(w)
		return
	}

	// Symbol uniqueness is checked here with a full scan, not in the
	// store. Two concurrent creates with the same symbol can both pass;
	// that race is accepted.
	existing, err := h.service.ListHoldings(r.Context())
	if err != nil {
		writeServerError(w, h.logger, "create holding", err)
		return
	}
	for _, e := range existing {
		if e.Symbol == holding.Symbol {
			writeMalformed(w)
			return
		}
	}

	id, err := h.service.CreateHolding(r.Context(), &holding)
	if err != nil {
		writeServerError(w, h.logger, "create holding", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *HoldingHandler) listHoldings(w http.ResponseWriter, r *http.Request) {
	filter := &models.HoldingFilter{}

	if symbol := r.URL.Query().Get("symbol"); symbol != "" {
		filter.Symbol = &symbol
	}
	if name := r.URL.Query().Get("name"); name != "" {
		filter.Name = &name
	}
	if priceStr := r.URL.Query().Get("purchase_price"); priceStr != "" {
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			writeMalformed(w)
			return
		}
		filter.PurchasePrice = &price
	}
	if date := r.URL.Query().Get("purchase_date"); date != "" {
		filter.PurchaseDate = &date
	}
	if sharesStr := r.URL.Query().Get("shares"); sharesStr != "" {
		shares, err := strconv.ParseInt(sharesStr, 10, 64)
		if err != nil {
			writeMalformed(w)
			return
		}
		filter.Shares = &shares
	}

	var holdings []*models.Holding
	var err error
	if filter.IsEmpty() {
		holdings, err = h.service.ListHoldings(r.Context())
	} else {
		holdings, err = h.service.ListHoldingsWithFilter(r.Context(), filter)
	}
	if err != nil {
		writeServerError(w, h.logger, "list holdings", err)
		return
	}

	if holdings == nil {
		holdings = []*models.Holding{}
	}
	writeJSON(w, http.StatusOK, holdings)
}

func (h *HoldingHandler) getHolding(w http.ResponseWriter, r *http.Request, id string) {
	holding, err := h.service.GetHolding(r.Context(), id)
	if err != nil {
		writeServerError(w, h.logger, "get holding", err)
		return
	}
	if holding == nil {
		writeNotFound(w)
		return
	}

	writeJSON(w, http.StatusOK, holding)
}

func (h *HoldingHandler) updateHolding(w http.ResponseWriter, r *http.Request, id string) {
	var holding models.Holding
	if err := json.NewDecoder(r.Body).Decode(&holding); err != nil {
		writeMalformed(w)
		return
	}

	if holding.ID == "" {
		writeMalformed(w)
		return
	}

	if !holding.IsStockValid() {
		writeJSON(w, http.StatusUnsupportedMediaType,
			map[string]string{"error": "Expected application/json media type"})
		return
	}

	existing, err := h.service.GetHolding(r.Context(), id)
	if err != nil {
		writeServerError(w, h.logger, "update holding", err)
		return
	}
	if existing == nil {
		writeNotFound(w)
		return
	}

	// The body document is saved as-is, including its own id.
	if err := h.service.UpdateHolding(r.Context(), &holding); err != nil {
		writeServerError(w, h.logger, "update holding", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *HoldingHandler) deleteHolding(w http.ResponseWriter, r *http.Request, id string) {
	existing, err := h.service.GetHolding(r.Context(), id)
	if err != nil {
		writeServerError(w, h.logger, "delete holding", err)
		return
	}
	if existing == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err := h.service.DeleteHolding(r.Context(), id); err != nil {
		writeServerError(w, h.logger, "delete holding", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
