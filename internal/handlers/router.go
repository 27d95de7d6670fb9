package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires all routes. The kill route is registered only when
// explicitly enabled.
func NewRouter(holdings *HoldingHandler, valuation *ValuationHandler, ops *OpsHandler, enableKill bool) *mux.Router {
	r := mux.NewRouter()
	r.Use(corsMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"service": "holdings-backend",
		})
	})

	r.HandleFunc("/stocks", holdings.HandleHoldings)
	r.HandleFunc("/stocks/{id}", holdings.HandleHolding)
	r.HandleFunc("/stock-value/{id}", valuation.HandleStockValue)
	r.HandleFunc("/portfolio-value", valuation.HandlePortfolioValue)

	if enableKill {
		r.HandleFunc("/kill", ops.HandleKill)
	}

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
