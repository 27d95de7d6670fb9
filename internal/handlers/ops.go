package handlers

import (
	"net/http"
	"os"

	"go.uber.org/zap"
)

// OpsHandler bundles operational endpoints.
type OpsHandler struct {
	logger *zap.Logger
}

func NewOpsHandler(logger *zap.Logger) *OpsHandler {
	return &OpsHandler{logger: logger}
}

// HandleKill handles GET /kill. It terminates the process immediately
// with a non-zero exit code and sends no response. The route is only
// registered when the kill endpoint is enabled in configuration, since
// an unauthenticated remote shutdown is not something to expose by
// default.
func (h *OpsHandler) HandleKill(w http.ResponseWriter, r *http.Request) {
	h.logger.Warn("kill endpoint invoked, terminating process")
	_ = h.logger.Sync()
	os.Exit(1)
}
