package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/carson-networks/budgetwise/internal/logging"
)

const pingTimeout = 2 * time.Second

// pinger reports whether the account database is reachable.
type pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	DB pinger
}

func NewHandler(db pinger) Handler {
	return Handler{DB: db}
}

type statusResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	ctx, cancel := context.WithTimeout(req.Context(), pingTimeout)
	defer cancel()

	stopTimer := logData.AddTiming("pingMs")
	pingErr := h.DB.PingContext(ctx)
	stopTimer()

	resp := statusResponse{Status: "ok", Database: "ok"}
	code := http.StatusOK
	if pingErr != nil {
		resp = statusResponse{Status: "degraded", Database: "unreachable"}
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return err
	}
	return pingErr
}
