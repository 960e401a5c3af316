package handler

import (
	"net/http"

	"github.com/dinobank/dinoframe-bff-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Transfer Handlers
// ============================================================

func transferHandler(svc *service.TransferService, accountSvc *service.AccountService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/transfers")
		defer span.End()

		sess, ok := SessionFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Not logged in")
			return
		}

		var req struct {
			ToAccountNumber string  `json:"toAccountNumber"`
			Amount          float64 `json:"amount"`
			Description     string  `json:"description,omitempty"`
		}
		if !decodeBody(w, r, &req) {
			return
		}

		// The sender side comes from the stored identity, never the body.
		account, err := accountSvc.Summary(ctx, sess.UserID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		overview, err := svc.Submit(ctx, sess.UserID, account.ID, account.AccountNumber, req.ToAccountNumber, req.Amount, req.Description)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		resp := map[string]any{"status": "COMPLETED"}
		if overview != nil {
			resp["overview"] = overview
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}
