package handler

import (
	"net/http"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"
	"github.com/dinobank/dinoframe-bff-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Credit Handlers
// ============================================================

func creditApplyHandler(svc *service.CreditService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/credits/apply")
		defer span.End()

		sess, ok := SessionFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Not logged in")
			return
		}

		// Amount and installment count arrive as the form's raw strings;
		// coercion and validation happen in the service.
		var req struct {
			RequestedAmount  string `json:"requestedAmount"`
			InstallmentCount string `json:"installmentCount"`
			Purpose          string `json:"purpose"`
		}
		if !decodeBody(w, r, &req) {
			return
		}

		decision, history, err := svc.Apply(ctx, sess.UserID, req.RequestedAmount, req.InstallmentCount, req.Purpose)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		if history == nil {
			history = []domain.CreditApplication{}
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"decision": decision,
			"history":  history,
		})
	}
}

func creditHistoryHandler(svc *service.CreditService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/credits")
		defer span.End()

		sess, ok := SessionFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Not logged in")
			return
		}

		history, err := svc.History(ctx, sess.UserID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		if history == nil {
			history = []domain.CreditApplication{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"applications": history})
	}
}
