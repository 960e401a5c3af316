package handler

import (
	"net/http"

	"github.com/dinobank/dinoframe-bff-go/internal/service"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Account & Dashboard Handlers
// ============================================================

func getOverviewHandler(svc *service.AccountService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/overview")
		defer span.End()

		sess, ok := SessionFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Not logged in")
			return
		}
		span.SetAttributes(attribute.Int64("customer.id", sess.UserID))

		overview, err := svc.Overview(ctx, sess.UserID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, overview)
	}
}

func getAccountSummaryHandler(svc *service.AccountService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/accounts/summary")
		defer span.End()

		sess, ok := SessionFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Not logged in")
			return
		}

		account, err := svc.Summary(ctx, sess.UserID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, account)
	}
}

func refreshOverviewHandler(svc *service.AccountService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/overview/refresh")
		defer span.End()

		sess, ok := SessionFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Not logged in")
			return
		}

		// The refresh needs the account id; resolve it from the summary
		// first so callers only carry the customer identity.
		account, err := svc.Summary(ctx, sess.UserID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		overview, err := svc.Refresh(ctx, sess.UserID, account.ID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, overview)
	}
}
