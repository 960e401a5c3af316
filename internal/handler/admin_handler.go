package handler

import (
	"net/http"

	"github.com/dinobank/dinoframe-bff-go/internal/infra/observability"
	"github.com/dinobank/dinoframe-bff-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Admin & Dev Tools Handlers
// ============================================================

func adminSnapshotHandler(svc *service.AdminService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/admin/db")
		defer span.End()

		writeJSON(w, http.StatusOK, svc.Snapshot(ctx))
	}
}

func clientMetricsHandler(metrics *observability.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, metrics.GetClientSnapshot())
	}
}
