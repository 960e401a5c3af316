package service

import (
	"context"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"
	"github.com/dinobank/dinoframe-bff-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var adminTracer = otel.Tracer("service/admin")

// AdminService exposes the ledger's debug snapshot to the admin view.
type AdminService struct {
	api    port.AdminAPI
	logger *zap.Logger
}

// NewAdminService creates the admin snapshot workflow.
func NewAdminService(api port.AdminAPI, logger *zap.Logger) *AdminService {
	return &AdminService{api: api, logger: logger}
}

// Snapshot fetches the full state dump. Failures log and yield an empty
// snapshot; the admin page renders what it has instead of blocking.
func (s *AdminService) Snapshot(ctx context.Context) *domain.DatabaseSnapshot {
	ctx, span := adminTracer.Start(ctx, "AdminService.Snapshot")
	defer span.End()

	snap, err := s.api.GetSnapshot(ctx)
	if err != nil {
		s.logger.Warn("admin: snapshot fetch failed, rendering empty state", zap.Error(err))
		return &domain.DatabaseSnapshot{}
	}
	return snap
}
