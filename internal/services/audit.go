package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/mindwellhq/mindwell-backend/internal/models"
	repo "github.com/mindwellhq/mindwell-backend/internal/repository"
	"github.com/mindwellhq/mindwell-backend/internal/worker"
)

// AuditRecorder writes audit logs off the request path through the
// worker pool. A failed write is logged and dropped, never surfaced.
type AuditRecorder struct {
	logs repo.AuditLogs
	pool *worker.Pool
}

func NewAuditRecorder(logs repo.AuditLogs, pool *worker.Pool) *AuditRecorder {
	return &AuditRecorder{logs: logs, pool: pool}
}

func (a *AuditRecorder) Record(entityType, entityID, actorID, action string, details map[string]any) {
	if a == nil || a.logs == nil {
		return
	}
	l := models.AuditLog{
		EntityType: entityType,
		EntityID:   entityID,
		ActorID:    actorID,
		Action:     action,
		Details:    details,
	}
	a.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.logs.Create(ctx, l); err != nil {
			slog.Error("audit write failed", "action", action, "err", err)
		}
	})
}
