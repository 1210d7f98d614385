package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindwellhq/mindwell-backend/internal/models"
)

type auditLogsRepo struct{ pool *pgxpool.Pool }

// jsonbDetails coalesces a nil map to an empty one. pgx encodes a nil
// map as SQL NULL, which the NOT NULL details column rejects.
func jsonbDetails(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func (r *auditLogsRepo) Create(ctx context.Context, l models.AuditLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_logs(entity_type, entity_id, actor_id, action, details) VALUES($1,$2,$3,$4,$5)`,
		l.EntityType, l.EntityID, l.ActorID, l.Action, jsonbDetails(l.Details))
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}
