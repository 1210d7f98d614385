package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	repo "github.com/mindwellhq/mindwell-backend/internal/repository"
)

type Repositories struct {
	Users     repo.Users
	Admins    repo.Admins
	Resources repo.Resources
	AuditLogs repo.AuditLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:     &usersRepo{pool},
		Admins:    &adminsRepo{pool},
		Resources: &resourcesRepo{pool},
		AuditLogs: &auditLogsRepo{pool},
	}
}
