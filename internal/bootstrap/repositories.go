package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Daymon_Go/internal/database/postgres"
	"github.com/osse101/Daymon_Go/internal/eventlog"
	"github.com/osse101/Daymon_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Hatchery repository.Hatchery
	EventLog eventlog.Repository
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Hatchery: postgres.NewHatcheryRepository(dbPool),
		EventLog: postgres.NewEventLogRepository(dbPool),
	}
}
