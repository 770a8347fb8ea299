package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pehenyshka/piratecards/internal/database/postgres"
	"github.com/pehenyshka/piratecards/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	User        repository.User
	Card        repository.Card
	Acquisition repository.Acquisition
}

// InitializeRepositories creates all repository implementations over the
// shared database pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:        postgres.NewUserRepository(dbPool),
		Card:        postgres.NewCardRepository(dbPool),
		Acquisition: postgres.NewAcquisitionRepository(dbPool),
	}
}
