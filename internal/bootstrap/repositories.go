package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/StrideShop_Go/internal/database/postgres"
)

// Repositories holds the Postgres-backed stores. UserRepository serves both
// the user aggregate and the shop transaction boundary.
type Repositories struct {
	User    *postgres.UserRepository
	Catalog *postgres.CatalogRepository
}

// InitializeRepositories creates all repository implementations
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:    postgres.NewUserRepository(dbPool),
		Catalog: postgres.NewCatalogRepository(dbPool),
	}
}
