package components

import (
	"kartly-api/internal/infra/db"
	"kartly-api/internal/infra/readstore"
	repo_impl "kartly-api/internal/infra/repository"
	"kartly-api/internal/usecase/commands"
	"kartly-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewCatalogRepository,
			fx.As(new(commands.CatalogRepository)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
			fx.As(new(commands.OrderReviewRepository)),
		),
		fx.Annotate(
			repo_impl.NewPointsRepository,
			fx.As(new(commands.PointsRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			readstore.NewPointsReadStore,
			fx.As(new(queries.PointsReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
