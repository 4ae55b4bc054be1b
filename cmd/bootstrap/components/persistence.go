package components

import (
	"log/slog"

	"hotel-booking-core/internal/infra/memstore"
	"hotel-booking-core/internal/infra/query"
	"hotel-booking-core/internal/infra/uow"
	"hotel-booking-core/internal/pkg/config"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		query.New,
		NewUnitOfWork,
	),
)

var errNoPool = errs.New("postgres store selected but no connection pool was provided")

type unitOfWorkParams struct {
	fx.In

	Config  config.Config
	Pool    *pgxpool.Pool `optional:"true"`
	Queries *query.Queries
}

// NewUnitOfWork selects the store named by STORE_DRIVER.
func NewUnitOfWork(p unitOfWorkParams) (shared.UnitOfWork, error) {
	switch p.Config.Store.Driver {
	case config.StoreDriverMemory:
		slog.Info("using in-memory store")
		return memstore.New(), nil
	case config.StoreDriverPostgres:
		if p.Pool == nil {
			return nil, errNoPool
		}
		return uow.NewPostgresUoW(p.Pool, p.Queries, p.Config.Inventory.LockTimeout), nil
	default:
		return nil, errs.Newf("unknown store driver %q", p.Config.Store.Driver)
	}
}
