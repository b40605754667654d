package components

import (
	"bioinsight-quotes/internal/infra/db"
	"bioinsight-quotes/internal/infra/readstore"
	"bioinsight-quotes/internal/infra/uow"
	"bioinsight-quotes/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewQuoteReadStore,
			fx.As(new(queries.QuoteReadStore)),
		),
		fx.Annotate(
			readstore.NewVendorRequestReadStore,
			fx.As(new(queries.VendorRequestReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
