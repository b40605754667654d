package components

import (
	"bioinsight-quotes/internal/handler"
	"bioinsight-quotes/internal/handler/api"
	"bioinsight-quotes/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQuoteHandler,
		api.NewVendorRequestHandler,
		api.NewVendorHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
