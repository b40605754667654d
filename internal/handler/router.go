package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bioinsight-quotes/internal/handler/api"
	"bioinsight-quotes/internal/handler/middleware"
	"bioinsight-quotes/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	quoteHandler *api.QuoteHandler,
	vendorRequestHandler *api.VendorRequestHandler,
	vendorHandler *api.VendorHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, quoteHandler, vendorRequestHandler, vendorHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	quoteHandler *api.QuoteHandler,
	vendorRequestHandler *api.VendorRequestHandler,
	vendorHandler *api.VendorHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		quotes := apiGroup.Group("/quotes")
		quotes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(quotes, []route{
				{Method: http.MethodPost, Path: "", Handler: quoteHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: quoteHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: quoteHandler.Get},
				{Method: http.MethodPost, Path: "/:id/items", Handler: quoteHandler.AddItem},
				{Method: http.MethodPatch, Path: "/:id/items/:itemId", Handler: quoteHandler.UpdateItem},
				{Method: http.MethodDelete, Path: "/:id/items/:itemId", Handler: quoteHandler.DeleteItem},

				{Method: http.MethodPost, Path: "/:id/vendor-requests", Handler: vendorRequestHandler.Send},
				{Method: http.MethodGet, Path: "/:id/vendor-requests", Handler: vendorRequestHandler.List},
				{Method: http.MethodPost, Path: "/:id/vendor-requests/:requestId/cancel", Handler: vendorRequestHandler.Cancel},
				{Method: http.MethodGet, Path: "/:id/comparison", Handler: vendorRequestHandler.Comparison},
				{Method: http.MethodGet, Path: "/:id/comparison/export", Handler: vendorRequestHandler.Export},
			})
		}
	}

	// Tokened portal; intentionally outside the authenticated group
	vendor := engine.Group("/vendor")
	{
		addRoutes(vendor, []route{
			{Method: http.MethodGet, Path: "/:token", Handler: vendorHandler.Get},
			{Method: http.MethodPost, Path: "/:token/respond", Handler: vendorHandler.Respond},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
