package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"gongsil-api/internal/handler/api"
	"gongsil-api/internal/handler/middleware"
	"gongsil-api/internal/infra/originproxy"
	"gongsil-api/internal/pkg/config"
	"gongsil-api/internal/pkg/metrics"
)

// photos are capped individually in the handler; this bounds the whole multipart form
const maxRegisterBodyBytes = 64 << 20

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine  *gin.Engine
	Config  config.Config
	Logger  *middleware.Logger
	Metrics *metrics.Service
	Redis   *redis.Client `optional:"true"`

	Health      *api.HealthHandler
	Location    *api.LocationHandler
	Origin      *api.OriginHandler
	Space       *api.SpaceHandler
	Reservation *api.ReservationHandler
	Timetable   *api.TimetableHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger, p.Metrics)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Service) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", p.Health.Health)
	engine.GET("/readyz", p.Health.Ready)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := engine.Group("")
	limited.Use(middleware.RateLimit(p.Config, p.Redis, p.Metrics, slogOf(p.Logger)))
	{
		addRoutes(limited, []route{
			{Method: http.MethodGet, Path: "/local-search", Handler: p.Location.SearchLocal},
			{Method: http.MethodGet, Path: "/reverse-geocode", Handler: p.Location.ReverseGeocode},
			{Path: originproxy.Prefix + "/*path", Handler: p.Origin.Forward},
		})
	}

	apiGroup := engine.Group("/api")
	{
		spaces := apiGroup.Group("/spaces")
		addRoutes(spaces, []route{
			{Method: http.MethodPost, Path: "", Handler: p.Space.Register, Mw: []gin.HandlerFunc{middleware.MaxBodyBytes(maxRegisterBodyBytes)}},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: p.Space.Availability},
			{Method: http.MethodPost, Path: "/:id/reservations/quote", Handler: p.Reservation.Quote},
			{Method: http.MethodPost, Path: "/:id/reservations", Handler: p.Reservation.Create},
		})

		timetables := apiGroup.Group("/timetables")
		addRoutes(timetables, []route{
			{Method: http.MethodPost, Path: "/summary", Handler: p.Timetable.Summarize},
			{Method: http.MethodPost, Path: "/replay", Handler: p.Timetable.Replay},
		})
	}
}

func slogOf(l *middleware.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l.GetSlogLogger()
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
