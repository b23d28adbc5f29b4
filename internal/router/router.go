package router

import (
	"errors"
	"net/http"

	docs "github.com/cediwise/backend/api"
	"github.com/cediwise/backend/internal/config"
	"github.com/cediwise/backend/internal/controllers/healthz"
	"github.com/cediwise/backend/internal/controllers/root"
	v1 "github.com/cediwise/backend/internal/controllers/v1"
	"github.com/cediwise/backend/internal/controllers/version"
	"github.com/cediwise/backend/internal/httperror"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time.
var buildVersion = "0.0.0"

var errMethodNotAllowed = errors.New("this HTTP method is not allowed for the endpoint you called")

// Config creates the gin engine with all middlewares.
//
// The returned teardown function must be called when the engine is
// not used anymore, even if an error is returned.
func Config(cfg *config.Config) (*gin.Engine, func(), error) {
	teardown := func() {
		if !unregisterPrometheusMetrics() {
			log.Error().Msg("Could not unregister prometheus metrics")
		}
	}

	if err := registerPrometheusMetrics(); err != nil {
		return nil, teardown, err
	}

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(cfg.APIURL))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httperror.New(errMethodNotAllowed))
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", cfg.CORSAllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(_, _, _ string, _ int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", cfg.APIURL.String()).Str("Host", cfg.APIURL.Host).Str("Path", cfg.APIURL.Path).Msg("Router")
	log.Info().Str("version", buildVersion).Msg("Router")

	docs.SwaggerInfo.Host = cfg.APIURL.Host
	docs.SwaggerInfo.BasePath = cfg.APIURL.Path
	docs.SwaggerInfo.Title = "CediWise"
	docs.SwaggerInfo.Version = buildVersion
	docs.SwaggerInfo.Description = "The backend for CediWise, a personal budgeting assistant with financial health scoring, an AI advisor and market data."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases, e.g. the standalone version.
func AttachRoutes(co v1.Controller, group *gin.RouterGroup, enablePprof bool) {
	root.RegisterRoutes(group.Group(""))
	version.RegisterRoutes(group.Group("/version"), buildVersion)
	healthz.RegisterRoutes(group.Group("/healthz"))
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	if enablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 setup
	api := group.Group("/v1")
	co.RegisterRootRoutes(api.Group(""))
	co.RegisterBudgetRoutes(api.Group("/budgets"))
	co.RegisterAnalysisRoutes(api.Group("/analysis"))
	co.RegisterHealthScoreRoutes(api.Group("/health-scores"))
	co.RegisterChatSessionRoutes(api.Group("/chat-sessions"))
	co.RegisterAdvisorRoutes(api.Group("/advisor"))
	co.RegisterPriceRoutes(api.Group("/prices"))
	co.RegisterExchangeRateRoutes(api.Group("/exchange-rates"))
	co.RegisterMarketRoutes(api.Group("/market"))
}
