package http_server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/skillwaves/skillwaves-server/config"
	"github.com/skillwaves/skillwaves-server/internal/handler"
	"github.com/skillwaves/skillwaves-server/internal/middleware"
	"github.com/skillwaves/skillwaves-server/internal/model/request"
	"github.com/skillwaves/skillwaves-server/internal/token"
	"github.com/skillwaves/skillwaves-server/internal/validation"
	"github.com/skillwaves/skillwaves-server/pkg/metrics"

	_ "github.com/skillwaves/skillwaves-server/docs"
)

// Handlers groups the route handlers wired into the server.
type Handlers struct {
	Job  *handler.JobHandler
	Bid  *handler.BidHandler
	User *handler.UserHandler
}

type Server struct {
	App    *gin.Engine
	notify chan error

	httpServer  *http.Server
	address     string
	timeout     time.Duration
	healthCheck func(context.Context) error
}

// New assembles the gin engine, middleware chain and routes.
func New(env *config.Env, codec *token.Codec, handlers Handlers, opts ...Option) *Server {
	s := &Server{
		notify:  make(chan error, 1),
		address: _defaultAddr,
		timeout: _defaultTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.App = s.initGinServer(env, codec, handlers)
	s.httpServer = &http.Server{
		Addr:    s.address,
		Handler: s.App,
	}

	return s
}

func timeoutResponse(c *gin.Context) {
	c.String(http.StatusRequestTimeout, "timeout")
}
func timeoutMiddleware(to time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(to),
		timeout.WithResponse(timeoutResponse),
	)
}

func (s *Server) initGinServer(env *config.Env, codec *token.Codec, handlers Handlers) *gin.Engine {

	pathPrefix := env.AppConfig.PathPrefix
	if pathPrefix == "" {
		pathPrefix = "/api"
	}
	if env.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CorrelationIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(timeoutMiddleware(s.timeout))

	if env.MetricsConfig.Enabled {
		m := metrics.GetMonitor(env.MetricsConfig.Path)
		m.Use(r)
	}

	if env.CORSConfig.Enabled {
		corsConfig := cors.Config{
			AllowOrigins:     env.CORSConfig.AllowedOrigins,
			AllowMethods:     env.CORSConfig.AllowedMethods,
			AllowHeaders:     env.CORSConfig.AllowedHeaders,
			ExposeHeaders:    env.CORSConfig.ExposedHeaders,
			AllowCredentials: env.CORSConfig.AllowCredentials,
			MaxAge:           time.Duration(env.CORSConfig.MaxAge) * time.Second,
		}

		r.Use(cors.New(corsConfig))
	}

	// Liveness endpoints
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "skill waves server is running well")
	})
	r.GET("/health", func(c *gin.Context) {
		if s.healthCheck != nil {
			if err := s.healthCheck(c.Request.Context()); err != nil {
				c.AbortWithStatusJSON(http.StatusServiceUnavailable,
					gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET(pathPrefix+"/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	registerRoutes(r.Group(pathPrefix+"/v1"), env, codec, handlers)

	return r
}

// registerRoutes binds each route to its validation chain and handler. The
// auth gate guards only the three read routes the web client calls with
// credentials; the mutating routes are deliberately left open to match the
// deployed API surface.
func registerRoutes(v1 *gin.RouterGroup, env *config.Env, codec *token.Codec, h Handlers) {
	auth := middleware.VerifyCookieToken(codec, env.AuthConfig.CookieName)

	v1.GET("/job/:id", auth,
		validation.Validate[any, request.IDParam, any](), h.Job.GetJob)
	v1.GET("/jobs",
		validation.Validate[any, any, request.ListJobsQuery](), h.Job.ListJobs)
	v1.GET("/jobs/posted-jobs", auth,
		validation.Validate[any, any, request.PostedJobsQuery](), h.Job.ListPostedJobs)
	v1.GET("/bid/all", auth,
		validation.Validate[any, any, request.ListBidsQuery](), h.Bid.ListBids)

	v1.POST("/job/create-job",
		validation.Validate[request.CreateJobRequest, any, any](), h.Job.CreateJob)
	v1.POST("/job/bid-job",
		validation.Validate[request.CreateBidRequest, any, any](), h.Bid.CreateBid)
	v1.POST("/user/access-token",
		validation.Validate[request.AccessTokenRequest, any, any](), h.User.AccessToken)
	v1.POST("/user/delete-token", h.User.DeleteToken)

	v1.PUT("/job/update-job/:id",
		validation.Validate[request.UpdateJobRequest, request.IDParam, any](), h.Job.UpdateJob)
	v1.PATCH("/bid/update-specific/:id",
		validation.Validate[request.UpdateBidStatusRequest, request.IDParam, any](), h.Bid.UpdateBidStatus)
	v1.DELETE("/job/delete-job/:id",
		validation.Validate[any, request.IDParam, any](), h.Job.DeleteJob)
}

// Start runs the server in a goroutine; errors arrive on Notify.
func (s *Server) Start() {
	go func() {
		s.notify <- s.httpServer.ListenAndServe()
		close(s.notify)
	}()
}

// Notify -.
func (s *Server) Notify() <-chan error {
	return s.notify
}

// Shutdown drains in-flight requests before closing the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
