package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/halstrom/app-registry/config"
	"github.com/halstrom/app-registry/db"
	"github.com/halstrom/app-registry/models"
	"github.com/halstrom/app-registry/service"
	"github.com/halstrom/app-registry/store"
)

const Version = "1.0.0"

// Server hosts both dispatch surfaces over one AppService. The declarative
// surface is a gin route group; the functional surface is a chi route tree
// mounted under the same engine. Neither contains business logic.
type Server struct {
	config   *config.Config
	db       *db.DB
	service  *service.AppService
	validate *validator.Validate
	router   *gin.Engine
}

func NewServer(cfg *config.Config, database *db.DB) *Server {
	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		config:   cfg,
		db:       database,
		service:  service.NewAppService(store.NewAppStore(database.DB)),
		validate: models.NewValidator(),
		router:   gin.New(),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(RequestID(), RequestLogger(), gin.Recovery())

	s.router.GET("/health", s.handleHealth)

	// Declarative surface: routes and per-field validation declared up
	// front, one handler bound per route.
	apps := s.router.Group("/api/annotation/apps")
	{
		apps.POST("", s.handleCreate)
		apps.GET("", s.handleList)
		apps.GET("/:id", s.handleGet)
		apps.PUT("/:id", s.handleUpdate)
		apps.DELETE("/:id", s.handleDelete)
	}

	// Functional surface: the same operations composed as a chi route tree.
	s.router.Any("/api/functional/*path", gin.WrapH(s.functionalRoutes()))
}

func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.config.Server.Port)
	slog.Info("starting server", "addr", addr)
	return s.router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	dbOK := s.db.Ping() == nil

	status := "healthy"
	if !dbOK {
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":              status,
		"version":             Version,
		"database_accessible": dbOK,
	})
}

// renderError is the single failure exit for the declarative surface: every
// error goes through the classifier and out as an ErrorDTO.
func (s *Server) renderError(c *gin.Context, err error) {
	dto := Classify(err)
	c.JSON(dto.HTTPStatus, dto)
}
