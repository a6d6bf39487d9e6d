// Package router assembles the gin engine and owns the HTTP server
// lifecycle.
package router

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sue-zadeh/fieldbase/internal/config"
	"github.com/sue-zadeh/fieldbase/internal/interfaces/http/handlers"
	"github.com/sue-zadeh/fieldbase/internal/interfaces/http/middleware"
	"github.com/sue-zadeh/fieldbase/pkg/constants"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
)

// Handlers bundles the endpoint handlers wired into the router.
type Handlers struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Risks       *handlers.RiskHandler
	Assignments *handlers.AssignmentHandler
	Projects    *handlers.ProjectHandler
	People      *handlers.PeopleHandler
	Catalogs    *handlers.CatalogHandler
}

// Router owns the gin engine and HTTP server.
type Router struct {
	engine   *gin.Engine
	cfg      *config.Config
	log      logger.Logger
	handlers Handlers
	auth     gin.HandlerFunc
	observe  gin.HandlerFunc
	server   *http.Server
	routed   bool
}

// New creates the router. authMiddleware guards everything under /api/v1
// except the login and reset endpoints.
func New(cfg *config.Config, log logger.Logger, h Handlers, authMiddleware, observeMiddleware gin.HandlerFunc) *Router {
	gin.SetMode(gin.ReleaseMode)
	return &Router{
		engine:   gin.New(),
		cfg:      cfg,
		log:      log,
		handlers: h,
		auth:     authMiddleware,
		observe:  observeMiddleware,
	}
}

// SetupRoutes registers middleware and the route table. Safe to call more
// than once; only the first call registers.
func (r *Router) SetupRoutes() {
	if r.routed {
		return
	}
	r.routed = true

	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.RequestID())
	if r.observe != nil {
		r.engine.Use(r.observe)
	}

	allowOrigins := r.cfg.Server.AllowedOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}
	r.engine.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.engine.GET("/healthz", r.handlers.Health.Check)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if r.cfg.Server.PprofEnabled {
		pprof.Register(r.engine)
	}

	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.handlers.Auth.Login)
			auth.POST("/forgot-password", r.handlers.Auth.ForgotPassword)
			auth.POST("/reset-password", r.handlers.Auth.ResetPassword)
			auth.POST("/logout", r.auth, r.handlers.Auth.Logout)
		}

		api := v1.Group("")
		api.Use(r.auth)
		{
			api.GET("/risk-matrix", r.handlers.Risks.Matrix)
			api.GET("/risk-matrix/rate", r.handlers.Risks.Rate)

			api.GET("/risk-titles", r.handlers.Risks.ListTitles)
			api.POST("/risk-titles", r.handlers.Risks.CreateTitle)
			api.DELETE("/risk-titles/:id", r.handlers.Risks.DeleteTitle)
			api.GET("/risk-titles/:id/controls", r.handlers.Risks.ListControls)
			api.POST("/risk-controls", r.handlers.Risks.CreateControl)
			api.DELETE("/risk-controls/:id", r.handlers.Risks.DeleteControl)

			// Owner-scoped assessments; owner_kind is project or activity.
			api.GET("/owners/:owner_kind/:owner_id/risks", r.handlers.Risks.ListOwnerRisks)
			api.POST("/owners/:owner_kind/:owner_id/risks", r.handlers.Risks.CreateAssessment)
			api.POST("/owners/:owner_kind/:owner_id/risks/:risk_id", r.handlers.Risks.AttachRisk)
			api.PUT("/owners/:owner_kind/:owner_id/risks/:risk_id", r.handlers.Risks.UpdateAssessment)
			api.DELETE("/owners/:owner_kind/:owner_id/risks/:risk_id", r.handlers.Risks.DetachRisk)

			// Generic owner/member bridging.
			api.GET("/assignments/:kind/:owner_id/unassigned", r.handlers.Assignments.ListUnassigned)
			api.GET("/assignments/:kind/:owner_id/assigned", r.handlers.Assignments.ListAssigned)
			api.POST("/assignments/:kind/:owner_id", r.handlers.Assignments.AttachMany)
			api.DELETE("/assignments/:kind/links/:link_id", r.handlers.Assignments.DetachOne)

			api.GET("/projects", r.handlers.Projects.List)
			api.POST("/projects", r.handlers.Projects.Create)
			api.GET("/projects/:id", r.handlers.Projects.Get)
			api.PUT("/projects/:id", r.handlers.Projects.Update)
			api.DELETE("/projects/:id", r.handlers.Projects.Delete)

			api.GET("/activities", r.handlers.Projects.ListActivities)
			api.POST("/activities", r.handlers.Projects.CreateActivity)
			api.GET("/activities/:id", r.handlers.Projects.GetActivity)
			api.PUT("/activities/:id", r.handlers.Projects.UpdateActivity)
			api.DELETE("/activities/:id", r.handlers.Projects.DeleteActivity)

			api.GET("/volunteers", r.handlers.People.ListVolunteers)
			api.POST("/volunteers", r.handlers.People.CreateVolunteer)
			api.GET("/volunteers/:id", r.handlers.People.GetVolunteer)
			api.PUT("/volunteers/:id", r.handlers.People.UpdateVolunteer)
			api.DELETE("/volunteers/:id", r.handlers.People.DeleteVolunteer)

			admin := api.Group("")
			admin.Use(middleware.RequireRole(constants.RoleAdmin, constants.RoleGroupAdmin))
			{
				admin.GET("/users", r.handlers.People.ListUsers)
				admin.POST("/users", r.handlers.People.CreateUser)
				admin.GET("/users/:id", r.handlers.People.GetUser)
				admin.PUT("/users/:id", r.handlers.People.UpdateUser)
				admin.DELETE("/users/:id", r.handlers.People.DeleteUser)
			}

			api.GET("/objectives", r.handlers.Catalogs.ListObjectives)
			api.POST("/objectives", r.handlers.Catalogs.CreateObjective)
			api.DELETE("/objectives/:id", r.handlers.Catalogs.DeleteObjective)

			api.GET("/checklist-items", r.handlers.Catalogs.ListChecklistItems)
			api.POST("/checklist-items", r.handlers.Catalogs.CreateChecklistItem)
			api.DELETE("/checklist-items/:id", r.handlers.Catalogs.DeleteChecklistItem)

			api.GET("/site-hazards", r.handlers.Catalogs.ListSiteHazards)
			api.POST("/site-hazards", r.handlers.Catalogs.CreateSiteHazard)
			api.DELETE("/site-hazards/:id", r.handlers.Catalogs.DeleteSiteHazard)

			api.GET("/people-hazards", r.handlers.Catalogs.ListPeopleHazards)
			api.POST("/people-hazards", r.handlers.Catalogs.CreatePeopleHazard)
			api.DELETE("/people-hazards/:id", r.handlers.Catalogs.DeletePeopleHazard)

			api.GET("/predator-records", r.handlers.Catalogs.ListPredatorRecords)
			api.POST("/predator-records", r.handlers.Catalogs.CreatePredatorRecord)
			api.PUT("/predator-records/:id", r.handlers.Catalogs.UpdatePredatorRecord)
			api.DELETE("/predator-records/:id", r.handlers.Catalogs.DeletePredatorRecord)
		}
	}

	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "the requested resource was not found",
		})
	})
}

// Start runs the HTTP server until ctx is cancelled, then shuts it down
// within the configured grace period.
func (r *Router) Start(ctx context.Context) error {
	r.SetupRoutes()

	addr := fmt.Sprintf("%s:%d", r.cfg.Server.Host, r.cfg.Server.Port)
	r.server = &http.Server{
		Addr:           addr,
		Handler:        r.engine,
		ReadTimeout:    time.Duration(r.cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(r.cfg.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		r.log.Info(ctx, "HTTP server listening", logger.String("address", addr))
		if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(r.cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	r.log.Info(shutdownCtx, "Shutting down HTTP server")
	if err := r.server.Shutdown(shutdownCtx); err != nil {
		r.log.Error(shutdownCtx, "Forced server shutdown", err)
		return err
	}
	return <-errCh
}

// Engine exposes the gin engine for tests.
func (r *Router) Engine() *gin.Engine {
	r.SetupRoutes()
	return r.engine
}
