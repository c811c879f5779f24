// Package api exposes the HTTP surface: repository registration, index
// requests, audit case lifecycle, log streaming and health.
package api

import (
	"database/sql"

	"github.com/fincomply/vigil/pkg/audit"
	"github.com/fincomply/vigil/pkg/caselog"
	"github.com/fincomply/vigil/pkg/events"
	"github.com/fincomply/vigil/pkg/queue"
	"github.com/fincomply/vigil/pkg/services"
	"github.com/gin-gonic/gin"
)

// Server bundles the handlers' collaborators.
type Server struct {
	repos        *services.RepoService
	cases        *services.CaseService
	findings     *services.FindingService
	jobs         *queue.Service
	logs         *caselog.Service
	orchestrator *audit.Orchestrator
	broker       *events.Broker
	pool         *queue.WorkerPool
	db           *sql.DB
}

// NewServer creates the API server.
func NewServer(
	repos *services.RepoService,
	cases *services.CaseService,
	findings *services.FindingService,
	jobs *queue.Service,
	logs *caselog.Service,
	orchestrator *audit.Orchestrator,
	broker *events.Broker,
	pool *queue.WorkerPool,
	db *sql.DB,
) *Server {
	return &Server{
		repos:        repos,
		cases:        cases,
		findings:     findings,
		jobs:         jobs,
		logs:         logs,
		orchestrator: orchestrator,
		broker:       broker,
		pool:         pool,
		db:           db,
	}
}

// Handler builds the routed gin engine.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(), gin.Recovery())

	r.GET("/healthz", s.healthzHandler)
	r.GET("/readyz", s.readyzHandler)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/repos", s.createRepoHandler)
		v1.GET("/repos/:id", s.getRepoHandler)
		v1.POST("/repos/:id/index", s.indexRepoHandler)
		v1.POST("/webhooks/push", s.pushWebhookHandler)

		v1.POST("/audits", s.createAuditHandler)
		v1.GET("/audits/:id", s.getAuditHandler)
		v1.POST("/audits/:id/resume", s.resumeAuditHandler)
		v1.POST("/audits/:id/cancel", s.cancelAuditHandler)
		v1.GET("/audits/:id/logs", s.auditLogsHandler)
		v1.GET("/audits/:id/stream", s.auditStreamHandler)

		v1.POST("/findings/:id/review", s.reviewFindingHandler)

		v1.GET("/jobs/:id", s.getJobHandler)
	}
	return r
}
