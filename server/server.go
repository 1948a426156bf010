package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/CodMac/attr-lens/core"
	"github.com/CodMac/attr-lens/model"
	"github.com/CodMac/attr-lens/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Server 以 HTTP 暴露分析能力，每个请求都是一次独立的分析运行
type Server struct {
	svc    *service.Service
	logger *zap.Logger
	router *gin.Engine
}

func NewServer(svc *service.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := gin.New()
	s := &Server{svc: svc, logger: logger, router: r}
	r.Use(gin.Recovery(), s.requestLogger())
	s.setupRoutes()
	return s
}

// Run starts the server on the specified address.
func (s *Server) Run(addr string) error {
	s.logger.Info("listening", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Handler 暴露底层 http.Handler，便于嵌入或测试
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthCheck)
	s.router.POST("/v1/analyze", s.handleAnalyze)
}

func (s *Server) healthCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}

type analyzeRequest struct {
	Language string `json:"language" binding:"required"`
	Path     string `json:"path" binding:"required"`
	Source   string `json:"source"`
}

type analyzeResponse struct {
	RunID    string                    `json:"run_id"`
	Language string                    `json:"language"`
	Path     string                    `json:"path"`
	Bindings []*model.AttributeBinding `json:"bindings"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	lang := core.Language(req.Language)
	if _, err := core.GetGrammar(lang); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bindings, err := s.svc.AnalyzeSource(c.Request.Context(), lang, req.Path, []byte(req.Source))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, analyzeResponse{
		RunID:    uuid.NewString(),
		Language: lang.String(),
		Path:     req.Path,
		Bindings: bindings,
	})
}

// handleError 违规 -> 422，输入不可用 -> 400，其余 -> 500
func handleError(c *gin.Context, err error) {
	if v, ok := core.AsViolation(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  v.Error(),
			"kind":   v.Kind,
			"callee": v.Callee,
			"call":   v.CallText,
		})
		return
	}
	if errors.Is(err, core.ErrInputUnavailable) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
