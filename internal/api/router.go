package api

import (
	"github.com/gin-gonic/gin"
	"github.com/marvinh/leadscout/internal/api/handler"
	"github.com/marvinh/leadscout/internal/api/middleware"
	"github.com/marvinh/leadscout/internal/logger"
	"github.com/marvinh/leadscout/internal/service"
)

// SetupRouter configures the Gin router with all routes
func SetupRouter(
	scout *service.ScoutService,
	log *logger.Logger,
	mode string,
	cors middleware.CORSConfig,
) *gin.Engine {
	// Set Gin mode
	switch mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORS(cors))

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	jobHandler := handler.NewJobHandler(scout)
	streamHandler := handler.NewStreamHandler(scout, cors)

	// Health check
	r.GET("/health", healthHandler.Health)

	// Realtime job event stream
	r.GET("/ws", streamHandler.Stream)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Jobs
		v1.POST("/jobs", jobHandler.CreateJob)
		v1.GET("/jobs", jobHandler.ListJobs)
		v1.GET("/jobs/:id", jobHandler.GetJob)
		v1.POST("/jobs/:id/cancel", jobHandler.CancelJob)
		v1.GET("/jobs/:id/logs", jobHandler.GetJobLogs)
		v1.GET("/jobs/:id/leads", jobHandler.GetJobLeads)

		// Stats
		v1.GET("/stats", jobHandler.GetStats)
	}

	return r
}
