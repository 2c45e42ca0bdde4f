package v1

import (
	"net/http"

	"go-pipeline-tracker/config"
	"go-pipeline-tracker/internal/delivery/http/middleware"
	"go-pipeline-tracker/internal/delivery/http/response"
	"go-pipeline-tracker/internal/domain"
	"go-pipeline-tracker/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	PipelineUC    domain.PipelineUsecase
	PositionUC    domain.PositionUsecase
	ApplicationUC domain.ApplicationUsecase
	SubmissionUC  domain.SubmissionUsecase
	InterviewUC   domain.InterviewUsecase
	InboxUC       domain.InboxUsecase
	Verifier      *auth.Verifier
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Verifier))
	{
		NewPipelineHandler(protected, deps.PipelineUC)
		NewOnboardingHandler(protected, deps.PipelineUC)
		NewPositionHandler(v1, protected, deps.PositionUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewSubmissionHandler(protected, deps.SubmissionUC)
		NewInterviewHandler(protected, deps.InterviewUC)
		NewInboxHandler(protected, deps.InboxUC)
	}

	return r
}
