package v1

import (
	"net/http"

	"go-pipeline-tracker/internal/delivery/http/response"
	"go-pipeline-tracker/internal/domain"
	"go-pipeline-tracker/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers the self-service application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	apps := r.Group("/applications")
	{
		apps.POST("", handler.Apply)
		apps.GET("/mine", handler.ListMine)
	}
}

// Apply godoc
// @Summary      Submit a direct application
// @Description  Creates a self-contained application record in Applied status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body  domain.DirectApplication  true  "Application"
// @Success      201  {object}  response.Response{data=domain.DirectApplication}
// @Failure      400  {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var app domain.DirectApplication
	if err := c.ShouldBindJSON(&app); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.applicationUC.Apply(c, userID, &app); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListMine godoc
// @Summary      List the caller's own applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.DirectApplication}
// @Router       /applications/mine [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	apps, err := h.applicationUC.GetMyApplications(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}
