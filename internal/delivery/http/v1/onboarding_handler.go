package v1

import (
	"net/http"

	"go-pipeline-tracker/internal/delivery/http/response"
	"go-pipeline-tracker/internal/domain"
	"go-pipeline-tracker/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type OnboardingHandler struct {
	pipelineUC domain.PipelineUsecase
}

// NewOnboardingHandler registers the onboarding dashboard routes
func NewOnboardingHandler(r *gin.RouterGroup, pipelineUC domain.PipelineUsecase) {
	handler := &OnboardingHandler{pipelineUC: pipelineUC}

	onboarding := r.Group("/onboarding")
	{
		onboarding.GET("", handler.ListHired)
		onboarding.PUT("/:id/status", handler.UpdateStatus)
	}
}

// ListHired godoc
// @Summary      List hired candidates
// @Description  Unified hired-only view across both entry paths
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.PipelineEntry}
// @Failure      401  {object}  response.Response
// @Router       /onboarding [get]
// @Security     BearerAuth
func (h *OnboardingHandler) ListHired(c *gin.Context) {
	if !hiringRole(c) {
		c.Error(apperror.Forbidden("Only hiring roles can view onboarding"))
		return
	}

	entries, err := h.pipelineUC.HiredPipeline(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Hired candidates retrieved", entries)
}

// UpdateOnboardingRequest is the request payload for an onboarding update
type UpdateOnboardingRequest struct {
	OnboardingStatus string `json:"onboarding_status" binding:"required"`
}

// UpdateStatus godoc
// @Summary      Update onboarding status
// @Description  Writes the onboarding flag to whichever store owns the id
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "Pipeline entry ID"
// @Param        body  body  UpdateOnboardingRequest  true  "New onboarding status"
// @Success      200  {object}  response.Response{data=domain.PipelineEntry}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /onboarding/{id}/status [put]
// @Security     BearerAuth
func (h *OnboardingHandler) UpdateStatus(c *gin.Context) {
	if !hiringRole(c) {
		c.Error(apperror.Forbidden("Only hiring roles can update onboarding"))
		return
	}

	var req UpdateOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	entry, err := h.pipelineUC.SetOnboardingStatus(c, c.Param("id"), req.OnboardingStatus)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Onboarding status updated", entry)
}
