package v1

import (
	"net/http"

	"go-pipeline-tracker/internal/delivery/http/response"
	"go-pipeline-tracker/internal/domain"
	"go-pipeline-tracker/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PipelineHandler struct {
	pipelineUC domain.PipelineUsecase
}

// NewPipelineHandler registers the unified pipeline routes
func NewPipelineHandler(r *gin.RouterGroup, pipelineUC domain.PipelineUsecase) {
	handler := &PipelineHandler{pipelineUC: pipelineUC}

	apps := r.Group("/applications")
	{
		apps.GET("", handler.ListPipeline)
		apps.GET("/history/:email", handler.History)
		apps.PUT("/:id/review", handler.Review)
		apps.PUT("/:id/reject", handler.Reject)
		apps.PUT("/:id/hire", handler.Hire)
		apps.POST("/export", handler.Export)
	}
}

// hiringRole reports whether the caller may operate the pipeline.
func hiringRole(c *gin.Context) bool {
	role := c.GetString(string(domain.KeyUserRole))
	return role == domain.RoleEmployer || role == domain.RoleHiringManager
}

// ListPipeline godoc
// @Summary      List unified pipeline
// @Description  Merged list of direct applications and recruiter submissions, newest first
// @Tags         pipeline
// @Produce      json
// @Param        status     query  string  false  "Exact status filter"
// @Param        search     query  string  false  "Free-text search over name, email and position"
// @Param        page       query  int     false  "Page number"
// @Param        page_size  query  int     false  "Page size"
// @Success      200  {object}  response.Response{data=domain.PaginatedResult[domain.PipelineEntry]}
// @Failure      401  {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *PipelineHandler) ListPipeline(c *gin.Context) {
	if !hiringRole(c) {
		c.Error(apperror.Forbidden("Only hiring roles can view the pipeline"))
		return
	}

	var filter domain.PipelineFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.pipelineUC.ListPipeline(c, filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Pipeline retrieved", result)
}

// History godoc
// @Summary      Candidate history by email
// @Description  Every pipeline entry an email has produced, from both entry paths
// @Tags         pipeline
// @Produce      json
// @Param        email  path  string  true  "Candidate email"
// @Success      200  {object}  response.Response{data=[]domain.PipelineEntry}
// @Failure      401  {object}  response.Response
// @Router       /applications/history/{email} [get]
// @Security     BearerAuth
func (h *PipelineHandler) History(c *gin.Context) {
	if !hiringRole(c) {
		c.Error(apperror.Forbidden("Only hiring roles can view candidate history"))
		return
	}

	entries, err := h.pipelineUC.HistoryByEmail(c, c.Param("email"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "History retrieved", entries)
}

// Review godoc
// @Summary      Mark as under review
// @Tags         pipeline
// @Produce      json
// @Param        id  path  string  true  "Pipeline entry ID"
// @Success      200  {object}  response.Response{data=domain.PipelineEntry}
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/review [put]
// @Security     BearerAuth
func (h *PipelineHandler) Review(c *gin.Context) {
	if !hiringRole(c) {
		c.Error(apperror.Forbidden("Only hiring roles can update pipeline status"))
		return
	}

	entry, err := h.pipelineUC.Review(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Status updated to Under Review", entry)
}

// Reject godoc
// @Summary      Reject a pipeline entry
// @Tags         pipeline
// @Produce      json
// @Param        id  path  string  true  "Pipeline entry ID"
// @Success      200  {object}  response.Response{data=domain.PipelineEntry}
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/reject [put]
// @Security     BearerAuth
func (h *PipelineHandler) Reject(c *gin.Context) {
	if !hiringRole(c) {
		c.Error(apperror.Forbidden("Only hiring roles can update pipeline status"))
		return
	}

	entry, err := h.pipelineUC.Reject(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application rejected", entry)
}

// Hire godoc
// @Summary      Hire a pipeline entry
// @Description  Sets status to Hired and starts onboarding in the same write
// @Tags         pipeline
// @Produce      json
// @Param        id  path  string  true  "Pipeline entry ID"
// @Success      200  {object}  response.Response{data=domain.PipelineEntry}
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/hire [put]
// @Security     BearerAuth
func (h *PipelineHandler) Hire(c *gin.Context) {
	if !hiringRole(c) {
		c.Error(apperror.Forbidden("Only hiring roles can update pipeline status"))
		return
	}

	entry, err := h.pipelineUC.Hire(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate hired! Onboarding started.", entry)
}

// Export godoc
// @Summary      Export the unified pipeline
// @Description  Exports the filtered pipeline as xlsx or csv
// @Tags         pipeline
// @Accept       json
// @Produce      application/octet-stream
// @Param        body  body  domain.PipelineExportRequest  true  "Export configuration"
// @Success      200  {file}  binary
// @Failure      400  {object}  response.Response
// @Router       /applications/export [post]
// @Security     BearerAuth
func (h *PipelineHandler) Export(c *gin.Context) {
	if !hiringRole(c) {
		c.Error(apperror.Forbidden("Only hiring roles can export the pipeline"))
		return
	}

	var req domain.PipelineExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	data, filename, err := h.pipelineUC.ExportPipeline(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/octet-stream", data)
}
