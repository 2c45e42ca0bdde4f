package v1

import (
	"net/http"
	"strconv"

	"go-pipeline-tracker/internal/delivery/http/response"
	"go-pipeline-tracker/internal/domain"
	"go-pipeline-tracker/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

// NewInterviewHandler registers the interview routes
func NewInterviewHandler(r *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := r.Group("/interviews")
	{
		interviews.GET("", handler.List)
		interviews.POST("", handler.Create)
		interviews.PUT("/:id", handler.Update)
		interviews.DELETE("/:id", handler.Delete)
	}
}

// notifyFlag reads the notify_manager query parameter, defaulting to false.
func notifyFlag(c *gin.Context) bool {
	notify, _ := strconv.ParseBool(c.Query("notify_manager"))
	return notify
}

// List godoc
// @Summary      List interviews
// @Tags         interviews
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Interview}
// @Router       /interviews [get]
// @Security     BearerAuth
func (h *InterviewHandler) List(c *gin.Context) {
	if !hiringRole(c) {
		c.Error(apperror.Forbidden("Only hiring roles can view interviews"))
		return
	}

	interviews, err := h.interviewUC.ListInterviews(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interviews retrieved", interviews)
}

// Create godoc
// @Summary      Create an interview
// @Description  Optionally notifies the hiring manager of the matching position
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        notify_manager  query  bool              false  "Send a manager notification"
// @Param        body            body   domain.Interview  true   "Interview"
// @Success      201  {object}  response.Response{data=domain.Interview}
// @Failure      400  {object}  response.Response
// @Router       /interviews [post]
// @Security     BearerAuth
func (h *InterviewHandler) Create(c *gin.Context) {
	if !hiringRole(c) {
		c.Error(apperror.Forbidden("Only hiring roles can manage interviews"))
		return
	}

	var iv domain.Interview
	if err := c.ShouldBindJSON(&iv); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.interviewUC.CreateInterview(c, &iv, notifyFlag(c)); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview created", iv)
}

// Update godoc
// @Summary      Update an interview
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id              path   string            true   "Interview ID"
// @Param        notify_manager  query  bool              false  "Send a manager notification"
// @Param        body            body   domain.Interview  true   "Updated fields"
// @Success      200  {object}  response.Response{data=domain.Interview}
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id} [put]
// @Security     BearerAuth
func (h *InterviewHandler) Update(c *gin.Context) {
	if !hiringRole(c) {
		c.Error(apperror.Forbidden("Only hiring roles can manage interviews"))
		return
	}

	var iv domain.Interview
	if err := c.ShouldBindJSON(&iv); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	iv.ID = c.Param("id")

	if err := h.interviewUC.UpdateInterview(c, &iv, notifyFlag(c)); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview updated", iv)
}

// Delete godoc
// @Summary      Delete an interview
// @Tags         interviews
// @Produce      json
// @Param        id  path  string  true  "Interview ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id} [delete]
// @Security     BearerAuth
func (h *InterviewHandler) Delete(c *gin.Context) {
	if !hiringRole(c) {
		c.Error(apperror.Forbidden("Only hiring roles can manage interviews"))
		return
	}

	if err := h.interviewUC.DeleteInterview(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview deleted", nil)
}
