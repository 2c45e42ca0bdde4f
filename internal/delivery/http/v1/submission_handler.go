package v1

import (
	"net/http"

	"go-pipeline-tracker/internal/delivery/http/response"
	"go-pipeline-tracker/internal/domain"
	"go-pipeline-tracker/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	submissionUC domain.SubmissionUsecase
}

// NewSubmissionHandler registers the recruiter submission routes
func NewSubmissionHandler(r *gin.RouterGroup, submissionUC domain.SubmissionUsecase) {
	handler := &SubmissionHandler{submissionUC: submissionUC}

	subs := r.Group("/submissions")
	{
		subs.POST("", handler.Submit)
		subs.GET("/mine", handler.ListMine)
		subs.DELETE("/:id", handler.Delete)
	}
}

// SubmitRequest carries the candidate payload plus the target position.
type SubmitRequest struct {
	PositionID string           `json:"position_id" binding:"required"`
	Candidate  domain.Candidate `json:"candidate" binding:"required"`
}

// Submit godoc
// @Summary      Submit a candidate against a position
// @Description  Creates the candidate record and the submission join in one call
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        body  body  SubmitRequest  true  "Candidate and target position"
// @Success      201  {object}  response.Response{data=domain.Submission}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /submissions [post]
// @Security     BearerAuth
func (h *SubmissionHandler) Submit(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleRecruiter {
		c.Error(apperror.Forbidden("Only recruiters can submit candidates"))
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	sub, err := h.submissionUC.SubmitCandidate(c, userID, req.PositionID, &req.Candidate)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate submitted", sub)
}

// ListMine godoc
// @Summary      List the caller's submissions
// @Description  Populated submissions with optional case-insensitive filters
// @Tags         submissions
// @Produce      json
// @Param        submission_id   query  string  false  "Submission id filter"
// @Param        candidate_name  query  string  false  "Candidate name filter"
// @Param        email           query  string  false  "Email filter"
// @Param        phone           query  string  false  "Phone filter"
// @Param        hiring_manager  query  string  false  "Hiring manager filter"
// @Param        company         query  string  false  "Company filter"
// @Success      200  {object}  response.Response{data=[]domain.SubmissionWithRefs}
// @Router       /submissions/mine [get]
// @Security     BearerAuth
func (h *SubmissionHandler) ListMine(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleRecruiter {
		c.Error(apperror.Forbidden("Only recruiters can list their submissions"))
		return
	}

	filter := domain.SubmissionFilter{
		SubmissionID:  c.Query("submission_id"),
		CandidateName: c.Query("candidate_name"),
		Email:         c.Query("email"),
		Phone:         c.Query("phone"),
		HiringManager: c.Query("hiring_manager"),
		Company:       c.Query("company"),
	}

	userID := c.GetString(string(domain.KeyUserID))
	subs, err := h.submissionUC.ListMySubmissions(c, userID, filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Submissions retrieved", subs)
}

// Delete godoc
// @Summary      Delete a submission
// @Description  Only the submitting recruiter can delete; the candidate record stays
// @Tags         submissions
// @Produce      json
// @Param        id  path  string  true  "Submission ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /submissions/{id} [delete]
// @Security     BearerAuth
func (h *SubmissionHandler) Delete(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleRecruiter {
		c.Error(apperror.Forbidden("Only recruiters can delete submissions"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.submissionUC.DeleteSubmission(c, userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Submission deleted", nil)
}
