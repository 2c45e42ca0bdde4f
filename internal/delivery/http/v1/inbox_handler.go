package v1

import (
	"net/http"

	"go-pipeline-tracker/internal/delivery/http/response"
	"go-pipeline-tracker/internal/domain"
	"go-pipeline-tracker/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InboxHandler struct {
	inboxUC domain.InboxUsecase
}

// NewInboxHandler registers the inbox routes
func NewInboxHandler(r *gin.RouterGroup, inboxUC domain.InboxUsecase) {
	handler := &InboxHandler{inboxUC: inboxUC}

	inbox := r.Group("/inbox")
	{
		inbox.GET("", handler.List)
		inbox.PUT("/:id/status", handler.Mark)
	}
}

// List godoc
// @Summary      List the caller's inbox
// @Description  Managers also receive system broadcast messages
// @Tags         inbox
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Message}
// @Failure      401  {object}  response.Response
// @Router       /inbox [get]
// @Security     BearerAuth
func (h *InboxHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	messages, err := h.inboxUC.ListMessages(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Messages retrieved", messages)
}

// MarkMessageRequest is the request payload for a read-state change
type MarkMessageRequest struct {
	Status string `json:"status" binding:"required"`
}

// Mark godoc
// @Summary      Mark a message read or unread
// @Tags         inbox
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "Message ID"
// @Param        body  body  MarkMessageRequest  true  "New read state"
// @Success      200  {object}  response.Response{data=domain.Message}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /inbox/{id}/status [put]
// @Security     BearerAuth
func (h *InboxHandler) Mark(c *gin.Context) {
	var req MarkMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	msg, err := h.inboxUC.MarkMessage(c, c.Param("id"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Message updated", msg)
}
