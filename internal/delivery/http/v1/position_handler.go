package v1

import (
	"net/http"

	"go-pipeline-tracker/internal/delivery/http/response"
	"go-pipeline-tracker/internal/domain"
	"go-pipeline-tracker/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PositionHandler struct {
	positionUC domain.PositionUsecase
}

// NewPositionHandler registers the position routes. The open-positions list
// is public; everything else requires a hiring role.
func NewPositionHandler(public *gin.RouterGroup, protected *gin.RouterGroup, positionUC domain.PositionUsecase) {
	handler := &PositionHandler{positionUC: positionUC}

	public.GET("/positions", handler.ListOpen)

	positions := protected.Group("/positions")
	{
		positions.GET("/mine", handler.ListMine)
		positions.POST("", handler.Create)
		positions.PUT("/:id", handler.Update)
		positions.DELETE("/:id", handler.Delete)
	}
}

// ListOpen godoc
// @Summary      List open positions
// @Tags         positions
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Position}
// @Router       /positions [get]
func (h *PositionHandler) ListOpen(c *gin.Context) {
	positions, err := h.positionUC.ListOpenPositions(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Positions retrieved", positions)
}

// ListMine godoc
// @Summary      List positions created by the caller
// @Tags         positions
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Position}
// @Router       /positions/mine [get]
// @Security     BearerAuth
func (h *PositionHandler) ListMine(c *gin.Context) {
	if !hiringRole(c) {
		c.Error(apperror.Forbidden("Only hiring roles can manage positions"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	positions, err := h.positionUC.ListMyPositions(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Positions retrieved", positions)
}

// Create godoc
// @Summary      Create a position
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        body  body  domain.Position  true  "Position to create"
// @Success      201  {object}  response.Response{data=domain.Position}
// @Failure      400  {object}  response.Response
// @Router       /positions [post]
// @Security     BearerAuth
func (h *PositionHandler) Create(c *gin.Context) {
	if !hiringRole(c) {
		c.Error(apperror.Forbidden("Only hiring roles can manage positions"))
		return
	}

	var pos domain.Position
	if err := c.ShouldBindJSON(&pos); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.positionUC.CreatePosition(c, userID, &pos); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Position created", pos)
}

// Update godoc
// @Summary      Update a position
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "Position ID"
// @Param        body  body  domain.Position  true  "Updated fields"
// @Success      200  {object}  response.Response{data=domain.Position}
// @Failure      404  {object}  response.Response
// @Router       /positions/{id} [put]
// @Security     BearerAuth
func (h *PositionHandler) Update(c *gin.Context) {
	if !hiringRole(c) {
		c.Error(apperror.Forbidden("Only hiring roles can manage positions"))
		return
	}

	var pos domain.Position
	if err := c.ShouldBindJSON(&pos); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	pos.ID = c.Param("id")

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.positionUC.UpdatePosition(c, userID, &pos); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Position updated", pos)
}

// Delete godoc
// @Summary      Delete a position
// @Description  Only the creator can delete. Existing submissions keep their
// @Description  rows and become orphans, which unified views exclude.
// @Tags         positions
// @Produce      json
// @Param        id  path  string  true  "Position ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /positions/{id} [delete]
// @Security     BearerAuth
func (h *PositionHandler) Delete(c *gin.Context) {
	if !hiringRole(c) {
		c.Error(apperror.Forbidden("Only hiring roles can manage positions"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.positionUC.DeletePosition(c, userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Position deleted", nil)
}
