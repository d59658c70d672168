package api

import (
	"net/http"
	"strconv"

	reqdto "smart-parking/internal/handler/dto/request"
	resdto "smart-parking/internal/handler/dto/response"
	"smart-parking/internal/usecase/parking"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	commands parking.Commands
}

func NewAdminHandler(commands parking.Commands) *AdminHandler {
	return &AdminHandler{commands: commands}
}

// @Summary Add a slot
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AddSlotRequest true "Slot"
// @Success 201 {object} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/slots [post]
func (h *AdminHandler) AddSlot(c *gin.Context) {
	var req reqdto.AddSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBadRequest(c, err, "Invalid request format")
		return
	}

	s, err := h.commands.AddSlot(c.Request.Context(), req.ID, req.Location)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSlot(s))
}

// @Summary Remove an available slot
// @Tags admin
// @Param id path int true "Slot ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/slots/{id} [delete]
func (h *AdminHandler) RemoveSlot(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithBadRequest(c, err, "Invalid slot ID format")
		return
	}

	if err := h.commands.RemoveSlot(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
