package api

import (
	"net/http"
	"strconv"

	resdto "smart-parking/internal/handler/dto/response"
	"smart-parking/internal/usecase/parking"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	queries parking.Queries
}

func NewSlotHandler(queries parking.Queries) *SlotHandler {
	return &SlotHandler{queries: queries}
}

// @Summary List slots
// @Description List every slot, or only available ones with available=true
// @Tags slots
// @Produce json
// @Param available query bool false "Only return available slots"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Router /api/slots [get]
func (h *SlotHandler) List(c *gin.Context) {
	onlyAvailable := false
	if raw, ok := c.GetQuery("available"); ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			abortWithBadRequest(c, err, "Invalid value for available")
			return
		}
		onlyAvailable = v
	}

	ctx := c.Request.Context()
	if onlyAvailable {
		c.JSON(http.StatusOK, resdto.FromSlots(h.queries.ListAvailableSlots(ctx)))
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlots(h.queries.ListAllSlots(ctx)))
}

// @Summary Inventory summary
// @Description Slot counts by state and reservation counts by status
// @Tags slots
// @Produce json
// @Success 200 {object} resdto.SummaryResponse
// @Router /api/slots/summary [get]
func (h *SlotHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromSummary(h.queries.Snapshot(c.Request.Context())))
}
