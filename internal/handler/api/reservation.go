package api

import (
	"context"
	"net/http"

	"smart-parking/internal/domain/reservation"
	reqdto "smart-parking/internal/handler/dto/request"
	resdto "smart-parking/internal/handler/dto/response"
	"smart-parking/internal/handler/httperr"
	"smart-parking/internal/usecase/parking"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	commands parking.Commands
	queries  parking.Queries
}

func NewReservationHandler(commands parking.Commands, queries parking.Queries) *ReservationHandler {
	return &ReservationHandler{
		commands: commands,
		queries:  queries,
	}
}

// @Summary Reserve a slot
// @Description Reserve an available slot for a user
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBadRequest(c, err, "Invalid request format")
		return
	}
	u, err := req.ToUser()
	if err != nil {
		abortWithBadRequest(c, err, "Invalid request format")
		return
	}

	res, err := h.commands.ReserveSlot(c.Request.Context(), u, req.SlotID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.Header("Location", "/api/reservations/"+res.ID())
	c.JSON(http.StatusCreated, resdto.FromReservation(res))
}

// @Summary List reservations
// @Description List every reservation, oldest first
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromReservations(h.queries.ListReservations(c.Request.Context())))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	res, ok := h.queries.FindReservationByID(c.Request.Context(), c.Param("id"))
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, parking.ErrReservationNotFound, "Reservation not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Occupy a reserved slot
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/occupy [post]
func (h *ReservationHandler) Occupy(c *gin.Context) {
	h.advance(c, h.commands.OccupySlot)
}

// @Summary Release an occupied slot
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/release [post]
func (h *ReservationHandler) Release(c *gin.Context) {
	h.advance(c, h.commands.ReleaseSlot)
}

// @Summary Cancel a reservation before occupation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.advance(c, h.commands.CancelReservation)
}

func (h *ReservationHandler) advance(c *gin.Context, step func(context.Context, string) (reservation.Reservation, error)) {
	res, err := step(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}
