package api_test

import (
	"net/http"
	"testing"

	"smart-parking/internal/domain/reservation"
	"smart-parking/internal/domain/slot"
	"smart-parking/internal/handler"
	"smart-parking/internal/handler/api"
	resdto "smart-parking/internal/handler/dto/response"
	"smart-parking/internal/handler/middleware"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/usecase/parking"
	"smart-parking/tests/common/builder"
	"smart-parking/tests/common/httptest"
	"smart-parking/tests/common/testutil"
	parkingmock "smart-parking/tests/mock/parking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ParkingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *parkingmock.MockCommands
	mockQueries  *parkingmock.MockQueries
}

func (s *ParkingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = parkingmock.NewMockCommands(s.mockCtrl)
	s.mockQueries = parkingmock.NewMockQueries(s.mockCtrl)

	handler.SetupRoutes(s.router, handler.Handlers{
		Slot:        api.NewSlotHandler(s.mockQueries),
		Reservation: api.NewReservationHandler(s.mockCommands, s.mockQueries),
		Admin:       api.NewAdminHandler(s.mockCommands),
	})
}

func (s *ParkingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestParkingHandlerSuite(t *testing.T) {
	suite.Run(t, new(ParkingHandlerTestSuite))
}

func kindErr(sentinel, kind error) error {
	return errs.Mark(errs.Wrap(sentinel, "test"), kind)
}

// ================================================================================
// Slots
// ================================================================================

func (s *ParkingHandlerTestSuite) TestListSlots() {
	free := builder.NewSlotBuilder().Build()
	taken := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
		b.ID, b.Location, b.State = 2, "A2", slot.StateOccupied
	}).Build()

	s.Run("success: lists every slot", func() {
		s.mockQueries.EXPECT().ListAllSlots(gomock.Any()).Return([]slot.Slot{free, taken}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/slots", nil)

		var body []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]resdto.SlotResponse{
			{ID: 1, Location: "A1", State: "available"},
			{ID: 2, Location: "A2", State: "occupied", Occupied: true},
		}, body)
	})

	s.Run("success: available=true filters", func() {
		s.mockQueries.EXPECT().ListAvailableSlots(gomock.Any()).Return([]slot.Slot{free}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/slots?available=true", nil)

		var body []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: empty inventory is an empty array", func() {
		s.mockQueries.EXPECT().ListAllSlots(gomock.Any()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/slots?available=false", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 400 on a malformed filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/slots?available=maybe", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "available")
	})
}

func (s *ParkingHandlerTestSuite) TestSummary() {
	s.mockQueries.EXPECT().Snapshot(gomock.Any()).Return(parking.Summary{
		TotalSlots:     10,
		SlotsByState:   map[slot.State]int{slot.StateAvailable: 9, slot.StateReserved: 1},
		Reservations:   1,
		ReservationsBy: map[reservation.Status]int{reservation.StatusReserved: 1},
	}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/slots/summary", nil)

	var body resdto.SummaryResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(10, body.TotalSlots)
	s.Equal(map[string]int{"available": 9, "reserved": 1, "occupied": 0}, body.SlotsByState)
	s.Equal(map[string]int{"RESERVED": 1, "ACTIVE": 0, "COMPLETED": 0, "CANCELLED": 0}, body.ReservationsBy)
}

// ================================================================================
// Reservations
// ================================================================================

func (s *ParkingHandlerTestSuite) TestCreateReservation() {
	url := "/api/reservations"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	created := b.Build()

	s.Run("success: returns 201 with the reservation", func() {
		s.mockCommands.EXPECT().ReserveSlot(gomock.Any(), b.User.Build(), b.SlotID).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(resdto.FromReservation(created).ID, body.ID)
		s.Equal("RESERVED", body.Status)
		s.Equal("A1", body.SlotLocation)
		s.Equal("alice@example.com", body.User.Email)
		s.Nil(body.StartedAt)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": url + "/" + created.ID()})
	})

	s.Run("error: 400 on invalid bodies", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing slotId", mutate: testutil.Field("slotId", nil)},
			{name: "missing user", mutate: testutil.Field("user", nil)},
			{name: "slotId is a string", mutate: testutil.Field("slotId", "one")},
			{name: "user without id", mutate: testutil.Field("user", map[string]any{"name": "Alice"})},
			{name: "user id is blank", mutate: testutil.Field("user", map[string]any{"id": "   ", "name": "Alice"})},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate))
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 400 on malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"slotId":`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	errCases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "unknown slot", err: kindErr(parking.ErrSlotNotFound, errs.ErrNotFound), wantStatus: http.StatusNotFound, wantMsg: "slot not found"},
		{name: "slot taken", err: kindErr(parking.ErrSlotUnavailable, errs.ErrInvalidState), wantStatus: http.StatusConflict, wantMsg: "not available"},
		{name: "token collision", err: errs.Wrap(parking.ErrTokenCollision, "test"), wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
	}
	for _, tc := range errCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().ReserveSlot(gomock.Any(), gomock.Any(), gomock.Any()).Return(reservation.Reservation{}, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
			httptest.AssertErrorResponse(s.T(), rec, tc.wantStatus, tc.wantMsg)
		})
	}
}

func (s *ParkingHandlerTestSuite) TestGetReservation() {
	res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.Status = reservation.StatusCompleted
	}).Build()

	s.Run("success", func() {
		s.mockQueries.EXPECT().FindReservationByID(gomock.Any(), res.ID()).Return(res, true).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/"+res.ID(), nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("COMPLETED", body.Status)
		s.Require().NotNil(body.StartedAt)
		s.Require().NotNil(body.EndedAt)
		s.True(body.EndedAt.After(*body.StartedAt))
	})

	s.Run("error: 404 when unknown", func() {
		s.mockQueries.EXPECT().FindReservationByID(gomock.Any(), "nope").Return(reservation.Reservation{}, false).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/nope", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ParkingHandlerTestSuite) TestListReservations() {
	first := builder.NewReservationBuilder().Build()
	second := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.ID, b.SlotID, b.SlotLocation = "res-0002", 2, "A2"
		b.Status = reservation.StatusCancelled
	}).Build()
	s.mockQueries.EXPECT().ListReservations(gomock.Any()).Return([]reservation.Reservation{first, second}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations", nil)

	var body []resdto.ReservationResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 2)
	s.Equal([]string{"res-0001", "res-0002"}, []string{body[0].ID, body[1].ID})
	s.Equal("CANCELLED", body[1].Status)
}

func (s *ParkingHandlerTestSuite) TestLifecycleEndpoints() {
	id := "res-0001"
	active := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.Status = reservation.StatusActive
	}).Build()

	type expectFn func(ret reservation.Reservation, err error)
	endpoints := []struct {
		name   string
		path   string
		expect expectFn
	}{
		{name: "occupy", path: "/occupy", expect: func(ret reservation.Reservation, err error) {
			s.mockCommands.EXPECT().OccupySlot(gomock.Any(), id).Return(ret, err).Times(1)
		}},
		{name: "release", path: "/release", expect: func(ret reservation.Reservation, err error) {
			s.mockCommands.EXPECT().ReleaseSlot(gomock.Any(), id).Return(ret, err).Times(1)
		}},
		{name: "cancel", path: "/cancel", expect: func(ret reservation.Reservation, err error) {
			s.mockCommands.EXPECT().CancelReservation(gomock.Any(), id).Return(ret, err).Times(1)
		}},
	}

	for _, ep := range endpoints {
		url := "/api/reservations/" + id + ep.path

		s.Run(ep.name+" success", func() {
			ep.expect(active, nil)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

			var body resdto.ReservationResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Equal(id, body.ID)
		})

		s.Run(ep.name+" not found", func() {
			ep.expect(reservation.Reservation{}, kindErr(parking.ErrReservationNotFound, errs.ErrNotFound))
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
		})

		s.Run(ep.name+" wrong status", func() {
			ep.expect(reservation.Reservation{}, kindErr(parking.ErrInvalidTransition, errs.ErrInvalidState))
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
		})
	}
}

// ================================================================================
// Admin
// ================================================================================

func (s *ParkingHandlerTestSuite) TestAddSlot() {
	url := "/api/admin/slots"
	b := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) { b.ID, b.Location = 11, "C1" })

	s.Run("success: returns 201", func() {
		s.mockCommands.EXPECT().AddSlot(gomock.Any(), 11, "C1").Return(b.Build(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildAddRequestDTO())

		var body resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(resdto.SlotResponse{ID: 11, Location: "C1", State: "available"}, body)
	})

	s.Run("error: 400 when location is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), b.BuildAddRequestDTO(), testutil.Field("location", nil)))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 when the manager rejects the id", func() {
		s.mockCommands.EXPECT().AddSlot(gomock.Any(), -1, "C1").
			Return(slot.Slot{}, kindErr(parking.ErrInvalidSlot, errs.ErrInvalidArgument)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), b.BuildAddRequestDTO(), testutil.Field("id", -1)))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 on duplicate id", func() {
		s.mockCommands.EXPECT().AddSlot(gomock.Any(), 11, "C1").
			Return(slot.Slot{}, kindErr(parking.ErrSlotExists, errs.ErrInvalidState)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildAddRequestDTO())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *ParkingHandlerTestSuite) TestRemoveSlot() {
	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().RemoveSlot(gomock.Any(), 3).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/admin/slots/3", nil)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 400 on a non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/admin/slots/abc", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid slot ID format")
	})

	s.Run("error: 409 while the slot is in use", func() {
		s.mockCommands.EXPECT().RemoveSlot(gomock.Any(), 3).Return(kindErr(parking.ErrSlotInUse, errs.ErrInvalidState)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/admin/slots/3", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 404 when unknown", func() {
		s.mockCommands.EXPECT().RemoveSlot(gomock.Any(), 99).Return(kindErr(parking.ErrSlotNotFound, errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/admin/slots/99", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *ParkingHandlerTestSuite) TestHealth() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok","message":"Service is healthy"}`, rec.Body.String())
}
