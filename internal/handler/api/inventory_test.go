//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/handler/api"
	resdto "hotel-booking-core/internal/handler/dto/response"
	"hotel-booking-core/internal/handler/middleware"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/pkg/jwt"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/queries"
	"hotel-booking-core/tests/common/httptest"
	"hotel-booking-core/tests/common/testutil"
	commandsmock "hotel-booking-core/tests/mock/commands"
	queriesmock "hotel-booking-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InventoryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockInventoryCommands
	mockQueries  *queriesmock.MockAvailabilityQueries
	tokens       *jwt.Service
	now          time.Time
}

func (s *InventoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockInventoryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.tokens = jwt.NewService("test-secret", time.Hour)
	s.now = time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC)

	handler := api.NewInventoryHandler(s.mockCommands, s.mockQueries, clock.NewMockClock(s.now))
	auth := middleware.NewAuthMiddleware(s.tokens)

	s.router.GET("/api/inventory/availability", handler.Availability)
	s.router.PUT("/api/admin/inventory/allotments", auth.RequireAuth(), auth.RequireRole(jwt.RoleAdmin), handler.UpsertAllotments)
}

func (s *InventoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInventoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(InventoryHandlerTestSuite))
}

func (s *InventoryHandlerTestSuite) token(role string) string {
	token, err := s.tokens.GenerateToken(uuid.New(), role)
	s.Require().NoError(err)
	return token
}

// ================================================================================
// TestAvailability
// ================================================================================

func (s *InventoryHandlerTestSuite) TestAvailability() {
	key := inventory.RoomKey{HotelID: "hotel-1", RoomTypeID: "deluxe"}
	r := stay.MustRange("2030-03-10", "2030-03-12")
	url := "/api/inventory/availability?hotelId=hotel-1&roomTypeId=deluxe&checkIn=2030-03-10&checkOut=2030-03-12&rooms=2"

	s.Run("success: returns per-night availability", func() {
		view := &queries.AvailabilityView{
			HotelID:        key.HotelID,
			RoomTypeID:     key.RoomTypeID,
			CheckIn:        "2030-03-10",
			CheckOut:       "2030-03-12",
			RoomsAvailable: 3,
			Bookable:       true,
			Nights: []queries.NightAvailabilityView{
				{Date: "2030-03-10", Quantity: 5, Reserved: 2, Available: 3},
				{Date: "2030-03-11", Quantity: 4, Reserved: 0, Available: 4},
			},
		}
		s.mockQueries.EXPECT().Availability(gomock.Any(), key, r, 2).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.RoomsAvailable)
		s.True(body.Bookable)
		s.Require().Len(body.Nights, 2)
		s.Equal(2, body.Nights[0].Reserved)
		s.Equal(4, body.Nights[1].Available)
	})

	s.Run("success: rooms defaults to one", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), key, r, 1).
			Return(&queries.AvailabilityView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/inventory/availability?hotelId=hotel-1&roomTypeId=deluxe&checkIn=2030-03-10&checkOut=2030-03-12", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on invalid query", func() {
		testCases := []struct {
			name string
			url  string
		}{
			{name: "missing hotelId", url: "/api/inventory/availability?roomTypeId=deluxe&checkIn=2030-03-10&checkOut=2030-03-12"},
			{name: "check-out before check-in", url: "/api/inventory/availability?hotelId=h&roomTypeId=r&checkIn=2030-03-12&checkOut=2030-03-10"},
			{name: "malformed date", url: "/api/inventory/availability?hotelId=h&roomTypeId=r&checkIn=10-03-2030&checkOut=2030-03-12"},
			{name: "rooms below one", url: "/api/inventory/availability?hotelId=h&roomTypeId=r&checkIn=2030-03-10&checkOut=2030-03-12&rooms=0"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 500 on unexpected store failure", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), key, r, 2).Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestUpsertAllotments
// ================================================================================

func (s *InventoryHandlerTestSuite) TestUpsertAllotments() {
	url := "/api/admin/inventory/allotments"
	reqBody := map[string]any{
		"hotelId":      "hotel-1",
		"roomTypeId":   "deluxe",
		"startDate":    "2030-03-10",
		"endDate":      "2030-03-13",
		"allotmentQty": 5,
		"stopSell":     false,
	}

	s.Run("success: expands the range into one allotment per night", func() {
		s.mockCommands.EXPECT().UpsertAllotments(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in []commands.AllotmentInput) ([]inventory.Allotment, error) {
				s.Require().Len(in, 3)
				s.Equal(time.Date(2030, 3, 10, 0, 0, 0, 0, time.UTC), in[0].Date)
				s.Equal(time.Date(2030, 3, 12, 0, 0, 0, 0, time.UTC), in[2].Date)
				out := make([]inventory.Allotment, 0, len(in))
				for _, a := range in {
					out = append(out, inventory.Allotment{
						Key:      inventory.RoomKey{HotelID: a.HotelID, RoomTypeID: a.RoomTypeID},
						Date:     a.Date,
						Quantity: a.Quantity,
					})
				}
				return out, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, s.token(jwt.RoleAdmin))

		var body resdto.UpsertAllotmentsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.Upserted)
		s.Equal("2030-03-12", body.Allotments[2].Date)
		s.Equal(5, body.Allotments[0].AllotmentQty)
	})

	s.Run("error: 400 Bad Request on invalid range", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
			msg    string
		}{
			{name: "start in the past", mutate: testutil.Field("startDate", "2030-02-01"), msg: "cannot be in the past"},
			{name: "end equals start", mutate: testutil.Field("endDate", "2030-03-10"), msg: "startDate must be before endDate"},
			{name: "negative quantity", mutate: testutil.Field("allotmentQty", -1), msg: "Invalid request"},
			{name: "missing quantity", mutate: testutil.Field("allotmentQty", nil), msg: "Invalid request"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, s.token(jwt.RoleAdmin))
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 Unauthorized with a forged token", func() {
		forged, err := jwt.NewService("other-secret", time.Hour).GenerateToken(uuid.New(), jwt.RoleAdmin)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, forged)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 403 Forbidden for guests", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, s.token(jwt.RoleGuest))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}
