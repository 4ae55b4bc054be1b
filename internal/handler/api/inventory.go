package api

import (
	"net/http"

	"hotel-booking-core/internal/domain/inventory"
	reqdto "hotel-booking-core/internal/handler/dto/request"
	resdto "hotel-booking-core/internal/handler/dto/response"
	"hotel-booking-core/internal/handler/httperr"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	cmds  commands.InventoryCommands
	q     queries.AvailabilityQueries
	clock clock.Clock
}

func NewInventoryHandler(cmds commands.InventoryCommands, q queries.AvailabilityQueries, clock clock.Clock) *InventoryHandler {
	return &InventoryHandler{cmds: cmds, q: q, clock: clock}
}

// @Summary Owner inventory availability
// @Description Per-night availability for a room type over a stay
// @Tags inventory
// @Produce json
// @Param hotelId query string true "Hotel ID"
// @Param roomTypeId query string true "Room type ID"
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Param rooms query int false "Rooms requested" default(1)
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/inventory/availability [get]
func (h *InventoryHandler) Availability(c *gin.Context) {
	var req reqdto.AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	r, err := req.StayRange()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	key := inventory.RoomKey{HotelID: req.HotelID, RoomTypeID: req.RoomTypeID}
	view, err := h.q.Availability(c.Request.Context(), key, r, req.RoomsOrDefault())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromAvailabilityView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Upsert allotments
// @Description Set the allotment of every night from startDate (inclusive) to endDate (exclusive)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertAllotmentsRequest true "Allotment range"
// @Success 200 {object} resdto.UpsertAllotmentsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/inventory/allotments [put]
func (h *InventoryHandler) UpsertAllotments(c *gin.Context) {
	var req reqdto.UpsertAllotmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	inputs, err := req.ToInputs(h.clock.Now())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	saved, err := h.cmds.UpsertAllotments(c.Request.Context(), inputs)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAllotments(saved))
}
