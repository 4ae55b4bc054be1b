package api

import (
	"net/http"

	"hotel-booking-core/internal/domain/booking"
	reqdto "hotel-booking-core/internal/handler/dto/request"
	resdto "hotel-booking-core/internal/handler/dto/response"
	"hotel-booking-core/internal/handler/httperr"
	"hotel-booking-core/internal/handler/middleware"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

var ErrInvalidBookingID = errs.New("invalid booking id")

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Create a DRAFT booking. Replaying the same idempotency key returns the existing booking.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	intent, err := req.ToIntent(c.GetHeader(idempotencyKeyHeader))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	b, err := h.cmds.CreateBooking(c.Request.Context(), userID, intent)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, b)
}

// @Summary Get booking
// @Description Get one of the caller's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	view, err := h.q.GetBooking(c.Request.Context(), userID, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Confirm booking
// @Description Recheck and confirm a booking. A failed recheck returns 200 with status FAILED.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body reqdto.ConfirmBookingRequest false "Confirm booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	key := c.GetHeader(idempotencyKeyHeader)
	if key == "" && c.Request.ContentLength > 0 {
		var req reqdto.ConfirmBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
		key = req.IdempotencyKey
	}

	b, err := h.cmds.ConfirmBooking(c.Request.Context(), userID, id, key)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, b)
}

// @Summary Cancel booking
// @Description Cancel a CONFIRMED booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	b, err := h.cmds.CancelBooking(c.Request.Context(), userID, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, b)
}

func (h *BookingHandler) requireUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrMissingToken, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return userID, true
}

func (h *BookingHandler) respond(c *gin.Context, status int, b *booking.Booking) {
	res, err := resdto.FromBooking(b)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if status == http.StatusCreated {
		c.Header("Location", "/api/bookings/"+b.ID().String())
	}
	c.JSON(status, res)
}

func bookingIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, ErrInvalidBookingID), "Invalid booking id", nil)
		return uuid.Nil, false
	}
	return id, true
}
