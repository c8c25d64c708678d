package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/boxfit/gym-scheduler/internal/httpresp"
	booking "github.com/boxfit/gym-scheduler/internal/usecase/booking"
)

type ReservationHandler struct {
	createUC *booking.CreateReservation
	listUC   *booking.ListUserBookings
	removeUC *booking.RemoveBooking
}

func NewReservationHandler(
	createUC *booking.CreateReservation,
	listUC *booking.ListUserBookings,
	removeUC *booking.RemoveBooking,
) *ReservationHandler {
	return &ReservationHandler{
		createUC: createUC,
		listUC:   listUC,
		removeUC: removeUC,
	}
}

type CreateReservationRequest struct {
	Day  string `json:"day" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// Create books the caller into the next occurrence of a weekly class.
func (h *ReservationHandler) Create(c *gin.Context) {
	actorID, role, ok := currentActor(c)
	if !ok {
		return
	}

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), booking.CreateReservationInput{
		UserID: actorID,
		Role:   role,
		Day:    req.Day,
		Time:   req.Time,
	}, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, res)
}

// ListMine returns the caller's current-week bookings, merged across
// self-service reservations and manager-assigned attendance.
func (h *ReservationHandler) ListMine(c *gin.Context) {
	actorID, _, ok := currentActor(c)
	if !ok {
		return
	}

	entries, err := h.listUC.Execute(c.Request.Context(), actorID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, entries)
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	actorID, role, ok := currentActor(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	if err := h.removeUC.Execute(c.Request.Context(), booking.RemoveBookingInput{
		ActorID:   actorID,
		ActorRole: role,
		Kind:      booking.KindReservation,
		ID:        uint(id),
	}); err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
