package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/boxfit/gym-scheduler/internal/httperr"
	"github.com/boxfit/gym-scheduler/internal/httpresp"
	"github.com/boxfit/gym-scheduler/internal/schedule"
	booking "github.com/boxfit/gym-scheduler/internal/usecase/booking"
)

type AttendeeHandler struct {
	createUC   *booking.CreateAttendee
	listSlotUC *booking.ListSlotBookings
	removeUC   *booking.RemoveBooking
}

func NewAttendeeHandler(
	createUC *booking.CreateAttendee,
	listSlotUC *booking.ListSlotBookings,
	removeUC *booking.RemoveBooking,
) *AttendeeHandler {
	return &AttendeeHandler{
		createUC:   createUC,
		listSlotUC: listSlotUC,
		removeUC:   removeUC,
	}
}

type CreateAttendeeRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Day    string `json:"day" binding:"required"`
	Time   string `json:"time" binding:"required"`

	// Optional; defaults to the next occurrence of day/time.
	Date string `json:"date"`

	ReservationID *uint `json:"reservation_id"`
}

// Create puts a member on a class list by manager decision. An explicit date
// pins a concrete occurrence; the class clock is applied to it so attendee
// and reservation dates stay comparable.
func (h *AttendeeHandler) Create(c *gin.Context) {
	managerID, _, ok := currentActor(c)
	if !ok {
		return
	}

	var req CreateAttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var date time.Time
	if req.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			respondError(c, httperr.ErrBusiness("invalid_date"))
			return
		}
		hour, minute, err := schedule.ParseClock(req.Time)
		if err != nil {
			respondError(c, httperr.ErrBusiness("invalid_time"))
			return
		}
		date = time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local)
	}

	a, err := h.createUC.Execute(c.Request.Context(), booking.CreateAttendeeInput{
		ManagerID:     managerID,
		UserID:        req.UserID,
		Day:           req.Day,
		Time:          req.Time,
		Date:          date,
		ReservationID: req.ReservationID,
	}, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, a)
}

// ListSlot answers "who is in this class on this date" for managers.
// Query params: day (required), date (required, 2006-01-02), time (optional).
func (h *AttendeeHandler) ListSlot(c *gin.Context) {
	day := c.Query("day")
	dateStr := c.Query("date")
	timeLabel := c.Query("time")

	if day == "" || dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day_and_date_required"})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		respondError(c, httperr.ErrBusiness("invalid_date"))
		return
	}

	entries, err := h.listSlotUC.Execute(c.Request.Context(), booking.ListSlotBookingsInput{
		Day:  day,
		Date: date,
		Time: timeLabel,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, entries)
}

func (h *AttendeeHandler) Delete(c *gin.Context) {
	managerID, role, ok := currentActor(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	if err := h.removeUC.Execute(c.Request.Context(), booking.RemoveBookingInput{
		ActorID:   managerID,
		ActorRole: role,
		Kind:      booking.KindAttendee,
		ID:        uint(id),
	}); err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
