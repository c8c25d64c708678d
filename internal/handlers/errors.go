package handlers

import (
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/boxfit/gym-scheduler/internal/httperr"
)

// Business codes map to HTTP statuses in one place so every handler answers
// the same way. Role failures use 401 by convention, not 403.
var businessStatus = map[string]int{
	"invalid_day":           http.StatusBadRequest,
	"invalid_time":          http.StatusBadRequest,
	"invalid_date":          http.StatusBadRequest,
	"invalid_capacity":      http.StatusBadRequest,
	"invalid_booking_kind":  http.StatusBadRequest,
	"slot_unavailable":      http.StatusBadRequest,
	"slot_full":             http.StatusBadRequest,
	"slot_has_reservations": http.StatusBadRequest,

	"pending_approval":     http.StatusUnauthorized,
	"subscription_expired": http.StatusUnauthorized,
	"not_allowed":          http.StatusUnauthorized,

	"user_not_found": http.StatusNotFound,

	"duplicate_booking":  http.StatusConflict,
	"duplicate_attendee": http.StatusConflict,
	"slot_exists":        http.StatusConflict,
}

var businessMessage = map[string]string{
	"invalid_day":           "Day must be one of the weekly class days.",
	"invalid_time":          "Time must look like 6:00 AM.",
	"invalid_date":          "Date must look like 2006-01-02.",
	"invalid_capacity":      "Capacity must be at least 1.",
	"invalid_booking_kind":  "Unknown booking kind.",
	"slot_unavailable":      "This class is not open for booking.",
	"slot_full":             "This class is full.",
	"slot_has_reservations": "Slot has reservations; mark it unavailable instead of deleting.",
	"pending_approval":      "Your account is awaiting approval.",
	"subscription_expired":  "Your subscription has expired.",
	"not_allowed":           "You are not allowed to do that.",
	"user_not_found":        "User not found.",
	"duplicate_booking":     "You already booked this class.",
	"duplicate_attendee":    "This attendee is already on the list.",
	"slot_exists":           "A slot with this day and time already exists.",
}

func respondError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		status, ok := businessStatus[be.Code]
		if !ok {
			status = http.StatusBadRequest
		}
		httperr.Write(c, status, be.Code, businessMessage[be.Code])
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "not_found", "Record not found.")
		return
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		httperr.Unavailable(c, "database_unavailable", "Service temporarily unavailable.")
		return
	}

	httperr.Internal(c, "internal_error", "Unexpected error.")
}
