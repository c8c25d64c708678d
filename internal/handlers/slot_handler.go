package handlers

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/boxfit/gym-scheduler/internal/audit"
	"github.com/boxfit/gym-scheduler/internal/db"
	"github.com/boxfit/gym-scheduler/internal/httperr"
	"github.com/boxfit/gym-scheduler/internal/httpresp"
	"github.com/boxfit/gym-scheduler/internal/models"
	"github.com/boxfit/gym-scheduler/internal/schedule"
	"github.com/boxfit/gym-scheduler/internal/validators"
)

type SlotHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSlotHandler(gdb *gorm.DB, dispatcher *audit.Dispatcher) *SlotHandler {
	return &SlotHandler{db: gdb, audit: dispatcher}
}

// SlotView is a grid cell plus its live occupancy.
type SlotView struct {
	ID        uint   `json:"id"`
	Day       string `json:"day"`
	Time      string `json:"time"`
	Capacity  int    `json:"capacity"`
	Available bool   `json:"available"`
	Occupancy int64  `json:"occupancy"`
	Remaining int64  `json:"remaining"`
}

type slotCount struct {
	Day   string
	Time  string
	Count int64
}

// List returns the whole weekly grid. Missing cells are healed back in before
// reading, so the response always carries all day/time combinations.
func (h *SlotHandler) List(c *gin.Context) {
	if err := db.SeedGrid(h.db); err != nil {
		respondError(c, err)
		return
	}

	var slots []models.Slot
	if err := h.db.Find(&slots).Error; err != nil {
		respondError(c, err)
		return
	}

	resCounts, err := h.countByCell(&models.Reservation{})
	if err != nil {
		respondError(c, err)
		return
	}
	attCounts, err := h.countByCell(&models.ManagerAttendee{})
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		occ := resCounts[s.Day+"|"+s.Time] + attCounts[s.Day+"|"+s.Time]
		remaining := int64(s.Capacity) - occ
		if remaining < 0 {
			remaining = 0
		}
		views = append(views, SlotView{
			ID:        s.ID,
			Day:       s.Day,
			Time:      s.Time,
			Capacity:  s.Capacity,
			Available: s.Available,
			Occupancy: occ,
			Remaining: remaining,
		})
	}

	sort.SliceStable(views, func(i, j int) bool {
		di, dj := schedule.DayIndex(views[i].Day), schedule.DayIndex(views[j].Day)
		if di != dj {
			return di < dj
		}
		hi, mi, _ := schedule.ParseClock(views[i].Time)
		hj, mj, _ := schedule.ParseClock(views[j].Time)
		return hi*60+mi < hj*60+mj
	})

	httpresp.List(c, views)
}

func (h *SlotHandler) countByCell(model any) (map[string]int64, error) {
	var rows []slotCount
	err := h.db.Model(model).
		Select("day, time, count(*) as count").
		Group("day, time").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Day+"|"+r.Time] = r.Count
	}
	return counts, nil
}

type CreateSlotRequest struct {
	Day       string `json:"day" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Capacity  int    `json:"capacity"`
	Available *bool  `json:"available"`
}

func (h *SlotHandler) Create(c *gin.Context) {
	actorID, _, ok := currentActor(c)
	if !ok {
		return
	}

	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validators.IsValidDay(req.Day) {
		respondError(c, httperr.ErrBusiness("invalid_day"))
		return
	}
	if !validators.IsValidTimeLabel(req.Time) {
		respondError(c, httperr.ErrBusiness("invalid_time"))
		return
	}

	capacity := req.Capacity
	if capacity == 0 {
		capacity = models.DefaultSlotCapacity
	}
	if !validators.IsValidCapacity(capacity) {
		respondError(c, httperr.ErrBusiness("invalid_capacity"))
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	slot := models.Slot{
		Day:       req.Day,
		Time:      req.Time,
		Capacity:  capacity,
		Available: available,
	}

	if err := h.db.Create(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondError(c, httperr.ErrBusiness("slot_exists"))
			return
		}
		respondError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "slot_created",
		Entity:   "slot",
		EntityID: &slot.ID,
		Metadata: map[string]any{"day": slot.Day, "time": slot.Time},
	})

	httpresp.Created(c, slot)
}

type UpdateSlotRequest struct {
	Day       *string `json:"day"`
	Time      *string `json:"time"`
	Capacity  *int    `json:"capacity"`
	Available *bool   `json:"available"`
}

func (h *SlotHandler) Update(c *gin.Context) {
	actorID, _, ok := currentActor(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var slot models.Slot
	if err := h.db.First(&slot, id).Error; err != nil {
		respondError(c, err)
		return
	}

	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	updates := map[string]any{}

	if req.Day != nil {
		if !validators.IsValidDay(*req.Day) {
			respondError(c, httperr.ErrBusiness("invalid_day"))
			return
		}
		updates["day"] = *req.Day
	}
	if req.Time != nil {
		if !validators.IsValidTimeLabel(*req.Time) {
			respondError(c, httperr.ErrBusiness("invalid_time"))
			return
		}
		updates["time"] = *req.Time
	}
	if req.Capacity != nil {
		if !validators.IsValidCapacity(*req.Capacity) {
			respondError(c, httperr.ErrBusiness("invalid_capacity"))
			return
		}
		updates["capacity"] = *req.Capacity
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}

	if len(updates) == 0 {
		httpresp.OK(c, slot)
		return
	}

	// Moving a slot must not land on another grid cell.
	if req.Day != nil || req.Time != nil {
		day, timeLabel := slot.Day, slot.Time
		if req.Day != nil {
			day = *req.Day
		}
		if req.Time != nil {
			timeLabel = *req.Time
		}

		var count int64
		if err := h.db.Model(&models.Slot{}).
			Where("day = ? AND time = ? AND id <> ?", day, timeLabel, slot.ID).
			Count(&count).Error; err != nil {
			respondError(c, err)
			return
		}
		if count > 0 {
			respondError(c, httperr.ErrBusiness("slot_exists"))
			return
		}
	}

	if err := h.db.Model(&slot).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondError(c, httperr.ErrBusiness("slot_exists"))
			return
		}
		respondError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "slot_updated",
		Entity:   "slot",
		EntityID: &slot.ID,
		Metadata: updates,
	})

	httpresp.OK(c, slot)
}

// Delete removes a grid cell. Cells with self-service reservations are kept;
// marking the slot unavailable is the supported way to close those.
func (h *SlotHandler) Delete(c *gin.Context) {
	actorID, _, ok := currentActor(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var slot models.Slot
	if err := h.db.First(&slot, id).Error; err != nil {
		respondError(c, err)
		return
	}

	var reservations int64
	if err := h.db.Model(&models.Reservation{}).
		Where("day = ? AND time = ?", slot.Day, slot.Time).
		Count(&reservations).Error; err != nil {
		respondError(c, err)
		return
	}
	if reservations > 0 {
		respondError(c, httperr.ErrBusiness("slot_has_reservations"))
		return
	}

	if err := h.db.Delete(&slot).Error; err != nil {
		respondError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "slot_deleted",
		Entity:   "slot",
		EntityID: &slot.ID,
		Metadata: map[string]any{"day": slot.Day, "time": slot.Time},
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
