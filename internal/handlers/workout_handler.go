package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/boxfit/gym-scheduler/internal/audit"
	"github.com/boxfit/gym-scheduler/internal/httperr"
	"github.com/boxfit/gym-scheduler/internal/httpresp"
	"github.com/boxfit/gym-scheduler/internal/models"
)

// WorkoutHandler serves the workout-of-the-day board. One workout per
// calendar day; managers write, everyone signed in reads.
type WorkoutHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewWorkoutHandler(gdb *gorm.DB, dispatcher *audit.Dispatcher) *WorkoutHandler {
	return &WorkoutHandler{db: gdb, audit: dispatcher}
}

// Get returns the workout for ?date= (default today).
func (h *WorkoutHandler) Get(c *gin.Context) {
	date := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			respondError(c, httperr.ErrBusiness("invalid_date"))
			return
		}
		date = parsed
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var workout models.Workout
	err := h.db.
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		First(&workout).Error
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, workout)
}

type CreateWorkoutRequest struct {
	Date    string `json:"date" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (h *WorkoutHandler) Create(c *gin.Context) {
	actorID, _, ok := currentActor(c)
	if !ok {
		return
	}

	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		respondError(c, httperr.ErrBusiness("invalid_date"))
		return
	}

	workout := models.Workout{
		Date:      date,
		Title:     req.Title,
		Content:   req.Content,
		CreatedBy: actorID,
	}

	if err := h.db.Create(&workout).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "workout_exists", "message": "A workout is already posted for this date."})
			return
		}
		respondError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "workout_created",
		Entity:   "workout",
		EntityID: &workout.ID,
		Metadata: map[string]any{"date": req.Date},
	})

	httpresp.Created(c, workout)
}

type UpdateWorkoutRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (h *WorkoutHandler) Update(c *gin.Context) {
	actorID, _, ok := currentActor(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var workout models.Workout
	if err := h.db.First(&workout, id).Error; err != nil {
		respondError(c, err)
		return
	}

	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}

	if len(updates) == 0 {
		httpresp.OK(c, workout)
		return
	}

	if err := h.db.Model(&workout).Updates(updates).Error; err != nil {
		respondError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "workout_updated",
		Entity:   "workout",
		EntityID: &workout.ID,
	})

	httpresp.OK(c, workout)
}

func (h *WorkoutHandler) Delete(c *gin.Context) {
	actorID, _, ok := currentActor(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var workout models.Workout
	if err := h.db.First(&workout, id).Error; err != nil {
		respondError(c, err)
		return
	}

	if err := h.db.Delete(&workout).Error; err != nil {
		respondError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "workout_deleted",
		Entity:   "workout",
		EntityID: &workout.ID,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
