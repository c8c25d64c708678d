package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/boxfit/gym-scheduler/internal/httperr"
	"github.com/boxfit/gym-scheduler/internal/httpresp"
	"github.com/boxfit/gym-scheduler/internal/models"
)

// RecordHandler is the member-facing personal record log.
type RecordHandler struct {
	db *gorm.DB
}

func NewRecordHandler(gdb *gorm.DB) *RecordHandler {
	return &RecordHandler{db: gdb}
}

// ListMine returns the caller's records, newest first. ?movement= filters by
// movement name substring.
func (h *RecordHandler) ListMine(c *gin.Context) {
	actorID, _, ok := currentActor(c)
	if !ok {
		return
	}

	query := h.db.Model(&models.PersonalRecord{}).Where("user_id = ?", actorID)

	if movement := strings.TrimSpace(c.Query("movement")); movement != "" {
		query = query.Where("LOWER(movement) LIKE ?", "%"+strings.ToLower(movement)+"%")
	}

	var records []models.PersonalRecord
	if err := query.Order("achieved_at DESC").Find(&records).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, records)
}

type CreateRecordRequest struct {
	Movement string  `json:"movement" binding:"required"`
	WeightKg float64 `json:"weight_kg"`
	Reps     int     `json:"reps"`

	// Optional; defaults to today.
	AchievedAt string `json:"achieved_at"`

	Notes string `json:"notes"`
}

func (h *RecordHandler) Create(c *gin.Context) {
	actorID, _, ok := currentActor(c)
	if !ok {
		return
	}

	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.WeightKg < 0 || req.Reps < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_record_values"})
		return
	}

	achievedAt := time.Now()
	if req.AchievedAt != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.AchievedAt, time.Local)
		if err != nil {
			respondError(c, httperr.ErrBusiness("invalid_date"))
			return
		}
		achievedAt = parsed
	}

	record := models.PersonalRecord{
		UserID:     actorID,
		Movement:   strings.TrimSpace(req.Movement),
		WeightKg:   req.WeightKg,
		Reps:       req.Reps,
		AchievedAt: achievedAt,
		Notes:      req.Notes,
	}

	if err := h.db.Create(&record).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, record)
}

func (h *RecordHandler) Delete(c *gin.Context) {
	actorID, role, ok := currentActor(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var record models.PersonalRecord
	if err := h.db.First(&record, id).Error; err != nil {
		respondError(c, err)
		return
	}

	if role != models.RoleManager && record.UserID != actorID {
		respondError(c, httperr.ErrBusiness("not_allowed"))
		return
	}

	if err := h.db.Delete(&record).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
