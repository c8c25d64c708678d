package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/boxfit/gym-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID, _, ok := currentActor(c)
	if !ok {
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		respondError(c, err)
		return
	}

	active := user.SubscriptionExpires == nil || user.SubscriptionExpires.After(time.Now())

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"role":     user.Role,
			"approved": user.Approved,
		},
		"subscription": gin.H{
			"expires": user.SubscriptionExpires,
			"active":  active,
		},
	})
}
