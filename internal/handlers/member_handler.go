package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/boxfit/gym-scheduler/internal/audit"
	"github.com/boxfit/gym-scheduler/internal/httperr"
	"github.com/boxfit/gym-scheduler/internal/httpresp"
	"github.com/boxfit/gym-scheduler/internal/models"
)

// MemberHandler covers the manager-side member administration surface.
type MemberHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewMemberHandler(gdb *gorm.DB, dispatcher *audit.Dispatcher) *MemberHandler {
	return &MemberHandler{db: gdb, audit: dispatcher}
}

type MemberView struct {
	ID                  uint       `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	Role                string     `json:"role"`
	Approved            bool       `json:"approved"`
	SubscriptionExpires *time.Time `json:"subscription_expires"`
	CreatedAt           time.Time  `json:"created_at"`
}

func toMemberView(u models.User) MemberView {
	return MemberView{
		ID:                  u.ID,
		Name:                u.Name,
		Email:               u.Email,
		Role:                u.Role,
		Approved:            u.Approved,
		SubscriptionExpires: u.SubscriptionExpires,
		CreatedAt:           u.CreatedAt,
	}
}

// List returns members, newest first. Query params: search (name or email
// substring), pending=true (only unapproved).
func (h *MemberHandler) List(c *gin.Context) {
	query := h.db.Model(&models.User{}).Where("role = ?", models.RoleClient)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	if c.Query("pending") == "true" {
		query = query.Where("approved = ?", false)
	}

	var users []models.User
	if err := query.Order("created_at DESC").Find(&users).Error; err != nil {
		respondError(c, err)
		return
	}

	views := make([]MemberView, 0, len(users))
	for _, u := range users {
		views = append(views, toMemberView(u))
	}

	httpresp.List(c, views)
}

func (h *MemberHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, toMemberView(user))
}

type ApproveMemberRequest struct {
	// Omitted means approve; false revokes approval.
	Approved *bool `json:"approved"`
}

func (h *MemberHandler) Approve(c *gin.Context) {
	actorID, _, ok := currentActor(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		respondError(c, err)
		return
	}

	var req ApproveMemberRequest
	_ = c.ShouldBindJSON(&req)

	approved := true
	if req.Approved != nil {
		approved = *req.Approved
	}

	if err := h.db.Model(&user).Update("approved", approved).Error; err != nil {
		respondError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "member_approval_changed",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"approved": approved},
	})

	httpresp.OK(c, toMemberView(user))
}

type UpdateSubscriptionRequest struct {
	// Null clears the expiry, meaning an open-ended subscription.
	Expires *string `json:"expires"`
}

func (h *MemberHandler) UpdateSubscription(c *gin.Context) {
	actorID, _, ok := currentActor(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		respondError(c, err)
		return
	}

	var req UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var expires *time.Time
	if req.Expires != nil {
		parsed, err := time.ParseInLocation("2006-01-02", *req.Expires, time.Local)
		if err != nil {
			respondError(c, httperr.ErrBusiness("invalid_date"))
			return
		}
		// Expiry covers the whole named day.
		end := parsed.AddDate(0, 0, 1)
		expires = &end
	}

	if err := h.db.Model(&user).Update("subscription_expires", expires).Error; err != nil {
		respondError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "subscription_updated",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"expires": req.Expires},
	})

	httpresp.OK(c, toMemberView(user))
}

func (h *MemberHandler) Delete(c *gin.Context) {
	actorID, _, ok := currentActor(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		respondError(c, err)
		return
	}

	if user.Role == models.RoleManager {
		respondError(c, httperr.ErrBusiness("not_allowed"))
		return
	}

	// Bookings go with the member; the audit trail stays.
	if err := h.db.Where("user_id = ?", user.ID).Delete(&models.Reservation{}).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := h.db.Where("user_id = ?", user.ID).Delete(&models.ManagerAttendee{}).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := h.db.Where("user_id = ?", user.ID).Delete(&models.PersonalRecord{}).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := h.db.Delete(&user).Error; err != nil {
		respondError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "member_deleted",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"email": user.Email},
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
