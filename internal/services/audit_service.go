package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"fintrack/internal/logger"
	"fintrack/internal/models"
)

// auditService records who did what to which resource.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log writes an audit entry. Auditing is best-effort: a failed write is
// logged and swallowed so it can never fail the operation being audited.
func (s *auditService) Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]any) {
	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      marshalChanges(action, changes),
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("audit log write failed",
			"error", err,
			"user_id", userID,
			"action", action,
			"resource", resourceType,
			"resource_id", resourceID,
		)
	}
}

// marshalChanges serializes the change payload, falling back to an empty
// object when the payload does not marshal.
func marshalChanges(action string, changes map[string]any) string {
	if changes == nil {
		return ""
	}
	data, err := json.Marshal(changes)
	if err != nil {
		logger.Get().Errorw("audit changes not serializable", "error", err, "action", action)
		return "{}"
	}
	return string(data)
}
