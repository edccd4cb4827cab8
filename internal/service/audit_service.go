package service

import (
	"bhrms/internal/domain/entity"
	"bhrms/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService records who did what. Failures are logged and swallowed by
// callers where the audit entry is best-effort (logins), and propagated
// where it shares a transaction with the audited write.
type AuditService interface {
	LogCreate(tx *gorm.DB, credential string, action string, entityName string, entityID string, newValue interface{}) error
	LogDelete(tx *gorm.DB, credential string, action string, entityName string, entityID string) error
	LogStatusChange(tx *gorm.DB, credential string, referralID string, from, to entity.ReferralStatus) error
	LogLogin(tx *gorm.DB, credential string) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) record(tx *gorm.DB, credential string, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		Action:   action,
		Metadata: metadata,
	}
	if credential != "" {
		auditLog.Credential = &credential
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

// LogCreate logs a create action with the created value
func (s *auditService) LogCreate(tx *gorm.DB, credential string, action string, entityName string, entityID string, newValue interface{}) error {
	return s.record(tx, credential, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"new_value": newValue,
	})
}

// LogDelete logs a delete action
func (s *auditService) LogDelete(tx *gorm.DB, credential string, action string, entityName string, entityID string) error {
	return s.record(tx, credential, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
	})
}

// LogStatusChange logs a referral status transition with both endpoints
func (s *auditService) LogStatusChange(tx *gorm.DB, credential string, referralID string, from, to entity.ReferralStatus) error {
	return s.record(tx, credential, entity.AuditActionReferralStatus, entity.JSON{
		"entity":    "referral",
		"entity_id": referralID,
		"from":      string(from),
		"to":        string(to),
	})
}

// LogLogin logs a successful login
func (s *auditService) LogLogin(tx *gorm.DB, credential string) error {
	return s.record(tx, credential, entity.AuditActionUserLogin, nil)
}
