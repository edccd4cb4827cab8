package usecase

import (
	"context"

	"bhrms/internal/converter"
	"bhrms/internal/delivery/dto"
	"bhrms/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// defaultAuditLogLimit caps the audit listing; the trail grows unbounded
// and the admin view only needs recent activity.
const defaultAuditLogLimit = 200

type AuditLogUsecase interface {
	GetRecentLogs(ctx context.Context) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

func (u *auditLogUsecase) GetRecentLogs(ctx context.Context) (*dto.AuditLogListResponse, error) {
	logs, err := u.auditRepo.FindAll(u.db.WithContext(ctx), defaultAuditLogLimit)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}
