package repository

import (
	"errors"
	"time"

	"bhrms/internal/domain/entity"
	domainRepo "bhrms/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type referralRepository struct{}

func NewReferralRepository() domainRepo.ReferralRepository {
	return &referralRepository{}
}

func (r *referralRepository) Create(db *gorm.DB, referral *entity.Referral) error {
	return db.Create(referral).Error
}

func (r *referralRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Referral, error) {
	var referral entity.Referral
	err := db.Where("id = ?", id).First(&referral).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &referral, nil
}

// FindAll returns referrals newest-first. Supports optional filters:
// status, priority, creating credential, and patient name substring.
func (r *referralRepository) FindAll(db *gorm.DB, filter *entity.ReferralFilter) ([]entity.Referral, error) {
	var referrals []entity.Referral
	query := db

	if filter != nil {
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.Priority != "" {
			query = query.Where("priority = ?", filter.Priority)
		}
		if filter.CreatedBy != "" {
			query = query.Where(`"createdBy" = ?`, filter.CreatedBy)
		}
		if filter.PatientName != "" {
			query = query.Where(`"patientName" ILIKE ?`, "%"+filter.PatientName+"%")
		}
	}

	err := query.Order(`"createdAt" DESC`).Find(&referrals).Error
	if err != nil {
		return nil, err
	}
	return referrals, nil
}

func (r *referralRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.ReferralStatus) error {
	return db.Model(&entity.Referral{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":    status,
			"updatedAt": time.Now(),
		}).Error
}
