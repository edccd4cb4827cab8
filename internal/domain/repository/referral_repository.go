package repository

import (
	"bhrms/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReferralRepository interface {
	Create(db *gorm.DB, referral *entity.Referral) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Referral, error)
	FindAll(db *gorm.DB, filter *entity.ReferralFilter) ([]entity.Referral, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.ReferralStatus) error
}
