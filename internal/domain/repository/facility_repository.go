package repository

import (
	"bhrms/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FacilityRepository interface {
	Create(db *gorm.DB, facility *entity.Facility) error
	FindAll(db *gorm.DB, facilityType entity.FacilityType) ([]entity.Facility, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
