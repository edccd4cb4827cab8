package repository

import (
	"bhrms/internal/domain/entity"
	domainRepo "bhrms/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type facilityRepository struct{}

func NewFacilityRepository() domainRepo.FacilityRepository {
	return &facilityRepository{}
}

func (r *facilityRepository) Create(db *gorm.DB, facility *entity.Facility) error {
	return db.Create(facility).Error
}

func (r *facilityRepository) FindAll(db *gorm.DB, facilityType entity.FacilityType) ([]entity.Facility, error) {
	var facilities []entity.Facility
	query := db
	if facilityType != "" {
		query = query.Where("type = ?", facilityType)
	}
	err := query.Order("name ASC").Find(&facilities).Error
	if err != nil {
		return nil, err
	}
	return facilities, nil
}

func (r *facilityRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Facility{})
	return affected.RowsAffected, affected.Error
}
