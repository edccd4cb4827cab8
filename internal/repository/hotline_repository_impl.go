package repository

import (
	"bhrms/internal/domain/entity"
	domainRepo "bhrms/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type hotlineRepository struct{}

func NewHotlineRepository() domainRepo.HotlineRepository {
	return &hotlineRepository{}
}

func (r *hotlineRepository) Create(db *gorm.DB, hotline *entity.Hotline) error {
	return db.Create(hotline).Error
}

func (r *hotlineRepository) FindAll(db *gorm.DB, category entity.HotlineCategory) ([]entity.Hotline, error) {
	var hotlines []entity.Hotline
	query := db
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Order("category ASC, name ASC").Find(&hotlines).Error
	if err != nil {
		return nil, err
	}
	return hotlines, nil
}

func (r *hotlineRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Hotline{})
	return affected.RowsAffected, affected.Error
}
