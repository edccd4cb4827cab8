package repository

import (
	"bhrms/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HotlineRepository interface {
	Create(db *gorm.DB, hotline *entity.Hotline) error
	FindAll(db *gorm.DB, category entity.HotlineCategory) ([]entity.Hotline, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
