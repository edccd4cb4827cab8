package repository

import (
	"bhrms/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByCredential(db *gorm.DB, credential string) (*entity.User, error)
	FindAll(db *gorm.DB) ([]entity.User, error)
	Delete(db *gorm.DB, credential string) (int64, error)
}
