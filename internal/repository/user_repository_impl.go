package repository

import (
	"errors"

	"bhrms/internal/domain/entity"
	domainRepo "bhrms/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindByCredential(db *gorm.DB, credential string) (*entity.User, error) {
	var user entity.User
	err := db.Where("credential = ?", credential).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(db *gorm.DB) ([]entity.User, error) {
	var users []entity.User
	err := db.Order(`"createdAt" DESC`).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Delete(db *gorm.DB, credential string) (int64, error) {
	affected := db.Where("credential = ?", credential).Delete(&entity.User{})
	return affected.RowsAffected, affected.Error
}
