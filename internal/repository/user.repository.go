package repository

import (
	"inkwave/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id uint) error
	SetUserVerified(email string) error
	UpdatePassword(id uint, passwordHash string) error
	ExistsByUsername(username string, excludeID uint) (bool, error)
	ExistsByEmail(email string, excludeID uint) (bool, error)
	SearchByUsername(query string, limit int) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (ur *userRepository) CreateUser(user *models.User) error {
	user.Verified = false
	return ur.db.Create(user).Error
}

func (ur *userRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := ur.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := ur.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := ur.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepository) UpdateUser(user *models.User) error {
	return ur.db.Save(user).Error
}

func (ur *userRepository) DeleteUser(id uint) error {
	return ur.db.Delete(&models.User{}, id).Error
}

func (ur *userRepository) SetUserVerified(email string) error {
	return ur.db.Model(&models.User{}).Where("email = ?", email).Update("verified", true).Error
}

func (ur *userRepository) UpdatePassword(id uint, passwordHash string) error {
	return ur.db.Model(&models.User{}).Where("id = ?", id).Update("password", passwordHash).Error
}

func (ur *userRepository) ExistsByUsername(username string, excludeID uint) (bool, error) {
	var count int64
	query := ur.db.Model(&models.User{}).Where("username = ?", username)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (ur *userRepository) ExistsByEmail(email string, excludeID uint) (bool, error) {
	var count int64
	query := ur.db.Model(&models.User{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (ur *userRepository) SearchByUsername(query string, limit int) ([]models.User, error) {
	var users []models.User
	err := ur.db.Where("username ILIKE ?", "%"+query+"%").
		Limit(limit).
		Find(&users).Error
	return users, err
}
