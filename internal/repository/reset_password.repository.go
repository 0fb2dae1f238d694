package repository

import (
	"inkwave/internal/models"

	"gorm.io/gorm"
)

type ResetPasswordRepository interface {
	Save(reset *models.ResetPassword) error
	FindByToken(token string) (*models.ResetPassword, error)
	DeleteByEmail(email string) error
}

type resetPasswordRepository struct {
	db *gorm.DB
}

func NewResetPasswordRepository(db *gorm.DB) ResetPasswordRepository {
	return &resetPasswordRepository{db: db}
}

// Save replaces any earlier outstanding reset for the same email.
func (r *resetPasswordRepository) Save(reset *models.ResetPassword) error {
	if err := r.db.Where("email = ?", reset.Email).Delete(&models.ResetPassword{}).Error; err != nil {
		return err
	}
	return r.db.Create(reset).Error
}

func (r *resetPasswordRepository) FindByToken(token string) (*models.ResetPassword, error) {
	var reset models.ResetPassword
	err := r.db.Where("token = ?", token).First(&reset).Error
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *resetPasswordRepository) DeleteByEmail(email string) error {
	return r.db.Where("email = ?", email).Delete(&models.ResetPassword{}).Error
}
