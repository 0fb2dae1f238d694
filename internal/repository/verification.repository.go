package repository

import (
	"inkwave/internal/models"

	"gorm.io/gorm"
)

type VerificationRepository interface {
	Save(verification *models.Verification) error
	FindByToken(token string) (*models.Verification, error)
	DeleteByEmail(email string) error
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

// Save replaces any earlier activation token for the same email.
func (r *verificationRepository) Save(verification *models.Verification) error {
	if err := r.db.Where("email = ?", verification.Email).Delete(&models.Verification{}).Error; err != nil {
		return err
	}
	return r.db.Create(verification).Error
}

func (r *verificationRepository) FindByToken(token string) (*models.Verification, error) {
	var verification models.Verification
	err := r.db.Where("token = ?", token).First(&verification).Error
	if err != nil {
		return nil, err
	}
	return &verification, nil
}

func (r *verificationRepository) DeleteByEmail(email string) error {
	return r.db.Where("email = ?", email).Delete(&models.Verification{}).Error
}
