package repository

import (
	"errors"

	"inkwave/internal/models"

	"gorm.io/gorm"
)

type NewsletterRepository interface {
	// Subscribe stores the email if it is new, reporting whether a row was
	// created.
	Subscribe(email string) (created bool, err error)
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) Subscribe(email string) (bool, error) {
	var existing models.NewsletterSubscription
	err := r.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	err = r.db.Create(&models.NewsletterSubscription{Email: email}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Concurrent subscribe won the race; same outcome as "already
		// subscribed".
		return false, nil
	}
	return err == nil, err
}
