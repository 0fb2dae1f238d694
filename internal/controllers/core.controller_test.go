package controllers_test

import (
	"net/http"
	"testing"

	"inkwave/internal/controllers"
	"inkwave/internal/mocks"
	"inkwave/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewsletterSubscribe(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockNewsletterRepository, *mocks.MockMailer)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "new subscription",
			requestBody: map[string]interface{}{"email": "reader@example.com"},
			setupMocks: func(newsletterRepo *mocks.MockNewsletterRepository, mailer *mocks.MockMailer) {
				newsletterRepo.On("Subscribe", "reader@example.com").Return(true, nil)
				mailer.On("SendNewsletterWelcomeEmail", "reader@example.com").Return()
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Subscription successful! Check your email.",
		},
		{
			name:        "already subscribed",
			requestBody: map[string]interface{}{"email": "reader@example.com"},
			setupMocks: func(newsletterRepo *mocks.MockNewsletterRepository, mailer *mocks.MockMailer) {
				newsletterRepo.On("Subscribe", "reader@example.com").Return(false, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "You are already subscribed",
		},
		{
			name:        "missing email",
			requestBody: map[string]interface{}{"email": "   "},
			setupMocks: func(newsletterRepo *mocks.MockNewsletterRepository, mailer *mocks.MockMailer) {
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Email is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newsletterRepo := new(mocks.MockNewsletterRepository)
			mailer := new(mocks.MockMailer)
			tt.setupMocks(newsletterRepo, mailer)
			controller := controllers.NewNewsletterController(newsletterRepo, mailer)

			router := setupTestRouter()
			router.POST("/subscribe", controller.Subscribe)

			w := postJSON(router, "/subscribe", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedMsg)
			newsletterRepo.AssertExpectations(t)
			mailer.AssertExpectations(t)
			if tt.expectedStatus != http.StatusCreated {
				mailer.AssertNotCalled(t, "SendNewsletterWelcomeEmail", mock.Anything)
			}
		})
	}
}

func TestContactSubmitMessage(t *testing.T) {
	t.Run("complete form is stored and confirmed", func(t *testing.T) {
		contactRepo := new(mocks.MockContactRepository)
		mailer := new(mocks.MockMailer)
		contactRepo.On("Create", mock.MatchedBy(func(m *models.ContactMessage) bool {
			return m.Name == "Reader" && m.Email == "reader@example.com" && m.Subject == "Hi" && m.Message == "Nice blog"
		})).Return(nil)
		mailer.On("SendContactConfirmationEmail", "reader@example.com", "Reader").Return()
		controller := controllers.NewContactController(contactRepo, mailer)

		router := setupTestRouter()
		router.POST("/contact", controller.SubmitMessage)

		w := postJSON(router, "/contact", map[string]interface{}{
			"name": "Reader", "email": "reader@example.com",
			"subject": "Hi", "message": "Nice blog",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		contactRepo.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("blank field rejects the whole form", func(t *testing.T) {
		contactRepo := new(mocks.MockContactRepository)
		mailer := new(mocks.MockMailer)
		controller := controllers.NewContactController(contactRepo, mailer)

		router := setupTestRouter()
		router.POST("/contact", controller.SubmitMessage)

		w := postJSON(router, "/contact", map[string]interface{}{
			"name": "Reader", "email": "reader@example.com",
			"subject": "   ", "message": "Nice blog",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		contactRepo.AssertNotCalled(t, "Create", mock.Anything)
		mailer.AssertNotCalled(t, "SendContactConfirmationEmail", mock.Anything, mock.Anything)
	})
}
