package controllers

import (
	"net/http"
	"strings"

	"inkwave/internal/mailer"
	"inkwave/internal/repository"

	"github.com/gin-gonic/gin"
)

type NewsletterController struct {
	newsletterRepo repository.NewsletterRepository
	mail           mailer.Sender
}

func NewNewsletterController(newsletterRepo repository.NewsletterRepository, mail mailer.Sender) *NewsletterController {
	return &NewsletterController{newsletterRepo: newsletterRepo, mail: mail}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Description Stores the email and sends a welcome message; delivery failure never undoes the subscription
// @Tags newsletter
// @Accept json
// @Produce json
// @Param subscription body subscribeRequest true "Email to subscribe"
// @Success 201 {object} map[string]interface{} "Subscription created"
// @Failure 400 {object} map[string]interface{} "Missing email or already subscribed"
// @Router /subscribe [post]
func (nc *NewsletterController) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request",
			"error":   err.Error(),
		})
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Email is required",
			"error":   "Missing email address",
		})
		return
	}

	created, err := nc.newsletterRepo.Subscribe(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to subscribe",
			"error":   err.Error(),
		})
		return
	}

	if !created {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "You are already subscribed",
			"error":   "Duplicate subscription",
		})
		return
	}

	nc.mail.SendNewsletterWelcomeEmail(email)

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Subscription successful! Check your email.",
		"data":    nil,
	})
}
