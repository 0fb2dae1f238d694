package controllers

import (
	"net/http"
	"strings"

	"inkwave/internal/mailer"
	"inkwave/internal/models"
	"inkwave/internal/repository"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	contactRepo repository.ContactRepository
	mail        mailer.Sender
}

func NewContactController(contactRepo repository.ContactRepository, mail mailer.Sender) *ContactController {
	return &ContactController{contactRepo: contactRepo, mail: mail}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitMessage godoc
// @Summary Send a contact message
// @Description Stores the message and emails a confirmation to the sender
// @Tags contact
// @Accept json
// @Produce json
// @Param message body contactRequest true "Contact message"
// @Success 201 {object} map[string]interface{} "Message stored"
// @Failure 400 {object} map[string]interface{} "Incomplete form"
// @Router /contact [post]
func (cc *ContactController) SubmitMessage(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	subject := strings.TrimSpace(req.Subject)
	message := strings.TrimSpace(req.Message)

	if name == "" || email == "" || subject == "" || message == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Please fill out all fields correctly",
			"error":   "All fields are required",
		})
		return
	}

	contactMessage := models.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}

	if err := cc.contactRepo.Create(&contactMessage); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to send message",
			"error":   err.Error(),
		})
		return
	}

	cc.mail.SendContactConfirmationEmail(email, name)

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Your message has been sent successfully",
		"data":    nil,
	})
}
