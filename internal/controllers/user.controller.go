package controllers

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"inkwave/internal/mailer"
	"inkwave/internal/models"
	"inkwave/internal/repository"
	"inkwave/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const (
	tokenLifetime       = 24 * time.Hour
	loginExpiry         = 72 * time.Hour
	rememberLoginExpiry = 14 * 24 * time.Hour
	minPasswordLength   = 6
	profilePageSize     = 6
)

type UserController struct {
	userRepo         repository.UserRepository
	articleRepo      repository.ArticleRepository
	verificationRepo repository.VerificationRepository
	resetRepo        repository.ResetPasswordRepository
	mail             mailer.Sender
}

func NewUserController(
	userRepo repository.UserRepository,
	articleRepo repository.ArticleRepository,
	verificationRepo repository.VerificationRepository,
	resetRepo repository.ResetPasswordRepository,
	mail mailer.Sender,
) *UserController {
	return &UserController{
		userRepo:         userRepo,
		articleRepo:      articleRepo,
		verificationRepo: verificationRepo,
		resetRepo:        resetRepo,
		mail:             mail,
	}
}

type registerRequest struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profile_picture"`
	Password1      string `json:"password1"`
	Password2      string `json:"password2"`
}

// Register godoc
// @Summary Register a new account
// @Description Create an unverified user and send an activation email
// @Tags account
// @Accept json
// @Produce json
// @Param registration body registerRequest true "Registration data"
// @Success 201 {object} map[string]interface{} "User registered"
// @Failure 400 {object} map[string]interface{} "Validation errors"
// @Router /account/register [post]
func (uc *UserController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.Bio = strings.TrimSpace(req.Bio)

	fieldErrors := map[string]string{}

	if req.Username == "" {
		fieldErrors["username"] = "Username is required."
	} else if taken, err := uc.userRepo.ExistsByUsername(req.Username, 0); err == nil && taken {
		fieldErrors["username"] = "Username already taken."
	}

	if req.Email == "" {
		fieldErrors["email"] = "Email is required."
	} else if taken, err := uc.userRepo.ExistsByEmail(req.Email, 0); err == nil && taken {
		fieldErrors["email"] = "Email already registered."
	}

	if req.Password1 != req.Password2 {
		fieldErrors["password"] = "Passwords do not match."
	} else if len(req.Password1) < minPasswordLength {
		fieldErrors["password"] = "Password must be at least 6 characters."
	}

	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Registration failed",
			"errors":  fieldErrors,
		})
		return
	}

	hash, err := utils.HashPassword(req.Password1)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   err.Error(),
		})
		return
	}

	user := models.User{
		Username:       req.Username,
		Email:          req.Email,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
		Password:       hash,
	}

	if err := uc.userRepo.CreateUser(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Pre-check race lost; same response shape as the fast path.
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "Registration failed",
				"errors":  map[string]string{"username": "Username or email already taken."},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   err.Error(),
		})
		return
	}

	token := utils.GenerateToken()
	verification := models.Verification{
		Email:     user.Email,
		Token:     token,
		ExpiresAt: time.Now().Add(tokenLifetime),
	}
	if err := uc.verificationRepo.Save(&verification); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create verification token",
			"error":   err.Error(),
		})
		return
	}

	uc.mail.SendActivationEmail(user.Email, user.Username, token)

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Registration successful! Please check your email to verify your account.",
		"data":    nil,
	})
}

// ActivateAccount godoc
// @Summary Activate an account
// @Description Mark the account verified using the emailed token
// @Tags account
// @Produce json
// @Param token path string true "Activation token"
// @Success 200 {object} map[string]interface{} "Account verified"
// @Failure 400 {object} map[string]interface{} "Invalid or expired token"
// @Router /account/activate/{token} [get]
func (uc *UserController) ActivateAccount(c *gin.Context) {
	token := c.Param("token")

	verification, err := uc.verificationRepo.FindByToken(token)
	if err != nil || time.Now().After(verification.ExpiresAt) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Activation link is invalid",
			"error":   "Token not found or expired",
		})
		return
	}

	if err := uc.userRepo.SetUserVerified(verification.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to verify account",
			"error":   err.Error(),
		})
		return
	}

	_ = uc.verificationRepo.DeleteByEmail(verification.Email)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Your account has been verified. You can log in now.",
		"data":    nil,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

// Login godoc
// @Summary Log in
// @Description Exchange email and password for a JWT; remember widens expiry
// @Tags account
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "Token issued"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /account/login [post]
func (uc *UserController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.userRepo.GetUserByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid email or password",
			"error":   "Authentication failed",
		})
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid email or password",
			"error":   "Authentication failed",
		})
		return
	}

	if !user.Verified {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Account not verified",
			"error":   "Please verify your email before logging in",
		})
		return
	}

	expiry := loginExpiry
	if req.Remember {
		expiry = rememberLoginExpiry
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(expiry).Unix(),
	})

	jwtSecret := []byte(os.Getenv("JWT_SECRET_KEY"))
	tokenString, err := jwtToken.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Could not generate token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User logged in successfully",
		"data": gin.H{
			"token":    tokenString,
			"username": user.Username,
		},
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ForgotPassword godoc
// @Summary Request a password reset
// @Tags account
// @Accept json
// @Produce json
// @Param request body forgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]interface{} "Reset email sent"
// @Failure 404 {object} map[string]interface{} "No account for email"
// @Router /account/password/forgot [post]
func (uc *UserController) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Please enter your email address",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.userRepo.GetUserByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No account found with that email",
			"error":   "Unknown email address",
		})
		return
	}

	token := utils.GenerateToken()
	reset := models.ResetPassword{
		Email:     user.Email,
		Token:     token,
		ExpiresAt: time.Now().Add(tokenLifetime),
	}
	if err := uc.resetRepo.Save(&reset); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create reset token",
			"error":   err.Error(),
		})
		return
	}

	uc.mail.SendPasswordResetEmail(user.Email, user.Username, token)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Check your email inbox or spam folder for password reset instructions.",
		"data":    nil,
	})
}

type resetPasswordRequest struct {
	Password1 string `json:"password1" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
}

// ResetPassword godoc
// @Summary Reset a forgotten password
// @Tags account
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param passwords body resetPasswordRequest true "New password, twice"
// @Success 200 {object} map[string]interface{} "Password reset"
// @Failure 400 {object} map[string]interface{} "Invalid token or passwords"
// @Router /account/password/reset/{token} [post]
func (uc *UserController) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.Password1 != req.Password2 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Passwords do not match",
			"error":   "Confirmation mismatch",
		})
		return
	}
	if len(req.Password1) < minPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Password must be at least 6 characters",
			"error":   "Password too short",
		})
		return
	}

	reset, err := uc.resetRepo.FindByToken(c.Param("token"))
	if err != nil || time.Now().After(reset.ExpiresAt) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Reset link is invalid",
			"error":   "Token not found or expired",
		})
		return
	}

	user, err := uc.userRepo.GetUserByEmail(reset.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user associated with this reset token",
		})
		return
	}

	hash, err := utils.HashPassword(req.Password1)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to reset password",
			"error":   err.Error(),
		})
		return
	}

	if err := uc.userRepo.UpdatePassword(user.ID, hash); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to reset password",
			"error":   err.Error(),
		})
		return
	}

	_ = uc.resetRepo.DeleteByEmail(reset.Email)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Your password has been reset successfully. You can log in now.",
		"data":    nil,
	})
}

type changePasswordRequest struct {
	OldPassword  string `json:"old_password" binding:"required"`
	NewPassword1 string `json:"new_password1" binding:"required"`
	NewPassword2 string `json:"new_password2" binding:"required"`
}

// ChangePassword godoc
// @Summary Change the signed-in user's password
// @Tags account
// @Accept json
// @Produce json
// @Param passwords body changePasswordRequest true "Old and new passwords"
// @Success 200 {object} map[string]interface{} "Password changed"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Router /account/password/change [post]
func (uc *UserController) ChangePassword(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.userRepo.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	if !utils.CheckPassword(req.OldPassword, user.Password) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Current password is incorrect",
			"error":   "Authentication failed",
		})
		return
	}

	if req.NewPassword1 != req.NewPassword2 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Passwords do not match",
			"error":   "Confirmation mismatch",
		})
		return
	}
	if len(req.NewPassword1) < minPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Password must be at least 6 characters",
			"error":   "Password too short",
		})
		return
	}

	hash, err := utils.HashPassword(req.NewPassword1)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to change password",
			"error":   err.Error(),
		})
		return
	}

	if err := uc.userRepo.UpdatePassword(user.ID, hash); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to change password",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Your new password has been set",
		"data":    nil,
	})
}

// GetProfile godoc
// @Summary Public profile with authored articles
// @Tags account
// @Produce json
// @Param username path string true "Username"
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{} "Profile retrieved"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /account/profile/{username} [get]
func (uc *UserController) GetProfile(c *gin.Context) {
	user, err := uc.userRepo.GetUserByUsername(c.Param("username"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided username",
		})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	articles, total, err := uc.articleRepo.FindByWriter(user.ID, page, profilePageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve articles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data": gin.H{
			"user":           user,
			"articles":       articles,
			"total_articles": total,
			"page":           page,
			"per_page":       profilePageSize,
		},
	})
}

type updateProfileRequest struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profile_picture"`
}

// UpdateProfile godoc
// @Summary Update the signed-in user's profile
// @Tags account
// @Accept json
// @Produce json
// @Param profile body updateProfileRequest true "Profile fields"
// @Success 200 {object} map[string]interface{} "Profile updated"
// @Failure 400 {object} map[string]interface{} "Validation errors"
// @Router /account/profile [put]
func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.Bio = strings.TrimSpace(req.Bio)

	fieldErrors := map[string]string{}
	if req.Username == "" {
		fieldErrors["username"] = "Username is required."
	} else if taken, err := uc.userRepo.ExistsByUsername(req.Username, userID); err == nil && taken {
		fieldErrors["username"] = "Username already taken."
	}
	if req.Email == "" {
		fieldErrors["email"] = "Email address is required."
	} else if !strings.Contains(req.Email, "@") {
		fieldErrors["email"] = "Invalid email address."
	} else if taken, err := uc.userRepo.ExistsByEmail(req.Email, userID); err == nil && taken {
		fieldErrors["email"] = "Email already registered."
	}

	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Profile update failed",
			"errors":  fieldErrors,
		})
		return
	}

	user, err := uc.userRepo.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	user.Username = req.Username
	user.Email = req.Email
	user.Bio = req.Bio
	if req.ProfilePicture != "" {
		user.ProfilePicture = req.ProfilePicture
	}

	if err := uc.userRepo.UpdateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "Profile update failed",
				"errors":  map[string]string{"username": "Username or email already taken."},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Your profile has been updated successfully",
		"data":    user,
	})
}
