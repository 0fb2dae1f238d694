package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkwave/internal/controllers"
	"inkwave/internal/mocks"
	"inkwave/internal/models"
	"inkwave/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupUserControllerWithMocks() (*controllers.UserController, *mocks.MockUserRepository, *mocks.MockArticleRepository, *mocks.MockVerificationRepository, *mocks.MockResetPasswordRepository, *mocks.MockMailer) {
	mockUserRepo := new(mocks.MockUserRepository)
	mockArticleRepo := new(mocks.MockArticleRepository)
	mockVerificationRepo := new(mocks.MockVerificationRepository)
	mockResetRepo := new(mocks.MockResetPasswordRepository)
	mockMailer := new(mocks.MockMailer)
	controller := controllers.NewUserController(mockUserRepo, mockArticleRepo, mockVerificationRepo, mockResetRepo, mockMailer)
	return controller, mockUserRepo, mockArticleRepo, mockVerificationRepo, mockResetRepo, mockMailer
}

func postJSON(router http.Handler, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockUserRepository, *mocks.MockVerificationRepository, *mocks.MockMailer)
		expectedStatus int
		expectedErrors map[string]string
	}{
		{
			name: "successful registration",
			requestBody: map[string]interface{}{
				"username": "newwriter", "email": "new@example.com",
				"password1": "secret1", "password2": "secret1",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, verificationRepo *mocks.MockVerificationRepository, mailer *mocks.MockMailer) {
				userRepo.On("ExistsByUsername", "newwriter", uint(0)).Return(false, nil)
				userRepo.On("ExistsByEmail", "new@example.com", uint(0)).Return(false, nil)
				userRepo.On("CreateUser", mock.MatchedBy(func(u *models.User) bool {
					return u.Username == "newwriter" && !u.Verified && u.Password != "secret1"
				})).Return(nil)
				verificationRepo.On("Save", mock.AnythingOfType("*models.Verification")).Return(nil)
				mailer.On("SendActivationEmail", "new@example.com", "newwriter", mock.AnythingOfType("string")).Return()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing username",
			requestBody: map[string]interface{}{
				"email": "new@example.com", "password1": "secret1", "password2": "secret1",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, verificationRepo *mocks.MockVerificationRepository, mailer *mocks.MockMailer) {
				userRepo.On("ExistsByEmail", "new@example.com", uint(0)).Return(false, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedErrors: map[string]string{"username": "Username is required."},
		},
		{
			name: "username already taken",
			requestBody: map[string]interface{}{
				"username": "taken", "email": "new@example.com",
				"password1": "secret1", "password2": "secret1",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, verificationRepo *mocks.MockVerificationRepository, mailer *mocks.MockMailer) {
				userRepo.On("ExistsByUsername", "taken", uint(0)).Return(true, nil)
				userRepo.On("ExistsByEmail", "new@example.com", uint(0)).Return(false, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedErrors: map[string]string{"username": "Username already taken."},
		},
		{
			name: "email already registered",
			requestBody: map[string]interface{}{
				"username": "newwriter", "email": "used@example.com",
				"password1": "secret1", "password2": "secret1",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, verificationRepo *mocks.MockVerificationRepository, mailer *mocks.MockMailer) {
				userRepo.On("ExistsByUsername", "newwriter", uint(0)).Return(false, nil)
				userRepo.On("ExistsByEmail", "used@example.com", uint(0)).Return(true, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedErrors: map[string]string{"email": "Email already registered."},
		},
		{
			name: "password mismatch",
			requestBody: map[string]interface{}{
				"username": "newwriter", "email": "new@example.com",
				"password1": "secret1", "password2": "secret2",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, verificationRepo *mocks.MockVerificationRepository, mailer *mocks.MockMailer) {
				userRepo.On("ExistsByUsername", "newwriter", uint(0)).Return(false, nil)
				userRepo.On("ExistsByEmail", "new@example.com", uint(0)).Return(false, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedErrors: map[string]string{"password": "Passwords do not match."},
		},
		{
			name: "password too short",
			requestBody: map[string]interface{}{
				"username": "newwriter", "email": "new@example.com",
				"password1": "abc", "password2": "abc",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, verificationRepo *mocks.MockVerificationRepository, mailer *mocks.MockMailer) {
				userRepo.On("ExistsByUsername", "newwriter", uint(0)).Return(false, nil)
				userRepo.On("ExistsByEmail", "new@example.com", uint(0)).Return(false, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedErrors: map[string]string{"password": "Password must be at least 6 characters."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, userRepo, _, verificationRepo, _, mailer := setupUserControllerWithMocks()
			tt.setupMocks(userRepo, verificationRepo, mailer)

			router := setupTestRouter()
			router.POST("/account/register", controller.Register)

			w := postJSON(router, "/account/register", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			if tt.expectedErrors != nil {
				fieldErrors := response["errors"].(map[string]interface{})
				for field, message := range tt.expectedErrors {
					assert.Equal(t, message, fieldErrors[field])
				}
			}
			userRepo.AssertExpectations(t)
			verificationRepo.AssertExpectations(t)
			mailer.AssertExpectations(t)
		})
	}
}

func TestActivateAccount(t *testing.T) {
	t.Run("valid token verifies the account", func(t *testing.T) {
		controller, userRepo, _, verificationRepo, _, _ := setupUserControllerWithMocks()
		verificationRepo.On("FindByToken", "goodtoken").Return(&models.Verification{
			Email:     "new@example.com",
			Token:     "goodtoken",
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
		userRepo.On("SetUserVerified", "new@example.com").Return(nil)
		verificationRepo.On("DeleteByEmail", "new@example.com").Return(nil)

		router := setupTestRouter()
		router.GET("/account/activate/:token", controller.ActivateAccount)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/account/activate/goodtoken", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		userRepo.AssertExpectations(t)
		verificationRepo.AssertExpectations(t)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		controller, userRepo, _, verificationRepo, _, _ := setupUserControllerWithMocks()
		verificationRepo.On("FindByToken", "oldtoken").Return(&models.Verification{
			Email:     "new@example.com",
			Token:     "oldtoken",
			ExpiresAt: time.Now().Add(-time.Hour),
		}, nil)

		router := setupTestRouter()
		router.GET("/account/activate/:token", controller.ActivateAccount)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/account/activate/oldtoken", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		userRepo.AssertNotCalled(t, "SetUserVerified", mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	hash, err := utils.HashPassword("secret1")
	assert.NoError(t, err)
	verifiedUser := &models.User{ID: 1, Username: "writer", Email: "writer@example.com", Password: hash, Verified: true}

	loginToken := func(t *testing.T, remember bool) string {
		controller, userRepo, _, _, _, _ := setupUserControllerWithMocks()
		userRepo.On("GetUserByEmail", "writer@example.com").Return(verifiedUser, nil)

		router := setupTestRouter()
		router.POST("/account/login", controller.Login)

		w := postJSON(router, "/account/login", map[string]interface{}{
			"email": "writer@example.com", "password": "secret1", "remember": remember,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		data := response["data"].(map[string]interface{})
		assert.Equal(t, "writer", data["username"])
		return data["token"].(string)
	}

	tokenExpiry := func(t *testing.T, tokenString string) time.Time {
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		assert.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, float64(1), claims["user_id"])
		assert.Equal(t, "writer@example.com", claims["email"])
		return time.Unix(int64(claims["exp"].(float64)), 0)
	}

	t.Run("default session lasts three days", func(t *testing.T) {
		exp := tokenExpiry(t, loginToken(t, false))
		assert.WithinDuration(t, time.Now().Add(72*time.Hour), exp, time.Minute)
	})

	t.Run("remember me lasts two weeks", func(t *testing.T) {
		exp := tokenExpiry(t, loginToken(t, true))
		assert.WithinDuration(t, time.Now().Add(14*24*time.Hour), exp, time.Minute)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		controller, userRepo, _, _, _, _ := setupUserControllerWithMocks()
		userRepo.On("GetUserByEmail", "writer@example.com").Return(verifiedUser, nil)

		router := setupTestRouter()
		router.POST("/account/login", controller.Login)

		w := postJSON(router, "/account/login", map[string]interface{}{
			"email": "writer@example.com", "password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unverified account cannot log in", func(t *testing.T) {
		unverified := &models.User{ID: 2, Username: "pending", Email: "pending@example.com", Password: hash, Verified: false}
		controller, userRepo, _, _, _, _ := setupUserControllerWithMocks()
		userRepo.On("GetUserByEmail", "pending@example.com").Return(unverified, nil)

		router := setupTestRouter()
		router.POST("/account/login", controller.Login)

		w := postJSON(router, "/account/login", map[string]interface{}{
			"email": "pending@example.com", "password": "secret1",
		})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestForgotPassword(t *testing.T) {
	t.Run("unknown email returns not found", func(t *testing.T) {
		controller, userRepo, _, _, resetRepo, mailer := setupUserControllerWithMocks()
		userRepo.On("GetUserByEmail", "nobody@example.com").Return(nil, assert.AnError)

		router := setupTestRouter()
		router.POST("/account/password/forgot", controller.ForgotPassword)

		w := postJSON(router, "/account/password/forgot", map[string]interface{}{"email": "nobody@example.com"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		resetRepo.AssertNotCalled(t, "Save", mock.Anything)
		mailer.AssertNotCalled(t, "SendPasswordResetEmail", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("known email stores a token and sends the email", func(t *testing.T) {
		controller, userRepo, _, _, resetRepo, mailer := setupUserControllerWithMocks()
		userRepo.On("GetUserByEmail", "writer@example.com").Return(&models.User{ID: 1, Username: "writer", Email: "writer@example.com"}, nil)
		resetRepo.On("Save", mock.MatchedBy(func(r *models.ResetPassword) bool {
			return r.Email == "writer@example.com" && r.Token != "" && r.ExpiresAt.After(time.Now())
		})).Return(nil)
		mailer.On("SendPasswordResetEmail", "writer@example.com", "writer", mock.AnythingOfType("string")).Return()

		router := setupTestRouter()
		router.POST("/account/password/forgot", controller.ForgotPassword)

		w := postJSON(router, "/account/password/forgot", map[string]interface{}{"email": "writer@example.com"})

		assert.Equal(t, http.StatusOK, w.Code)
		resetRepo.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})
}

func TestResetPassword(t *testing.T) {
	t.Run("valid token resets the password and burns the token", func(t *testing.T) {
		controller, userRepo, _, _, resetRepo, _ := setupUserControllerWithMocks()
		resetRepo.On("FindByToken", "goodtoken").Return(&models.ResetPassword{
			Email:     "writer@example.com",
			Token:     "goodtoken",
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
		userRepo.On("GetUserByEmail", "writer@example.com").Return(&models.User{ID: 1, Email: "writer@example.com"}, nil)
		userRepo.On("UpdatePassword", uint(1), mock.AnythingOfType("string")).Return(nil)
		resetRepo.On("DeleteByEmail", "writer@example.com").Return(nil)

		router := setupTestRouter()
		router.POST("/account/password/reset/:token", controller.ResetPassword)

		w := postJSON(router, "/account/password/reset/goodtoken", map[string]interface{}{
			"password1": "newsecret", "password2": "newsecret",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		userRepo.AssertExpectations(t)
		resetRepo.AssertExpectations(t)
	})

	t.Run("mismatched confirmation never touches the token", func(t *testing.T) {
		controller, _, _, _, resetRepo, _ := setupUserControllerWithMocks()

		router := setupTestRouter()
		router.POST("/account/password/reset/:token", controller.ResetPassword)

		w := postJSON(router, "/account/password/reset/goodtoken", map[string]interface{}{
			"password1": "newsecret", "password2": "different",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resetRepo.AssertNotCalled(t, "FindByToken", mock.Anything)
	})
}

func TestChangePassword(t *testing.T) {
	hash, err := utils.HashPassword("current1")
	assert.NoError(t, err)
	user := &models.User{ID: 1, Email: "writer@example.com", Password: hash}

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
	}{
		{
			name:           "successful change",
			requestBody:    map[string]interface{}{"old_password": "current1", "new_password1": "changed1", "new_password2": "changed1"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong current password",
			requestBody:    map[string]interface{}{"old_password": "wrong", "new_password1": "changed1", "new_password2": "changed1"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "new password too short",
			requestBody:    map[string]interface{}{"old_password": "current1", "new_password1": "abc", "new_password2": "abc"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, userRepo, _, _, _, _ := setupUserControllerWithMocks()
			userRepo.On("GetUserByID", uint(1)).Return(user, nil)
			if tt.expectedStatus == http.StatusOK {
				userRepo.On("UpdatePassword", uint(1), mock.AnythingOfType("string")).Return(nil)
			}

			router := setupTestRouter()
			router.POST("/account/password/change", addUserAuthMiddleware(1), controller.ChangePassword)

			w := postJSON(router, "/account/password/change", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			userRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	t.Run("taken username reported as a field error", func(t *testing.T) {
		controller, userRepo, _, _, _, _ := setupUserControllerWithMocks()
		userRepo.On("ExistsByUsername", "taken", uint(1)).Return(true, nil)
		userRepo.On("ExistsByEmail", "writer@example.com", uint(1)).Return(false, nil)

		router := setupTestRouter()
		router.PUT("/account/profile", addUserAuthMiddleware(1), controller.UpdateProfile)

		body, _ := json.Marshal(map[string]interface{}{"username": "taken", "email": "writer@example.com"})
		req := httptest.NewRequest("PUT", "/account/profile", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		fieldErrors := response["errors"].(map[string]interface{})
		assert.Equal(t, "Username already taken.", fieldErrors["username"])
		userRepo.AssertNotCalled(t, "UpdateUser", mock.Anything)
	})

	t.Run("successful update", func(t *testing.T) {
		controller, userRepo, _, _, _, _ := setupUserControllerWithMocks()
		userRepo.On("ExistsByUsername", "writer", uint(1)).Return(false, nil)
		userRepo.On("ExistsByEmail", "writer@example.com", uint(1)).Return(false, nil)
		userRepo.On("GetUserByID", uint(1)).Return(&models.User{ID: 1, Username: "oldname", Email: "old@example.com"}, nil)
		userRepo.On("UpdateUser", mock.MatchedBy(func(u *models.User) bool {
			return u.Username == "writer" && u.Email == "writer@example.com"
		})).Return(nil)

		router := setupTestRouter()
		router.PUT("/account/profile", addUserAuthMiddleware(1), controller.UpdateProfile)

		body, _ := json.Marshal(map[string]interface{}{"username": "writer", "email": "writer@example.com", "bio": "writes things"})
		req := httptest.NewRequest("PUT", "/account/profile", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		userRepo.AssertExpectations(t)
	})
}

func TestGetProfile(t *testing.T) {
	controller, userRepo, articleRepo, _, _, _ := setupUserControllerWithMocks()
	userRepo.On("GetUserByUsername", "writer").Return(&models.User{ID: 1, Username: "writer"}, nil)
	articleRepo.On("FindByWriter", uint(1), 2, 6).Return([]models.Article{{ID: 7, Title: "Page Two Post"}}, int64(7), nil)

	router := setupTestRouter()
	router.GET("/account/profile/:username", controller.GetProfile)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/account/profile/writer?page=2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(7), data["total_articles"])
	assert.Equal(t, float64(2), data["page"])
	assert.Equal(t, float64(6), data["per_page"])
}
