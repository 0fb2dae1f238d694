package mocks

import (
	"inkwave/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockArticleRepository
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(article *models.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticleRepository) FindAll() ([]models.Article, error) {
	args := m.Called()
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) FindBySlug(slug string) (*models.Article, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) FindByID(id uint) (*models.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) Update(article *models.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticleRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockArticleRepository) ExistsByTitle(title string, excludeID uint) (bool, error) {
	args := m.Called(title, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockArticleRepository) ExistsBySlug(slug string) (bool, error) {
	args := m.Called(slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockArticleRepository) IncrementViews(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockArticleRepository) AddLike(articleID, userID uint) error {
	args := m.Called(articleID, userID)
	return args.Error(0)
}

func (m *MockArticleRepository) RemoveLike(articleID, userID uint) error {
	args := m.Called(articleID, userID)
	return args.Error(0)
}

func (m *MockArticleRepository) IsLikedBy(articleID, userID uint) (bool, error) {
	args := m.Called(articleID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockArticleRepository) LikeCount(articleID uint) (int64, error) {
	args := m.Called(articleID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArticleRepository) FindByCategory(categoryID uint, page, perPage int) ([]models.Article, int64, error) {
	args := m.Called(categoryID, page, perPage)
	return args.Get(0).([]models.Article), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleRepository) FindByWriter(writerID uint, page, perPage int) ([]models.Article, int64, error) {
	args := m.Called(writerID, page, perPage)
	return args.Get(0).([]models.Article), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleRepository) FindRelated(writerID, excludeID uint, limit int) ([]models.Article, error) {
	args := m.Called(writerID, excludeID, limit)
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) FindTrending(limit int) ([]models.Article, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) FindLatest(limit int) ([]models.Article, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) Search(query string, limit int) ([]models.Article, error) {
	args := m.Called(query, limit)
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) FeaturedWriters(limit int) ([]models.FeaturedWriter, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.FeaturedWriter), args.Error(1)
}

func (m *MockArticleRepository) ReplaceCategories(article *models.Article, categories []models.Category) error {
	args := m.Called(article, categories)
	return args.Error(0)
}

func (m *MockArticleRepository) ReplaceTags(article *models.Article, tags []models.Tag) error {
	args := m.Called(article, tags)
	return args.Error(0)
}

// Shared MockCommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(id uint) (*models.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindBySlug(slug string) (*models.Comment, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByArticle(articleID uint) ([]models.Comment, error) {
	args := m.Called(articleID)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindReplies(parentID uint) ([]models.Comment, error) {
	args := m.Called(parentID)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) CountByArticle(articleID uint) (int64, error) {
	args := m.Called(articleID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepository) UpdateContent(id uint, content string) error {
	args := m.Called(id, content)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCommentRepository) ExistsBySlug(slug string) (bool, error) {
	args := m.Called(slug)
	return args.Bool(0), args.Error(1)
}

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) SetUserVerified(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(id uint, passwordHash string) error {
	args := m.Called(id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) ExistsByUsername(username string, excludeID uint) (bool, error) {
	args := m.Called(username, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(email string, excludeID uint) (bool, error) {
	args := m.Called(email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SearchByUsername(query string, limit int) ([]models.User, error) {
	args := m.Called(query, limit)
	return args.Get(0).([]models.User), args.Error(1)
}

// Shared MockCategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindAll() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindBySlug(slug string) (*models.Category, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByIDs(ids []uint) ([]models.Category, error) {
	args := m.Called(ids)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) ExistsByName(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) SearchByName(query string, limit int) ([]models.Category, error) {
	args := m.Called(query, limit)
	return args.Get(0).([]models.Category), args.Error(1)
}

// Shared MockTagRepository
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) FindOrCreate(names []string) ([]models.Tag, error) {
	args := m.Called(names)
	return args.Get(0).([]models.Tag), args.Error(1)
}

// Shared MockNewsletterRepository
type MockNewsletterRepository struct {
	mock.Mock
}

func (m *MockNewsletterRepository) Subscribe(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

// Shared MockContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(message *models.ContactMessage) error {
	args := m.Called(message)
	return args.Error(0)
}

// Shared MockVerificationRepository
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Save(verification *models.Verification) error {
	args := m.Called(verification)
	return args.Error(0)
}

func (m *MockVerificationRepository) FindByToken(token string) (*models.Verification, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Verification), args.Error(1)
}

func (m *MockVerificationRepository) DeleteByEmail(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

// Shared MockResetPasswordRepository
type MockResetPasswordRepository struct {
	mock.Mock
}

func (m *MockResetPasswordRepository) Save(reset *models.ResetPassword) error {
	args := m.Called(reset)
	return args.Error(0)
}

func (m *MockResetPasswordRepository) FindByToken(token string) (*models.ResetPassword, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ResetPassword), args.Error(1)
}

func (m *MockResetPasswordRepository) DeleteByEmail(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

// MockMailer records fire-and-forget sends without touching SMTP.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendActivationEmail(recipient, username, token string) {
	m.Called(recipient, username, token)
}

func (m *MockMailer) SendPasswordResetEmail(recipient, username, token string) {
	m.Called(recipient, username, token)
}

func (m *MockMailer) SendNewsletterWelcomeEmail(recipient string) {
	m.Called(recipient)
}

func (m *MockMailer) SendContactConfirmationEmail(recipient, name string) {
	m.Called(recipient, name)
}
