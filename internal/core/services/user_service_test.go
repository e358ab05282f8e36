package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/velstra/spendboard/internal/apperrors"
	"github.com/velstra/spendboard/internal/core/domain"
	portssvc "github.com/velstra/spendboard/internal/core/ports/services"
	"github.com/velstra/spendboard/internal/core/services"
	"github.com/velstra/spendboard/internal/dto"
	"github.com/velstra/spendboard/internal/utils"
)

// --- Mock UserRepository (based on UserService usage) ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderID(ctx context.Context, provider string, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func adminUser(userID string) *domain.User {
	return &domain.User{UserID: userID, Name: "Admin", Role: domain.RoleAdmin}
}

// --- CreateUser Tests ---
func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateUserRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
		Role:     domain.RoleEditor,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, creatorID).Return(adminUser(creatorID), nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == req.Email && user.Role == domain.RoleEditor && user.PasswordHash != "" && user.PasswordHash != req.Password
	})).Return(nil).Once()

	createdUser, err := suite.service.CreateUser(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdUser)
	suite.Equal(req.Email, createdUser.Email)
	suite.Equal(domain.RoleEditor, createdUser.Role)
	suite.NotEmpty(createdUser.UserID)
	suite.NotEqual(req.Password, createdUser.PasswordHash)

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_ForbiddenForNonAdmin() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateUserRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
		Role:     domain.RoleViewer,
	}

	editor := &domain.User{UserID: creatorID, Role: domain.RoleEditor}
	suite.mockUserRepo.On("FindUserByID", ctx, creatorID).Return(editor, nil).Once()

	createdUser, err := suite.service.CreateUser(ctx, req, creatorID)

	suite.Require().Error(err)
	suite.Nil(createdUser)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateUserRequest{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "password123",
		Role:     domain.RoleViewer,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, creatorID).Return(adminUser(creatorID), nil).Once()
	existing := &domain.User{UserID: uuid.NewString(), Email: req.Email}
	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(existing, nil).Once()

	createdUser, err := suite.service.CreateUser(ctx, req, creatorID)

	suite.Require().Error(err)
	suite.Nil(createdUser)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- AuthenticateUser Tests ---
func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	password := "correct-horse"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	user := &domain.User{UserID: uuid.NewString(), Email: "a@b.c", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, user.Email, password)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("right-password")
	suite.Require().NoError(err)

	user := &domain.User{UserID: uuid.NewString(), Email: "a@b.c", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, user.Email, "wrong-password")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.AuthenticateUser(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- AuthorizeUserRole Tests ---
func (suite *UserServiceTestSuite) TestAuthorizeUserRole_RoleRanking() {
	ctx := context.Background()
	userID := uuid.NewString()
	editor := &domain.User{UserID: userID, Role: domain.RoleEditor}
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(editor, nil).Times(3)

	authorizer := suite.service.(portssvc.RoleAuthorizerSvc)
	suite.NoError(authorizer.AuthorizeUserRole(ctx, userID, domain.RoleViewer))
	suite.NoError(authorizer.AuthorizeUserRole(ctx, userID, domain.RoleEditor))
	suite.ErrorIs(authorizer.AuthorizeUserRole(ctx, userID, domain.RoleAdmin), apperrors.ErrForbidden)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- CreateOAuthUser Tests ---
func (suite *UserServiceTestSuite) TestCreateOAuthUser_NewUserIsViewer() {
	ctx := context.Background()
	provider := string(domain.ProviderGoogle)
	providerUserID := "google-123"

	suite.mockUserRepo.On("FindUserByProviderID", ctx, provider, providerUserID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Role == domain.RoleViewer && user.AuthProvider != nil && *user.AuthProvider == provider
	})).Return(nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "New User", "new@example.com", provider, providerUserID, true)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleViewer, user.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_UnverifiedEmailRejected() {
	ctx := context.Background()

	user, err := suite.service.CreateOAuthUser(ctx, "X", "x@example.com", "google", "id", false)

	suite.Require().Error(err)
	suite.Nil(user)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
