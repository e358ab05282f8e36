package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/velstra/spendboard/internal/apperrors"
	"github.com/velstra/spendboard/internal/core/domain"
	portssvc "github.com/velstra/spendboard/internal/core/ports/services"
	"github.com/velstra/spendboard/internal/core/services"
	"github.com/velstra/spendboard/internal/dto"
)

// --- Mock FilterPresetRepository ---
type MockPresetRepository struct {
	mock.Mock
}

func (m *MockPresetRepository) SavePreset(ctx context.Context, preset domain.FilterPreset) error {
	args := m.Called(ctx, preset)
	return args.Error(0)
}

func (m *MockPresetRepository) FindPresetByID(ctx context.Context, presetID string) (*domain.FilterPreset, error) {
	args := m.Called(ctx, presetID)
	var p *domain.FilterPreset
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.FilterPreset)
	}
	return p, args.Error(1)
}

func (m *MockPresetRepository) FindPresetsByUserID(ctx context.Context, userID string) ([]domain.FilterPreset, error) {
	args := m.Called(ctx, userID)
	var ps []domain.FilterPreset
	if args.Get(0) != nil {
		ps = args.Get(0).([]domain.FilterPreset)
	}
	return ps, args.Error(1)
}

func (m *MockPresetRepository) DeletePreset(ctx context.Context, presetID string) error {
	args := m.Called(ctx, presetID)
	return args.Error(0)
}

// --- Test Suite ---
type PresetServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPresetRepository
	service  portssvc.FilterPresetSvc
}

func (suite *PresetServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPresetRepository)
	suite.service = services.NewPresetService(suite.mockRepo)
}

func (suite *PresetServiceTestSuite) TestSavePreset_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	req := dto.SaveFilterPresetRequest{
		Name:     "Q1 marketing",
		FromDate: &from,
		ToDate:   &to,
		SectorID: "marketing",
	}

	suite.mockRepo.On("SavePreset", ctx, mock.MatchedBy(func(p domain.FilterPreset) bool {
		return p.UserID == userID && p.Name == req.Name && p.SectorID == "marketing" && p.PresetID != ""
	})).Return(nil).Once()

	preset, err := suite.service.SavePreset(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Equal(userID, preset.UserID)
	suite.Equal("Q1 marketing", preset.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PresetServiceTestSuite) TestGetPreset_OtherUsersPresetHidden() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	otherID := uuid.NewString()
	preset := &domain.FilterPreset{PresetID: "P1", UserID: ownerID, Name: "Mine"}

	suite.mockRepo.On("FindPresetByID", ctx, "P1").Return(preset, nil).Once()

	got, err := suite.service.GetPreset(ctx, "P1", otherID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PresetServiceTestSuite) TestDeletePreset_OwnerOnly() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	preset := &domain.FilterPreset{PresetID: "P1", UserID: ownerID}

	suite.mockRepo.On("FindPresetByID", ctx, "P1").Return(preset, nil).Twice()
	suite.mockRepo.On("DeletePreset", ctx, "P1").Return(nil).Once()

	// A stranger cannot delete it.
	err := suite.service.DeletePreset(ctx, "P1", uuid.NewString())
	suite.ErrorIs(err, apperrors.ErrNotFound)

	// The owner can.
	err = suite.service.DeletePreset(ctx, "P1", ownerID)
	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestPresetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PresetServiceTestSuite))
}
