package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/family_finance_tracker/internal/apperrors"
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/family_finance_tracker/internal/core/services"
	"github.com/SscSPs/family_finance_tracker/internal/dto"
	"github.com/SscSPs/family_finance_tracker/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	userRepo *MockUserRepository
	teamRepo *MockTeamRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.userRepo = new(MockUserRepository)
	suite.teamRepo = new(MockTeamRepository)
	suite.service = services.NewUserService(suite.userRepo, services.NewTeamService(suite.teamRepo, suite.userRepo))
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.userRepo.AssertExpectations(suite.T())
	suite.teamRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_CreatesPersonalTeam() {
	suite.userRepo.On("FindUserByEmail", suite.ctx, "ada@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.userRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "ada@example.com" && u.PasswordHash != "" && u.AuthProvider == domain.ProviderLocal
	})).Return(nil).Once()
	suite.teamRepo.On("Begin", suite.ctx).Return(nil, nil).Once()
	suite.teamRepo.On("SaveTeamInTx", suite.ctx, mock.Anything, mock.MatchedBy(func(t domain.Team) bool {
		return t.PersonalTeam && t.Name == "Ada's Team"
	})).Return(nil).Once()
	suite.userRepo.On("UpdateCurrentTeamInTx", suite.ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.teamRepo.On("Commit", suite.ctx, mock.Anything).Return(nil).Once()

	user, err := suite.service.Register(suite.ctx, dto.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    " Ada@Example.com ",
		Password: "correct horse",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(user.CurrentTeamID)
	suite.True(utils.CheckPasswordHash("correct horse", user.PasswordHash))
}

func (suite *UserServiceTestSuite) TestRegister_EmailTaken() {
	suite.userRepo.On("FindUserByEmail", suite.ctx, "ada@example.com").Return(&domain.User{UserID: "u1"}, nil).Once()

	_, err := suite.service.Register(suite.ctx, dto.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "longenough"})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.(apperrors.FieldErrors), "email")
}

func (suite *UserServiceTestSuite) TestAuthenticate() {
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "u1", Email: "ada@example.com", PasswordHash: hash}
	suite.userRepo.On("FindUserByEmail", suite.ctx, "ada@example.com").Return(stored, nil).Twice()
	suite.userRepo.On("FindUserByEmail", suite.ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(suite.ctx, "ada@example.com", "s3cret-pass")
	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)

	_, err = suite.service.Authenticate(suite.ctx, "ada@example.com", "wrong")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.Authenticate(suite.ctx, "nobody@example.com", "whatever")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_LinksExistingEmail() {
	existing := &domain.User{UserID: "u1", Email: "ada@example.com", AuthProvider: domain.ProviderLocal}
	suite.userRepo.On("FindUserByProviderID", suite.ctx, domain.ProviderGoogle, "g-123").Return(nil, apperrors.ErrNotFound).Once()
	suite.userRepo.On("FindUserByEmail", suite.ctx, "ada@example.com").Return(existing, nil).Once()
	suite.userRepo.On("LinkProvider", suite.ctx, "u1", domain.ProviderGoogle, "g-123").Return(nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(suite.ctx, "Ada", "ADA@example.com", domain.ProviderGoogle, "g-123")

	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)
	suite.Equal(domain.ProviderGoogle, user.AuthProvider)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_KnownProviderUser() {
	known := &domain.User{UserID: "u9"}
	suite.userRepo.On("FindUserByProviderID", suite.ctx, domain.ProviderGoogle, "g-9").Return(known, nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(suite.ctx, "", "x@example.com", domain.ProviderGoogle, "g-9")

	suite.Require().NoError(err)
	suite.Same(known, user)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
