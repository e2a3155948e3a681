package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/apperrors"
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/family_finance_tracker/internal/core/services"
	"github.com/SscSPs/family_finance_tracker/internal/platform/config"
	"github.com/SscSPs/family_finance_tracker/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TokenServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	userRepo *MockUserRepository
	service  portssvc.TokenSvcFacade
	user     *domain.User
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.userRepo = new(MockUserRepository)
	suite.service = services.NewTokenService(&config.Config{
		JWTSecret:                  "token-test-secret",
		JWTExpiryDuration:          time.Hour,
		JWTIssuer:                  "test",
		RefreshTokenExpiryDuration: 24 * time.Hour,
	}, suite.userRepo)
	suite.user = &domain.User{UserID: "u1", Email: "ada@example.com"}
}

func (suite *TokenServiceTestSuite) TearDownTest() {
	suite.userRepo.AssertExpectations(suite.T())
}

// issue generates a refresh token and returns it with the stored user row.
func (suite *TokenServiceTestSuite) issue() (string, *domain.User) {
	var storedHash string
	var storedExpiry time.Time
	suite.userRepo.On("UpdateRefreshToken", suite.ctx, "u1", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			storedHash = args.String(2)
			storedExpiry = args.Get(3).(time.Time)
		}).Return(nil).Once()

	raw, expiresAt, err := suite.service.GenerateRefreshToken(suite.ctx, suite.user)
	suite.Require().NoError(err)
	suite.WithinDuration(time.Now().Add(24*time.Hour), expiresAt, time.Minute)
	suite.Equal(storedExpiry, expiresAt)
	suite.True(strings.HasPrefix(raw, "u1."))
	suite.Equal(utils.HashRefreshToken(raw), storedHash)

	return raw, &domain.User{UserID: "u1", RefreshTokenHash: storedHash, RefreshTokenExpiresAt: &storedExpiry}
}

func (suite *TokenServiceTestSuite) TestRefreshToken_RoundTrip() {
	raw, stored := suite.issue()
	suite.userRepo.On("FindUserByID", suite.ctx, "u1").Return(stored, nil).Once()

	user, err := suite.service.ValidateAndParseRefreshToken(suite.ctx, raw)

	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)
}

func (suite *TokenServiceTestSuite) TestRefreshToken_Rejections() {
	raw, stored := suite.issue()
	expired := time.Now().Add(-time.Minute)

	tests := []struct {
		name  string
		token string
		row   *domain.User
	}{
		{"tampered secret", raw + "x", stored},
		{"expired", raw, &domain.User{UserID: "u1", RefreshTokenHash: stored.RefreshTokenHash, RefreshTokenExpiresAt: &expired}},
		{"revoked", raw, &domain.User{UserID: "u1"}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.userRepo.On("FindUserByID", suite.ctx, "u1").Return(tt.row, nil).Once()
			_, err := suite.service.ValidateAndParseRefreshToken(suite.ctx, tt.token)
			suite.ErrorIs(err, apperrors.ErrUnauthorized)
		})
	}
}

func (suite *TokenServiceTestSuite) TestRefreshToken_UnknownUserOrMalformed() {
	suite.userRepo.On("FindUserByID", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ValidateAndParseRefreshToken(suite.ctx, "ghost.secret")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.ValidateAndParseRefreshToken(suite.ctx, "garbage")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestRevokeRefreshToken() {
	suite.userRepo.On("ClearRefreshToken", suite.ctx, "u1").Return(nil).Once()
	suite.Require().NoError(suite.service.RevokeRefreshToken(suite.ctx, "u1"))
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken() {
	token, expiresAt, err := suite.service.GenerateAccessToken(suite.ctx, suite.user)
	suite.Require().NoError(err)
	suite.WithinDuration(time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := utils.ParseAndValidateJWT(token, "token-test-secret")
	suite.Require().NoError(err)
	suite.Equal("u1", claims.Subject)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
