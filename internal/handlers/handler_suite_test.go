package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/family_finance_tracker/internal/handlers"
	"github.com/SscSPs/family_finance_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "handler-test-secret"

// HandlerSuite boots the full router against mocked services. Each test
// acts as testUserID with currentTeamID selected, as owner of that team.
type HandlerSuite struct {
	suite.Suite

	router *gin.Engine

	accountSvc     *MockAccountService
	transactionSvc *MockTransactionService
	categorySvc    *MockCategoryService
	teamSvc        *MockTeamService
	ledgerSvc      *MockTeamLedgerService
	currencySvc    *MockCurrencyService
	userSvc        *MockUserService
	identitySvc    *MockIdentityService
	tokenSvc       *MockTokenService
	googleSvc      *MockGoogleOAuthService

	testUserID    string
	currentTeamID string
	identity      *domain.Identity
	token         string
}

func (s *HandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.accountSvc = new(MockAccountService)
	s.transactionSvc = new(MockTransactionService)
	s.categorySvc = new(MockCategoryService)
	s.teamSvc = new(MockTeamService)
	s.ledgerSvc = new(MockTeamLedgerService)
	s.currencySvc = new(MockCurrencyService)
	s.userSvc = new(MockUserService)
	s.identitySvc = new(MockIdentityService)
	s.tokenSvc = new(MockTokenService)
	s.googleSvc = new(MockGoogleOAuthService)

	s.testUserID = uuid.NewString()
	s.currentTeamID = uuid.NewString()
	s.identity = domain.NewIdentity(s.testUserID, &s.currentTeamID, []string{s.currentTeamID}, nil)
	s.identitySvc.On("Resolve", mock.Anything, s.testUserID).Return(s.identity, nil).Maybe()

	container := &portssvc.ServiceContainer{
		Account:     s.accountSvc,
		Transaction: s.transactionSvc,
		Category:    s.categorySvc,
		Team:        s.teamSvc,
		TeamLedger:  s.ledgerSvc,
		Currency:    s.currencySvc,
		User:        s.userSvc,
		Identity:    s.identitySvc,
		Token:       s.tokenSvc,
		GoogleOAuth: s.googleSvc,
	}
	cfg := &config.Config{
		JWTSecret:     testJWTSecret,
		IsProduction:  true,
		AuthRateLimit: "1000-M",
	}

	s.router = gin.New()
	s.Require().NoError(handlers.RegisterRoutes(s.router, cfg, container, nil))

	claims := jwt.RegisteredClaims{
		Subject:   s.testUserID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	s.Require().NoError(err)
	s.token = signed
}

func (s *HandlerSuite) TearDownTest() {
	s.accountSvc.AssertExpectations(s.T())
	s.transactionSvc.AssertExpectations(s.T())
	s.categorySvc.AssertExpectations(s.T())
	s.teamSvc.AssertExpectations(s.T())
	s.ledgerSvc.AssertExpectations(s.T())
	s.userSvc.AssertExpectations(s.T())
	s.tokenSvc.AssertExpectations(s.T())
}

// do sends an authenticated request. body is JSON encoded unless nil.
func (s *HandlerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	return s.send(method, path, body, true)
}

func (s *HandlerSuite) send(method, path string, body any, authenticated bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	s.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals the recorded body into out.
func (s *HandlerSuite) decode(w *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}
