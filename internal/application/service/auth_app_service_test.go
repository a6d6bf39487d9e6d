package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/sue-zadeh/fieldbase/internal/application/dto"
	appservice "github.com/sue-zadeh/fieldbase/internal/application/service"
	"github.com/sue-zadeh/fieldbase/internal/domain/models"
	"github.com/sue-zadeh/fieldbase/internal/domain/repository"
	domainservice "github.com/sue-zadeh/fieldbase/internal/domain/service"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/audit"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/persistence/postgres"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/redis"
	"github.com/sue-zadeh/fieldbase/pkg/constants"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
)

type recordingMailer struct {
	to   string
	code string
}

func (m *recordingMailer) SendResetCode(_ context.Context, to, code string) error {
	m.to = to
	m.code = code
	return nil
}

type AuthAppServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	svc       *appservice.AuthAppService
	users     repository.UserRepository
	blacklist domainservice.TokenBlacklist
	mailer    *recordingMailer
	mini      *miniredis.Miniredis
}

func (s *AuthAppServiceTestSuite) SetupTest() {
	db := openTestDB(s.T())
	s.ctx = context.Background()
	log := logger.NewNoop()

	var err error
	s.mini, err = miniredis.Run()
	s.Require().NoError(err)
	client := goredis.NewClient(&goredis.Options{Addr: s.mini.Addr()})

	s.users = postgres.NewUserRepository(db, log)
	s.blacklist = redis.NewTokenBlacklist(client)
	s.mailer = &recordingMailer{}

	tokens := domainservice.NewTokenService("test-secret", time.Hour)
	s.svc = appservice.NewAuthAppService(
		s.users,
		tokens,
		s.blacklist,
		redis.NewResetStore(client),
		15*time.Minute,
		s.mailer,
		testMetrics,
		audit.NewNoopPublisher(),
		log,
	)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	s.Require().NoError(err)
	s.Require().NoError(s.users.Create(s.ctx, &models.User{
		FirstName:    "Ana",
		LastName:     "Field",
		Email:        "ana@example.org",
		PasswordHash: string(hash),
		Role:         constants.RoleAdmin,
	}))
}

func (s *AuthAppServiceTestSuite) TearDownTest() {
	s.mini.Close()
}

func TestAuthAppServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthAppServiceTestSuite))
}

func (s *AuthAppServiceTestSuite) TestLoginIssuesToken() {
	resp, err := s.svc.Login(s.ctx, dto.LoginRequest{Email: "ana@example.org", Password: "correct horse"})
	s.Require().NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal("admin", resp.Role)
	s.Greater(resp.ExpiresAt, time.Now().Unix())
}

func (s *AuthAppServiceTestSuite) TestLoginWrongPassword() {
	_, err := s.svc.Login(s.ctx, dto.LoginRequest{Email: "ana@example.org", Password: "wrong"})
	s.Require().Error(err)
	s.Equal("invalid email or password", err.Error())

	// Unknown email produces the same message.
	_, err = s.svc.Login(s.ctx, dto.LoginRequest{Email: "nobody@example.org", Password: "wrong"})
	s.Require().Error(err)
	s.Equal("invalid email or password", err.Error())
}

func (s *AuthAppServiceTestSuite) TestLogoutBlacklistsToken() {
	claims := &domainservice.Claims{UserID: 1, JTI: "session-1", Expiry: time.Now().Add(time.Hour)}
	s.Require().NoError(s.svc.Logout(s.ctx, claims))

	revoked, err := s.blacklist.IsRevoked(s.ctx, "session-1")
	s.Require().NoError(err)
	s.True(revoked)
}

func (s *AuthAppServiceTestSuite) TestResetFlow() {
	s.Require().NoError(s.svc.ForgotPassword(s.ctx, dto.ForgotPasswordRequest{Email: "ana@example.org"}))
	s.Equal("ana@example.org", s.mailer.to)
	s.Len(s.mailer.code, 6)

	// Wrong code is rejected and does not consume the stored one.
	err := s.svc.ResetPassword(s.ctx, dto.ResetPasswordRequest{
		Email:       "ana@example.org",
		Code:        "000000x",
		NewPassword: "brand new pass",
	})
	s.Require().Error(err)

	s.Require().NoError(s.svc.ResetPassword(s.ctx, dto.ResetPasswordRequest{
		Email:       "ana@example.org",
		Code:        s.mailer.code,
		NewPassword: "brand new pass",
	}))

	_, err = s.svc.Login(s.ctx, dto.LoginRequest{Email: "ana@example.org", Password: "brand new pass"})
	s.Require().NoError(err)

	// The code is one-time use.
	err = s.svc.ResetPassword(s.ctx, dto.ResetPasswordRequest{
		Email:       "ana@example.org",
		Code:        s.mailer.code,
		NewPassword: "another pass",
	})
	s.Require().Error(err)
}

func (s *AuthAppServiceTestSuite) TestForgotPasswordHidesUnknownEmail() {
	s.Require().NoError(s.svc.ForgotPassword(s.ctx, dto.ForgotPasswordRequest{Email: "nobody@example.org"}))
	s.Empty(s.mailer.to)
}
