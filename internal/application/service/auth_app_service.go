package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sue-zadeh/fieldbase/internal/application/dto"
	"github.com/sue-zadeh/fieldbase/internal/domain/repository"
	domainservice "github.com/sue-zadeh/fieldbase/internal/domain/service"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/audit"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/mail"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/monitoring"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/redis"
	"github.com/sue-zadeh/fieldbase/pkg/constants"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
	"github.com/sue-zadeh/fieldbase/pkg/utils"
)

// AuthAppService implements login, logout and the email reset flow.
type AuthAppService struct {
	users      repository.UserRepository
	tokens     *domainservice.TokenService
	blacklist  domainservice.TokenBlacklist
	resetStore redis.ResetStore
	resetTTL   time.Duration
	mailer     mail.Mailer
	metrics    *monitoring.Metrics
	auditor    audit.Publisher
	log        logger.Logger
}

// NewAuthAppService wires the auth application service.
func NewAuthAppService(
	users repository.UserRepository,
	tokens *domainservice.TokenService,
	blacklist domainservice.TokenBlacklist,
	resetStore redis.ResetStore,
	resetTTL time.Duration,
	mailer mail.Mailer,
	metrics *monitoring.Metrics,
	auditor audit.Publisher,
	log logger.Logger,
) *AuthAppService {
	return &AuthAppService{
		users:      users,
		tokens:     tokens,
		blacklist:  blacklist,
		resetStore: resetStore,
		resetTTL:   resetTTL,
		mailer:     mailer,
		metrics:    metrics,
		auditor:    auditor,
		log:        log.WithComponent("auth_app_service"),
	}
}

// Login verifies credentials and issues a bearer token. Wrong email and wrong
// password return the same error so accounts cannot be probed.
func (s *AuthAppService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.metrics.RecordLogin("failure")
		return nil, errors.Unauthorized("invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		s.metrics.RecordLogin("failure")
		return nil, errors.Unauthorized("invalid email or password")
	}

	token, claims, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordLogin("success")
	s.auditor.Publish(ctx, audit.Event{
		Type:       constants.AuditEventLogin,
		Entity:     "user",
		EntityID:   user.ID,
		ActorEmail: user.Email,
		OccurredAt: time.Now(),
	})
	s.log.Info(ctx, "User logged in", logger.Int("user_id", user.ID))

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: claims.Expiry.Unix(),
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
	}, nil
}

// Logout revokes the presented token's JTI for its remaining lifetime.
func (s *AuthAppService) Logout(ctx context.Context, claims *domainservice.Claims) error {
	if err := s.blacklist.Revoke(ctx, claims.JTI, claims.Expiry); err != nil {
		return errors.Internal(err)
	}
	s.auditor.Publish(ctx, audit.Event{
		Type:       constants.AuditEventLogout,
		Entity:     "user",
		EntityID:   claims.UserID,
		ActorEmail: claims.Email,
		OccurredAt: time.Now(),
	})
	return nil
}

// ForgotPassword emails a one-time reset code. An unknown email is reported
// as success so the endpoint cannot be used to enumerate accounts.
func (s *AuthAppService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.IsNotFound(err) {
			s.log.Info(ctx, "Reset requested for unknown email")
			return nil
		}
		return err
	}

	code, err := generateResetCode()
	if err != nil {
		return errors.Internal(err)
	}
	if err := s.resetStore.Save(ctx, user.Email, code, s.resetTTL); err != nil {
		return errors.Internal(err)
	}
	if err := s.mailer.SendResetCode(ctx, user.Email, code); err != nil {
		return errors.Internal(err)
	}
	return nil
}

// ResetPassword verifies the emailed code and replaces the password hash.
func (s *AuthAppService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}

	valid, err := s.resetStore.Consume(ctx, req.Email, req.Code)
	if err != nil {
		return errors.Internal(err)
	}
	if !valid {
		return errors.Unauthorized("invalid or expired reset code")
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Internal(err)
	}
	if err := s.users.UpdatePasswordHash(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	s.auditor.Publish(ctx, audit.Event{
		Type:       constants.AuditEventUpdated,
		Entity:     "user_password",
		EntityID:   user.ID,
		ActorEmail: user.Email,
		OccurredAt: time.Now(),
	})
	return nil
}

// generateResetCode produces a six digit numeric code.
func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
