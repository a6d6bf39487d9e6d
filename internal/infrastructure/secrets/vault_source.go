// Package secrets resolves runtime secrets from HashiCorp Vault.
package secrets

import (
	"context"
	"fmt"

	vault "github.com/hashicorp/vault/api"

	"github.com/sue-zadeh/fieldbase/internal/config"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
)

// VaultSource reads secrets from a KVv2 mount. It is used at startup to
// resolve the JWT signing secret and SMTP password when Vault is configured;
// the config file values act as the fallback.
type VaultSource struct {
	client    *vault.Client
	mountPath string
	secretKey string
	log       logger.Logger
}

// NewVaultSource connects to Vault using the configured address and token.
func NewVaultSource(cfg config.VaultConfig, log logger.Logger) (*VaultSource, error) {
	vaultConfig := vault.DefaultConfig()
	vaultConfig.Address = cfg.Address

	client, err := vault.NewClient(vaultConfig)
	if err != nil {
		return nil, fmt.Errorf("vault client: %w", err)
	}
	client.SetToken(cfg.Token)

	return &VaultSource{
		client:    client,
		mountPath: cfg.MountPath,
		secretKey: cfg.SecretKey,
		log:       log.WithComponent("vault_source"),
	}, nil
}

// Get reads one field from the configured secret path.
func (s *VaultSource) Get(ctx context.Context, field string) (string, error) {
	secret, err := s.client.KVv2(s.mountPath).Get(ctx, s.secretKey)
	if err != nil {
		return "", fmt.Errorf("read secret %s: %w", s.secretKey, err)
	}
	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("secret %s not found", s.secretKey)
	}

	value, ok := secret.Data[field].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("field %s missing from secret %s", field, s.secretKey)
	}
	return value, nil
}

// ResolveInto overwrites the JWT secret and SMTP password in cfg with the
// Vault values. Missing fields keep the config file value.
func (s *VaultSource) ResolveInto(ctx context.Context, cfg *config.Config) error {
	jwtSecret, err := s.Get(ctx, "jwt_secret")
	if err != nil {
		return err
	}
	cfg.Auth.JWTSecret = jwtSecret

	if smtpPassword, err := s.Get(ctx, "smtp_password"); err == nil {
		cfg.SMTP.Password = smtpPassword
	} else {
		s.log.Warn(ctx, "SMTP password not in Vault, using config value")
	}
	return nil
}
