package bridge

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"taskbar/backend/apperr"
	"taskbar/backend/utils"
)

const (
	keyPassphrase = "bridge_passphrase"
	keyJWTSecret  = "bridge_jwt_secret"

	// TokenTTL is the lifetime of tokens issued by Login.
	TokenTTL = 72 * time.Hour
)

// ErrInvalidPassphrase is returned by Login on a wrong passphrase.
var ErrInvalidPassphrase = errors.New("invalid passphrase")

// AuthRequired reports whether a passphrase has been set.
func (b *Bridge) AuthRequired() bool {
	var hash string
	found, err := b.kv.Get(keyPassphrase, &hash)
	if err != nil {
		b.logger.Printf("bridge: unreadable passphrase hash: %v", err)
	}
	return found && hash != ""
}

// TokenSecret returns the signing secret, generating and storing one on
// first use when none was configured.
func (b *Bridge) TokenSecret() string {
	b.secretMu.Lock()
	defer b.secretMu.Unlock()

	if b.secret != "" {
		return b.secret
	}
	var secret string
	if found, err := b.kv.Get(keyJWTSecret, &secret); err == nil && found && secret != "" {
		b.secret = secret
		return secret
	}
	secret = uuid.NewString()
	if err := b.kv.Set(keyJWTSecret, secret); err != nil {
		b.logger.Printf("bridge: persist token secret: %v", err)
	}
	b.secret = secret
	return secret
}

// SetPassphrase enables bridge auth. An empty passphrase disables it.
func (b *Bridge) SetPassphrase(passphrase string) error {
	passphrase = strings.TrimSpace(passphrase)
	if passphrase == "" {
		return b.kv.Set(keyPassphrase, "")
	}
	if len(passphrase) < 6 {
		return apperr.Validation("set passphrase", "passphrase must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return b.kv.Set(keyPassphrase, string(hash))
}

// Login exchanges the passphrase for a bridge token.
func (b *Bridge) Login(passphrase string) (string, error) {
	var hash string
	found, err := b.kv.Get(keyPassphrase, &hash)
	if err != nil {
		return "", err
	}
	if !found || hash == "" {
		return "", apperr.Validation("login", "no passphrase set")
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(passphrase)) != nil {
		return "", ErrInvalidPassphrase
	}
	return b.IssueToken()
}

// IssueToken mints a token without checking the passphrase.
func (b *Bridge) IssueToken() (string, error) {
	return utils.GenerateBridgeToken(b.TokenSecret(), TokenTTL)
}
