package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"radiusmgr/config"
	"radiusmgr/internal/domain/service"
	"radiusmgr/internal/errors"
)

var codeSpace = big.NewInt(1_000_000)

// resetCodeKeyLabel separates the fingerprint key from the token signing key.
const resetCodeKeyLabel = "reset-code"

type randomCodeGenerator struct {
	key []byte
}

// NewCodeGenerator returns a generator whose fingerprints are keyed with HMAC(secret, "reset-code").
func NewCodeGenerator(cfg *config.Config) (service.CodeGenerator, error) {
	if cfg.Auth == nil || cfg.Auth.SecretKey == "" {
		return nil, errors.New("auth.secretKey must be provided")
	}

	return &randomCodeGenerator{key: deriveResetCodeKey(cfg.Auth.SecretKey)}, nil
}

func deriveResetCodeKey(secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(resetCodeKeyLabel))

	return mac.Sum(nil)
}

func (g *randomCodeGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", errors.Wrap(err, "failed to read random source")
	}

	return fmt.Sprintf("%0*d", service.VerificationCodeLength, n.Int64()), nil
}

func (g *randomCodeGenerator) Fingerprint(email, code string) string {
	mac := hmac.New(sha256.New, g.key)
	mac.Write([]byte(strings.ToLower(strings.TrimSpace(email))))
	mac.Write([]byte{0})
	mac.Write([]byte(code))

	return hex.EncodeToString(mac.Sum(nil))
}
