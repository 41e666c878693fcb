package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-github/v57/github"
	nanoid "github.com/matoous/go-nanoid/v2"
)

// appJWTTTL is the lifetime of the app JWT used to request an installation
// token. GitHub caps it at 10 minutes.
const appJWTTTL = 10 * time.Minute

// AppConfig identifies a GitHub App installation.
type AppConfig struct {
	AppID          string // App identifier (JWT issuer)
	InstallationID int64  // Installation to mint tokens for
	PrivateKeyPEM  []byte // RSA private key in PEM form
}

// appJWT mints the short-lived RS256 JWT GitHub Apps authenticate with.
func (a AppConfig) appJWT() (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(a.PrivateKeyPEM)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}

	tokenID, err := nanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate token ID: %w", err)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer: a.AppID,
		// Backdated a minute to tolerate clock skew against GitHub
		IssuedAt:  jwt.NewNumericDate(now.Add(-time.Minute)),
		ExpiresAt: jwt.NewNumericDate(now.Add(appJWTTTL)),
		ID:        tokenID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign app JWT: %w", err)
	}
	return signed, nil
}

// InstallationToken exchanges the app JWT for an installation access token.
func (a AppConfig) InstallationToken(ctx context.Context) (string, error) {
	appJWT, err := a.appJWT()
	if err != nil {
		return "", err
	}

	client := github.NewClient(nil).WithAuthToken(appJWT)
	token, _, err := client.Apps.CreateInstallationToken(ctx, a.InstallationID, nil)
	if err != nil {
		return "", fmt.Errorf("create installation token: %w", err)
	}
	return token.GetToken(), nil
}
