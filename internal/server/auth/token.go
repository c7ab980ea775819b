// Package auth implements the token subsystem: issuing and verifying the
// access/refresh JWT pair, the authorization decision applied to every
// protected request, and sliding-session renewal.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/portfolio-backend/internal/server/config"
)

// Kind selects which of the two token flavors an operation applies to.
// Access and refresh tokens are signed with independent secrets and have
// independent lifetimes.
type Kind int

const (
	KindAccess Kind = iota
	KindRefresh
)

// Claims is the JWT payload: the standard registered claims plus the
// authenticated user's id.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// Codec creates and verifies tokens of both kinds. It holds no mutable
// state; all parameters come from the config captured at construction.
type Codec struct {
	accessSecret    []byte
	refreshSecret   []byte
	accessValidity  time.Duration
	refreshValidity time.Duration
}

// NewCodec builds a Codec from server config. Config validation has already
// guaranteed that both secrets are present.
func NewCodec(cfg *config.Config) *Codec {
	return &Codec{
		accessSecret:    []byte(cfg.JWTSecret),
		refreshSecret:   []byte(cfg.JWTRefreshSecret),
		accessValidity:  cfg.AccessTokenValidityDuration,
		refreshValidity: cfg.RefreshTokenValidityDuration,
	}
}

func (c *Codec) secret(kind Kind) []byte {
	if kind == KindRefresh {
		return c.refreshSecret
	}
	return c.accessSecret
}

func (c *Codec) validity(kind Kind) time.Duration {
	if kind == KindRefresh {
		return c.refreshValidity
	}
	return c.accessValidity
}

// Issue signs a token of the given kind for the subject. It fails only if
// signing itself fails, which indicates misconfiguration rather than a
// request-level problem.
func (c *Codec) Issue(subject int64, kind Kind) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.validity(kind))),
		},
		UserID: subject,
	})
	return token.SignedString(c.secret(kind))
}

// Verify reports whether the token is authentic for the given kind:
// well-formed, signed with the kind's secret, and not expired. It returns
// false for any input, including empty and non-JWT strings, and never
// distinguishes expired from otherwise invalid.
func (c *Codec) Verify(tokenString string, kind Kind) bool {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return c.secret(kind), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil {
		return false
	}
	return token.Valid
}

// DecodeUnverified parses the claims payload without checking the signature,
// purely to recover the claimed subject after authenticity has already been
// established by Verify. It must never stand in for Verify. Returns
// (nil, false) on any parse failure.
func (c *Codec) DecodeUnverified(tokenString string) (*Claims, bool) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, false
	}
	return claims, true
}
