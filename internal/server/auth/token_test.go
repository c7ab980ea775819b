package auth

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/portfolio-backend/internal/server/config"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:                    "access-secret",
		JWTRefreshSecret:             "refresh-secret",
		AccessTokenValidityDuration:  time.Minute,
		RefreshTokenValidityDuration: 24 * time.Hour,
	}
	return NewCodec(cfg)
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()
	c := newTestCodec(t)

	for _, kind := range []Kind{KindAccess, KindRefresh} {
		tok, err := c.Issue(7, kind)
		if err != nil {
			t.Fatalf("Issue error: %v", err)
		}
		if !c.Verify(tok, kind) {
			t.Fatalf("freshly issued token did not verify (kind %d)", kind)
		}
	}
}

func TestVerify_WrongKindSecret(t *testing.T) {
	t.Parallel()
	c := newTestCodec(t)

	tok, err := c.Issue(7, KindAccess)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if c.Verify(tok, KindRefresh) {
		t.Fatal("access token verified against the refresh secret")
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{
		JWTSecret:                    "access-secret",
		JWTRefreshSecret:             "refresh-secret",
		AccessTokenValidityDuration:  -1 * time.Second,
		RefreshTokenValidityDuration: -1 * time.Second,
	}
	c := NewCodec(cfg)

	tok, err := c.Issue(7, KindAccess)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if c.Verify(tok, KindAccess) {
		t.Fatal("expired token verified")
	}
}

func TestVerify_NeverPanics(t *testing.T) {
	t.Parallel()
	c := newTestCodec(t)

	inputs := []string{
		"",
		"not-a-jwt",
		"a.b",
		"a.b.c",
		"eyJhbGciOiJIUzI1NiJ9..sig",
	}
	for _, in := range inputs {
		if c.Verify(in, KindAccess) {
			t.Fatalf("garbage input verified: %q", in)
		}
		if c.Verify(in, KindRefresh) {
			t.Fatalf("garbage input verified: %q", in)
		}
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()
	c := newTestCodec(t)

	other := NewCodec(&config.Config{
		JWTSecret:                    "different-secret",
		JWTRefreshSecret:             "different-refresh",
		AccessTokenValidityDuration:  time.Minute,
		RefreshTokenValidityDuration: time.Minute,
	})

	tok, err := other.Issue(7, KindAccess)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if c.Verify(tok, KindAccess) {
		t.Fatal("token signed with the wrong secret verified")
	}
}

func TestDecodeUnverified(t *testing.T) {
	t.Parallel()
	c := newTestCodec(t)

	tok, err := c.Issue(42, KindRefresh)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, ok := c.DecodeUnverified(tok)
	if !ok {
		t.Fatal("decode failed for a well-formed token")
	}
	if claims.UserID != 42 {
		t.Fatalf("subject mismatch: got %d want 42", claims.UserID)
	}
}

func TestDecodeUnverified_Malformed(t *testing.T) {
	t.Parallel()
	c := newTestCodec(t)

	for _, in := range []string{"", "garbage", "a.b.c"} {
		if claims, ok := c.DecodeUnverified(in); ok || claims != nil {
			t.Fatalf("decode succeeded for %q", in)
		}
	}
}
