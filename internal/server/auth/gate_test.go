package auth

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/portfolio-backend/internal/server/config"
)

func newTestGate(t *testing.T, accessValidity, refreshValidity time.Duration) (*Gate, *Codec) {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:                    "access-secret",
		JWTRefreshSecret:             "refresh-secret",
		AccessTokenValidityDuration:  accessValidity,
		RefreshTokenValidityDuration: refreshValidity,
	}
	codec := NewCodec(cfg)
	return NewGate(codec), codec
}

func TestAuthorize_MissingCredentials(t *testing.T) {
	t.Parallel()
	gate, _ := newTestGate(t, time.Minute, time.Hour)

	d := gate.Authorize("", "")
	if d.Admitted {
		t.Fatal("admitted with no credentials")
	}
	if d.Reason != ReasonMissingCredentials {
		t.Fatalf("reason: got %q want %q", d.Reason, ReasonMissingCredentials)
	}
}

func TestAuthorize_ValidAccessOnly(t *testing.T) {
	t.Parallel()
	gate, codec := newTestGate(t, time.Minute, time.Hour)

	access, err := codec.Issue(7, KindAccess)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	d := gate.Authorize(access, "")
	if !d.Admitted {
		t.Fatalf("denied: %q", d.Reason)
	}
	if d.Subject != 7 {
		t.Fatalf("subject: got %d want 7", d.Subject)
	}
}

func TestAuthorize_ExpiredAccessValidRefresh(t *testing.T) {
	t.Parallel()
	gate, codec := newTestGate(t, -1*time.Second, time.Hour)

	access, err := codec.Issue(7, KindAccess)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	refresh, err := codec.Issue(7, KindRefresh)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	d := gate.Authorize(access, refresh)
	if !d.Admitted {
		t.Fatalf("denied despite valid refresh token: %q", d.Reason)
	}
	if d.Subject != 7 {
		t.Fatalf("subject: got %d want 7", d.Subject)
	}
}

func TestAuthorize_ValidAccessExpiredRefresh(t *testing.T) {
	t.Parallel()
	gate, codec := newTestGate(t, time.Minute, -1*time.Second)

	access, err := codec.Issue(9, KindAccess)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	refresh, err := codec.Issue(9, KindRefresh)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	d := gate.Authorize(access, refresh)
	if !d.Admitted {
		t.Fatalf("denied despite valid access token: %q", d.Reason)
	}
	if d.Subject != 9 {
		t.Fatalf("subject: got %d want 9", d.Subject)
	}
}

func TestAuthorize_BothExpired(t *testing.T) {
	t.Parallel()
	gate, codec := newTestGate(t, -1*time.Second, -1*time.Second)

	access, _ := codec.Issue(7, KindAccess)
	refresh, _ := codec.Issue(7, KindRefresh)

	d := gate.Authorize(access, refresh)
	if d.Admitted {
		t.Fatal("admitted with two expired tokens")
	}
	if d.Reason != ReasonInvalidCredentials {
		t.Fatalf("reason: got %q want %q", d.Reason, ReasonInvalidCredentials)
	}
}

func TestAuthorize_GarbageTokens(t *testing.T) {
	t.Parallel()
	gate, _ := newTestGate(t, time.Minute, time.Hour)

	d := gate.Authorize("garbage", "also.garbage")
	if d.Admitted {
		t.Fatal("admitted with garbage tokens")
	}
	if d.Reason != ReasonInvalidCredentials {
		t.Fatalf("reason: got %q want %q", d.Reason, ReasonInvalidCredentials)
	}
}

func TestAuthorize_SubjectPrefersAccessToken(t *testing.T) {
	t.Parallel()
	gate, codec := newTestGate(t, -1*time.Second, time.Hour)

	// Access token for subject 1 is expired; refresh token for subject 2 is
	// what admits the request. The subject is still read from the access
	// token, since it is present and well-formed.
	access, _ := codec.Issue(1, KindAccess)
	refresh, _ := codec.Issue(2, KindRefresh)

	d := gate.Authorize(access, refresh)
	if !d.Admitted {
		t.Fatalf("denied: %q", d.Reason)
	}
	if d.Subject != 1 {
		t.Fatalf("subject: got %d want 1", d.Subject)
	}
}

func TestAuthorize_RefreshOnly(t *testing.T) {
	t.Parallel()
	gate, codec := newTestGate(t, time.Minute, time.Hour)

	refresh, err := codec.Issue(5, KindRefresh)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	d := gate.Authorize("", refresh)
	if !d.Admitted {
		t.Fatalf("refresh-only request denied: %q", d.Reason)
	}
	if d.Subject != 5 {
		t.Fatalf("subject: got %d want 5", d.Subject)
	}
}
