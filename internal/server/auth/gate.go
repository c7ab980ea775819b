package auth

// Denial reasons surfaced to clients.
const (
	ReasonMissingCredentials = "missing credentials"
	ReasonInvalidCredentials = "invalid credentials"
)

// Decision is the outcome of the authorization check: whether the request is
// admitted, for which subject, and why not otherwise.
type Decision struct {
	Admitted bool
	Subject  int64
	Reason   string
}

// Gate is the single authorization decision function used by every protected
// operation. It is a pure function over the two tokens and the current time;
// it performs no I/O and mutates nothing.
type Gate struct {
	codec *Codec
}

func NewGate(codec *Codec) *Gate {
	return &Gate{codec: codec}
}

// Authorize admits a request if either the access token or the refresh token
// verifies. A valid refresh token alone is sufficient: it lets a client whose
// access token just expired complete one more request while it fetches a
// renewal.
//
// The subject is recovered by unverified decode of whichever token is
// present and well-formed, preferring the access token. If neither token
// yields a subject, the request is denied rather than faulted.
func (g *Gate) Authorize(accessToken, refreshToken string) Decision {
	if accessToken == "" && refreshToken == "" {
		return Decision{Reason: ReasonMissingCredentials}
	}

	accessOK := accessToken != "" && g.codec.Verify(accessToken, KindAccess)
	refreshOK := refreshToken != "" && g.codec.Verify(refreshToken, KindRefresh)

	if !accessOK && !refreshOK {
		return Decision{Reason: ReasonInvalidCredentials}
	}

	if accessToken != "" {
		if claims, ok := g.codec.DecodeUnverified(accessToken); ok {
			return Decision{Admitted: true, Subject: claims.UserID}
		}
	}
	if refreshToken != "" {
		if claims, ok := g.codec.DecodeUnverified(refreshToken); ok {
			return Decision{Admitted: true, Subject: claims.UserID}
		}
	}

	// A token verified but its claims did not parse. Treated as a denial,
	// not a fault.
	return Decision{Reason: ReasonInvalidCredentials}
}
