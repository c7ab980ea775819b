package auth

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Renewer implements sliding-session renewal: every successful protected
// request gets a brand-new token pair, restarting both expiries regardless of
// how much validity the old pair had left. There is no server-side session
// store; renewal is a pure function of subject and wall-clock time.
type Renewer struct {
	codec *Codec
}

func NewRenewer(codec *Codec) *Renewer {
	return &Renewer{codec: codec}
}

// Renew issues a fresh pair for the subject. It cannot block and fails only
// on signing misconfiguration.
func (r *Renewer) Renew(subject int64) (*TokenPair, error) {
	access, err := r.codec.Issue(subject, KindAccess)
	if err != nil {
		return nil, err
	}
	refresh, err := r.codec.Issue(subject, KindRefresh)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
