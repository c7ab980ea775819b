package common

// AccessTokenHeaderName is the HTTP header carrying the bearer access token.
const AccessTokenHeaderName = "Authorization"

// RefreshTokenHeaderName is the HTTP header carrying the refresh token on
// protected requests. The refresh token is never read from the request body.
const RefreshTokenHeaderName = "X-Refresh-Token"
