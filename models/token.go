package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT session token with convenience accessors for
// authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in the session cookie.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// Username is a custom claim carrying the subject's account name so
	// that downstream handlers can stamp post ownership without an extra
	// database lookup.
	Username string `json:"username,omitempty"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`
}

// GetUserID returns the user identifier carried in the token's "sub"
// (subject) claim. User identifiers are opaque UUID strings, so no
// conversion is performed.
//
// Returns an error if the subject claim cannot be read.
func (t *Token) GetUserID() (string, error) {
	return t.GetSubject()
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
