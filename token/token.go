// Package token provides a small JWT encode/decode codec over a shared
// secret and a configured signing algorithm.
package token

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ErrInvalidToken is returned by Decode when a token is malformed, its
// signature does not verify, or it was signed with a different algorithm
// than the one configured.
var ErrInvalidToken = errors.New("token: invalid token")

// Codec signs and verifies claims mappings. It holds no state beyond its
// configuration and is safe for concurrent use.
type Codec struct {
	algorithm string
	secret    []byte
}

// NewCodec builds a codec for the given signing algorithm name (e.g. HS256)
// and symmetric secret. Both are required; unknown algorithm names are
// rejected here rather than at the first Encode call.
func NewCodec(algorithm, secret string) (*Codec, error) {
	if algorithm == "" {
		return nil, errors.New("token: signing algorithm is not set")
	}
	if secret == "" {
		return nil, errors.New("token: secret key is not set")
	}
	if jwt.GetSigningMethod(algorithm) == nil {
		return nil, errors.Errorf("token: unknown signing algorithm %q", algorithm)
	}
	return &Codec{algorithm: algorithm, secret: []byte(secret)}, nil
}

// Encode serializes the claims mapping into a signed token string.
func (c *Codec) Encode(claims map[string]any) (string, error) {
	t := jwt.NewWithClaims(jwt.GetSigningMethod(c.algorithm), jwt.MapClaims(claims))
	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", errors.Wrap(err, "token: sign")
	}
	return signed, nil
}

// Decode verifies the token string and returns the embedded claims mapping.
// Any verification failure surfaces as ErrInvalidToken.
func (c *Codec) Decode(tokenString string) (map[string]any, error) {
	parsed, err := jwt.Parse(tokenString,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{c.algorithm}),
	)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return map[string]any(claims), nil
}
