package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alstn2468/Redux-ToDo-Web-Backend/token"
)

func TestNewCodec_RejectsMissingSettings(t *testing.T) {
	_, err := token.NewCodec("", "secret")
	assert.Error(t, err)

	_, err = token.NewCodec("HS256", "")
	assert.Error(t, err)

	_, err = token.NewCodec("XX999", "secret")
	assert.Error(t, err)
}

func TestCodec_RoundTrip(t *testing.T) {
	codec, err := token.NewCodec("HS256", "test_secret_key")
	require.NoError(t, err)

	claims := map[string]any{
		"username":  "alstn2468",
		"userId":    float64(42),
		"isAdmin":   true,
		"threshold": 0.5,
	}

	signed, err := codec.Encode(claims)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	decoded, err := codec.Decode(signed)
	require.NoError(t, err)
	assert.Equal(t, claims, decoded)
}

func TestCodec_RoundTrip_EmptyClaims(t *testing.T) {
	codec, err := token.NewCodec("HS256", "test_secret_key")
	require.NoError(t, err)

	signed, err := codec.Encode(map[string]any{})
	require.NoError(t, err)

	decoded, err := codec.Decode(signed)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestCodec_Decode_WrongSecret(t *testing.T) {
	signer, err := token.NewCodec("HS256", "one_secret")
	require.NoError(t, err)
	verifier, err := token.NewCodec("HS256", "another_secret")
	require.NoError(t, err)

	signed, err := signer.Encode(map[string]any{"username": "alstn2468"})
	require.NoError(t, err)

	_, err = verifier.Decode(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestCodec_Decode_WrongAlgorithm(t *testing.T) {
	signer, err := token.NewCodec("HS512", "shared_secret")
	require.NoError(t, err)
	verifier, err := token.NewCodec("HS256", "shared_secret")
	require.NoError(t, err)

	signed, err := signer.Encode(map[string]any{"username": "alstn2468"})
	require.NoError(t, err)

	_, err = verifier.Decode(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestCodec_Decode_Malformed(t *testing.T) {
	codec, err := token.NewCodec("HS256", "test_secret_key")
	require.NoError(t, err)

	for _, tok := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		_, err := codec.Decode(tok)
		assert.ErrorIs(t, err, token.ErrInvalidToken, "token %q", tok)
	}
}
