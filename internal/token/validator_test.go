package token

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func craft(t *testing.T, payload map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return header + "." + base64.RawURLEncoding.EncodeToString(b) + ".signature"
}

func TestIsExpired(t *testing.T) {
	t.Run("past exp is expired", func(t *testing.T) {
		tok := craft(t, map[string]any{"exp": time.Now().Add(-time.Hour).Unix()})
		assert.True(t, IsExpired(tok))
	})

	t.Run("future exp is not expired", func(t *testing.T) {
		tok := craft(t, map[string]any{"exp": time.Now().Add(time.Hour).Unix()})
		assert.False(t, IsExpired(tok))
	})

	t.Run("missing exp never ages out", func(t *testing.T) {
		tok := craft(t, map[string]any{"sub": "someone"})
		assert.False(t, IsExpired(tok))
	})

	t.Run("wrong segment count fails closed", func(t *testing.T) {
		assert.True(t, IsExpired("not-a-jwt"))
		assert.True(t, IsExpired("a.b"))
		assert.True(t, IsExpired("a.b.c.d"))
		assert.True(t, IsExpired(""))
	})

	t.Run("undecodable payload fails closed", func(t *testing.T) {
		assert.True(t, IsExpired("aGVhZGVy.!!!not-base64!!!.c2ln"))
	})

	t.Run("payload that is not json fails closed", func(t *testing.T) {
		seg := base64.RawURLEncoding.EncodeToString([]byte("plain text"))
		assert.True(t, IsExpired("aGVhZGVy."+seg+".c2ln"))
	})

	t.Run("garbage header does not matter, only the payload is read", func(t *testing.T) {
		payload, err := json.Marshal(map[string]any{"exp": time.Now().Add(time.Hour).Unix()})
		require.NoError(t, err)
		tok := "%%%." + base64.RawURLEncoding.EncodeToString(payload) + ".%%%"
		assert.False(t, IsExpired(tok))
	})

	t.Run("padded base64url payload is tolerated", func(t *testing.T) {
		payload, err := json.Marshal(map[string]any{"exp": time.Now().Add(time.Hour).Unix(), "pad": "xx"})
		require.NoError(t, err)
		tok := "h." + base64.URLEncoding.EncodeToString(payload) + ".s"
		assert.False(t, IsExpired(tok))
	})
}

func TestDecode(t *testing.T) {
	key := []byte("test-secret")
	now := time.Now()

	claims := Claims{
		Role:  "seeker",
		Name:  "Selin Demir",
		Email: "selin@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)

	got, err := Decode(signed)
	require.NoError(t, err)
	assert.Equal(t, "seeker", string(got.Role))
	assert.Equal(t, "Selin Demir", got.Name)
	assert.Equal(t, "user-1", got.Subject)

	_, err = Decode("garbage")
	assert.Error(t, err)
}
