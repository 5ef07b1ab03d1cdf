package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFromPassword(t *testing.T) {
	a := New()

	encoded, err := a.GenerateFromPassword("correct horse battery")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"), encoded)
	assert.NotContains(t, encoded, "correct horse battery")

	// A fresh salt every time means no two hashes match
	second, err := a.GenerateFromPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, encoded, second)
}

func TestVerifyPasswd(t *testing.T) {
	a := New()

	encoded, err := a.GenerateFromPassword("hunter22222")
	require.NoError(t, err)

	ok, err := a.VerifyPasswd("hunter22222", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.VerifyPasswd("wrong password", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswdMalformedHash(t *testing.T) {
	a := New()

	cases := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"not phc at all", "plainhash"},
		{"wrong variant", "$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
		{"missing segments", "$argon2id$v=19$m=65536,t=3,p=2"},
		{"bad version segment", "$argon2id$version=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
		{"bad params", "$argon2id$v=19$m=abc$c2FsdA$aGFzaA"},
		{"bad salt b64", "$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := a.VerifyPasswd("anything", tc.encoded)
			assert.ErrorIs(t, err, ErrInvalidHash)
			assert.False(t, ok)
		})
	}
}

func TestVerifyPasswdUnsupportedVersion(t *testing.T) {
	a := New()

	ok, err := a.VerifyPasswd("anything", "$argon2id$v=18$m=65536,t=3,p=2$c2FsdA$aGFzaA")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidHash)
	assert.False(t, ok)
}
