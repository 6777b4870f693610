package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueParse(t *testing.T) {
	tok, err := Issue("segredo", "F001", time.Hour)
	require.NoError(t, err)

	id, err := Parse(tok, "segredo")
	require.NoError(t, err)
	assert.Equal(t, "F001", id)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := Issue("segredo", "F001", time.Hour)
	require.NoError(t, err)

	_, err = Parse(tok, "outro")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	tok, err := Issue("segredo", "F001", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(tok, "segredo")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	_, err := Parse("user-1700000000000", "segredo")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
