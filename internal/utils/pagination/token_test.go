package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateBasedTokenRoundTrip(t *testing.T) {
	stamps := []time.Time{
		time.Date(2024, 3, 1, 9, 15, 0, 0, time.UTC),
		time.Now().UTC(),
		{},
	}
	for _, stamp := range stamps {
		token := EncodeDateBasedToken(stamp)
		require.NotEmpty(t, token)

		decoded, err := DecodeDateBasedToken(token)
		require.NoError(t, err)
		assert.True(t, stamp.Equal(decoded))
	}
}

func TestDecodeDateBasedTokenErrors(t *testing.T) {
	_, err := DecodeDateBasedToken("not base64!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	// Valid base64 but not a timestamp.
	_, err = DecodeDateBasedToken("bm90YWRhdGU=")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")
}

func TestCompositeTokenRoundTrip(t *testing.T) {
	createdAt := time.Date(2024, 6, 30, 23, 59, 59, 123456789, time.UTC)
	token := EncodeCompositeToken(createdAt, "expense-42")

	decodedAt, decodedID, err := DecodeCompositeToken(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(decodedAt))
	assert.Equal(t, "expense-42", decodedID)
}

func TestCompositeTokenKeepsPipesInID(t *testing.T) {
	createdAt := time.Now().UTC()
	token := EncodeCompositeToken(createdAt, "id|with|pipes")

	_, decodedID, err := DecodeCompositeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "id|with|pipes", decodedID)
}

func TestDecodeCompositeTokenErrors(t *testing.T) {
	_, _, err := DecodeCompositeToken("%%%")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	// Missing separator between timestamp and id.
	_, _, err = DecodeCompositeToken(EncodeDateBasedToken(time.Now()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")
}
