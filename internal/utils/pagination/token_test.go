package pagination_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/klarbuch/klarbuch_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	docDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 6, 15, 10, 30, 45, 123456789, time.UTC)

	token := pagination.EncodeToken(docDate, createdAt)

	gotDate, gotCreated, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, docDate.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreated))
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!")
	assert.Error(t, err)

	// Valid base64 but missing the separator
	bad := base64.StdEncoding.EncodeToString([]byte("2025-06-15T00:00:00Z"))
	_, _, err = pagination.DecodeToken(bad)
	assert.Error(t, err)

	// Valid shape but unparseable dates
	bad = base64.StdEncoding.EncodeToString([]byte("yesterday|tomorrow"))
	_, _, err = pagination.DecodeToken(bad)
	assert.Error(t, err)
}
