package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionID(t *testing.T) {
	id, err := GenerateSessionID()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "cart_"))
	assert.Len(t, id, len("cart_")+32)

	other, err := GenerateSessionID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}
