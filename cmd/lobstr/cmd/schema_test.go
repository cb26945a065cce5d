package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaDocuments(t *testing.T) {
	for _, name := range []string{"metadata", "summary", "catalog"} {
		s, err := Schema(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, s.Title)

		data, err := json.Marshal(s)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"$schema"`)
	}

	s, err := Schema("metadata")
	require.NoError(t, err)
	data, err := json.Marshal(s)
	require.NoError(t, err)
	for _, field := range []string{"rarity_score", "rarity_rank", "rarity_percentile", "trait_type"} {
		assert.Contains(t, string(data), field)
	}

	_, err = Schema("token")
	assert.Error(t, err)
}
