package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClusterCounts_KeepsKeyOrder(t *testing.T) {
	counts := NewClusterCounts()
	require.NoError(t, json.Unmarshal([]byte(`{"Tech":4,"Energy":9,"Markets":1}`), counts))

	var keys []string
	for pair := counts.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	assert.Equal(t, []string{"Tech", "Energy", "Markets"}, keys)

	out, err := json.Marshal(counts)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Tech":4,"Energy":9,"Markets":1}`, string(out))
	assert.Equal(t, `{"Tech":4,"Energy":9,"Markets":1}`, string(out))
}

func TestSignal_JSONNames(t *testing.T) {
	out, err := json.Marshal(Signal{ID: 7, Source: "AP", TopicCluster: "Markets"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"Source":"AP"`)
	assert.Contains(t, string(out), `"topic_cluster":"Markets"`)
	assert.NotContains(t, string(out), `"ID"`)
}
