package pipeline

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_AppendOnly(t *testing.T) {
	pc := NewContext()

	entry := Entry{
		Stage:      1,
		RecordedAt: time.Now().UTC(),
		Words:      10,
		Payload:    json.RawMessage(`{"premise":"x"}`),
	}

	require.NoError(t, pc.Put(KeyBriefInterpretation, entry))

	// Second write to the same key must fail
	err := pc.Put(KeyBriefInterpretation, entry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already recorded")

	got, exists := pc.Get(KeyBriefInterpretation)
	require.True(t, exists)
	assert.Equal(t, 1, got.Stage)
	assert.Equal(t, 10, got.Words)
}

func TestContext_KeysPreserveOrder(t *testing.T) {
	pc := NewContext()

	keys := []string{KeyBriefInterpretation, KeyWorldBible, KeyCharacters}
	for i, key := range keys {
		require.NoError(t, pc.Put(key, Entry{Stage: i + 1, Payload: json.RawMessage(`{}`)}))
	}

	assert.Equal(t, keys, pc.Keys())
}

func TestContext_Unmarshal(t *testing.T) {
	pc := NewContext()
	require.NoError(t, pc.Put(KeyWorldBible, Entry{
		Stage:   2,
		Payload: json.RawMessage(`{"name":"Meridian","scale":"regional"}`),
	}))

	var world struct {
		Name  string `json:"name"`
		Scale string `json:"scale"`
	}
	require.NoError(t, pc.Unmarshal(KeyWorldBible, &world))
	assert.Equal(t, "Meridian", world.Name)

	err := pc.Unmarshal("missing", &world)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not recorded")
}

func TestContext_SnapshotRoundTrip(t *testing.T) {
	pc := NewContext()
	recorded := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, pc.Put(KeyBriefInterpretation, Entry{
		Stage:      1,
		RecordedAt: recorded,
		Words:      42,
		Tokens:     100,
		Payload:    json.RawMessage(`{"genre":"mystery"}`),
	}))
	require.NoError(t, pc.Put(KeyWorldBible, Entry{
		Stage:   2,
		Payload: json.RawMessage(`{"name":"Meridian"}`),
	}))

	snap, err := pc.Snapshot()
	require.NoError(t, err)

	restored, err := FromSnapshot(snap)
	require.NoError(t, err)

	assert.Equal(t, pc.Keys(), restored.Keys())

	entry, exists := restored.Get(KeyBriefInterpretation)
	require.True(t, exists)
	assert.Equal(t, 1, entry.Stage)
	assert.Equal(t, 42, entry.Words)
	assert.True(t, entry.RecordedAt.Equal(recorded))
	assert.JSONEq(t, `{"genre":"mystery"}`, string(entry.Payload))

	// Restored context stays append-only
	err = restored.Put(KeyWorldBible, Entry{Stage: 2})
	require.Error(t, err)
}

func TestFromSnapshot_MissingEntry(t *testing.T) {
	_, err := FromSnapshot(map[string]interface{}{
		"order":   []interface{}{"ghost"},
		"entries": map[string]interface{}{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing key")
}
