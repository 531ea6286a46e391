// Package pipeline defines the agent contract, the append-only pipeline
// context, and the error taxonomy shared by the orchestrator and the ten
// stage implementations.
package pipeline

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// KeyBrief holds the submitted Production Brief, seeded by the
// orchestrator before stage 1 runs.
const KeyBrief = "brief"

// Well-known context keys, one per producing stage.
const (
	KeyBriefInterpretation = "brief_interpretation"
	KeyWorldBible          = "world_bible"
	KeyCharacters          = "characters"
	KeyStructure           = "structure"
	KeySegmentPlan         = "segment_plan"
	KeySegments            = "segments"
	KeyCoherenceReport     = "coherence_report"
	KeyStylizedSegments    = "stylized_segments"
	KeyEditorialReport     = "editorial_report"
	KeyOutputManifest      = "output_manifest"
)

// Entry is one attributed context record. Payload is the producing stage's
// typed result, serialised.
type Entry struct {
	Stage      int             `json:"stage"`
	RecordedAt time.Time       `json:"recorded_at"`
	Words      int             `json:"words"`
	Tokens     int             `json:"tokens"`
	Payload    json.RawMessage `json:"payload"`
}

// Context is the append-only map carried between stages. Keys are written
// exactly once; later stages read, never overwrite.
type Context struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]Entry
}

// NewContext creates an empty pipeline context
func NewContext() *Context {
	return &Context{
		entries: make(map[string]Entry),
	}
}

// Put records a key. Writing an existing key is an error: stage outputs are
// immutable once recorded.
func (c *Context) Put(key string, entry Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		return fmt.Errorf("context key %q already recorded", key)
	}

	c.order = append(c.order, key)
	c.entries[key] = entry
	return nil
}

// Get returns the entry for a key
func (c *Context) Get(key string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[key]
	return entry, exists
}

// Has reports whether a key has been recorded
func (c *Context) Has(key string) bool {
	_, exists := c.Get(key)
	return exists
}

// Keys returns recorded keys in insertion order
func (c *Context) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

// Unmarshal decodes the payload of a key into target
func (c *Context) Unmarshal(key string, target any) error {
	entry, exists := c.Get(key)
	if !exists {
		return fmt.Errorf("context key %q not recorded", key)
	}
	if err := json.Unmarshal(entry.Payload, target); err != nil {
		return fmt.Errorf("failed to decode context key %q: %w", key, err)
	}
	return nil
}

// snapshot is the serialised form stored in checkpoints
type snapshot struct {
	Order   []string         `json:"order"`
	Entries map[string]Entry `json:"entries"`
}

// Snapshot serialises the context for checkpoint storage
func (c *Context) Snapshot() (map[string]interface{}, error) {
	c.mu.RLock()
	snap := snapshot{
		Order:   append([]string(nil), c.order...),
		Entries: make(map[string]Entry, len(c.entries)),
	}
	for k, v := range c.entries {
		snap.Entries[k] = v
	}
	c.mu.RUnlock()

	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to serialise context: %w", err)
	}

	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to round-trip context snapshot: %w", err)
	}
	return out, nil
}

// FromSnapshot rebuilds a context from a checkpoint snapshot
func FromSnapshot(data map[string]interface{}) (*Context, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to serialise snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode context snapshot: %w", err)
	}

	c := NewContext()
	for _, key := range snap.Order {
		entry, exists := snap.Entries[key]
		if !exists {
			return nil, fmt.Errorf("snapshot order references missing key %q", key)
		}
		if err := c.Put(key, entry); err != nil {
			return nil, err
		}
	}
	return c, nil
}
