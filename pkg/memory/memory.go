package memory

import (
	"github.com/narraforge/narraforge/ent"
)

// Memory bundles the three stores over one ent client. Construct over
// tx.Client() to group a stage's writes with its checkpoint.
type Memory struct {
	Structural   *StructuralStore
	Semantic     *SemanticStore
	Evolutionary *EvolutionaryStore

	client *ent.Client
}

// New creates the triple store over a shared client
func New(client *ent.Client) *Memory {
	return &Memory{
		Structural:   NewStructuralStore(client),
		Semantic:     NewSemanticStore(client),
		Evolutionary: NewEvolutionaryStore(client),
		client:       client,
	}
}
