package stages

import (
	"fmt"

	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/pipeline"
)

// Pipeline returns the ten agents in execution order. The order is fixed;
// the orchestrator walks it from the resume point forward.
func Pipeline(cfg *config.Config) ([]pipeline.Agent, error) {
	agents := []pipeline.Agent{
		NewBriefInterpreter(cfg),
		NewWorldArchitect(cfg),
		NewCharacterArchitect(cfg),
		NewStructureDesigner(cfg),
		NewSegmentPlanner(cfg),
		NewSequentialGenerator(cfg),
		NewCoherenceValidator(cfg),
		NewLanguageStylizer(cfg),
		NewEditorialReviewer(cfg),
		NewOutputProcessor(cfg),
	}

	seen := make(map[string]int, len(agents))
	for i, agent := range agents {
		if agent.Stage() != i+1 {
			return nil, fmt.Errorf("agent %s declares stage %d at position %d", agent.Name(), agent.Stage(), i+1)
		}
		key := agent.ProducedKey()
		if prior, dup := seen[key]; dup {
			return nil, fmt.Errorf("stages %d and %d both produce %q", prior, agent.Stage(), key)
		}
		seen[key] = agent.Stage()
	}

	// Prose-producing stages never run on the cheap tier
	for _, stage := range []int{6, 8} {
		if tier := agents[stage-1].PreferredTier(); tier != config.TierAdvanced {
			return nil, fmt.Errorf("stage %d must prefer the advanced tier, got %q", stage, tier)
		}
	}

	return agents, nil
}
