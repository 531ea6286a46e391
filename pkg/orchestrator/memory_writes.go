package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/narraforge/narraforge/ent"
	"github.com/narraforge/narraforge/pkg/memory"
	"github.com/narraforge/narraforge/pkg/pipeline"
	"github.com/narraforge/narraforge/pkg/stages"
	"github.com/narraforge/narraforge/pkg/textcheck"
)

// memoryWrites builds the transactional memory-write closure for a stage
// boundary. The world architect persists the world, the character architect
// persists the cast; both ride in the checkpoint transaction so an
// interrupted stage leaves neither memory nor checkpoint behind. Stages
// without structured memory output return nil.
func (o *Orchestrator) memoryWrites(ctx context.Context, jobID string, stage int, payload json.RawMessage) (func(tx *ent.Tx) error, error) {
	switch stage {
	case 2:
		var bible stages.WorldBible
		if err := json.Unmarshal(payload, &bible); err != nil {
			return nil, fmt.Errorf("world bible payload unreadable: %w", err)
		}
		return func(tx *ent.Tx) error {
			mem := memory.New(tx.Client())
			_, err := mem.Structural.CreateWorld(ctx, memory.CreateWorldInput{
				JobID:        jobID,
				Name:         bible.Name,
				Rules:        bible.Rules,
				Boundaries:   bible.Boundaries,
				Anomalies:    bible.Anomalies,
				CoreConflict: bible.CoreConflict,
				Theme:        bible.Theme,
				Scale:        bible.Scale,
			})
			return err
		}, nil

	case 3:
		var cast stages.CharacterSet
		if err := json.Unmarshal(payload, &cast); err != nil {
			return nil, fmt.Errorf("character set payload unreadable: %w", err)
		}
		return func(tx *ent.Tx) error {
			mem := memory.New(tx.Client())
			world, err := mem.Structural.GetWorldByJob(ctx, jobID)
			if err != nil {
				return fmt.Errorf("world missing for character writes: %w", err)
			}
			for _, spec := range cast.Characters {
				_, err := mem.Structural.CreateCharacter(ctx, memory.CreateCharacterInput{
					WorldID:           world.ID,
					Name:              spec.Name,
					Trajectory:        spec.Trajectory,
					Contradictions:    spec.Contradictions,
					CognitiveLimits:   spec.CognitiveLimits,
					EvolutionCapacity: spec.EvolutionCapacity,
				})
				if err != nil {
					return fmt.Errorf("character %q: %w", spec.Name, err)
				}
			}
			return nil
		}, nil
	}

	return nil, nil
}

// payloadWords attributes a word count to a stage output. Only prose-bearing
// payloads carry one; planning and report payloads count as zero.
func payloadWords(key string, payload json.RawMessage) int {
	switch key {
	case pipeline.KeySegments:
		var set stages.SegmentSet
		if err := json.Unmarshal(payload, &set); err != nil {
			return 0
		}
		total := 0
		for _, s := range set.Segments {
			total += s.Words
		}
		return total

	case pipeline.KeyStylizedSegments:
		var set stages.StylizedSet
		if err := json.Unmarshal(payload, &set); err != nil {
			return 0
		}
		total := 0
		for _, s := range set.Segments {
			total += s.Words
		}
		return total

	case pipeline.KeyEditorialReport:
		var result stages.EditorialResult
		if err := json.Unmarshal(payload, &result); err != nil {
			return 0
		}
		total := 0
		for _, text := range result.Segments {
			total += textcheck.CountWords(text)
		}
		return total
	}

	return 0
}
