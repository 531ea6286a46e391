package memory

import (
	"context"
	"fmt"
	"strings"
)

// DefaultSummaryWordLimit bounds the prompt text a summary may contribute.
// Generation prompts carry summaries, never the full world bible.
const DefaultSummaryWordLimit = 200

// SummarizeWorld returns a bounded prose summary of the world for prompt
// inclusion. maxWords <= 0 falls back to DefaultSummaryWordLimit.
func (m *Memory) SummarizeWorld(ctx context.Context, worldID string, maxWords int) (string, error) {
	w, err := m.Structural.GetWorld(ctx, worldID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "World: %s (%s scale). Theme: %s. Core conflict: %s.",
		w.Name, w.Scale, w.Theme, w.CoreConflict)
	if len(w.Rules) > 0 {
		fmt.Fprintf(&b, " Rules: %s.", strings.Join(w.Rules, "; "))
	}
	if len(w.Boundaries) > 0 {
		fmt.Fprintf(&b, " Boundaries: %s.", strings.Join(w.Boundaries, "; "))
	}
	if len(w.Anomalies) > 0 {
		fmt.Fprintf(&b, " Anomalies: %s.", strings.Join(w.Anomalies, "; "))
	}

	return truncateWords(b.String(), maxWords), nil
}

// SummarizeCharacter returns a bounded prose summary of a character and
// its relationships for prompt inclusion
func (m *Memory) SummarizeCharacter(ctx context.Context, characterID string, maxWords int) (string, error) {
	c, err := m.Structural.GetCharacter(ctx, characterID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s. Trajectory: %s.", c.Name, c.Trajectory)
	if len(c.Contradictions) > 0 {
		fmt.Fprintf(&b, " Contradictions: %s.", strings.Join(c.Contradictions, "; "))
	}
	if len(c.CognitiveLimits) > 0 {
		fmt.Fprintf(&b, " Does not know: %s.", strings.Join(c.CognitiveLimits, "; "))
	}
	fmt.Fprintf(&b, " Capacity for change: %.2f.", c.EvolutionCapacity)

	rels, err := m.Semantic.ListRelationshipsFor(ctx, characterID)
	if err != nil {
		return "", err
	}
	if len(rels) > 0 {
		names, err := m.characterNames(ctx, c.WorldID)
		if err != nil {
			return "", err
		}
		var parts []string
		for _, rel := range rels {
			other := rel.ToCharacterID
			direction := "of"
			if rel.ToCharacterID == characterID {
				other = rel.FromCharacterID
				direction = "to"
			}
			name, ok := names[other]
			if !ok {
				name = other
			}
			parts = append(parts, fmt.Sprintf("%s %s %s", rel.Kind, direction, name))
		}
		fmt.Fprintf(&b, " Relationships: %s.", strings.Join(parts, "; "))
	}

	return truncateWords(b.String(), maxWords), nil
}

// characterNames maps character ids to names for one world
func (m *Memory) characterNames(ctx context.Context, worldID string) (map[string]string, error) {
	characters, err := m.Structural.ListCharacters(ctx, worldID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(characters))
	for _, c := range characters {
		names[c.ID] = c.Name
	}
	return names, nil
}

// truncateWords cuts text to at most maxWords whitespace-separated words
func truncateWords(text string, maxWords int) string {
	if maxWords <= 0 {
		maxWords = DefaultSummaryWordLimit
	}
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return text
	}
	return strings.Join(words[:maxWords], " ")
}
