// Package agent holds the two LLM collaborators of the pipeline: the
// generator that produces the first draft of a component and the fixer that
// gets exactly one corrective pass. Both treat the model output as untrusted
// text; parsing and validation happen downstream.
package agent

import (
	"context"
	"fmt"
	"log"

	"github.com/pranavyk10/guided-component-architect/internal/agent/prompts"
	"github.com/pranavyk10/guided-component-architect/internal/component"
	"github.com/pranavyk10/guided-component-architect/internal/llm"
	"github.com/pranavyk10/guided-component-architect/internal/tokens"
)

// Generator asks the LLM for the initial three-section component.
type Generator struct {
	client llm.Client
	set    tokens.Set
}

// NewGenerator wires a generator to an LLM client and the design-token set.
func NewGenerator(client llm.Client, set tokens.Set) *Generator {
	return &Generator{client: client, set: set}
}

// Generate produces raw LLM output believed to contain the three sections.
// The description must already be sanitized.
func (g *Generator) Generate(ctx context.Context, description string, naming component.Naming) (string, error) {
	system := prompts.GeneratorSystem(g.set, naming)
	user := prompts.GeneratorUser(description)

	log.Printf("[generator] requesting component %q", naming.Stem)
	raw, err := g.client.Complete(ctx, system, user)
	if err != nil {
		return "", fmt.Errorf("generator call failed: %w", err)
	}
	return raw, nil
}
