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

// Fixer sends a failing component back to the LLM together with the literal
// validator error sequence. The pipeline grants it exactly one call per
// request.
type Fixer struct {
	client llm.Client
	set    tokens.Set
}

// NewFixer wires a fixer to an LLM client and the design-token set.
func NewFixer(client llm.Client, set tokens.Set) *Fixer {
	return &Fixer{client: client, set: set}
}

// Fix requests a corrected version of src. The error slice is rendered
// verbatim into the prompt; no summarization happens on the way.
func (f *Fixer) Fix(ctx context.Context, src component.Source, errs []component.ValidationError, naming component.Naming) (string, error) {
	user := prompts.FixerUser(src, errs, f.set, naming)

	log.Printf("[fixer] sending %d validation error(s) back for self-correction", len(errs))
	raw, err := f.client.Complete(ctx, prompts.FixerSystem(), user)
	if err != nil {
		return "", fmt.Errorf("fixer call failed: %w", err)
	}
	return raw, nil
}
