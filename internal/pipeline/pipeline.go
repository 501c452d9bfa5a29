// Package pipeline sequences one generation request:
//
//	sanitize -> generate -> parse -> validate
//	                                    |-- valid ----> persist
//	                                    |-- invalid --> fix (once) -> parse -> validate
//	                                                                     |-- valid ----> persist
//	                                                                     |-- invalid --> persist raw + errors
//
// The retry bound is an explicit state machine with the fix budget capped at
// one; it is deliberately not configurable.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/pranavyk10/guided-component-architect/internal/agent"
	"github.com/pranavyk10/guided-component-architect/internal/component"
	"github.com/pranavyk10/guided-component-architect/internal/sanitize"
	"github.com/pranavyk10/guided-component-architect/internal/store"
	"github.com/pranavyk10/guided-component-architect/internal/tokens"
)

// maxFixAttempts bounds worst-case latency to two LLM calls per request.
const maxFixAttempts = 1

// ErrEmptyDescription is returned when nothing usable remains after
// sanitization.
var ErrEmptyDescription = errors.New("component description is empty after sanitization")

// State is one node of the orchestration state machine.
type State string

const (
	StateGenerating    State = "generating"
	StateValidating    State = "validating"
	StateFixing        State = "fixing"
	StateValidatingFix State = "validating-fix"
	StateDoneValid     State = "done-valid"
	StateDoneInvalid   State = "done-invalid"
)

// Phase labels which collaborator produced the output a validation pass ran
// against.
type Phase string

const (
	PhaseGenerate Phase = "generate"
	PhaseFix      Phase = "fix"
)

// AttemptRecord captures one validation pass for diagnostics. The log for a
// request has length 1 or 2.
type AttemptRecord struct {
	Attempt int                         `json:"attempt"`
	Phase   Phase                       `json:"phase"`
	Valid   bool                        `json:"valid"`
	Errors  []component.ValidationError `json:"errors"`
}

// Result is the outcome of one request. Valid=false with a non-empty Errors
// slice is the terminal persistent-validation-failure case; hard collaborator
// failures surface as Go errors from Run instead.
type Result struct {
	ID         string                      `json:"id"`
	Naming     component.Naming            `json:"naming"`
	Source     component.Source            `json:"code"`
	Valid      bool                        `json:"valid"`
	Attempts   int                         `json:"attempts"`
	Errors     []component.ValidationError `json:"errors"`
	Warnings   []string                    `json:"injectionWarnings"`
	Log        []AttemptRecord             `json:"attemptLog"`
	SavedPaths map[string]string           `json:"savedPaths"`
}

// Options tunes persistence and validation policy.
type Options struct {
	Validator   component.Options
	SaveInvalid bool // persist terminally invalid output for inspection
}

// Pipeline owns one request flow end to end. Safe for concurrent use: all
// per-request state lives in Run, the token set is read-only.
type Pipeline struct {
	generator *agent.Generator
	fixer     *agent.Fixer
	writer    *store.Writer
	set       tokens.Set
	opts      Options
}

// New assembles a pipeline from its collaborators.
func New(generator *agent.Generator, fixer *agent.Fixer, writer *store.Writer, set tokens.Set, opts Options) *Pipeline {
	return &Pipeline{
		generator: generator,
		fixer:     fixer,
		writer:    writer,
		set:       set,
		opts:      opts,
	}
}

// Run processes one user description through the full state machine. It
// returns a Result for both valid and terminally invalid outcomes; a Go
// error means a hard failure (empty input, collaborator unreachable or timed
// out, persistence failure) and carries no Result.
func (p *Pipeline) Run(ctx context.Context, description string) (*Result, error) {
	cleaned, warnings := sanitize.Clean(description)
	if cleaned == "" {
		return nil, ErrEmptyDescription
	}

	stem := sanitize.PromptToKebab(cleaned)
	result := &Result{
		ID:       uuid.New().String(),
		Naming:   component.Naming{Stem: stem, ClassName: sanitize.KebabToClass(stem)},
		Warnings: warnings,
	}
	log.Printf("[pipeline] request %s: generating component %q", result.ID, stem)

	var (
		src       component.Source
		errs      []component.ValidationError
		fixesUsed int
	)

	state := StateGenerating
	for {
		switch state {
		case StateGenerating:
			raw, err := p.generator.Generate(ctx, cleaned, result.Naming)
			if err != nil {
				return nil, fmt.Errorf("generation failed for request %s: %w", result.ID, err)
			}
			src = component.ParseSections(raw)
			state = StateValidating

		case StateValidating:
			errs = component.Validate(src, p.set, p.opts.Validator)
			result.Log = append(result.Log, AttemptRecord{
				Attempt: 1, Phase: PhaseGenerate, Valid: len(errs) == 0, Errors: errs,
			})
			if len(errs) == 0 {
				state = StateDoneValid
			} else {
				log.Printf("[pipeline] request %s: %d validation error(s) on first attempt", result.ID, len(errs))
				state = StateFixing
			}

		case StateFixing:
			// Cancellation aborts before spending the fix budget.
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("request %s aborted before fix attempt: %w", result.ID, err)
			}
			if fixesUsed >= maxFixAttempts {
				state = StateDoneInvalid
				break
			}
			fixesUsed++
			raw, err := p.fixer.Fix(ctx, src, errs, result.Naming)
			if err != nil {
				return nil, fmt.Errorf("fix attempt failed for request %s: %w", result.ID, err)
			}
			src = component.ParseSections(raw)
			state = StateValidatingFix

		case StateValidatingFix:
			errs = component.Validate(src, p.set, p.opts.Validator)
			result.Log = append(result.Log, AttemptRecord{
				Attempt: 2, Phase: PhaseFix, Valid: len(errs) == 0, Errors: errs,
			})
			if len(errs) == 0 {
				state = StateDoneValid
			} else {
				state = StateDoneInvalid
			}

		case StateDoneValid:
			result.Valid = true
			result.Attempts = len(result.Log)
			result.Source = src
			paths, err := p.writer.SaveComponent(src, result.Naming)
			if err != nil {
				return nil, fmt.Errorf("failed to persist request %s: %w", result.ID, err)
			}
			result.SavedPaths = paths
			log.Printf("[pipeline] request %s: valid after %d attempt(s)", result.ID, result.Attempts)
			return result, nil

		case StateDoneInvalid:
			result.Valid = false
			result.Attempts = len(result.Log)
			result.Source = src
			result.Errors = errs
			log.Printf("[pipeline] request %s: still %d error(s) after fix attempt", result.ID, len(errs))
			if p.opts.SaveInvalid {
				paths, err := p.writer.SaveFailed(src, errs, result.Naming)
				if err != nil {
					return nil, fmt.Errorf("failed to persist invalid attempt for request %s: %w", result.ID, err)
				}
				result.SavedPaths = paths
			}
			return result, nil
		}
	}
}
