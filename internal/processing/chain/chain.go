package chain

import (
	"context"
	"fmt"
	"math/rand"

	"image-distorter/internal/opencv/safe"
)

// ProcessingStep transforms one Mat, drawing whatever randomness it needs
// from rng. It returns the parameters it drew for tracing.
type ProcessingStep interface {
	Apply(ctx context.Context, input *safe.Mat, rng *rand.Rand) (*safe.Mat, map[string]interface{}, error)
	Name() string
}

// Gate decides whether a step runs for the current image.
type Gate interface {
	Enabled(step string, rng *rand.Rand) bool
}

// Executed records one step that ran.
type Executed struct {
	Step   string
	Params map[string]interface{}
}

type ProcessingChain struct {
	steps []ProcessingStep
}

func NewProcessingChain(steps []ProcessingStep) *ProcessingChain {
	return &ProcessingChain{
		steps: steps,
	}
}

// Execute runs the gated steps in order. The input is never modified or
// closed; the returned Mat is always a new one owned by the caller, a plain
// clone when no step ran.
func (pc *ProcessingChain) Execute(ctx context.Context, input *safe.Mat, gate Gate, rng *rand.Rand) (*safe.Mat, []Executed, error) {
	current := input
	executed := make([]Executed, 0, len(pc.steps))

	release := func() {
		if current != input {
			current.Close()
		}
	}

	for _, step := range pc.steps {
		select {
		case <-ctx.Done():
			release()
			return nil, executed, ctx.Err()
		default:
		}

		if !gate.Enabled(step.Name(), rng) {
			continue
		}

		result, params, err := step.Apply(ctx, current, rng)
		if err != nil {
			release()
			return nil, executed, fmt.Errorf("step %s failed: %w", step.Name(), err)
		}

		release()
		current = result
		executed = append(executed, Executed{Step: step.Name(), Params: params})
	}

	if current == input {
		clone, err := input.Clone()
		if err != nil {
			return nil, executed, fmt.Errorf("clone unchanged image: %w", err)
		}
		return clone, executed, nil
	}

	return current, executed, nil
}

func (pc *ProcessingChain) GetStepNames() []string {
	names := make([]string, len(pc.steps))
	for i, step := range pc.steps {
		names[i] = step.Name()
	}
	return names
}
