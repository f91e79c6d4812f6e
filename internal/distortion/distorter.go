// Package distortion applies the randomized five-stage distortion pipeline
// (rotate, blur, noise, brightness, contrast) to a single decoded image.
package distortion

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"image-distorter/internal/logger"
	"image-distorter/internal/opencv/safe"
	"image-distorter/internal/processing/chain"
	"image-distorter/internal/processing/filters"
)

// Trace lists the stages that fired for one image with the parameters each
// one drew.
type Trace []chain.Executed

func (t Trace) Stages() []string {
	names := make([]string, len(t))
	for i, e := range t {
		names[i] = e.Step
	}
	return names
}

func (t Trace) String() string {
	if len(t) == 0 {
		return "none"
	}
	parts := make([]string, len(t))
	for i, e := range t {
		parts[i] = fmt.Sprintf("%s%v", e.Step, e.Params)
	}
	return strings.Join(parts, " ")
}

type Distorter struct {
	chain  *chain.ProcessingChain
	gate   chain.Gate
	logger logger.Logger
}

type Option func(*Distorter)

// WithGate replaces the default 50/50 coin flip.
func WithGate(g chain.Gate) Option {
	return func(d *Distorter) { d.gate = g }
}

func WithLogger(l logger.Logger) Option {
	return func(d *Distorter) { d.logger = l }
}

func New(opts ...Option) *Distorter {
	d := &Distorter{
		chain: chain.NewProcessingChain([]chain.ProcessingStep{
			filters.NewRotationFilter(),
			filters.NewGaussianFilter(),
			filters.NewNoiseFilter(filters.DefaultNoiseSigma),
			filters.NewBrightnessFilter(),
			filters.NewContrastFilter(),
		}),
		gate:   CoinFlip{Probability: DefaultProbability},
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Stages returns the stage names in application order.
func (d *Distorter) Stages() []string {
	return d.chain.GetStepNames()
}

// Apply distorts img with randomness drawn from rng. img is left untouched;
// the result has the same rows, cols and type and belongs to the caller.
func (d *Distorter) Apply(ctx context.Context, img *safe.Mat, rng *rand.Rand) (*safe.Mat, Trace, error) {
	if err := safe.ValidateColorImage(img, "Distort"); err != nil {
		return nil, nil, err
	}
	if err := safe.ValidateDimensions(img.Cols(), img.Rows(), "Distort"); err != nil {
		return nil, nil, err
	}
	if rng == nil {
		return nil, nil, fmt.Errorf("distort: nil random generator")
	}

	out, executed, err := d.chain.Execute(ctx, img, d.gate, rng)
	trace := Trace(executed)
	if err != nil {
		return nil, trace, err
	}

	if !safe.SameShape(img, out) {
		out.Close()
		return nil, trace, fmt.Errorf("%w: distortion changed shape from %dx%d to %dx%d",
			safe.ErrInvalidMat, img.Cols(), img.Rows(), out.Cols(), out.Rows())
	}

	d.logger.Debug("Distorter", "image distorted", map[string]interface{}{
		"stages": trace.String(),
		"source": img.Tag(),
		"mat_id": out.ID(),
		"width":  img.Cols(),
		"height": img.Rows(),
	})

	return out, trace, nil
}
