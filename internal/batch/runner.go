// Package batch distorts every regular file of one directory into another.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"image-distorter/internal/codec"
	"image-distorter/internal/distortion"
	"image-distorter/internal/logger"

	"github.com/google/uuid"
)

var (
	ErrInputDir  = errors.New("input directory is not usable")
	ErrOutputDir = errors.New("output directory is not usable")
)

// Skip records a file that produced no output.
type Skip struct {
	Name   string
	Reason codec.SkipReason
	Err    error
}

type Summary struct {
	RunID     string
	Processed int
	Written   []string
	Skipped   []Skip
	Elapsed   time.Duration
}

func (s Summary) SkippedCount() int {
	return len(s.Skipped)
}

type Runner struct {
	codec     codec.Codec
	distorter *distortion.Distorter
	logger    logger.Logger
	seed      int64
}

type Option func(*Runner)

// WithSeed makes runs reproducible. Zero keeps per-image entropy seeding.
func WithSeed(seed int64) Option {
	return func(r *Runner) { r.seed = seed }
}

func WithLogger(l logger.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

func NewRunner(c codec.Codec, d *distortion.Distorter, opts ...Option) *Runner {
	r := &Runner{
		codec:     c,
		distorter: d,
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run distorts inputDir into outputDir with the OpenCV codec, the default
// coin flips and entropy seeding.
func Run(ctx context.Context, inputDir, outputDir string) (Summary, error) {
	return NewRunner(codec.NewOpenCV(), distortion.New()).Run(ctx, inputDir, outputDir)
}

func (r *Runner) randSource() RandSource {
	if r.seed != 0 {
		return SeededSource(r.seed)
	}
	return EntropySource()
}

// Run processes the regular files of inputDir in name order. Undecodable
// files are recorded as skips; encode and write failures stop the run and
// are returned with the partial summary. outputDir must already exist.
func (r *Runner) Run(ctx context.Context, inputDir, outputDir string) (summary Summary, err error) {
	summary.RunID = uuid.NewString()
	start := time.Now()
	log := r.logger.With(map[string]interface{}{"run_id": summary.RunID})

	defer func() {
		summary.Elapsed = time.Since(start)
	}()

	if err := requireDir(inputDir); err != nil {
		return summary, fmt.Errorf("%w: %v", ErrInputDir, err)
	}
	if err := requireDir(outputDir); err != nil {
		return summary, fmt.Errorf("%w: %v", ErrOutputDir, err)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return summary, fmt.Errorf("%w: %v", ErrInputDir, err)
	}

	log.Info("BatchRunner", "batch started", map[string]interface{}{
		"input":   inputDir,
		"output":  outputDir,
		"entries": len(entries),
		"codec":   r.codec.Name(),
	})

	source := r.randSource()
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if !entry.Type().IsRegular() {
			continue
		}

		name := entry.Name()
		skip, err := r.processFile(ctx, inputDir, outputDir, name, source)
		if err != nil {
			log.Error("BatchRunner", err, map[string]interface{}{"file": name})
			return summary, err
		}
		if skip != nil {
			summary.Skipped = append(summary.Skipped, *skip)
			log.Debug("BatchRunner", "file skipped", map[string]interface{}{
				"file":   name,
				"reason": string(skip.Reason),
			})
			continue
		}

		summary.Processed++
		summary.Written = append(summary.Written, name)
	}

	log.Info("BatchRunner", "batch completed", map[string]interface{}{
		"processed": summary.Processed,
		"skipped":   summary.SkippedCount(),
		"elapsed":   time.Since(start).String(),
	})

	return summary, nil
}

func (r *Runner) processFile(ctx context.Context, inputDir, outputDir, name string, source RandSource) (*Skip, error) {
	data, err := os.ReadFile(filepath.Join(inputDir, name))
	if err != nil {
		return &Skip{Name: name, Reason: codec.SkipUnreadable, Err: err}, nil
	}

	decoded := r.codec.Decode(data)
	if !decoded.OK() {
		return &Skip{Name: name, Reason: decoded.Reason, Err: decoded.Err}, nil
	}
	img := decoded.Image
	defer img.Close()

	format := codec.FormatFromPath(name)
	if !r.codec.Supports(format) {
		return &Skip{Name: name, Reason: codec.SkipUnsupportedFormat, Err: fmt.Errorf("%w: %q", codec.ErrUnsupportedFormat, format)}, nil
	}

	out, _, err := r.distorter.Apply(ctx, img, source.Next())
	if err != nil {
		return nil, fmt.Errorf("distort %s: %w", name, err)
	}
	defer out.Close()

	encoded, err := r.codec.Encode(format, out)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}

	if err := os.WriteFile(filepath.Join(outputDir, name), encoded, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", name, err)
	}

	return nil, nil
}

func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
