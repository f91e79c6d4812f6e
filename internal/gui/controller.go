package gui

import (
	"context"

	"image-distorter/internal/batch"
	"image-distorter/internal/logger"
)

// BatchFunc distorts inputDir into outputDir.
type BatchFunc func(ctx context.Context, inputDir, outputDir string) (batch.Summary, error)

// Presenter is what the controller needs from the window.
type Presenter interface {
	ChooseFolder(confirm string, done func(path string, ok bool))
	SetBusy(busy bool)
	ShowCompletion(summary batch.Summary)
	ShowError(err error)
}

// Controller drives one click: pick input, pick output, run, report.
type Controller struct {
	ctx    context.Context
	view   Presenter
	run    BatchFunc
	logger logger.Logger
	async  func(func())
}

func NewController(ctx context.Context, view Presenter, run BatchFunc, log logger.Logger) *Controller {
	return &Controller{
		ctx:    ctx,
		view:   view,
		run:    run,
		logger: log,
		async:  func(fn func()) { go fn() },
	}
}

// Process is the button handler. Cancelling either folder dialog abandons
// the click without any message.
func (c *Controller) Process() {
	c.view.ChooseFolder("Use as input", func(inputDir string, ok bool) {
		if !ok {
			c.logger.Debug("Controller", "input folder selection cancelled", nil)
			return
		}

		c.view.ChooseFolder("Use as output", func(outputDir string, ok bool) {
			if !ok {
				c.logger.Debug("Controller", "output folder selection cancelled", nil)
				return
			}
			c.start(inputDir, outputDir)
		})
	})
}

func (c *Controller) start(inputDir, outputDir string) {
	c.view.SetBusy(true)

	c.async(func() {
		defer c.view.SetBusy(false)

		summary, err := c.run(c.ctx, inputDir, outputDir)
		if err != nil {
			c.logger.Error("Controller", err, map[string]interface{}{
				"input":  inputDir,
				"output": outputDir,
			})
			c.view.ShowError(err)
			return
		}

		c.view.ShowCompletion(summary)
	})
}
