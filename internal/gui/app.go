// Package gui is the desktop shell: one window, one button, two folder
// pickers and a completion dialog around a BatchFunc.
package gui

import (
	"context"
	"fmt"

	"image-distorter/internal/batch"
	"image-distorter/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName = "Image Distortion Tool"
	AppID   = "com.imageprocessing.image-distorter"
)

// Run shows the window and blocks until it is closed or ctx is cancelled.
// A cancelled ctx is reported as ctx.Err() so callers can tell it apart
// from the user closing the window.
func Run(ctx context.Context, run BatchFunc, log logger.Logger) error {
	return runApp(ctx, app.NewWithID(AppID), run, log)
}

func runApp(ctx context.Context, fyneApp fyne.App, run BatchFunc, log logger.Logger) error {
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(300, 100))

	view := NewView(window)
	controller := NewController(ctx, view, run, log)
	view.SetProcessHandler(controller.Process)

	closed := make(chan struct{})
	defer close(closed)
	go func() {
		select {
		case <-ctx.Done():
			log.Info("GUI", "context cancelled, closing window", nil)
			fyne.Do(fyneApp.Quit)
		case <-closed:
		}
	}()

	log.Info("GUI", "window opened", nil)
	view.Show()
	fyneApp.Run()

	return ctx.Err()
}

func summaryLine(s batch.Summary) string {
	return fmt.Sprintf("Processed %d, skipped %d", s.Processed, s.SkippedCount())
}
