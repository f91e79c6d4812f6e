package gui

import (
	"context"
	"testing"

	"image-distorter/internal/batch"
	"image-distorter/internal/logger"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func noBatch(context.Context, string, string) (batch.Summary, error) {
	return batch.Summary{}, nil
}

func TestRunAppReportsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runApp(ctx, test.NewApp(), noBatch, logger.Nop())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunAppClosedNormally(t *testing.T) {
	err := runApp(context.Background(), test.NewApp(), noBatch, logger.Nop())
	assert.NoError(t, err)
}
