package gui

import (
	"context"
	"errors"
	"testing"

	"image-distorter/internal/batch"
	"image-distorter/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeView struct {
	answers     []string // "" means the dialog was cancelled
	prompts     []string
	busy        []bool
	completions []batch.Summary
	errs        []error
}

func (f *fakeView) ChooseFolder(confirm string, done func(string, bool)) {
	f.prompts = append(f.prompts, confirm)
	answer := f.answers[0]
	f.answers = f.answers[1:]
	done(answer, answer != "")
}

func (f *fakeView) SetBusy(busy bool)              { f.busy = append(f.busy, busy) }
func (f *fakeView) ShowCompletion(s batch.Summary) { f.completions = append(f.completions, s) }
func (f *fakeView) ShowError(err error)            { f.errs = append(f.errs, err) }

type call struct{ in, out string }

func newTestController(view *fakeView, result batch.Summary, err error) (*Controller, *[]call) {
	var calls []call
	run := func(_ context.Context, in, out string) (batch.Summary, error) {
		calls = append(calls, call{in, out})
		return result, err
	}
	c := NewController(context.Background(), view, run, logger.Nop())
	c.async = func(fn func()) { fn() }
	return c, &calls
}

func TestProcessRunsBatchAndReportsOnce(t *testing.T) {
	view := &fakeView{answers: []string{"/in", "/out"}}
	c, calls := newTestController(view, batch.Summary{Processed: 0}, nil)

	c.Process()

	assert.Equal(t, []call{{"/in", "/out"}}, *calls)
	assert.Equal(t, []string{"Use as input", "Use as output"}, view.prompts)
	require.Len(t, view.completions, 1, "completion is reported even when nothing was processed")
	assert.Empty(t, view.errs)
	assert.Equal(t, []bool{true, false}, view.busy)
}

func TestProcessCancelledInputAborts(t *testing.T) {
	view := &fakeView{answers: []string{""}}
	c, calls := newTestController(view, batch.Summary{}, nil)

	c.Process()

	assert.Empty(t, *calls)
	assert.Len(t, view.prompts, 1)
	assert.Empty(t, view.completions)
	assert.Empty(t, view.errs)
}

func TestProcessCancelledOutputAborts(t *testing.T) {
	view := &fakeView{answers: []string{"/in", ""}}
	c, calls := newTestController(view, batch.Summary{}, nil)

	c.Process()

	assert.Empty(t, *calls)
	assert.Empty(t, view.completions)
	assert.Empty(t, view.busy)
}

func TestProcessShowsBatchError(t *testing.T) {
	view := &fakeView{answers: []string{"/in", "/out"}}
	boom := errors.New("write a.png: read-only file system")
	c, _ := newTestController(view, batch.Summary{}, boom)

	c.Process()

	assert.Empty(t, view.completions)
	require.Len(t, view.errs, 1)
	assert.ErrorIs(t, view.errs[0], boom)
	assert.Equal(t, []bool{true, false}, view.busy)
}

func TestSummaryLine(t *testing.T) {
	s := batch.Summary{Processed: 3, Skipped: []batch.Skip{{Name: "b.txt"}}}
	assert.Equal(t, "Processed 3, skipped 1", summaryLine(s))
}
