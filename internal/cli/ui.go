package cli

import (
	"fmt"
	"io"
	"time"

	"image-distorter/internal/batch"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorCyan   = lipgloss.Color("36")
	colorDim    = lipgloss.Color("240")

	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
)

func printSummary(w io.Writer, s batch.Summary) {
	fmt.Fprintf(w, "%s Processed %s, skipped %s %s\n",
		styleSuccess.Render(iconSuccess),
		styleNumber.Render(fmt.Sprint(s.Processed)),
		styleNumber.Render(fmt.Sprint(s.SkippedCount())),
		styleDim.Render(fmt.Sprintf("(%s, run %s)", s.Elapsed.Round(time.Millisecond), s.RunID)),
	)
	for _, skip := range s.Skipped {
		fmt.Fprintf(w, "  %s %s %s\n",
			styleWarning.Render(iconWarning),
			skip.Name,
			styleDim.Render(string(skip.Reason)),
		)
	}
}
