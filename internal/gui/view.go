package gui

import (
	"image-distorter/internal/batch"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const completionMessage = "Image processing complete!"

// View is the single-button window. Methods that may be called off the UI
// goroutine hop back onto it with fyne.Do.
type View struct {
	window fyne.Window
	button *widget.Button
	status *widget.Label

	mainContainer *fyne.Container
}

func NewView(window fyne.Window) *View {
	v := &View{
		window: window,
		button: widget.NewButton("Select Folders & Process", nil),
		status: widget.NewLabel(""),
	}
	v.mainContainer = container.NewPadded(container.NewVBox(v.button, v.status))
	return v
}

func (v *View) SetProcessHandler(handler func()) {
	v.button.OnTapped = handler
}

func (v *View) ChooseFolder(confirm string, done func(path string, ok bool)) {
	fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, v.window)
			done("", false)
			return
		}
		if uri == nil {
			done("", false)
			return
		}
		done(uri.Path(), true)
	}, v.window)
	fd.SetConfirmText(confirm)
	fd.Show()
}

func (v *View) SetBusy(busy bool) {
	fyne.Do(func() {
		if busy {
			v.button.Disable()
			v.status.SetText("Processing...")
			return
		}
		v.button.Enable()
	})
}

// ShowCompletion reports success unconditionally, whatever the counts.
func (v *View) ShowCompletion(summary batch.Summary) {
	fyne.Do(func() {
		v.status.SetText(summaryLine(summary))
		dialog.ShowInformation("Done", completionMessage, v.window)
	})
}

func (v *View) ShowError(err error) {
	fyne.Do(func() {
		v.status.SetText("")
		dialog.ShowError(err, v.window)
	})
}

func (v *View) Show() {
	v.window.SetContent(v.mainContainer)
	v.window.Show()
}
