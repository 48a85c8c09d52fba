// Top toolbar: file actions and content mode toggles
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"filter-explorer/internal/geom"
)

type Toolbar struct {
	actions *MenuHandler

	container *fyne.Container

	openBtn    *widget.Button
	exportBtn  *widget.Button
	metricsBtn *widget.Button

	modeButtons map[geom.ContentMode]*widget.Button
	currentMode geom.ContentMode
}

func NewToolbar(actions *MenuHandler, mode geom.ContentMode) *Toolbar {
	toolbar := &Toolbar{
		actions:     actions,
		modeButtons: make(map[geom.ContentMode]*widget.Button),
	}

	toolbar.initializeUI()
	toolbar.SetActiveMode(mode)
	return toolbar
}

func (tb *Toolbar) initializeUI() {
	tb.openBtn = widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), tb.actions.openImage)
	tb.exportBtn = widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), tb.actions.exportImage)
	tb.metricsBtn = widget.NewButtonWithIcon("Metrics", theme.InfoIcon(), func() {
		if tb.actions.onMetrics != nil {
			tb.actions.onMetrics()
		}
	})

	leftSection := container.NewHBox(tb.openBtn, tb.exportBtn, tb.metricsBtn)

	modes := []struct {
		mode geom.ContentMode
		icon fyne.Resource
	}{
		{geom.ScaleAspectFit, theme.ViewRestoreIcon()},
		{geom.ScaleAspectFill, theme.ViewFullScreenIcon()},
		{geom.ScaleNone, theme.ZoomFitIcon()},
	}

	rightSection := container.NewHBox(widget.NewLabel("Mode:"))
	for _, m := range modes {
		mode := m.mode
		btn := widget.NewButtonWithIcon(mode.String(), m.icon, func() {
			tb.setMode(mode)
		})
		tb.modeButtons[mode] = btn
		rightSection.Add(btn)
	}

	tb.container = container.NewBorder(nil, nil, leftSection, rightSection)
}

// setMode handles a click on one of the mode buttons.
func (tb *Toolbar) setMode(mode geom.ContentMode) {
	tb.SetActiveMode(mode)
	tb.actions.setContentMode(mode)
}

// SetActiveMode highlights the button for mode without notifying anyone.
func (tb *Toolbar) SetActiveMode(mode geom.ContentMode) {
	tb.currentMode = mode
	for m, btn := range tb.modeButtons {
		if m == mode {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
}

func (tb *Toolbar) ActiveMode() geom.ContentMode {
	return tb.currentMode
}

func (tb *Toolbar) GetContainer() fyne.CanvasObject {
	return tb.container
}
