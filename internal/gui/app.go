// Main application window: filter catalog, detail view and status line
package gui

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"filter-explorer/internal/config"
	"filter-explorer/internal/geom"
	"filter-explorer/internal/io"
	"filter-explorer/internal/layout"
	"filter-explorer/internal/metrics"
)

const (
	sampleWidth    = 960
	sampleHeight   = 640
	statusInterval = time.Second
)

// RenderSettings are the presentation options shared by every detail view.
type RenderSettings struct {
	Mode       geom.ContentMode
	Background color.Color
}

// Application represents the main application window
type Application struct {
	app    fyne.App
	window fyne.Window
	logger *logrus.Entry
	config *config.Config
	loader *io.ImageLoader
	eval   *metrics.Evaluator

	mu       sync.Mutex
	input    image.Image
	settings RenderSettings
	detail   *DetailView

	filterList  *FilterList
	detailArea  *fyne.Container
	status      *StatusBar
	toolbar     *Toolbar
	menuHandler *MenuHandler

	stopStatus chan struct{}
}

func NewApplication(app fyne.App, cfg *config.Config, logger *logrus.Logger) *Application {
	window := app.NewWindow("Filter Explorer")
	window.Resize(fyne.NewSize(1280, 820))
	window.CenterOnScreen()

	a := &Application{
		app:    app,
		window: window,
		logger: logger.WithField("component", "gui"),
		config: cfg,
		settings: RenderSettings{
			Mode:       cfg.Mode(),
			Background: cfg.BackgroundColor(),
		},
		stopStatus: make(chan struct{}),
	}

	a.initializeCore()
	a.initializeGUI()
	a.setupLayout()

	return a
}

func (a *Application) initializeCore() {
	a.loader = io.NewImageLoader(a.config.ResourceDir, a.logger.WithField("component", "io"))
	a.eval = metrics.NewEvaluator()

	img, err := a.loader.Open(a.config.ImagePath, sampleWidth, sampleHeight)
	if err != nil {
		a.logger.WithError(err).Warn("Failed to load configured image, using sample image")
		img = io.SampleImage(sampleWidth, sampleHeight)
	}
	a.input = img
}

func (a *Application) initializeGUI() {
	a.status = NewStatusBar()
	a.detailArea = container.NewStack(widget.NewLabel("Select a filter"))
	a.filterList = NewFilterList(a.showFilter)
	a.menuHandler = NewMenuHandler(a.window, a.loader, a.logger)
	a.menuHandler.SetCallbacks(a.setInputImage, a.currentOutput, a.setContentMode)
	a.menuHandler.SetMetricsCallback(a.showMetrics)
	a.toolbar = NewToolbar(a.menuHandler, a.settings.Mode)
}

func (a *Application) setupLayout() {
	split := container.NewHSplit(
		widget.NewCard("Filters", "", a.filterList.GetContainer()),
		a.detailArea,
	)
	split.SetOffset(0.22)

	a.window.SetMainMenu(a.menuHandler.GetMainMenu())
	a.window.SetContent(container.NewBorder(a.toolbar.GetContainer(), a.status.GetContainer(), nil, nil, split))
}

// showFilter replaces the detail view with a fresh one for name.
func (a *Application) showFilter(name string) {
	a.mu.Lock()
	input, settings, previous := a.input, a.settings, a.detail
	a.mu.Unlock()

	detail, err := NewDetailView(name, input, settings, a.insets, a.logger)
	if err != nil {
		a.showError("Failed to Open Filter", err)
		return
	}

	a.mu.Lock()
	a.detail = detail
	a.mu.Unlock()

	if previous != nil {
		previous.Close()
	}
	a.detailArea.Objects = []fyne.CanvasObject{detail.GetContainer()}
	a.detailArea.Refresh()

	a.logger.WithField("filter", name).Info("Filter selected")
	a.status.SetMessage(fmt.Sprintf("Filter: %s", detail.Filter().DisplayName()))
}

func (a *Application) insets() layout.Insets {
	return safeAreaInsets(a.window.Canvas())
}

func (a *Application) setInputImage(img image.Image, path string) {
	a.mu.Lock()
	a.input = img
	detail := a.detail
	a.mu.Unlock()

	if detail != nil {
		detail.ImageView().SetInputImage(img)
	}
	a.status.SetMessage(fmt.Sprintf("Loaded: %s", path))
}

func (a *Application) setContentMode(mode geom.ContentMode) {
	a.mu.Lock()
	a.settings.Mode = mode
	detail := a.detail
	a.mu.Unlock()

	a.toolbar.SetActiveMode(mode)
	if detail != nil {
		detail.ImageView().SetContentMode(mode)
	}
	a.logger.WithField("content_mode", mode.String()).Debug("Content mode changed")
}

// currentOutput evaluates the visible filter at full input resolution.
func (a *Application) currentOutput() (image.Image, bool) {
	a.mu.Lock()
	detail := a.detail
	a.mu.Unlock()

	if detail == nil {
		return nil, false
	}
	return detail.Filter().OutputImage()
}

// showMetrics compares the input image with the current filter output.
func (a *Application) showMetrics() {
	a.mu.Lock()
	input := a.input
	a.mu.Unlock()

	output, ok := a.currentOutput()
	if !ok {
		a.showError("Quality Metrics", errNoOutput)
		return
	}

	results := metrics.Format(a.eval.CalculateAll(input, output))
	var lines []string
	for _, name := range a.eval.Names() {
		if value, exists := results[name]; exists {
			lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(name), value))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, "Output and input are not comparable")
	}

	a.logger.WithField("metrics", results).Info("Quality metrics calculated")
	dialog.ShowInformation("Quality Metrics", strings.Join(lines, "\n"), a.window)
}

func (a *Application) updateStatus() {
	a.mu.Lock()
	input, detail := a.input, a.detail
	a.mu.Unlock()

	if detail == nil {
		return
	}
	a.status.Update(input, detail.ImageView().Surface().Stats().Snapshot())
}

func (a *Application) runStatusUpdates() {
	ticker := time.NewTicker(statusInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			fyne.Do(a.updateStatus)
		case <-a.stopStatus:
			return
		}
	}
}

// ShowAndRun opens the configured filter and runs the event loop.
func (a *Application) ShowAndRun() {
	a.logger.Info("Showing main application window")

	a.window.SetCloseIntercept(func() {
		a.cleanup()
		a.app.Quit()
	})

	a.filterList.Select(a.config.FilterName)
	go a.runStatusUpdates()

	a.window.ShowAndRun()
}

func (a *Application) cleanup() {
	a.logger.Info("Cleaning up application resources")
	close(a.stopStatus)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.detail != nil {
		a.detail.Close()
		a.detail = nil
	}
}

func (a *Application) showError(title string, err error) {
	a.logger.WithError(err).Error(title)
	dialog.ShowError(err, a.window)
	a.status.SetMessage(fmt.Sprintf("Error: %s", err.Error()))
}
