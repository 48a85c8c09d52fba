// Menu handler for application actions
package gui

import (
	"errors"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"filter-explorer/internal/geom"
	"filter-explorer/internal/io"
)

var errNoOutput = errors.New("the current filter has no output for these settings")

// MenuHandler handles menu actions
type MenuHandler struct {
	window fyne.Window
	loader *io.ImageLoader
	logger *logrus.Entry

	onImageLoaded func(image.Image, string)
	currentOutput func() (image.Image, bool)
	onContentMode func(geom.ContentMode)
	onMetrics     func()
}

func NewMenuHandler(window fyne.Window, loader *io.ImageLoader, logger *logrus.Entry) *MenuHandler {
	return &MenuHandler{
		window: window,
		loader: loader,
		logger: logger,
	}
}

func (mh *MenuHandler) GetMainMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Image...", mh.openImage),
		fyne.NewMenuItem("Export Filtered Image...", mh.exportImage),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Aspect Fit", func() { mh.setContentMode(geom.ScaleAspectFit) }),
		fyne.NewMenuItem("Aspect Fill", func() { mh.setContentMode(geom.ScaleAspectFill) }),
		fyne.NewMenuItem("Actual Size", func() { mh.setContentMode(geom.ScaleNone) }),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Quality Metrics", func() {
			if mh.onMetrics != nil {
				mh.onMetrics()
			}
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mh.showAbout),
	)

	return fyne.NewMainMenu(fileMenu, viewMenu, toolsMenu, helpMenu)
}

func (mh *MenuHandler) setContentMode(mode geom.ContentMode) {
	if mh.onContentMode != nil {
		mh.onContentMode(mode)
	}
}

func (mh *MenuHandler) openImage() {
	mh.logger.Info("Opening file dialog for image selection")

	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mh.showError("File Dialog Error", err)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		filepath := reader.URI().Path()
		img, err := mh.loader.LoadImage(filepath)
		if err != nil {
			mh.showError("Failed to Load Image", err)
			return
		}

		if mh.onImageLoaded != nil {
			mh.onImageLoaded(img, filepath)
		}
	}, mh.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".jpg", ".jpeg", ".png", ".tiff", ".tif", ".bmp", ".webp"}))
	fileDialog.Show()
}

func (mh *MenuHandler) exportImage() {
	if mh.currentOutput == nil {
		return
	}
	output, ok := mh.currentOutput()
	if !ok {
		mh.showError("Nothing to Export", errNoOutput)
		return
	}

	fileDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mh.showError("File Dialog Error", err)
			return
		}
		if writer == nil {
			return
		}
		filepath := writer.URI().Path()
		writer.Close()

		if err := mh.loader.SaveImage(output, filepath); err != nil {
			mh.showError("Failed to Save Image", err)
			return
		}
		dialog.ShowInformation("Image Exported", filepath, mh.window)
	}, mh.window)

	fileDialog.SetFileName("filtered.png")
	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".tiff", ".tif", ".bmp"}))
	fileDialog.Show()
}

func (mh *MenuHandler) showAbout() {
	content := container.NewVBox(
		widget.NewLabel("Filter Explorer"),
		widget.NewSeparator(),
		widget.NewLabel("Browse image filters and adjust their inputs live."),
		widget.NewLabel("Rendering through gogpu/gg, filters from gift and OpenCV."),
	)

	aboutDialog := dialog.NewCustom("About", "Close", content, mh.window)
	aboutDialog.Show()
}

func (mh *MenuHandler) showError(title string, err error) {
	mh.logger.WithError(err).Error(title)
	dialog.ShowError(err, mh.window)
}

func (mh *MenuHandler) SetCallbacks(onImageLoaded func(image.Image, string), currentOutput func() (image.Image, bool), onContentMode func(geom.ContentMode)) {
	mh.onImageLoaded = onImageLoaded
	mh.currentOutput = currentOutput
	mh.onContentMode = onContentMode
}

func (mh *MenuHandler) SetMetricsCallback(onMetrics func()) {
	mh.onMetrics = onMetrics
}
