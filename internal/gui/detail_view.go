package gui

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"filter-explorer/internal/filters"
	"filter-explorer/internal/layout"
	"filter-explorer/internal/params"
)

// DetailView shows one filter: its rendered output and the sliders for its
// scalar inputs. Parameters are derived once when the view is built.
type DetailView struct {
	filter    filters.Filter
	imageView *FilteredImageView
	panel     *ParameterAdjustmentView
	content   *fyne.Container
	logger    *logrus.Entry
}

func NewDetailView(name string, input image.Image, settings RenderSettings, insets func() layout.Insets, logger *logrus.Entry) (*DetailView, error) {
	filter, err := filters.ByName(name)
	if err != nil {
		return nil, fmt.Errorf("open filter view: %w", err)
	}

	logger = logger.WithField("filter", name)
	imageView := NewFilteredImageView(logger)
	imageView.SetBackground(settings.Background)
	imageView.SetContentMode(settings.Mode)
	imageView.SetFilter(filter)
	imageView.SetInputImage(input)

	parameters := params.Derive(filter)
	panel := NewParameterAdjustmentView(parameters, imageView.Surface())

	title := widget.NewLabelWithStyle(filter.DisplayName(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	body := container.New(newOrientationLayout(insets), imageView.GetContainer(), panel.GetContainer())

	logger.WithField("parameters", len(parameters)).Debug("Filter view created")

	return &DetailView{
		filter:    filter,
		imageView: imageView,
		panel:     panel,
		content:   container.NewBorder(title, nil, nil, nil, body),
		logger:    logger,
	}, nil
}

func (dv *DetailView) Filter() filters.Filter {
	return dv.filter
}

func (dv *DetailView) ImageView() *FilteredImageView {
	return dv.imageView
}

func (dv *DetailView) Panel() *ParameterAdjustmentView {
	return dv.panel
}

func (dv *DetailView) GetContainer() fyne.CanvasObject {
	return dv.content
}

func (dv *DetailView) Close() {
	dv.imageView.Close()
}
