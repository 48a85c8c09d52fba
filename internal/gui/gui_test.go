package gui

import (
	"image"
	"image/color"
	"io"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filter-explorer/internal/filters"
	"filter-explorer/internal/geom"
	"filter-explorer/internal/layout"
	"filter-explorer/internal/metrics"
	"filter-explorer/internal/params"
)

func quietLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

type recordingDelegate struct {
	calls []*params.ScalarFilterParameter
}

func (d *recordingDelegate) ParameterValueDidChange(p *params.ScalarFilterParameter) {
	d.calls = append(d.calls, p)
}

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestParameterAdjustmentView_ClampsAndNotifies(t *testing.T) {
	test.NewTempApp(t)

	filter, err := filters.ByName("CIColorControls")
	require.NoError(t, err)
	parameters := params.Derive(filter)
	delegate := &recordingDelegate{}

	view := NewParameterAdjustmentView(parameters, delegate)
	require.Len(t, view.sliders, len(parameters))

	view.adjust(0, 5)
	require.Len(t, delegate.calls, 1)
	assert.Same(t, parameters[0], delegate.calls[0])
	assert.Equal(t, parameters[0].MaximumValue, parameters[0].CurrentValue)
	assert.Equal(t, formatValue(parameters[0].MaximumValue), view.valueLabels[0].Text)

	view.adjust(0, parameters[0].MinimumValue-1)
	assert.Equal(t, parameters[0].MinimumValue, parameters[0].CurrentValue)
	assert.Len(t, delegate.calls, 2)
}

func TestParameterAdjustmentView_NoParameters(t *testing.T) {
	test.NewTempApp(t)

	filter, err := filters.ByName("CIPhotoEffectMono")
	require.NoError(t, err)

	view := NewParameterAdjustmentView(params.Derive(filter), nil)
	assert.Empty(t, view.sliders)
	assert.NotNil(t, view.GetContainer())
}

func TestFilteredImageView_GenerateLetterboxes(t *testing.T) {
	test.NewTempApp(t)

	filter, err := filters.ByName("CIGammaAdjust")
	require.NoError(t, err)

	view := NewFilteredImageView(quietLogger())
	defer view.Close()
	view.SetBackground(color.RGBA{0, 0, 255, 255})
	view.SetFilter(filter)
	view.SetInputImage(solid(50, 50, color.RGBA{255, 255, 255, 255}))

	img := view.generate(100, 50)
	require.Equal(t, image.Rect(0, 0, 100, 50), img.Bounds())

	r, g, b, _ := img.At(5, 25).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0xffff}, [3]uint32{r, g, b})

	r, g, b, _ = img.At(50, 25).RGBA()
	assert.Greater(t, r, uint32(0xf000))
	assert.Greater(t, g, uint32(0xf000))
	assert.Greater(t, b, uint32(0xf000))

	assert.Equal(t, int64(1), view.Surface().Stats().Snapshot().Frames)
}

func TestFilteredImageView_GenerateEmptySize(t *testing.T) {
	test.NewTempApp(t)

	view := NewFilteredImageView(nil)
	defer view.Close()
	img := view.generate(0, 0)
	assert.Equal(t, 1, img.Bounds().Dx())
}

func TestOrientationLayout(t *testing.T) {
	test.NewTempApp(t)

	imageObj := canvas.NewRectangle(color.White)
	panelObj := canvas.NewRectangle(color.Black)
	l := newOrientationLayout(func() layout.Insets { return layout.Insets{Top: 10, Bottom: 20} })

	l.Layout([]fyne.CanvasObject{imageObj, panelObj}, fyne.NewSize(800, 400))
	assert.Equal(t, fyne.NewPos(0, 10), imageObj.Position())
	assert.Equal(t, fyne.NewSize(400, 334), imageObj.Size())
	assert.Equal(t, fyne.NewPos(400, 10), panelObj.Position())

	l.Layout([]fyne.CanvasObject{imageObj, panelObj}, fyne.NewSize(400, 800))
	assert.Equal(t, fyne.NewPos(0, 10), imageObj.Position())
	assert.Equal(t, fyne.NewSize(400, 400), imageObj.Size())
	assert.Equal(t, fyne.NewPos(0, 468), panelObj.Position())
	assert.Equal(t, fyne.NewSize(400, 312), panelObj.Size())
}

func TestFilterList_GroupsByCategory(t *testing.T) {
	test.NewTempApp(t)

	var selected []string
	list := NewFilterList(func(name string) { selected = append(selected, name) })

	roots := list.childUIDs("")
	require.NotEmpty(t, roots)
	for _, uid := range roots {
		assert.True(t, list.isBranch(uid))
		for _, name := range list.childUIDs(uid) {
			assert.False(t, list.isBranch(name))
			assert.True(t, filters.IsRegistered(name))
		}
	}

	label := widget.NewLabel("")
	list.updateNode("CIGaussianBlur", false, label)
	assert.Equal(t, "Gaussian Blur", label.Text)
	list.updateNode(roots[0], true, label)
	assert.Equal(t, strings.TrimPrefix(roots[0], categoryPrefix), label.Text)

	list.selected(roots[0])
	assert.Empty(t, selected)
	list.selected("CIGaussianBlur")
	assert.Equal(t, []string{"CIGaussianBlur"}, selected)
}

func TestDetailView_WiresPanelToSurface(t *testing.T) {
	test.NewTempApp(t)

	settings := RenderSettings{Mode: geom.ScaleAspectFill, Background: color.Black}
	dv, err := NewDetailView("CIGaussianBlur", solid(20, 10, color.White), settings, nil, quietLogger())
	require.NoError(t, err)
	defer dv.Close()

	surface := dv.ImageView().Surface()
	assert.Equal(t, geom.ScaleAspectFill, surface.ContentMode())

	before := surface.Stats().Snapshot().Requests
	dv.Panel().adjust(0, 3)
	assert.Equal(t, before+1, surface.Stats().Snapshot().Requests)

	radius, ok := dv.Filter().(interface{ Value(string) (float64, bool) })
	require.True(t, ok)
	v, _ := radius.Value("inputRadius")
	assert.Equal(t, 3.0, v)

	_, err = NewDetailView("CINoSuchFilter", nil, settings, nil, quietLogger())
	require.ErrorIs(t, err, filters.ErrUnknownFilter)
}

func TestStatusText(t *testing.T) {
	text := statusText(solid(2000, 1000, color.White), metrics.Snapshot{Frames: 1500, Skipped: 2, LastFrame: 3 * time.Millisecond})
	assert.Contains(t, text, "2000x1000")
	assert.Contains(t, text, "2,000,000 pixels")
	assert.Contains(t, text, "8.0 MB")
	assert.Contains(t, text, "1,500 frames")
	assert.Contains(t, text, "last 3ms")

	assert.Contains(t, statusText(nil, metrics.Snapshot{}), "no image")
}

func TestToolbar_ModeButtons(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("test")
	defer w.Close()

	var modes []geom.ContentMode
	mh := NewMenuHandler(w, nil, quietLogger())
	mh.SetCallbacks(nil, nil, func(m geom.ContentMode) { modes = append(modes, m) })

	tb := NewToolbar(mh, geom.ScaleAspectFit)
	assert.Equal(t, widget.HighImportance, tb.modeButtons[geom.ScaleAspectFit].Importance)

	test.Tap(tb.modeButtons[geom.ScaleAspectFill])
	assert.Equal(t, []geom.ContentMode{geom.ScaleAspectFill}, modes)
	assert.Equal(t, geom.ScaleAspectFill, tb.ActiveMode())
	assert.Equal(t, widget.HighImportance, tb.modeButtons[geom.ScaleAspectFill].Importance)
	assert.Equal(t, widget.MediumImportance, tb.modeButtons[geom.ScaleAspectFit].Importance)

	tb.SetActiveMode(geom.ScaleNone)
	assert.Len(t, modes, 1)
	assert.Len(t, mh.GetMainMenu().Items, 4)
}

func TestStatusBar_UpdateKeepsMessage(t *testing.T) {
	test.NewTempApp(t)

	sb := NewStatusBar()
	sb.SetMessage("Loaded: card.png")
	sb.Update(solid(4, 4, color.White), metrics.Snapshot{Frames: 3})
	sb.Update(solid(4, 4, color.White), metrics.Snapshot{Frames: 4})

	assert.Equal(t, "Loaded: card.png", sb.Message())
	assert.Contains(t, sb.stats.Text, "4 frames")
	assert.NotNil(t, sb.GetContainer())
}
