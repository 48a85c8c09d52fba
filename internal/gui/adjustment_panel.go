package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"filter-explorer/internal/params"
	"filter-explorer/internal/render"
)

// sliderSteps is the number of discrete positions across a slider's range.
const sliderSteps = 200

// ParameterAdjustmentView shows one slider per scalar parameter and reports
// every change to its delegate.
type ParameterAdjustmentView struct {
	parameters []*params.ScalarFilterParameter
	delegate   render.AdjustmentDelegate

	sliders     []*widget.Slider
	valueLabels []*widget.Label
	vbox        *fyne.Container
	scroll      *container.Scroll
}

func NewParameterAdjustmentView(parameters []*params.ScalarFilterParameter, delegate render.AdjustmentDelegate) *ParameterAdjustmentView {
	v := &ParameterAdjustmentView{
		parameters: parameters,
		delegate:   delegate,
		vbox:       container.NewVBox(),
	}
	v.initializeUI()
	v.scroll = container.NewVScroll(v.vbox)
	return v
}

func (v *ParameterAdjustmentView) initializeUI() {
	if len(v.parameters) == 0 {
		v.vbox.Add(widget.NewLabel("No adjustable parameters"))
		return
	}

	for i, p := range v.parameters {
		slider := widget.NewSlider(p.MinimumValue, p.MaximumValue)
		slider.Step = (p.MaximumValue - p.MinimumValue) / sliderSteps
		slider.SetValue(p.CurrentValue)

		valueLabel := widget.NewLabel(formatValue(p.CurrentValue))
		index := i
		slider.OnChanged = func(value float64) {
			v.adjust(index, value)
		}

		v.sliders = append(v.sliders, slider)
		v.valueLabels = append(v.valueLabels, valueLabel)
		v.vbox.Add(container.NewBorder(nil, nil, widget.NewLabel(p.Name), valueLabel, slider))
	}
}

// adjust stores value in the parameter at index, clamped to its range, and
// notifies the delegate.
func (v *ParameterAdjustmentView) adjust(index int, value float64) {
	p := v.parameters[index]
	stored := p.SetCurrentValue(value)
	v.valueLabels[index].SetText(formatValue(stored))

	if v.delegate != nil {
		v.delegate.ParameterValueDidChange(p)
	}
}

func (v *ParameterAdjustmentView) Parameters() []*params.ScalarFilterParameter {
	return v.parameters
}

func (v *ParameterAdjustmentView) GetContainer() fyne.CanvasObject {
	return v.scroll
}

func formatValue(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
