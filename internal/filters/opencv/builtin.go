package opencv

import (
	"fmt"
	"math"

	"gocv.io/x/gocv"

	"filter-explorer/internal/filters"
)

func attr(name string, min, max, def float64) filters.Attribute {
	return filters.Attribute{DisplayName: name, SliderMin: min, SliderMax: max, Default: def}
}

// oddKernel rounds v to the nearest integer and bumps even sizes up by one.
func oddKernel(v float64) int {
	k := int(math.Round(v))
	if k%2 == 0 {
		k++
	}
	return k
}

// NewBilateralFilter smooths while preserving edges
func NewBilateralFilter() filters.Filter {
	base := filters.NewBase("CVBilateralFilter", "Bilateral Filter",
		filters.Input{Key: "inputDiameter", Attribute: attr("Diameter", 3, 15, 9)},
		filters.Input{Key: "inputSigmaColor", Attribute: attr("Sigma Color", 10, 200, 75)},
		filters.Input{Key: "inputSigmaSpace", Attribute: attr("Sigma Space", 10, 200, 75)},
	)
	return NewFilter(base, func(input gocv.Mat, v map[string]float64) (gocv.Mat, error) {
		d := int(math.Round(v["inputDiameter"]))
		if d < 1 {
			return gocv.NewMat(), fmt.Errorf("%w: inputDiameter=%d", filters.ErrOutOfDomain, d)
		}

		output := gocv.NewMat()
		gocv.BilateralFilter(input, &output, d, v["inputSigmaColor"], v["inputSigmaSpace"])
		return output, nil
	})
}

// NewMedianBlur removes salt-and-pepper noise
func NewMedianBlur() filters.Filter {
	base := filters.NewBase("CVMedianBlur", "Median Blur",
		filters.Input{Key: "inputKernelSize", Attribute: attr("Kernel Size", 3, 15, 5)},
	)
	return NewFilter(base, func(input gocv.Mat, v map[string]float64) (gocv.Mat, error) {
		k := oddKernel(v["inputKernelSize"])
		if k < 3 {
			return gocv.NewMat(), fmt.Errorf("%w: inputKernelSize=%d", filters.ErrOutOfDomain, k)
		}

		output := gocv.NewMat()
		gocv.MedianBlur(input, &output, k)
		return output, nil
	})
}

func NewCannyEdges() filters.Filter {
	base := filters.NewBase("CVCannyEdges", "Canny Edges",
		filters.Input{Key: "inputLowThreshold", Attribute: attr("Low Threshold", 0, 255, 50)},
		filters.Input{Key: "inputHighThreshold", Attribute: attr("High Threshold", 0, 255, 150)},
	)
	return NewFilter(base, func(input gocv.Mat, v map[string]float64) (gocv.Mat, error) {
		low, high := v["inputLowThreshold"], v["inputHighThreshold"]
		if low > high {
			return gocv.NewMat(), fmt.Errorf("%w: low threshold above high", filters.ErrOutOfDomain)
		}

		gray := gocv.NewMat()
		defer gray.Close()
		gocv.CvtColor(input, &gray, gocv.ColorBGRToGray)

		output := gocv.NewMat()
		gocv.Canny(gray, &output, float32(low), float32(high))
		return output, nil
	})
}
