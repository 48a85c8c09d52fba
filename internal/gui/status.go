package gui

import (
	"fmt"
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"filter-explorer/internal/metrics"
)

// StatusBar shows the last user-facing message next to the current image
// size and the frame counters of the visible surface. Periodic stats
// updates never replace the message.
type StatusBar struct {
	message *widget.Label
	stats   *widget.Label
	content *fyne.Container
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{
		message: widget.NewLabel("Ready"),
		stats:   widget.NewLabel(""),
	}
	sb.content = container.NewBorder(nil, nil, sb.message, nil, sb.stats)
	return sb
}

func (sb *StatusBar) SetMessage(message string) {
	sb.message.SetText(message)
}

// Update renders the image size and frame snapshot into the stats line.
func (sb *StatusBar) Update(img image.Image, frames metrics.Snapshot) {
	sb.stats.SetText(statusText(img, frames))
}

func (sb *StatusBar) Message() string {
	return sb.message.Text
}

func (sb *StatusBar) GetContainer() fyne.CanvasObject {
	return sb.content
}

func statusText(img image.Image, frames metrics.Snapshot) string {
	size := "no image"
	if img != nil {
		b := img.Bounds()
		pixels := uint64(b.Dx()) * uint64(b.Dy())
		size = fmt.Sprintf("%dx%d (%s pixels, %s)", b.Dx(), b.Dy(),
			humanize.Comma(int64(pixels)), humanize.Bytes(pixels*4))
	}
	return fmt.Sprintf("%s | %s frames, %s skipped, last %s", size,
		humanize.Comma(frames.Frames), humanize.Comma(frames.Skipped), frames.LastFrame.Round(10*time.Microsecond))
}
