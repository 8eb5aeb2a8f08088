package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// DropZone is the visual target for file drops. The drop events
// themselves arrive at window level; this component only renders the
// hint area.
type DropZone struct {
	container *fyne.Container
	hintLabel *widget.Label
}

func NewDropZone(hint string) *DropZone {
	background := canvas.NewRectangle(color.RGBA{R: 250, G: 250, B: 250, A: 255})
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeWidth = 2.0
	border.StrokeColor = color.RGBA{R: 158, G: 158, B: 158, A: 255}

	hintLabel := widget.NewLabel(hint)
	hintLabel.Alignment = fyne.TextAlignCenter
	hintLabel.Wrapping = fyne.TextWrapWord

	content := container.NewStack(
		background,
		border,
		container.NewPadded(hintLabel),
	)

	return &DropZone{
		container: content,
		hintLabel: hintLabel,
	}
}

func (d *DropZone) GetContainer() *fyne.Container {
	return d.container
}

func (d *DropZone) SetHint(hint string) {
	d.hintLabel.SetText(hint)
}
