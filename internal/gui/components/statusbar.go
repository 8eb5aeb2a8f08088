package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	countsLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	countsLabel := widget.NewLabel("")

	mainContainer := container.NewBorder(
		nil, nil,
		statusLabel,
		countsLabel,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		countsLabel: countsLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) SetCounts(groupName string, total, enabled int) {
	if groupName == "" {
		sb.countsLabel.SetText("")
		return
	}
	sb.countsLabel.SetText(fmt.Sprintf("%s: %d apps, %d enabled", groupName, total, enabled))
}
