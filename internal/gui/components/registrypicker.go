package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// RegistryChoice is one selectable app in the add-from-registry picker.
type RegistryChoice struct {
	Path string
	Name string
}

// ShowRegistryPicker lists registered apps not yet present in the
// current group and hands the chosen path to onPick.
func ShowRegistryPicker(choices []RegistryChoice, window fyne.Window, onPick func(path string)) {
	if len(choices) == 0 {
		dialog.ShowInformation("Add From Registry",
			"Every registered app is already in this group.", window)
		return
	}

	selected := -1
	list := widget.NewList(
		func() int { return len(choices) },
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, object fyne.CanvasObject) {
			choice := choices[id]
			object.(*widget.Label).SetText(choice.Name + "  -  " + choice.Path)
		},
	)
	list.OnSelected = func(id widget.ListItemID) {
		selected = id
	}

	picker := dialog.NewCustomConfirm("Add From Registry", "Add", "Cancel", list,
		func(confirmed bool) {
			if !confirmed || selected < 0 || selected >= len(choices) {
				return
			}
			onPick(choices[selected].Path)
		}, window)
	picker.Resize(fyne.NewSize(520, 360))
	picker.Show()
}
