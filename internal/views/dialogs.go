package views

import (
	"play-and-learn/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// dialogs shows modal prompts on the window every screen shares
type dialogs struct {
	window fyne.Window
}

// ShowError displays err under the given title
func (d dialogs) ShowError(title string, err error) {
	fyne.Do(func() {
		content := container.NewHBox(
			widget.NewIcon(theme.ErrorIcon()),
			widget.NewLabel(err.Error()),
		)
		dialog.NewCustom(title, "OK", content, d.window).Show()
	})
}

// ShowInfo displays an information dialog
func (d dialogs) ShowInfo(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, d.window)
	})
}

// ShowConfirm displays a confirmation dialog
func (d dialogs) ShowConfirm(title, message string, callback func(bool)) {
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, callback, d.window)
	})
}

// ShowMenu displays a message with one button per option. The dialog can
// only be left through one of the options.
func (d dialogs) ShowMenu(title, message string, options []models.MenuOption, callback func(models.MenuChoice)) {
	fyne.Do(func() {
		var dlg *dialog.CustomDialog
		buttons := make([]fyne.CanvasObject, 0, len(options))
		for _, opt := range options {
			btn := widget.NewButton(opt.Label, func() {
				dlg.Hide()
				if callback != nil {
					callback(opt.Choice)
				}
			})
			if opt.Choice == models.PlayAgain {
				btn.Importance = widget.HighImportance
			}
			buttons = append(buttons, btn)
		}

		content := container.NewVBox(
			widget.NewLabelWithStyle(message, fyne.TextAlignCenter, fyne.TextStyle{}),
			container.NewGridWithColumns(len(buttons), buttons...),
		)
		dlg = dialog.NewCustomWithoutButtons(title, content, d.window)
		dlg.Show()
	})
}
