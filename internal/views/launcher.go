package views

import (
	"fmt"
	"image"
	"image/color"

	"play-and-learn/internal/controllers"
	"play-and-learn/internal/models"
	"play-and-learn/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const (
	TitleText     = "Play and Learn With Emy Girl"
	SettingsTitle = "Game Settings"
)

var (
	titleColor    = color.NRGBA{R: 255, G: 107, B: 107, A: 255}
	gradientStart = color.NRGBA{R: 255, G: 240, B: 245, A: 255}
	gradientEnd   = color.NRGBA{R: 230, G: 240, B: 255, A: 255}
)

// Launcher is the main menu screen
type Launcher struct {
	dialogs

	container *fyne.Container
	title     *canvas.Text
	picture   *components.PictureFrame
	picker    *components.DifficultyPicker
	toolbar   *components.Toolbar
	statusBar *components.StatusBar
}

var _ controllers.LauncherView = (*Launcher)(nil)

// NewLauncher creates the launcher for window
func NewLauncher(window fyne.Window) *Launcher {
	l := &Launcher{dialogs: dialogs{window: window}}
	l.initializeComponents()
	l.buildLayout()
	return l
}

func (l *Launcher) initializeComponents() {
	l.title = canvas.NewText(TitleText, titleColor)
	l.title.TextSize = 32
	l.title.TextStyle = fyne.TextStyle{Bold: true}
	l.title.Alignment = fyne.TextAlignCenter

	l.picture = components.NewPictureFrame()
	l.picker = components.NewDifficultyPicker()
	l.toolbar = components.NewToolbar()
	l.statusBar = components.NewStatusBar(controllers.Version)
}

func (l *Launcher) buildLayout() {
	content := container.NewVBox(
		l.title,
		container.NewCenter(l.picture.GetContainer()),
		l.picker.GetContainer(),
		l.toolbar.GetContainer(),
	)

	body := container.NewBorder(
		nil,
		l.statusBar.GetContainer(),
		nil,
		nil,
		container.NewPadded(content),
	)

	l.container = container.NewStack(
		canvas.NewVerticalGradient(gradientStart, gradientEnd),
		body,
	)
}

func (l *Launcher) SetDifficultyHandler(handler func(models.Difficulty)) {
	l.picker.SetChangeHandler(handler)
}

func (l *Launcher) SetStartHandler(handler func())    { l.toolbar.SetStartHandler(handler) }
func (l *Launcher) SetSettingsHandler(handler func()) { l.toolbar.SetSettingsHandler(handler) }
func (l *Launcher) SetMuteHandler(handler func())     { l.toolbar.SetMuteHandler(handler) }
func (l *Launcher) SetHelpHandler(handler func())     { l.toolbar.SetHelpHandler(handler) }

// SetDifficulty highlights the selected level
func (l *Launcher) SetDifficulty(d models.Difficulty) {
	l.picker.SetSelected(d)
}

// SetMuted switches the mute button between Mute and Unmute
func (l *Launcher) SetMuted(muted bool) {
	l.toolbar.SetMuted(muted)
}

// SetPicture shows the launcher image
func (l *Launcher) SetPicture(img image.Image) {
	l.picture.SetImage(img)
}

// SetTitleAlpha sets the title opacity in [0,1]
func (l *Launcher) SetTitleAlpha(alpha float64) {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	c := titleColor
	c.A = uint8(alpha*255 + 0.5)
	l.title.Color = c
	l.title.Refresh()
}

// UpdateStatus updates the status bar message
func (l *Launcher) UpdateStatus(message string) {
	l.statusBar.SetStatus(message)
}

// ShowSettings offers the sound toggle and the progress reset
func (l *Launcher) ShowSettings(soundOn bool, onSound func(), onReset func()) {
	state := "OFF"
	if soundOn {
		state = "ON"
	}
	fyne.Do(func() {
		var dlg *dialog.CustomDialog
		sound := widget.NewButton("Sound On/Off", func() {
			dlg.Hide()
			onSound()
		})
		reset := widget.NewButton("Reset Progress", func() {
			dlg.Hide()
			onReset()
		})
		reset.Importance = widget.DangerImportance

		content := container.NewVBox(
			widget.NewLabel("Choose a setting to modify:"),
			widget.NewLabel(fmt.Sprintf("Sound is currently %s", state)),
			container.NewGridWithColumns(2, sound, reset),
		)
		dlg = dialog.NewCustom(SettingsTitle, "Close", content, l.window)
		dlg.Show()
	})
}

// TitleAlpha returns the current title opacity as a byte
func (l *Launcher) TitleAlpha() uint8 {
	return l.title.Color.(color.NRGBA).A
}

// GetContainer returns the launcher content
func (l *Launcher) GetContainer() *fyne.Container {
	return l.container
}

// Picker returns the difficulty selector
func (l *Launcher) Picker() *components.DifficultyPicker {
	return l.picker
}

// Toolbar returns the action buttons
func (l *Launcher) Toolbar() *components.Toolbar {
	return l.toolbar
}

// StatusBar returns the status bar
func (l *Launcher) StatusBar() *components.StatusBar {
	return l.statusBar
}
