package components

import (
	"fmt"

	"play-and-learn/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	StartLabel    = "🎮 Start Game"
	SettingsLabel = "⚙️ Settings"
	MuteLabel     = "🔇 Mute"
	UnmuteLabel   = "🔊 Unmute"
	HelpLabel     = "❓ Help"
)

// DifficultyPicker is the row of level buttons plus the "X Mode Selected" label
type DifficultyPicker struct {
	container     *fyne.Container
	buttons       map[models.Difficulty]*widget.Button
	selectedLabel *widget.Label
	current       models.Difficulty

	changeHandler func(models.Difficulty)
}

// NewDifficultyPicker creates the level selector
func NewDifficultyPicker() *DifficultyPicker {
	p := &DifficultyPicker{buttons: make(map[models.Difficulty]*widget.Button)}
	p.createComponents()
	p.buildLayout()
	return p
}

func (p *DifficultyPicker) createComponents() {
	for _, d := range models.AllDifficulties() {
		btn := widget.NewButton(d.ButtonLabel(), func() {
			if p.changeHandler != nil {
				p.changeHandler(d)
			}
		})
		p.buttons[d] = btn
	}
	p.selectedLabel = widget.NewLabelWithStyle(" ", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
}

func (p *DifficultyPicker) buildLayout() {
	row := container.NewGridWithColumns(len(p.buttons))
	for _, d := range models.AllDifficulties() {
		row.Add(p.buttons[d])
	}
	p.container = container.NewVBox(
		widget.NewLabelWithStyle("Choose Your Level:", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		row,
		p.selectedLabel,
	)
}

// SetChangeHandler sets the handler for level clicks
func (p *DifficultyPicker) SetChangeHandler(handler func(models.Difficulty)) {
	p.changeHandler = handler
}

// SetSelected highlights the level's button and updates the label
func (p *DifficultyPicker) SetSelected(d models.Difficulty) {
	p.current = d
	fyne.Do(func() {
		for level, btn := range p.buttons {
			if level == d {
				btn.Importance = widget.HighImportance
			} else {
				btn.Importance = widget.MediumImportance
			}
			btn.Refresh()
		}
		p.selectedLabel.SetText(fmt.Sprintf("%s Mode Selected", d))
	})
}

// GetSelected returns the highlighted level
func (p *DifficultyPicker) GetSelected() models.Difficulty {
	return p.current
}

// GetSelectedText returns the label under the buttons
func (p *DifficultyPicker) GetSelectedText() string {
	return p.selectedLabel.Text
}

// Button returns the level's button
func (p *DifficultyPicker) Button(d models.Difficulty) *widget.Button {
	return p.buttons[d]
}

// GetContainer returns the picker container
func (p *DifficultyPicker) GetContainer() *fyne.Container {
	return p.container
}

// Toolbar holds the launcher actions
type Toolbar struct {
	container      *fyne.Container
	startButton    *widget.Button
	settingsButton *widget.Button
	muteButton     *widget.Button
	helpButton     *widget.Button

	startHandler    func()
	settingsHandler func()
	muteHandler     func()
	helpHandler     func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.startButton = widget.NewButton(StartLabel, nil)
	t.startButton.Importance = widget.SuccessImportance

	t.settingsButton = widget.NewButton(SettingsLabel, nil)
	t.muteButton = widget.NewButton(MuteLabel, nil)
	t.helpButton = widget.NewButton(HelpLabel, nil)
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewVBox(
		t.startButton,
		container.NewGridWithColumns(3, t.settingsButton, t.muteButton, t.helpButton),
	)
}

func (t *Toolbar) setupEventHandlers() {
	t.startButton.OnTapped = func() {
		if t.startHandler != nil {
			t.startHandler()
		}
	}

	t.settingsButton.OnTapped = func() {
		if t.settingsHandler != nil {
			t.settingsHandler()
		}
	}

	t.muteButton.OnTapped = func() {
		if t.muteHandler != nil {
			t.muteHandler()
		}
	}

	t.helpButton.OnTapped = func() {
		if t.helpHandler != nil {
			t.helpHandler()
		}
	}
}

func (t *Toolbar) SetStartHandler(handler func())    { t.startHandler = handler }
func (t *Toolbar) SetSettingsHandler(handler func()) { t.settingsHandler = handler }
func (t *Toolbar) SetMuteHandler(handler func())     { t.muteHandler = handler }
func (t *Toolbar) SetHelpHandler(handler func())     { t.helpHandler = handler }

// SetMuted switches the mute button label
func (t *Toolbar) SetMuted(muted bool) {
	label := MuteLabel
	if muted {
		label = UnmuteLabel
	}
	fyne.Do(func() {
		t.muteButton.SetText(label)
	})
}

// MuteButton returns the mute toggle
func (t *Toolbar) MuteButton() *widget.Button {
	return t.muteButton
}

// StartButton returns the start button
func (t *Toolbar) StartButton() *widget.Button {
	return t.startButton
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
