package components

import (
	"play-and-learn/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Choices is the row of answer buttons used by the multiple-choice games
type Choices struct {
	container *fyne.Container
	buttons   [models.ChoiceCount]*widget.Button
	handler   func(int)
}

func NewChoices() *Choices {
	c := &Choices{}
	objs := make([]fyne.CanvasObject, 0, models.ChoiceCount)
	for i := range c.buttons {
		c.buttons[i] = widget.NewButton("", func() {
			if c.handler != nil {
				c.handler(i)
			}
		})
		objs = append(objs, c.buttons[i])
	}
	c.container = container.NewGridWithColumns(models.ChoiceCount, objs...)
	return c
}

// SetHandler sets the callback receiving the clicked index
func (c *Choices) SetHandler(handler func(int)) {
	c.handler = handler
}

// SetLabels shows a new set of answers, enabled and unmarked. Like the other
// setters it must run on the UI goroutine so the owning screen can update its
// prompt in the same frame.
func (c *Choices) SetLabels(labels [models.ChoiceCount]string) {
	for i, btn := range c.buttons {
		btn.SetText(labels[i])
		btn.Importance = widget.MediumImportance
		btn.Enable()
		btn.Refresh()
	}
}

// SetMarks colors the answers after a round locks and disables them
func (c *Choices) SetMarks(marks [models.ChoiceCount]models.ChoiceMark) {
	for i, btn := range c.buttons {
		switch marks[i] {
		case models.MarkCorrect:
			btn.Importance = widget.SuccessImportance
		case models.MarkWrong:
			btn.Importance = widget.DangerImportance
		default:
			btn.Importance = widget.MediumImportance
		}
		btn.Disable()
		btn.Refresh()
	}
}

// SetEnabled locks or unlocks all answers
func (c *Choices) SetEnabled(enabled bool) {
	for _, btn := range c.buttons {
		if enabled {
			btn.Enable()
		} else {
			btn.Disable()
		}
	}
}

// Button returns the answer button at index
func (c *Choices) Button(i int) *widget.Button {
	return c.buttons[i]
}

// GetContainer returns the button row
func (c *Choices) GetContainer() *fyne.Container {
	return c.container
}
