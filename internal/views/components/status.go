package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows a status message on the left and the version on the right
type StatusBar struct {
	container    *fyne.Container
	statusLabel  *widget.Label
	versionLabel *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar(version string) *StatusBar {
	sb := &StatusBar{}
	sb.createComponents(version)
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents(version string) {
	sb.statusLabel = widget.NewLabel("")
	sb.versionLabel = widget.NewLabelWithStyle(version, fyne.TextAlignTrailing, fyne.TextStyle{Italic: true})
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		layout.NewSpacer(),
		sb.versionLabel,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	fyne.Do(func() {
		sb.statusLabel.SetText(status)
	})
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// GetVersion returns the version text
func (sb *StatusBar) GetVersion() string {
	return sb.versionLabel.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// ProgressBar displays "Progress: n/total ⭐" above a bar
type ProgressBar struct {
	container   *fyne.Container
	progressBar *widget.ProgressBar
	stageLabel  *widget.Label
	matched     int
	total       int
}

// NewProgressBar creates a new progress bar component
func NewProgressBar() *ProgressBar {
	pb := &ProgressBar{}
	pb.createComponents()
	pb.buildLayout()
	return pb
}

func (pb *ProgressBar) createComponents() {
	pb.progressBar = widget.NewProgressBar()
	pb.progressBar.SetValue(0.0)
	pb.stageLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
}

func (pb *ProgressBar) buildLayout() {
	pb.container = container.NewVBox(
		pb.stageLabel,
		pb.progressBar,
	)
}

// SetProgress updates the counter and the bar
func (pb *ProgressBar) SetProgress(matched, total int) {
	if matched < 0 {
		matched = 0
	} else if total > 0 && matched > total {
		matched = total
	}
	pb.matched, pb.total = matched, total

	value := 0.0
	if total > 0 {
		value = float64(matched) / float64(total)
	}
	fyne.Do(func() {
		pb.stageLabel.SetText(fmt.Sprintf("Progress: %d/%d ⭐", matched, total))
		pb.progressBar.SetValue(value)
	})
}

// GetProgress returns the bar value in [0,1]
func (pb *ProgressBar) GetProgress() float64 {
	return pb.progressBar.Value
}

// GetStage returns the counter text
func (pb *ProgressBar) GetStage() string {
	return pb.stageLabel.Text
}

// GetContainer returns the progress bar container
func (pb *ProgressBar) GetContainer() *fyne.Container {
	return pb.container
}
