package views

import (
	"image/color"
	"strconv"

	"play-and-learn/internal/controllers"
	"play-and-learn/internal/models"
	"play-and-learn/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const BackLabel = "🏠 Back to Menu"

var (
	numberColor   = color.NRGBA{R: 74, G: 144, B: 226, A: 255}
	questionColor = color.NRGBA{R: 80, G: 80, B: 80, A: 255}
)

// gameScreen holds what every mini-game screen shares: the dialogs and the
// back button.
type gameScreen struct {
	dialogs
	backButton  *widget.Button
	backHandler func()
}

func newGameScreen(window fyne.Window) gameScreen {
	return gameScreen{dialogs: dialogs{window: window}}
}

func (g *gameScreen) createBackButton() {
	g.backButton = widget.NewButton(BackLabel, func() {
		if g.backHandler != nil {
			g.backHandler()
		}
	})
}

// SetBackHandler sets the handler for the back button
func (g *gameScreen) SetBackHandler(handler func()) {
	g.backHandler = handler
}

// BackButton returns the back button
func (g *gameScreen) BackButton() *widget.Button {
	return g.backButton
}

func header(text string, size float32) *canvas.Text {
	t := canvas.NewText(text, questionColor)
	t.TextSize = size
	t.TextStyle = fyne.TextStyle{Bold: true}
	t.Alignment = fyne.TextAlignCenter
	return t
}

// ShapeScreen is the drag-and-drop board with its progress counter
type ShapeScreen struct {
	gameScreen
	container *fyne.Container
	board     *components.Board
	progress  *components.ProgressBar
}

var _ controllers.ShapeView = (*ShapeScreen)(nil)

func NewShapeScreen(window fyne.Window) *ShapeScreen {
	s := &ShapeScreen{gameScreen: newGameScreen(window)}
	s.createBackButton()
	s.board = components.NewBoard()
	s.progress = components.NewProgressBar()

	top := container.NewVBox(
		header("🎯 Drag shapes to matching targets!", 24),
		widget.NewLabelWithStyle("Match the color AND shape type!", fyne.TextAlignCenter, fyne.TextStyle{}),
		s.progress.GetContainer(),
	)
	s.container = container.NewBorder(top, container.NewCenter(s.backButton), nil, nil, s.board)
	return s
}

func (s *ShapeScreen) SetPointerHandlers(press, drag, release func(models.Point)) {
	s.board.SetHandlers(press, drag, release)
}

// RenderBoard draws the given state
func (s *ShapeScreen) RenderBoard(board models.Board) {
	s.board.SetState(board)
}

func (s *ShapeScreen) SetProgress(matched, total int) {
	s.progress.SetProgress(matched, total)
}

// Board returns the play field widget
func (s *ShapeScreen) Board() *components.Board {
	return s.board
}

// Progress returns the progress component
func (s *ShapeScreen) Progress() *components.ProgressBar {
	return s.progress
}

func (s *ShapeScreen) GetContainer() *fyne.Container {
	return s.container
}

// NumberScreen shows a digit and three word choices
type NumberScreen struct {
	gameScreen
	container  *fyne.Container
	number     *canvas.Text
	choices    *components.Choices
	scoreLabel *widget.Label
}

var _ controllers.NumberView = (*NumberScreen)(nil)

func NewNumberScreen(window fyne.Window) *NumberScreen {
	s := &NumberScreen{gameScreen: newGameScreen(window)}
	s.createBackButton()

	s.number = canvas.NewText("", numberColor)
	s.number.TextSize = 72
	s.number.TextStyle = fyne.TextStyle{Bold: true}
	s.number.Alignment = fyne.TextAlignCenter
	s.choices = components.NewChoices()
	s.scoreLabel = widget.NewLabelWithStyle("Score: 0/0", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	center := container.NewVBox(
		header("🔢 Match the number to its word!", 24),
		s.number,
		s.choices.GetContainer(),
	)
	s.container = container.NewBorder(
		s.scoreLabel,
		container.NewCenter(s.backButton),
		nil,
		nil,
		container.NewCenter(center),
	)
	return s
}

func (s *NumberScreen) SetChoiceHandler(handler func(int)) {
	s.choices.SetHandler(handler)
}

// ShowRound displays a new digit with unmarked choices
func (s *NumberScreen) ShowRound(number int, choices [models.ChoiceCount]string) {
	s.number.Text = strconv.Itoa(number)
	s.number.Refresh()
	s.choices.SetLabels(choices)
}

// RevealRound colors the answers and locks them
func (s *NumberScreen) RevealRound(marks [models.ChoiceCount]models.ChoiceMark) {
	s.choices.SetMarks(marks)
}

func (s *NumberScreen) SetScore(text string) {
	s.scoreLabel.SetText(text)
}

// Number returns the displayed digit
func (s *NumberScreen) Number() string {
	return s.number.Text
}

// Choices returns the answer buttons
func (s *NumberScreen) Choices() *components.Choices {
	return s.choices
}

// Score returns the score label text
func (s *NumberScreen) Score() string {
	return s.scoreLabel.Text
}

func (s *NumberScreen) GetContainer() *fyne.Container {
	return s.container
}

// ArithmeticScreen shows a question, three numeric answers and feedback
type ArithmeticScreen struct {
	gameScreen
	container     *fyne.Container
	question      *canvas.Text
	choices       *components.Choices
	feedbackLabel *widget.Label
	scoreLabel    *widget.Label
}

var _ controllers.ArithmeticView = (*ArithmeticScreen)(nil)

func NewArithmeticScreen(window fyne.Window) *ArithmeticScreen {
	s := &ArithmeticScreen{gameScreen: newGameScreen(window)}
	s.createBackButton()

	s.question = header("", 30)
	s.choices = components.NewChoices()
	s.feedbackLabel = widget.NewLabelWithStyle(" ", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	s.scoreLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})

	center := container.NewVBox(
		s.question,
		s.choices.GetContainer(),
		s.feedbackLabel,
	)
	s.container = container.NewBorder(
		s.scoreLabel,
		container.NewCenter(s.backButton),
		nil,
		nil,
		container.NewCenter(center),
	)
	return s
}

func (s *ArithmeticScreen) SetChoiceHandler(handler func(int)) {
	s.choices.SetHandler(handler)
}

// ShowQuestion displays the prompt and its answers
func (s *ArithmeticScreen) ShowQuestion(text string, choices [models.ChoiceCount]int) {
	var labels [models.ChoiceCount]string
	for i, c := range choices {
		labels[i] = strconv.Itoa(c)
	}
	s.question.Text = text
	s.question.Refresh()
	s.choices.SetLabels(labels)
}

func (s *ArithmeticScreen) SetChoicesEnabled(enabled bool) {
	s.choices.SetEnabled(enabled)
}

// SetFeedback shows the answer feedback; an empty text clears it
func (s *ArithmeticScreen) SetFeedback(text string) {
	if text == "" {
		text = " "
	}
	s.feedbackLabel.SetText(text)
}

func (s *ArithmeticScreen) SetScore(text string) {
	s.scoreLabel.SetText(text)
}

// Question returns the displayed prompt
func (s *ArithmeticScreen) Question() string {
	return s.question.Text
}

// Choices returns the answer buttons
func (s *ArithmeticScreen) Choices() *components.Choices {
	return s.choices
}

// Feedback returns the feedback text
func (s *ArithmeticScreen) Feedback() string {
	return s.feedbackLabel.Text
}

func (s *ArithmeticScreen) GetContainer() *fyne.Container {
	return s.container
}
