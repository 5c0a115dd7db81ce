package views

import (
	"play-and-learn/internal/config"
	"play-and-learn/internal/controllers"

	"fyne.io/fyne/v2"
)

// Window titles
const (
	LauncherTitle   = "Play and Learn With Emy Girl - Enhanced Edition"
	ShapesTitle     = "🟢 Shape Matching Game - Easy Mode"
	NumbersTitle    = "🟡 Number Matching Game - Medium Mode"
	ArithmeticTitle = "🔴 Hard Mode - Math Challenge with Emy Girl"
)

// MainWindow swaps the content of the single application window between
// the launcher and the games.
type MainWindow struct {
	window fyne.Window
	sizes  config.WindowConfig
}

var _ controllers.Screens = (*MainWindow)(nil)

func NewMainWindow(window fyne.Window, sizes config.WindowConfig) *MainWindow {
	return &MainWindow{window: window, sizes: sizes}
}

func (mw *MainWindow) show(title string, size config.Size, content fyne.CanvasObject) {
	mw.window.SetTitle(title)
	mw.window.SetContent(content)
	mw.window.Resize(fyne.NewSize(size.Width, size.Height))
	mw.window.CenterOnScreen()
}

func (mw *MainWindow) ShowLauncher() controllers.LauncherView {
	l := NewLauncher(mw.window)
	mw.show(LauncherTitle, mw.sizes.Launcher, l.GetContainer())
	return l
}

func (mw *MainWindow) ShowShapes() controllers.ShapeView {
	s := NewShapeScreen(mw.window)
	mw.show(ShapesTitle, mw.sizes.Shapes, s.GetContainer())
	return s
}

func (mw *MainWindow) ShowNumbers() controllers.NumberView {
	s := NewNumberScreen(mw.window)
	mw.show(NumbersTitle, mw.sizes.Numbers, s.GetContainer())
	return s
}

func (mw *MainWindow) ShowArithmetic() controllers.ArithmeticView {
	s := NewArithmeticScreen(mw.window)
	mw.show(ArithmeticTitle, mw.sizes.Arithmetic, s.GetContainer())
	return s
}

// GetWindow returns the application window
func (mw *MainWindow) GetWindow() fyne.Window {
	return mw.window
}
