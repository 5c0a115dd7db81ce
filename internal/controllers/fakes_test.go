package controllers

import (
	"context"
	"errors"
	"image"
	"sync"
	"time"

	"play-and-learn/internal/audio"
	"play-and-learn/internal/config"
	"play-and-learn/internal/events"
	"play-and-learn/internal/logger"
	"play-and-learn/internal/models"
	"play-and-learn/internal/services"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type menuCall struct {
	title    string
	message  string
	options  []models.MenuOption
	callback func(models.MenuChoice)
}

type fakeDialogs struct {
	infos    []string
	errs     []error
	confirms []func(bool)
	menus    []menuCall
	back     func()
}

func (d *fakeDialogs) ShowInfo(title, message string)    { d.infos = append(d.infos, title+": "+message) }
func (d *fakeDialogs) ShowError(title string, err error) { d.errs = append(d.errs, err) }
func (d *fakeDialogs) ShowConfirm(title, message string, cb func(bool)) {
	d.confirms = append(d.confirms, cb)
}
func (d *fakeDialogs) ShowMenu(title, message string, options []models.MenuOption, cb func(models.MenuChoice)) {
	d.menus = append(d.menus, menuCall{title: title, message: message, options: options, callback: cb})
}
func (d *fakeDialogs) SetBackHandler(h func()) { d.back = h }

func (d *fakeDialogs) lastInfo() string {
	if len(d.infos) == 0 {
		return ""
	}
	return d.infos[len(d.infos)-1]
}

type fakeLauncher struct {
	fakeDialogs
	onDifficulty func(models.Difficulty)
	onStart      func()
	onSettings   func()
	onMute       func()
	onHelp       func()

	difficulty models.Difficulty
	muted      bool
	picture    image.Image
	alphas     []float64
	status     string
	settings   int
	onSound    func()
	onReset    func()
}

func (l *fakeLauncher) SetDifficultyHandler(h func(models.Difficulty)) { l.onDifficulty = h }
func (l *fakeLauncher) SetStartHandler(h func())                       { l.onStart = h }
func (l *fakeLauncher) SetSettingsHandler(h func())                    { l.onSettings = h }
func (l *fakeLauncher) SetMuteHandler(h func())                        { l.onMute = h }
func (l *fakeLauncher) SetHelpHandler(h func())                        { l.onHelp = h }
func (l *fakeLauncher) SetDifficulty(d models.Difficulty)              { l.difficulty = d }
func (l *fakeLauncher) SetMuted(m bool)                                { l.muted = m }
func (l *fakeLauncher) SetPicture(img image.Image)                     { l.picture = img }
func (l *fakeLauncher) SetTitleAlpha(a float64)                        { l.alphas = append(l.alphas, a) }
func (l *fakeLauncher) UpdateStatus(msg string)                        { l.status = msg }

func (l *fakeLauncher) ShowSettings(soundOn bool, onSound, onReset func()) {
	l.settings++
	l.onSound = onSound
	l.onReset = onReset
}

type fakeShapeView struct {
	fakeDialogs
	press, drag, release func(models.Point)
	board                models.Board
	renders              int
	matched, total       int
}

func (v *fakeShapeView) SetPointerHandlers(press, drag, release func(models.Point)) {
	v.press, v.drag, v.release = press, drag, release
}
func (v *fakeShapeView) RenderBoard(b models.Board) { v.board = b; v.renders++ }
func (v *fakeShapeView) SetProgress(m, t int)       { v.matched, v.total = m, t }

type fakeNumberView struct {
	fakeDialogs
	choose  func(int)
	number  int
	choices [models.ChoiceCount]string
	marks   [models.ChoiceCount]models.ChoiceMark
	rounds  int
	score   string
}

func (v *fakeNumberView) SetChoiceHandler(h func(int)) { v.choose = h }
func (v *fakeNumberView) ShowRound(n int, c [models.ChoiceCount]string) {
	v.number, v.choices, v.rounds = n, c, v.rounds+1
	v.marks = [models.ChoiceCount]models.ChoiceMark{}
}
func (v *fakeNumberView) RevealRound(m [models.ChoiceCount]models.ChoiceMark) { v.marks = m }
func (v *fakeNumberView) SetScore(s string)                                   { v.score = s }

type fakeArithmeticView struct {
	fakeDialogs
	choose    func(int)
	question  string
	choices   [models.ChoiceCount]int
	questions int
	enabled   bool
	feedback  string
	score     string
}

func (v *fakeArithmeticView) SetChoiceHandler(h func(int)) { v.choose = h }
func (v *fakeArithmeticView) ShowQuestion(q string, c [models.ChoiceCount]int) {
	v.question, v.choices, v.questions = q, c, v.questions+1
}
func (v *fakeArithmeticView) SetChoicesEnabled(e bool) { v.enabled = e }
func (v *fakeArithmeticView) SetFeedback(s string)     { v.feedback = s }
func (v *fakeArithmeticView) SetScore(s string)        { v.score = s }

type fakeScreens struct {
	shown      []string
	launcher   *fakeLauncher
	shapes     *fakeShapeView
	numbers    *fakeNumberView
	arithmetic *fakeArithmeticView
}

func (s *fakeScreens) ShowLauncher() LauncherView {
	s.shown = append(s.shown, "launcher")
	s.launcher = &fakeLauncher{}
	return s.launcher
}

func (s *fakeScreens) ShowShapes() ShapeView {
	s.shown = append(s.shown, "shapes")
	s.shapes = &fakeShapeView{}
	return s.shapes
}

func (s *fakeScreens) ShowNumbers() NumberView {
	s.shown = append(s.shown, "numbers")
	s.numbers = &fakeNumberView{}
	return s.numbers
}

func (s *fakeScreens) ShowArithmetic() ArithmeticView {
	s.shown = append(s.shown, "arithmetic")
	s.arithmetic = &fakeArithmeticView{}
	return s.arithmetic
}

func (s *fakeScreens) current() string {
	if len(s.shown) == 0 {
		return ""
	}
	return s.shown[len(s.shown)-1]
}

type fakeBus struct {
	mu     sync.Mutex
	events []events.Event
}

func (b *fakeBus) Publish(e events.Event) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
	return true
}

func (b *fakeBus) count(t events.Type) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, e := range b.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type fakeAssets struct {
	music    string
	musicErr error
}

func (a *fakeAssets) Picture(ctx context.Context) (*services.Picture, error) {
	return &services.Picture{Image: image.NewRGBA(image.Rect(0, 0, 4, 4)), Placeholder: true}, nil
}

func (a *fakeAssets) MusicPath() (string, error) {
	if a.musicErr != nil {
		return "", a.musicErr
	}
	return a.music, nil
}

type fakeNav struct {
	opened []models.Difficulty
	menu   int
}

func (n *fakeNav) OpenGame(d models.Difficulty) { n.opened = append(n.opened, d) }
func (n *fakeNav) BackToMenu()                  { n.menu++ }

type harness struct {
	cfg     config.Config
	sched   *ManualScheduler
	screens *fakeScreens
	player  *audio.NopPlayer
	bus     *fakeBus
	assets  *fakeAssets
	mc      *MainController
}

func newHarness(mutate func(*config.Config)) *harness {
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	h := &harness{
		cfg:     cfg,
		sched:   NewManualScheduler(epoch),
		screens: &fakeScreens{},
		player:  audio.NewNopPlayer(cfg.Sound),
		bus:     &fakeBus{},
		assets:  &fakeAssets{music: "background_music.wav"},
	}
	h.mc = NewMainController(Dependencies{
		Config:    cfg,
		Screens:   h.screens,
		Games:     services.NewGameService(cfg, 42),
		Assets:    h.assets,
		Player:    h.player,
		Bus:       h.bus,
		Scheduler: h.sched,
		Logger:    logger.Nop{},
	})
	return h
}

func deps(sched Scheduler, bus Publisher, nav Navigator) gameDeps {
	return gameDeps{sched: sched, bus: bus, nav: nav, logger: logger.Nop{}, session: "test"}
}

var errNoMusic = errors.New("no music")
