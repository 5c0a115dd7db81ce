package controllers

import (
	"context"
	"fmt"
	"time"

	"play-and-learn/internal/anim"
	"play-and-learn/internal/audio"
	"play-and-learn/internal/config"
	"play-and-learn/internal/events"
	"play-and-learn/internal/logger"
	"play-and-learn/internal/models"
	"play-and-learn/internal/services"
)

// Version is shown in the launcher status bar
const Version = "Enhanced v2.0"

const (
	WelcomeStatus = "Welcome! Choose your level and start learning! 🌟"

	HelpTitle = "How to Play"
	HelpText  = "🌟 Welcome to Emy Girl's Learning Adventure! 🌟\n\n" +
		"• Choose your difficulty level (Easy/Medium/Hard)\n" +
		"• Click 'Start Game' to begin your learning journey\n" +
		"• 🟢 Easy: Shape matching fun!\n" +
		"• 🟡 Medium: Number and word matching\n" +
		"• 🔴 Hard: Math challenges and puzzles\n" +
		"• Use 'Settings' for sound and display options\n\n" +
		"Remember: Learning is fun! 🎈"

	SoundTitle  = "Sound Settings"
	SoundOnMsg  = "🔊 Sound has been turned ON"
	SoundOffMsg = "🔇 Sound has been turned OFF"

	ResetTitle    = "Reset Progress"
	ResetConfirm  = "⚠️ Are you sure you want to reset all progress?\nThis action cannot be undone!"
	ResetDone     = "Reset Complete"
	ResetDoneText = "✅ Progress has been reset!\n• Difficulty set to Easy Mode\n• All saved data cleared"
)

// title pulse
const (
	pulseInterval = 50 * time.Millisecond
	pulseLow      = 0.7
	pulseHigh     = 1.0
)

// Assets supplies the launcher picture and the music file
type Assets interface {
	Picture(ctx context.Context) (*services.Picture, error)
	MusicPath() (string, error)
}

// gameController is the running mini-game
type gameController interface {
	Start()
	Stop()
}

// MainController owns the session and moves the window between the
// launcher and the mini-games.
type MainController struct {
	cfg     config.Config
	screens Screens
	games   GameFactory
	assets  Assets
	player  audio.Player
	bus     Publisher
	sched   Scheduler
	logger  logger.Logger

	session  models.Session
	launcher LauncherView
	active   gameController
	pulse    Timer
	closed   bool
}

// Dependencies groups what NewMainController needs
type Dependencies struct {
	Config    config.Config
	Screens   Screens
	Games     GameFactory
	Assets    Assets
	Player    audio.Player
	Bus       Publisher
	Scheduler Scheduler
	Logger    logger.Logger
}

func NewMainController(deps Dependencies) *MainController {
	log := deps.Logger
	if log == nil {
		log = logger.Nop{}
	}
	session := models.NewSession(models.Easy, deps.Config.Sound)
	return &MainController{
		cfg:     deps.Config,
		screens: deps.Screens,
		games:   deps.Games,
		assets:  deps.Assets,
		player:  deps.Player,
		bus:     deps.Bus,
		sched:   deps.Scheduler,
		logger:  log.With("session_id", session.ID),
		session: session,
	}
}

// Session returns a copy of the current session
func (mc *MainController) Session() models.Session {
	return mc.session
}

// ShowLauncher puts the launcher on screen and starts its music and title pulse
func (mc *MainController) ShowLauncher() {
	if mc.closed {
		return
	}
	mc.stopActive()

	view := mc.screens.ShowLauncher()
	mc.launcher = view
	mc.setupLauncherHandlers(view)

	view.SetDifficulty(mc.session.Difficulty)
	view.SetMuted(mc.session.Muted)
	view.UpdateStatus(WelcomeStatus)
	mc.loadPicture(view)

	mc.startPulse(view)
	mc.startMusic()

	mc.logger.Info("MainController", "launcher shown", map[string]interface{}{
		"difficulty": mc.session.Difficulty.String(),
	})
}

func (mc *MainController) setupLauncherHandlers(view LauncherView) {
	view.SetDifficultyHandler(mc.SelectDifficulty)
	view.SetStartHandler(mc.StartGame)
	view.SetSettingsHandler(mc.OpenSettings)
	view.SetMuteHandler(mc.ToggleMute)
	view.SetHelpHandler(mc.ShowHelp)
}

func (mc *MainController) loadPicture(view LauncherView) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pic, err := mc.assets.Picture(ctx)
	if err != nil {
		mc.logger.Warning("MainController", "launcher picture unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	view.SetPicture(pic.Image)
}

func (mc *MainController) startPulse(view LauncherView) {
	mc.stopPulse()
	start := mc.sched.Now()
	view.SetTitleAlpha(pulseHigh)
	mc.pulse = mc.sched.Every(pulseInterval, func() {
		elapsed := mc.sched.Now().Sub(start)
		view.SetTitleAlpha(anim.Pulse(elapsed, mc.cfg.Animation.PulsePeriod, pulseLow, pulseHigh))
	})
}

func (mc *MainController) stopPulse() {
	if mc.pulse != nil {
		mc.pulse.Stop()
		mc.pulse = nil
	}
}

func (mc *MainController) startMusic() {
	if !mc.session.SoundEnabled {
		return
	}
	path, err := mc.assets.MusicPath()
	if err != nil {
		mc.logger.Warning("MainController", "background music unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if err := mc.player.PlayBackground(path); err != nil {
		mc.logger.Warning("MainController", "background music failed", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return
	}
	mc.player.SetMuted(mc.session.Muted)
}

// SelectDifficulty records the level picked on the launcher
func (mc *MainController) SelectDifficulty(d models.Difficulty) {
	mc.session = mc.session.WithDifficulty(d)
	if mc.launcher != nil {
		mc.launcher.SetDifficulty(d)
	}
}

// StartGame opens the game for the selected level
func (mc *MainController) StartGame() {
	mc.OpenGame(mc.session.Difficulty)
}

// OpenGame stops the launcher music and shows the game for d
func (mc *MainController) OpenGame(d models.Difficulty) {
	if mc.closed {
		return
	}
	mc.stopPulse()
	mc.player.StopBackground()
	mc.stopActive()
	mc.launcher = nil

	mc.session = mc.session.WithDifficulty(d).GameStarted()
	deps := gameDeps{
		sched:   mc.sched,
		bus:     mc.bus,
		nav:     mc,
		logger:  mc.logger,
		session: mc.session.ID,
	}

	var game gameController
	switch d {
	case models.Easy:
		game = NewShapeController(mc.screens.ShowShapes(), mc.games.NewBoard(), mc.cfg.Animation.Frame, mc.cfg.Games.VictoryDelay, deps)
	case models.Medium:
		g, err := mc.games.NewNumberGame()
		if err != nil {
			mc.failGame("Cannot start Number Matching", err)
			return
		}
		game = NewNumberController(mc.screens.ShowNumbers(), g, mc.cfg.Games.NumberDelay, deps)
	case models.Hard:
		g, err := mc.games.NewArithmeticGame()
		if err != nil {
			mc.failGame("Cannot start Math Challenge", err)
			return
		}
		game = NewArithmeticController(mc.screens.ShowArithmetic(), g, mc.cfg.Games.ArithmeticDelay, deps)
	default:
		mc.failGame("Cannot start game", fmt.Errorf("unknown difficulty %d", int(d)))
		return
	}

	mc.active = game
	game.Start()
	mc.logger.Info("MainController", "game opened", map[string]interface{}{
		"difficulty": d.String(),
	})
	deps.publish(events.GameStarted, map[string]interface{}{
		"difficulty": d.String(),
		"game":       d.GameName(),
		"played":     mc.session.GamesPlayed,
	})
}

// failGame returns to the launcher and reports err there
func (mc *MainController) failGame(title string, err error) {
	mc.ShowLauncher()
	mc.handleError(title, err)
}

// BackToMenu leaves the running game
func (mc *MainController) BackToMenu() {
	mc.ShowLauncher()
}

func (mc *MainController) stopActive() {
	if mc.active != nil {
		mc.active.Stop()
		mc.active = nil
	}
}

// ToggleMute flips the background music volume
func (mc *MainController) ToggleMute() {
	mc.session = mc.session.ToggleMute()
	mc.player.SetMuted(mc.session.Muted)
	if mc.launcher != nil {
		mc.launcher.SetMuted(mc.session.Muted)
	}
	mc.publishSettings()
}

// OpenSettings shows the settings dialog on the launcher
func (mc *MainController) OpenSettings() {
	if mc.launcher == nil {
		return
	}
	mc.launcher.ShowSettings(mc.session.SoundEnabled, mc.ToggleSound, mc.ResetProgress)
}

// ToggleSound turns all sound on or off. Turning it on restarts the music.
func (mc *MainController) ToggleSound() {
	mc.session = mc.session.ToggleSound()
	mc.player.SetEnabled(mc.session.SoundEnabled)

	msg := SoundOffMsg
	if mc.session.SoundEnabled {
		msg = SoundOnMsg
		if mc.launcher != nil {
			mc.startMusic()
		}
	} else {
		mc.player.StopBackground()
	}
	mc.publishSettings()

	if mc.launcher != nil {
		mc.launcher.ShowInfo(SoundTitle, msg)
	}
}

// ResetProgress asks for confirmation and then puts the level back to Easy
func (mc *MainController) ResetProgress() {
	view := mc.launcher
	if view == nil {
		return
	}
	view.ShowConfirm(ResetTitle, ResetConfirm, func(ok bool) {
		if !ok {
			return
		}
		mc.session = mc.session.ResetProgress()
		view.SetDifficulty(mc.session.Difficulty)
		mc.publishSettings()
		view.ShowInfo(ResetDone, ResetDoneText)
	})
}

// ShowHelp explains the three levels
func (mc *MainController) ShowHelp() {
	if mc.launcher != nil {
		mc.launcher.ShowInfo(HelpTitle, HelpText)
	}
}

func (mc *MainController) publishSettings() {
	if mc.bus == nil {
		return
	}
	mc.bus.Publish(events.Event{
		Type:      events.SettingsChanged,
		SessionID: mc.session.ID,
		Data: map[string]interface{}{
			"muted":      mc.session.Muted,
			"sound":      mc.session.SoundEnabled,
			"difficulty": mc.session.Difficulty.String(),
		},
	})
}

// Shutdown stops the game, the pulse and the music. Further navigation is
// ignored. Like every other method it must run on the UI loop.
func (mc *MainController) Shutdown() {
	if mc.closed {
		return
	}
	mc.closed = true
	mc.stopActive()
	mc.stopPulse()
	mc.player.StopBackground()
	mc.logger.Info("MainController", "controller stopped", map[string]interface{}{
		"games_played": mc.session.GamesPlayed,
	})
}

func (mc *MainController) handleError(title string, err error) {
	mc.logger.Error("MainController", err, map[string]interface{}{
		"title": title,
	})
	if mc.launcher != nil {
		mc.launcher.ShowError(title, err)
	}
}
