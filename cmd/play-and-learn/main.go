package main

import (
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"play-and-learn/internal/audio"
	"play-and-learn/internal/config"
	"play-and-learn/internal/controllers"
	"play-and-learn/internal/events"
	"play-and-learn/internal/logger"
	"play-and-learn/internal/services"
	"play-and-learn/internal/shutdown"
	"play-and-learn/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
)

const (
	AppName = "Play and Learn With Emy Girl"
	AppID   = "com.emygirl.play-and-learn"

	eventBufferSize = 64
	shutdownTimeout = 3 * time.Second
)

// Application wires the window, the controllers and the background services
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  *config.Config

	controller *controllers.MainController
	mainWindow *views.MainWindow
	scheduler  *controllers.FyneScheduler
	bus        *events.Bus
	player     *audio.BeepPlayer
	shutdown   *shutdown.Manager

	uiRunning atomic.Bool
}

func main() {
	fyneApp := app.NewWithID(AppID)

	application, err := NewApplication(fyneApp)
	if err != nil {
		showFatal(fyneApp, err)
		os.Exit(1)
	}

	application.Run()
}

// NewApplication loads the configuration and builds every component
func NewApplication(fyneApp fyne.App) (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	appLogger, err := logger.New(os.Stderr, cfg.Log.Format, level)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	appLogger.Info("Application", "starting", map[string]interface{}{
		"go_version": runtime.Version(),
		"version":    controllers.Version,
		"log_level":  level.String(),
		"sound":      cfg.Sound,
		"asset_dir":  cfg.Assets.Dir,
	})

	window := fyneApp.NewWindow(views.LauncherTitle)
	mainWindow := views.NewMainWindow(window, cfg.Window)

	player := audio.NewBeepPlayer(audio.SpeakerOutput(), appLogger, cfg.Sound)

	bus := events.NewBus(eventBufferSize, appLogger)
	feedback := events.NewAudioFeedback(player)
	bus.SubscribeAll(feedback, feedback.Types()...)
	bus.SubscribeAll(events.NewTelemetry(appLogger), events.AllTypes()...)

	scheduler := controllers.NewFyneScheduler()
	controller := controllers.NewMainController(controllers.Dependencies{
		Config:    *cfg,
		Screens:   mainWindow,
		Games:     services.NewGameService(*cfg, uint64(time.Now().UnixNano())),
		Assets:    services.NewAssetService(cfg.Assets, appLogger),
		Player:    player,
		Bus:       bus,
		Scheduler: scheduler,
		Logger:    appLogger,
	})

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		config:     cfg,
		controller: controller,
		mainWindow: mainWindow,
		scheduler:  scheduler,
		bus:        bus,
		player:     player,
		shutdown:   shutdown.NewManager(appLogger),
	}
	application.registerShutdown()
	application.setupWindowEvents()

	return application, nil
}

// registerShutdown orders teardown: controller, timers, event bus, audio
func (a *Application) registerShutdown() {
	a.shutdown.SetTimeout(shutdownTimeout)
	a.shutdown.Register("audio", a.player)
	a.shutdown.Register("event bus", a.bus)
	a.shutdown.Register("scheduler", shutdown.Func(a.scheduler.Shutdown))
	a.shutdown.Register("controller", shutdown.Func(func() {
		if a.uiRunning.Load() {
			fyne.DoAndWait(a.controller.Shutdown)
			return
		}
		a.controller.Shutdown()
	}))
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		go a.quit()
	})
	a.window.SetMaster()
}

// quit runs the shutdown sequence and then stops the UI loop
func (a *Application) quit() {
	a.shutdown.Shutdown()
	fyne.Do(a.fyneApp.Quit)
}

// Run shows the launcher and blocks until the application exits
func (a *Application) Run() {
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.controller.ShowLauncher()
	a.window.Show()

	a.fyneApp.Lifecycle().SetOnStarted(func() {
		a.uiRunning.Store(true)
	})
	a.fyneApp.Lifecycle().SetOnStopped(func() {
		a.uiRunning.Store(false)
	})

	a.fyneApp.Run()

	a.uiRunning.Store(false)
	a.shutdown.Shutdown()
	a.logger.Info("Application", "terminated", nil)
}

// showFatal reports a startup failure in a blocking window
func showFatal(fyneApp fyne.App, err error) {
	logger.NewConsoleLogger(zerolog.ErrorLevel).Error("Application", err, map[string]interface{}{
		"phase": "startup",
	})

	w := fyneApp.NewWindow("Fatal Error")
	msg := widget.NewLabel(fmt.Sprintf("Error initializing application:\n%v", err))
	msg.Wrapping = fyne.TextWrapWord
	w.SetContent(container.NewBorder(nil, widget.NewButton("Exit", fyneApp.Quit), nil, nil, msg))
	w.Resize(fyne.NewSize(420, 180))
	w.CenterOnScreen()
	w.ShowAndRun()
}
