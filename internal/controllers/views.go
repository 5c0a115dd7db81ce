package controllers

import (
	"image"

	"play-and-learn/internal/events"
	"play-and-learn/internal/models"
)

// Dialogs are the modal prompts every screen can show
type Dialogs interface {
	ShowInfo(title, message string)
	ShowError(title string, err error)
	ShowConfirm(title, message string, callback func(bool))
	ShowMenu(title, message string, options []models.MenuOption, callback func(models.MenuChoice))
}

type LauncherView interface {
	Dialogs
	SetDifficultyHandler(handler func(models.Difficulty))
	SetStartHandler(handler func())
	SetSettingsHandler(handler func())
	SetMuteHandler(handler func())
	SetHelpHandler(handler func())

	SetDifficulty(d models.Difficulty)
	SetMuted(muted bool)
	SetPicture(img image.Image)
	SetTitleAlpha(alpha float64)
	UpdateStatus(message string)
	ShowSettings(soundOn bool, onSound func(), onReset func())
}

// GameView is shared by the three mini-game screens
type GameView interface {
	Dialogs
	SetBackHandler(handler func())
}

type ShapeView interface {
	GameView
	SetPointerHandlers(press, drag, release func(models.Point))
	RenderBoard(board models.Board)
	SetProgress(matched, total int)
}

type NumberView interface {
	GameView
	SetChoiceHandler(handler func(int))
	ShowRound(number int, choices [models.ChoiceCount]string)
	RevealRound(marks [models.ChoiceCount]models.ChoiceMark)
	SetScore(text string)
}

type ArithmeticView interface {
	GameView
	SetChoiceHandler(handler func(int))
	ShowQuestion(text string, choices [models.ChoiceCount]int)
	SetChoicesEnabled(enabled bool)
	SetFeedback(text string)
	SetScore(text string)
}

// Screens swaps the window content and returns the view now shown
type Screens interface {
	ShowLauncher() LauncherView
	ShowShapes() ShapeView
	ShowNumbers() NumberView
	ShowArithmetic() ArithmeticView
}

// Navigator moves between the launcher and the games
type Navigator interface {
	BackToMenu()
	OpenGame(d models.Difficulty)
}

// GameFactory creates fresh game state
type GameFactory interface {
	NewBoard() models.Board
	NewNumberGame() (*models.NumberGame, error)
	NewArithmeticGame() (*models.ArithmeticGame, error)
}

// Publisher accepts gameplay events
type Publisher interface {
	Publish(event events.Event) bool
}
