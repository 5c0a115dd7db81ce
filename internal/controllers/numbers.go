package controllers

import (
	"errors"
	"fmt"
	"time"

	"play-and-learn/internal/events"
	"play-and-learn/internal/models"
)

const GameOverTitle = "Game Over"

// NumberController runs a number-to-word session
type NumberController struct {
	gameDeps
	view  NumberView
	game  *models.NumberGame
	delay time.Duration
	timers
}

func NewNumberController(view NumberView, game *models.NumberGame, delay time.Duration, deps gameDeps) *NumberController {
	return &NumberController{gameDeps: deps, view: view, game: game, delay: delay}
}

func (c *NumberController) Start() {
	c.view.SetBackHandler(c.nav.BackToMenu)
	c.view.SetChoiceHandler(c.Choose)
	c.view.SetScore(c.game.ScoreText())
	c.showRound()
}

// Game returns the running session
func (c *NumberController) Game() *models.NumberGame {
	return c.game
}

func (c *NumberController) showRound() {
	c.view.ShowRound(c.game.Round.Number, c.game.Round.Choices)
}

// Choose answers the current round and schedules the next one
func (c *NumberController) Choose(index int) {
	if c.stopped {
		return
	}
	correct, err := c.game.Answer(index)
	if err != nil {
		// a second click while the answer is shown
		if errors.Is(err, models.ErrAnswerLocked) || errors.Is(err, models.ErrGameFinished) {
			return
		}
		c.logger.Error("NumberController", fmt.Errorf("answer %d: %w", index, err), nil)
		return
	}

	eventType := events.AnswerWrong
	if correct {
		eventType = events.AnswerCorrect
	}
	c.publish(eventType, map[string]interface{}{
		"game":   models.Medium.GameName(),
		"number": c.game.Round.Number,
		"picked": c.game.Round.Choices[index],
	})

	c.view.RevealRound(c.game.Round.Marks())
	c.view.SetScore(c.game.ScoreText())
	c.after(c.sched, c.delay, c.advance)
}

func (c *NumberController) advance() {
	if c.stopped {
		return
	}
	done, err := c.game.Advance()
	if err != nil {
		c.logger.Error("NumberController", err, nil)
		return
	}
	if done {
		c.finish()
		return
	}
	c.showRound()
}

func (c *NumberController) finish() {
	sum := c.game.Summary()
	c.publish(events.GameFinished, map[string]interface{}{
		"game":  models.Medium.GameName(),
		"score": sum.Score,
		"total": sum.Total,
	})
	msg := fmt.Sprintf("🎉 Game Complete! 🎉\n\nFinal Score: %d/%d\n%s", sum.Score, sum.Total, sum.Rating)
	c.view.ShowMenu(GameOverTitle, msg, models.EndMenu(models.Medium), func(choice models.MenuChoice) {
		c.menu(models.Medium, choice)
	})
}

// Stop cancels the pending advance
func (c *NumberController) Stop() {
	c.stopAll()
}
