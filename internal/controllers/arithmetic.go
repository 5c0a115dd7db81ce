package controllers

import (
	"errors"
	"fmt"
	"time"

	"play-and-learn/internal/events"
	"play-and-learn/internal/models"
)

// ArithmeticController runs the math challenge. With a zero round limit it
// keeps asking until the player leaves.
type ArithmeticController struct {
	gameDeps
	view  ArithmeticView
	game  *models.ArithmeticGame
	delay time.Duration
	timers
}

func NewArithmeticController(view ArithmeticView, game *models.ArithmeticGame, delay time.Duration, deps gameDeps) *ArithmeticController {
	return &ArithmeticController{gameDeps: deps, view: view, game: game, delay: delay}
}

func (c *ArithmeticController) Start() {
	c.view.SetBackHandler(c.nav.BackToMenu)
	c.view.SetChoiceHandler(c.Choose)
	c.view.SetScore(c.game.ScoreText())
	c.view.SetFeedback("")
	c.showQuestion()
}

// Game returns the running session
func (c *ArithmeticController) Game() *models.ArithmeticGame {
	return c.game
}

func (c *ArithmeticController) showQuestion() {
	q := c.game.Question
	c.view.ShowQuestion(q.Text(), q.Choices)
	c.view.SetChoicesEnabled(true)
}

// Choose answers the current question and schedules the next one
func (c *ArithmeticController) Choose(index int) {
	if c.stopped {
		return
	}
	correct, err := c.game.Answer(index)
	if err != nil {
		if errors.Is(err, models.ErrAnswerLocked) || errors.Is(err, models.ErrGameFinished) {
			return
		}
		c.logger.Error("ArithmeticController", fmt.Errorf("answer %d: %w", index, err), nil)
		return
	}

	eventType := events.AnswerWrong
	if correct {
		eventType = events.AnswerCorrect
	}
	c.publish(eventType, map[string]interface{}{
		"game":     models.Hard.GameName(),
		"question": c.game.Question.Expression(),
		"picked":   c.game.LastPick,
	})

	c.view.SetChoicesEnabled(false)
	c.view.SetFeedback(c.game.Feedback())
	c.view.SetScore(c.game.ScoreText())
	c.after(c.sched, c.delay, c.advance)
}

func (c *ArithmeticController) advance() {
	if c.stopped {
		return
	}
	done, err := c.game.Advance()
	if err != nil {
		c.logger.Error("ArithmeticController", err, nil)
		return
	}
	if done {
		c.finish()
		return
	}
	c.view.SetFeedback("")
	c.showQuestion()
}

func (c *ArithmeticController) finish() {
	sum := c.game.Summary()
	c.publish(events.GameFinished, map[string]interface{}{
		"game":  models.Hard.GameName(),
		"score": sum.Score,
		"total": sum.Total,
	})
	msg := fmt.Sprintf("🎉 Challenge Complete! 🎉\n\nFinal Score: %d/%d\n%s", sum.Score, sum.Total, sum.Rating)
	c.view.ShowMenu(GameOverTitle, msg, models.EndMenu(models.Hard), func(choice models.MenuChoice) {
		c.menu(models.Hard, choice)
	})
}

// Stop cancels the pending advance
func (c *ArithmeticController) Stop() {
	c.stopAll()
}
