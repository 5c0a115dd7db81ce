package controllers

import (
	"fmt"
	"time"

	"play-and-learn/internal/anim"
	"play-and-learn/internal/events"
	"play-and-learn/internal/models"
)

const (
	VictoryTitle   = "Victory!"
	VictoryMessage = "🎉 Congratulations! 🎉\n\nYou matched all the shapes perfectly!\n⭐ Amazing job! ⭐\n\nReady for the next challenge?"
)

// ShapeController drives the drag-and-drop board. Pointer input and animation
// frames are fed through models.ReduceBoard; the resulting effects become
// events, sounds and the victory prompt.
type ShapeController struct {
	gameDeps
	view  ShapeView
	board models.Board

	frame        time.Duration
	victoryDelay time.Duration

	timers
	ticker Timer
}

func NewShapeController(view ShapeView, board models.Board, frame, victoryDelay time.Duration, deps gameDeps) *ShapeController {
	return &ShapeController{
		gameDeps:     deps,
		view:         view,
		board:        board,
		frame:        frame,
		victoryDelay: victoryDelay,
	}
}

func (c *ShapeController) Start() {
	c.view.SetBackHandler(c.nav.BackToMenu)
	c.view.SetPointerHandlers(c.Press, c.Drag, c.Release)
	c.render()
}

// Board returns the current board state
func (c *ShapeController) Board() models.Board {
	return c.board
}

func (c *ShapeController) Press(p models.Point)   { c.apply(models.Press{At: p}) }
func (c *ShapeController) Drag(p models.Point)    { c.apply(models.Drag{At: p}) }
func (c *ShapeController) Release(p models.Point) { c.apply(models.Release{At: p}) }

func (c *ShapeController) apply(ev models.BoardEvent) {
	if c.stopped {
		return
	}
	var effects []models.BoardEffect
	c.board, effects = models.ReduceBoard(c.board, ev)
	for _, e := range effects {
		c.handleEffect(e)
	}
	c.render()
	c.updateTicker()
}

func (c *ShapeController) render() {
	c.view.RenderBoard(c.board)
	c.view.SetProgress(c.board.Matches, c.board.Total())
}

func (c *ShapeController) handleEffect(e models.BoardEffect) {
	switch e.Kind {
	case models.EffectMatched:
		c.publish(events.ShapeMatched, c.shapeData(e))
	case models.EffectMismatched:
		data := c.shapeData(e)
		if e.Shape >= 0 && e.Shape < len(c.board.Shapes) {
			s := c.board.Shapes[e.Shape]
			data["return_ms"] = anim.ReturnDuration(s.Pos, s.Origin, c.board.Return).Milliseconds()
		}
		c.publish(events.ShapeMismatched, data)
	case models.EffectCompleted:
		c.publish(events.BoardCompleted, map[string]interface{}{
			"matches": c.board.Matches,
		})
		c.after(c.sched, c.victoryDelay, c.showVictory)
	}
}

func (c *ShapeController) shapeData(e models.BoardEffect) map[string]interface{} {
	data := map[string]interface{}{"target": e.Target}
	if e.Shape >= 0 && e.Shape < len(c.board.Shapes) {
		s := c.board.Shapes[e.Shape]
		data["shape"] = s.Type.String()
		data["color"] = s.Color.String()
	}
	return data
}

// updateTicker runs animation frames only while a shape is returning home
func (c *ShapeController) updateTicker() {
	switch {
	case c.board.Animating() && c.ticker == nil:
		c.ticker = c.track(c.sched.Every(c.frame, func() {
			c.apply(models.Tick{Elapsed: c.frame})
		}))
	case !c.board.Animating() && c.ticker != nil:
		c.cancel(c.ticker)
		c.ticker = nil
	}
}

func (c *ShapeController) showVictory() {
	if c.stopped {
		return
	}
	c.logger.Info("ShapeController", "board completed", map[string]interface{}{
		"matches": fmt.Sprintf("%d/%d", c.board.Matches, c.board.Total()),
	})
	c.view.ShowMenu(VictoryTitle, VictoryMessage, models.EndMenu(models.Easy), func(choice models.MenuChoice) {
		c.menu(models.Easy, choice)
	})
}

// Stop cancels the animation and any pending victory prompt
func (c *ShapeController) Stop() {
	c.stopAll()
	c.ticker = nil
}
