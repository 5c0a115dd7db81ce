package models

import (
	"fmt"
	"math/rand/v2"
)

// Operand range of generated questions
const (
	MinOperand = 1
	MaxOperand = 20
)

// Distractor offsets lie in [MinOffset, MaxOffset] away from the answer
const (
	MinOffset = 1
	MaxOffset = 5
)

// Operator is the arithmetic operation of a question
type Operator int

const (
	Add Operator = iota
	Subtract
)

func (o Operator) String() string {
	if o == Subtract {
		return "-"
	}
	return "+"
}

// Question is one arithmetic challenge
type Question struct {
	Left    int
	Right   int
	Op      Operator
	Answer  int
	Choices [ChoiceCount]int
}

// NewQuestion builds a question without choices. Subtraction operands are
// swapped when needed so the result is never negative.
func NewQuestion(left, right int, op Operator) Question {
	if op == Subtract && left < right {
		left, right = right, left
	}
	q := Question{Left: left, Right: right, Op: op}
	if op == Subtract {
		q.Answer = left - right
	} else {
		q.Answer = left + right
	}
	return q
}

// Expression renders "a op b"
func (q Question) Expression() string {
	return fmt.Sprintf("%d %s %d", q.Left, q.Op, q.Right)
}

// Text renders the prompt shown to the player
func (q Question) Text() string {
	return fmt.Sprintf("What is %s?", q.Expression())
}

// CorrectIndex returns the position of the correct answer among the choices
func (q Question) CorrectIndex() int {
	for i, c := range q.Choices {
		if c == q.Answer {
			return i
		}
	}
	return -1
}

// GenerateQuestion draws operands in [MinOperand, MaxOperand], an operator,
// two distractors and a random position for the correct answer.
func GenerateQuestion(rng *rand.Rand) Question {
	left := MinOperand + rng.IntN(MaxOperand-MinOperand+1)
	right := MinOperand + rng.IntN(MaxOperand-MinOperand+1)
	op := Add
	if rng.IntN(2) == 1 {
		op = Subtract
	}
	return WithChoices(rng, NewQuestion(left, right, op))
}

// WithChoices fills in the answer choices for q
func WithChoices(rng *rand.Rand, q Question) Question {
	wrong := Distractors(rng, q.Answer)
	pos := rng.IntN(ChoiceCount)
	q.Choices[pos] = q.Answer
	q.Choices[(pos+1)%ChoiceCount] = wrong[0]
	q.Choices[(pos+2)%ChoiceCount] = wrong[1]
	return q
}

// Distractors returns one value above and one below correct, each 1 to 5
// away. Values colliding with correct or with each other are drawn again.
func Distractors(rng *rand.Rand, correct int) [2]int {
	offset := func() int {
		return MinOffset + rng.IntN(MaxOffset-MinOffset+1)
	}
	var out [2]int
	for {
		out[0] = correct + offset()
		out[1] = correct - offset()
		if out[0] != correct && out[1] != correct && out[0] != out[1] {
			return out
		}
	}
}

// ArithmeticGame is a math-challenge session. RoundLimit zero means the game
// never ends on its own.
type ArithmeticGame struct {
	RoundLimit int
	Score      int
	Answered   int
	Question   Question
	Locked     bool
	Finished   bool
	LastPick   int

	lastCorrect bool
	rng         *rand.Rand
}

// NewArithmeticGame starts a session with the first question drawn
func NewArithmeticGame(rng *rand.Rand, roundLimit int) (*ArithmeticGame, error) {
	if roundLimit < 0 {
		return nil, fmt.Errorf("round limit must not be negative, got %d", roundLimit)
	}
	return &ArithmeticGame{
		RoundLimit: roundLimit,
		Question:   GenerateQuestion(rng),
		rng:        rng,
	}, nil
}

// Answer scores the choice at index and locks the question
func (g *ArithmeticGame) Answer(index int) (bool, error) {
	if g.Finished {
		return false, ErrGameFinished
	}
	if g.Locked {
		return false, ErrAnswerLocked
	}
	if index < 0 || index >= ChoiceCount {
		return false, fmt.Errorf("%w: %d", ErrChoiceOutOfRange, index)
	}

	g.Locked = true
	g.LastPick = g.Question.Choices[index]
	g.Answered++
	g.lastCorrect = g.LastPick == g.Question.Answer
	if g.lastCorrect {
		g.Score++
	}
	return g.lastCorrect, nil
}

// Feedback is the line shown under the choices after an answer
func (g *ArithmeticGame) Feedback() string {
	if !g.Locked {
		return ""
	}
	if g.lastCorrect {
		return fmt.Sprintf("✅ Great job! Score: %d", g.Score)
	}
	return fmt.Sprintf("❌ Try again! That was %d", g.LastPick)
}

// Advance draws the next question. It returns true when the round limit is reached.
func (g *ArithmeticGame) Advance() (bool, error) {
	if g.Finished {
		return true, nil
	}
	if !g.Locked {
		return false, ErrNotAnswered
	}
	if g.RoundLimit > 0 && g.Answered >= g.RoundLimit {
		g.Finished = true
		return true, nil
	}
	g.Question = GenerateQuestion(g.rng)
	g.Locked = false
	return false, nil
}

// ScoreText is the running score label
func (g *ArithmeticGame) ScoreText() string {
	if g.RoundLimit > 0 {
		return fmt.Sprintf("Score: %d/%d", g.Score, g.RoundLimit)
	}
	return fmt.Sprintf("Score: %d", g.Score)
}

// Summary reports the result of a bounded session
func (g *ArithmeticGame) Summary() Summary {
	total := g.RoundLimit
	if total == 0 {
		total = g.Answered
	}
	return Summary{Score: g.Score, Total: total, Rating: Rate(g.Score, total)}
}
