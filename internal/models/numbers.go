package models

import (
	"fmt"
	"math/rand/v2"
)

// ChoiceCount is the number of answer buttons in the multiple-choice games
const ChoiceCount = 3

// DefaultNumberRounds is the length of a number-matching session
const DefaultNumberRounds = 10

// NumberWords maps each digit to its English word
var NumberWords = [10]string{
	"Zero", "One", "Two", "Three", "Four",
	"Five", "Six", "Seven", "Eight", "Nine",
}

// ChoiceMark is how an answer button is colored after the round locks
type ChoiceMark int

const (
	MarkNone ChoiceMark = iota
	MarkCorrect
	MarkWrong
)

// NumberRound is one digit and its three word choices
type NumberRound struct {
	Number   int
	Choices  [ChoiceCount]string
	Answered bool
	Selected int
}

// NewNumberRound picks a digit and two distinct distractor words
func NewNumberRound(rng *rand.Rand) NumberRound {
	n := rng.IntN(len(NumberWords))

	seen := map[int]bool{n: true}
	picks := []int{n}
	for len(picks) < ChoiceCount {
		d := rng.IntN(len(NumberWords))
		if seen[d] {
			continue
		}
		seen[d] = true
		picks = append(picks, d)
	}
	rng.Shuffle(len(picks), func(i, j int) { picks[i], picks[j] = picks[j], picks[i] })

	r := NumberRound{Number: n, Selected: -1}
	for i, p := range picks {
		r.Choices[i] = NumberWords[p]
	}
	return r
}

// CorrectWord is the word matching the displayed digit
func (r NumberRound) CorrectWord() string {
	return NumberWords[r.Number]
}

// CorrectIndex returns the position of the correct word among the choices
func (r NumberRound) CorrectIndex() int {
	for i, c := range r.Choices {
		if c == r.CorrectWord() {
			return i
		}
	}
	return -1
}

// Marks returns the reveal coloring. Before an answer everything is MarkNone.
func (r NumberRound) Marks() [ChoiceCount]ChoiceMark {
	var marks [ChoiceCount]ChoiceMark
	if !r.Answered {
		return marks
	}
	marks[r.CorrectIndex()] = MarkCorrect
	if r.Selected != r.CorrectIndex() && r.Selected >= 0 {
		marks[r.Selected] = MarkWrong
	}
	return marks
}

// NumberGame is a fixed-length number-to-word session
type NumberGame struct {
	Rounds   int
	Score    int
	Answered int
	Round    NumberRound
	Finished bool

	rng *rand.Rand
}

// NewNumberGame starts a session with the first round already drawn
func NewNumberGame(rng *rand.Rand, rounds int) (*NumberGame, error) {
	if rounds <= 0 {
		return nil, fmt.Errorf("number game needs a positive round count, got %d", rounds)
	}
	return &NumberGame{
		Rounds: rounds,
		Round:  NewNumberRound(rng),
		rng:    rng,
	}, nil
}

// Answer locks the current round with the choice at index
func (g *NumberGame) Answer(index int) (bool, error) {
	if g.Finished {
		return false, ErrGameFinished
	}
	if g.Round.Answered {
		return false, ErrAnswerLocked
	}
	if index < 0 || index >= ChoiceCount {
		return false, fmt.Errorf("%w: %d", ErrChoiceOutOfRange, index)
	}

	g.Round.Answered = true
	g.Round.Selected = index
	g.Answered++

	correct := g.Round.Choices[index] == g.Round.CorrectWord()
	if correct {
		g.Score++
	}
	return correct, nil
}

// Advance moves past an answered round. It returns true once the session is over.
func (g *NumberGame) Advance() (bool, error) {
	if g.Finished {
		return true, nil
	}
	if !g.Round.Answered {
		return false, ErrNotAnswered
	}
	if g.Answered >= g.Rounds {
		g.Finished = true
		return true, nil
	}
	g.Round = NewNumberRound(g.rng)
	return false, nil
}

// ScoreText is the running score label, e.g. "Score: 3/4"
func (g *NumberGame) ScoreText() string {
	return fmt.Sprintf("Score: %d/%d", g.Score, g.Answered)
}

// Summary reports the final result
func (g *NumberGame) Summary() Summary {
	return Summary{Score: g.Score, Total: g.Rounds, Rating: Rate(g.Score, g.Rounds)}
}
