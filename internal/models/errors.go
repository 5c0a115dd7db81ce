package models

import "errors"

var (
	// ErrAnswerLocked is returned when a round already has an answer
	ErrAnswerLocked = errors.New("round already answered")
	// ErrChoiceOutOfRange is returned for a choice index outside the presented choices
	ErrChoiceOutOfRange = errors.New("choice out of range")
	// ErrGameFinished is returned for input after the last round
	ErrGameFinished = errors.New("game finished")
	// ErrNotAnswered is returned when advancing before the current round was answered
	ErrNotAnswered = errors.New("round not answered yet")
)
