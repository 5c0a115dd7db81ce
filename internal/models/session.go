package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Difficulty selects which mini-game the launcher opens
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// AllDifficulties returns the levels in launcher order
func AllDifficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// Badge is the colored marker used in buttons and window titles
func (d Difficulty) Badge() string {
	switch d {
	case Easy:
		return "🟢"
	case Medium:
		return "🟡"
	case Hard:
		return "🔴"
	default:
		return ""
	}
}

// ButtonLabel is the launcher button text, e.g. "🟢 Easy Mode"
func (d Difficulty) ButtonLabel() string {
	return fmt.Sprintf("%s %s Mode", d.Badge(), d)
}

// GameName describes the mini-game behind the level
func (d Difficulty) GameName() string {
	switch d {
	case Easy:
		return "Shape Matching"
	case Medium:
		return "Number Matching"
	case Hard:
		return "Math Challenge"
	default:
		return "Unknown"
	}
}

// Next returns the following level; ok is false for Hard.
func (d Difficulty) Next() (Difficulty, bool) {
	if d >= Hard || d < Easy {
		return d, false
	}
	return d + 1, true
}

// ParseDifficulty accepts "easy", "Medium", "HARD" and so on
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("unknown difficulty %q", s)
	}
}

// Session is the state carried between screens. It is a value: transitions
// return a modified copy.
type Session struct {
	ID           string
	Difficulty   Difficulty
	SoundEnabled bool
	Muted        bool
	StartedAt    time.Time
	GamesPlayed  int
}

// NewSession starts a fresh session at the given level
func NewSession(d Difficulty, soundEnabled bool) Session {
	return Session{
		ID:           uuid.NewString(),
		Difficulty:   d,
		SoundEnabled: soundEnabled,
		StartedAt:    time.Now(),
	}
}

// WithDifficulty returns the session with a new level selected
func (s Session) WithDifficulty(d Difficulty) Session {
	s.Difficulty = d
	return s
}

// ToggleMute flips the background music mute flag
func (s Session) ToggleMute() Session {
	s.Muted = !s.Muted
	return s
}

// ToggleSound flips sound on or off entirely
func (s Session) ToggleSound() Session {
	s.SoundEnabled = !s.SoundEnabled
	return s
}

// ResetProgress puts the level back to Easy and clears the play counter
func (s Session) ResetProgress() Session {
	s.Difficulty = Easy
	s.GamesPlayed = 0
	return s
}

// GameStarted records that a mini-game was opened
func (s Session) GameStarted() Session {
	s.GamesPlayed++
	return s
}

// MenuChoice is picked from an end-of-game dialog
type MenuChoice int

const (
	PlayAgain MenuChoice = iota
	MainMenu
	NextMode
)

func (c MenuChoice) String() string {
	switch c {
	case PlayAgain:
		return "play_again"
	case MainMenu:
		return "main_menu"
	case NextMode:
		return "next_mode"
	default:
		return fmt.Sprintf("MenuChoice(%d)", int(c))
	}
}

// MenuOption is one button of an end-of-game dialog
type MenuOption struct {
	Choice MenuChoice
	Label  string
}

// EndMenu returns the dialog buttons offered when a game at level d ends:
// play again, main menu and, below Hard, the next level.
func EndMenu(d Difficulty) []MenuOption {
	opts := []MenuOption{
		{Choice: PlayAgain, Label: "🎮 Play Again"},
		{Choice: MainMenu, Label: "🏠 Main Menu"},
	}
	if next, ok := d.Next(); ok {
		opts = append(opts, MenuOption{Choice: NextMode, Label: fmt.Sprintf("%s Try %s Mode", next.Badge(), next)})
	}
	return opts
}

// Summary is shown when a mini-game ends
type Summary struct {
	Score  int
	Total  int
	Rating string
}

// Rate turns a score into the end-of-game encouragement line
func Rate(score, total int) string {
	if total <= 0 {
		return "💪 Keep practicing!"
	}
	// thresholds are 8/10 and 6/10 of the total
	switch {
	case score*10 >= total*8:
		return "⭐ Excellent!"
	case score*10 >= total*6:
		return "👍 Good job!"
	default:
		return "💪 Keep practicing!"
	}
}
