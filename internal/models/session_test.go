package models

import "testing"

func TestDifficulty_Labels(t *testing.T) {
	tests := []struct {
		d      Difficulty
		button string
		game   string
	}{
		{Easy, "🟢 Easy Mode", "Shape Matching"},
		{Medium, "🟡 Medium Mode", "Number Matching"},
		{Hard, "🔴 Hard Mode", "Math Challenge"},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			if got := tt.d.ButtonLabel(); got != tt.button {
				t.Errorf("ButtonLabel() = %q, want %q", got, tt.button)
			}
			if got := tt.d.GameName(); got != tt.game {
				t.Errorf("GameName() = %q, want %q", got, tt.game)
			}
		})
	}
}

func TestDifficulty_Next(t *testing.T) {
	if d, ok := Easy.Next(); !ok || d != Medium {
		t.Errorf("Easy.Next() = %v, %v", d, ok)
	}
	if d, ok := Medium.Next(); !ok || d != Hard {
		t.Errorf("Medium.Next() = %v, %v", d, ok)
	}
	if _, ok := Hard.Next(); ok {
		t.Error("Hard has no next level")
	}
}

func TestParseDifficulty(t *testing.T) {
	for in, want := range map[string]Difficulty{"easy": Easy, " Medium ": Medium, "HARD": Hard} {
		got, err := ParseDifficulty(in)
		if err != nil || got != want {
			t.Errorf("ParseDifficulty(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseDifficulty("expert"); err == nil {
		t.Error("unknown level should fail")
	}
}

func TestSession_Transitions(t *testing.T) {
	s := NewSession(Hard, true)
	if s.ID == "" {
		t.Fatal("session has no ID")
	}

	s2 := s.GameStarted().GameStarted().ToggleMute()
	if s.GamesPlayed != 0 || s.Muted {
		t.Error("transitions modified the original session")
	}
	if s2.GamesPlayed != 2 || !s2.Muted {
		t.Errorf("GamesPlayed %d Muted %v", s2.GamesPlayed, s2.Muted)
	}

	reset := s2.ResetProgress()
	if reset.Difficulty != Easy || reset.GamesPlayed != 0 {
		t.Errorf("reset to %v with %d games", reset.Difficulty, reset.GamesPlayed)
	}
	if reset.ID != s.ID {
		t.Error("reset must keep the session ID")
	}
	if off := reset.ToggleSound(); off.SoundEnabled {
		t.Error("ToggleSound should disable sound")
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		score, total int
		want         string
	}{
		{10, 10, "⭐ Excellent!"},
		{8, 10, "⭐ Excellent!"},
		{7, 10, "👍 Good job!"},
		{6, 10, "👍 Good job!"},
		{5, 10, "💪 Keep practicing!"},
		{0, 0, "💪 Keep practicing!"},
	}
	for _, tt := range tests {
		if got := Rate(tt.score, tt.total); got != tt.want {
			t.Errorf("Rate(%d, %d) = %q, want %q", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestEndMenu(t *testing.T) {
	easy := EndMenu(Easy)
	if len(easy) != 3 || easy[2].Choice != NextMode || easy[2].Label != "🟡 Try Medium Mode" {
		t.Errorf("EndMenu(Easy) = %v", easy)
	}
	if got := EndMenu(Medium)[2].Label; got != "🔴 Try Hard Mode" {
		t.Errorf("EndMenu(Medium) next label %q", got)
	}
	hard := EndMenu(Hard)
	if len(hard) != 2 || hard[0].Choice != PlayAgain || hard[1].Choice != MainMenu {
		t.Errorf("EndMenu(Hard) = %v", hard)
	}
}
