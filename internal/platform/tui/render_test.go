package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/zombie-run/internal/core"
)

func TestRenderScreen_KeepsRowsAndRunes(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawText(0, 0, "ab")
	s.SetWithColor(1, 1, 'Z', core.ColorGreen)
	s.SetWithColor(2, 1, 'Z', core.ColorGreen)
	s.SetWithColor(5, 2, '*', core.ColorYellow)

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("newlines = %d, want 2", got)
	}
	for _, want := range []string{"ab", "ZZ", "*"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestTickInterval(t *testing.T) {
	if got := tickInterval(50); got != 20*time.Millisecond {
		t.Errorf("tickInterval(50) = %v", got)
	}
	if got := tickInterval(0); got != time.Second/defaultTickRate {
		t.Errorf("tickInterval(0) = %v, want default rate", got)
	}
}
