package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "Easy"},
		{Label: "Broken", Disabled: true},
		{Label: "Hard"},
	})
	if m.Selected != 1 {
		t.Fatalf("expected first enabled item selected, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("expected down to skip disabled item, got %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("expected up to skip disabled item, got %d", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "Go", Action: func() tea.Cmd {
		ran = true
		return nil
	}}})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Error("expected action to run on Enter")
	}
	if !strings.Contains(m.View(), "Go") {
		t.Error("expected label in view")
	}
}

func TestTextInput_SubmitFreezesInput(t *testing.T) {
	ti := NewTextInput("answer", 40)
	ti, _ = ti.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if ti.Value() != "a" {
		t.Fatalf("expected typed value, got %q", ti.Value())
	}
	ti.Submit(true)
	ti, _ = ti.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	if ti.Value() != "a" {
		t.Errorf("expected input frozen after submit, got %q", ti.Value())
	}
	if !ti.Submitted() || !strings.Contains(ti.View(), "✓") {
		t.Error("expected submitted check mark")
	}
}

func TestProgressBar_Width(t *testing.T) {
	for _, pct := range []float64{-1, 0, 0.5, 1, 2} {
		view := NewProgressBar("", pct, false, 20).View()
		if w := lipgloss.Width(view); w != 20 {
			t.Errorf("percent %v: width %d, want 20", pct, w)
		}
	}
}
