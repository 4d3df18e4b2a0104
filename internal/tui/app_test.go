package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/amort/internal/loan"
	"github.com/theirongolddev/amort/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

func testApp(t *testing.T) App {
	t.Helper()
	a := NewApp(loan.Loan{
		Principal:    500_000,
		NominalRate:  4,
		Terms:        120,
		TermsPerYear: 12,
		StartDate:    time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		DueDay:       20,
	}, loan.ExtraSchedule{}, nil)
	if a.computeErr != nil {
		t.Fatalf("compute: %v", a.computeErr)
	}
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m.(App)
}

func TestTabShortcutKeys(t *testing.T) {
	a := testApp(t)

	for i, tab := range components.Tabs {
		m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{tab.Key}})
		a = m.(App)
		if a.activeTab != i {
			t.Errorf("key %q: activeTab = %d, want %d", tab.Key, a.activeTab, i)
		}
	}
}

func TestTabCycling(t *testing.T) {
	a := testApp(t)

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a = m.(App)
	if a.activeTab != 1 {
		t.Errorf("tab: activeTab = %d, want 1", a.activeTab)
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	a = m.(App)
	if a.activeTab != 0 {
		t.Errorf("shift+tab: activeTab = %d, want 0", a.activeTab)
	}

	// Wraps backwards
	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	a = m.(App)
	if a.activeTab != len(components.Tabs)-1 {
		t.Errorf("shift+tab wrap: activeTab = %d, want %d", a.activeTab, len(components.Tabs)-1)
	}
}

func TestScheduleScrollClamped(t *testing.T) {
	a := testApp(t)
	a.activeTab = tabSchedule

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	a = m.(App)

	maxOff := len(a.sched.Payments) - a.scheduleRows()
	if a.schedOffset != maxOff {
		t.Errorf("G: schedOffset = %d, want %d", a.schedOffset, maxOff)
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	a = m.(App)
	if a.schedOffset != maxOff {
		t.Errorf("j past end: schedOffset = %d, want clamped %d", a.schedOffset, maxOff)
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	a = m.(App)
	if a.schedOffset != 0 {
		t.Errorf("g: schedOffset = %d, want 0", a.schedOffset)
	}
}

func TestViewRendersAllTabs(t *testing.T) {
	a := testApp(t)

	for i := range components.Tabs {
		a.activeTab = i
		out := a.View()
		if !strings.Contains(out, "amort") {
			t.Errorf("tab %d: view missing header", i)
		}
	}
}

func TestThemeApplySurfacesSaveError(t *testing.T) {
	a := testApp(t)
	a.activeTab = tabSettings

	// Point the config dir at a regular file so Save cannot create it.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", blocker)

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = m.(App)
	if a.themeSaveErr == nil {
		t.Fatal("theme apply swallowed the config save error")
	}
	if out := a.View(); !strings.Contains(out, "Could not save") {
		t.Error("settings tab does not show the save failure")
	}

	// A later successful save clears the warning.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = m.(App)
	if a.themeSaveErr != nil {
		t.Errorf("themeSaveErr = %v after successful save, want nil", a.themeSaveErr)
	}
}

func TestQuitKeys(t *testing.T) {
	a := testApp(t)

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := a.Update(key)
		if cmd == nil {
			t.Errorf("key %s: expected quit command", key)
		}
	}
}
