package viz

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/responsiv/internal/leads"
	"github.com/san-kum/responsiv/internal/metrics"
	"github.com/san-kum/responsiv/internal/sim"
)

func fixedSource(seed int64) rand.Source { return rand.NewSource(seed) }

// idleClock never fires, so the metrics loop runs but never ticks.
type idleClock struct{}

func (idleClock) NewTicker(time.Duration) (<-chan time.Time, func()) { return nil, func() {} }

func newTestApp(t *testing.T, st sim.State) App {
	t.Helper()
	ticker := metrics.NewTicker(metrics.NewGenerator(metrics.DefaultLength, fixedSource(7)), metrics.WithClock(idleClock{}))
	app := NewApp(Options{Store: sim.New(st), Ticker: ticker, Width: 140, Height: 45})
	t.Cleanup(app.Close)
	return app
}

func press(t *testing.T, m App, keys ...string) (App, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		}
		next, cmd = m.Update(msg)
		m = next.(App)
	}
	return m, cmd
}

func TestApp_QualityKeys(t *testing.T) {
	m := newTestApp(t, sim.DefaultState())
	tests := []struct {
		key  string
		want sim.Quality
	}{
		{"1", sim.QualityNone},
		{"2", sim.QualityBad},
		{"3", sim.QualityPerfect},
	}
	for _, tt := range tests {
		m, _ = press(t, m, tt.key)
		if got := m.store.Snapshot().Quality; got != tt.want {
			t.Errorf("key %s: quality = %v, want %v", tt.key, got, tt.want)
		}
		if got := m.ticker.Quality(); got != tt.want {
			t.Errorf("key %s: ticker quality = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestApp_DeviceAndEra(t *testing.T) {
	m := newTestApp(t, sim.DefaultState())
	m, _ = press(t, m, "m")
	if got := m.store.Snapshot().Device; got != sim.DeviceMobile {
		t.Errorf("device = %v, want mobile", got)
	}
	m, _ = press(t, m, "e")
	if got := m.store.Snapshot().Era; got != sim.Era2010 {
		t.Errorf("era after cycle = %v, want 2010", got)
	}
	m, _ = press(t, m, "r")
	if got := m.store.Snapshot(); got != sim.DefaultState() {
		t.Errorf("reset state = %+v", got)
	}
}

func TestApp_AnalyticsToggleDrivesTicker(t *testing.T) {
	m := newTestApp(t, sim.DefaultState())
	if !m.ticker.Running() {
		t.Fatal("metrics should run while analytics are shown")
	}
	m, _ = press(t, m, "a")
	if m.ticker.Running() {
		t.Error("hiding analytics should stop the metrics loop")
	}
	m, _ = press(t, m, "2", "a")
	if !m.ticker.Running() {
		t.Error("showing analytics should restart the metrics loop")
	}
	if got := m.ticker.Quality(); got != sim.QualityBad {
		t.Errorf("restarted loop quality = %v, want bad", got)
	}
}

func TestApp_SimulateUserAnimation(t *testing.T) {
	m := newTestApp(t, sim.DefaultState())
	m, cmd := press(t, m, "u")
	if cmd == nil {
		t.Fatal("enabling the visitor should schedule an animation tick")
	}
	gen := m.animGen

	next, _ := m.Update(animTickMsg{gen: gen - 1})
	if next.(App).animFrame != 0 {
		t.Error("stale animation tick should be ignored")
	}
	next, cmd = m.Update(animTickMsg{gen: gen})
	if next.(App).animFrame != 1 || cmd == nil {
		t.Error("current animation tick should advance and reschedule")
	}

	m, _ = press(t, next.(App), "u")
	_, cmd = m.Update(animTickMsg{gen: gen})
	if cmd != nil {
		t.Error("disabling the visitor should stop the animation")
	}
}

func TestApp_LeadForm(t *testing.T) {
	m := newTestApp(t, sim.DefaultState())
	m, _ = press(t, m, "l")
	if !m.form.open {
		t.Fatal("l should open the audit form")
	}

	m, _ = press(t, m, "n", "o", "p", "e")
	m, cmd := press(t, m, "enter")
	if cmd != nil {
		t.Error("invalid email should not be submitted")
	}
	if m.form.fieldErr == "" {
		t.Error("invalid email should show a field error")
	}
	if m.form.submitting {
		t.Error("invalid email should not enter the submitting state")
	}

	m, _ = press(t, m, "esc")
	if m.form.open {
		t.Error("esc should close the form")
	}
	if got := m.store.Snapshot().Quality; got != sim.QualityPerfect {
		t.Error("keys typed into the form should not reach the demo controls")
	}
}

func TestApp_LeadResultToast(t *testing.T) {
	m := newTestApp(t, sim.DefaultState())
	m, _ = press(t, m, "l")

	next, cmd := m.Update(leadResultMsg{receipt: leads.Receipt{Email: "a@b.co"}})
	m = next.(App)
	if m.toast == nil || !m.toast.ok {
		t.Fatal("successful submission should show a success toast")
	}
	if cmd == nil {
		t.Error("toast should schedule its own expiry")
	}
	if m.form.open {
		t.Error("successful submission should close the form")
	}
	if !strings.Contains(m.View(), "VIP list") {
		t.Error("toast text missing from view")
	}

	id := m.toast.id
	next, _ = m.Update(leadResultMsg{err: errors.New("boom")})
	m = next.(App)
	if m.toast.ok {
		t.Error("failed submission should show an error toast")
	}

	next, _ = m.Update(toastExpireMsg{id: id})
	if next.(App).toast == nil {
		t.Error("expiry of an older toast should not clear the newer one")
	}
	next, _ = m.Update(toastExpireMsg{id: m.toast.id})
	if next.(App).toast != nil {
		t.Error("toast should expire")
	}
}

func TestApp_View(t *testing.T) {
	m := newTestApp(t, sim.DefaultState())
	out := m.View()
	for _, s := range []string{"Responsiv", "LIVE METRICS", "PERFECT RESPONSIVE"} {
		if !strings.Contains(out, s) {
			t.Errorf("view missing %q", s)
		}
	}

	m, _ = press(t, m, "c")
	if !strings.Contains(m.View(), "T H E   F U T U R E   I S") {
		t.Error("cinematic mode should replace the frame")
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	if !strings.Contains(next.(App).View(), "wider terminal") {
		t.Error("narrow terminal should show the desktop banner")
	}
}

func TestApp_Quit(t *testing.T) {
	m := newTestApp(t, sim.DefaultState())
	_, cmd := press(t, m, "q")
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
	if m.ticker.Running() {
		t.Error("quitting should stop the metrics loop")
	}
}

func TestTriangle(t *testing.T) {
	got := make([]int, 0, 8)
	for i := 0; i < 8; i++ {
		got = append(got, triangle(i, 4))
	}
	want := []int{0, 1, 2, 3, 2, 1, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("triangle = %v, want %v", got, want)
		}
	}
}
