package viz

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/san-kum/responsiv/internal/layout"
	"github.com/san-kum/responsiv/internal/leads"
	"github.com/san-kum/responsiv/internal/metrics"
	"github.com/san-kum/responsiv/internal/sim"
)

const (
	defaultWidth  = 120
	defaultHeight = 40
	narrowWidth   = 100
	animInterval  = 120 * time.Millisecond
	toastLifetime = 3 * time.Second
)

type seriesMsg []float64

type animTickMsg struct{ gen int }

type toastExpireMsg struct{ id int }

type toast struct {
	id    int
	title string
	body  string
	ok    bool
}

type Options struct {
	Store     *sim.Store
	Ticker    *metrics.Ticker
	Submitter *leads.Submitter
	Logger    *zap.Logger
	Width     int
	Height    int
	// Static skips the metrics loop; used for one-shot renders.
	Static bool
}

// App is the Bubble Tea model for the demo. All views read the shared store
// on every render; App itself only keeps view-local state.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc
	unsub  func()

	store     *sim.Store
	ticker    *metrics.Ticker
	submitter *leads.Submitter
	log       *zap.Logger

	width, height int
	scroll        int
	showHelp      bool
	form          leadForm
	toast         *toast
	toastSeq      int

	waiting   bool
	animGen   int
	animFrame int
	quitting  bool
}

func NewApp(opts Options) App {
	if opts.Store == nil {
		opts.Store = sim.New(sim.DefaultState())
	}
	if opts.Ticker == nil {
		opts.Ticker = metrics.NewTicker(metrics.NewGenerator(metrics.DefaultLength, newSource()))
	}
	if opts.Submitter == nil {
		opts.Submitter = leads.NewSubmitter()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := App{
		ctx:       ctx,
		cancel:    cancel,
		store:     opts.Store,
		ticker:    opts.Ticker,
		submitter: opts.Submitter,
		log:       opts.Logger,
		width:     opts.Width,
		height:    opts.Height,
		form:      newLeadForm(),
	}

	log := m.log
	m.unsub = m.store.Subscribe(sim.ObserverFunc(func(prev, cur sim.State) {
		log.Debug("state changed",
			zap.Stringer("quality", cur.Quality),
			zap.Stringer("device", cur.Device),
			zap.Stringer("era", cur.Era),
			zap.Bool("analytics", cur.ShowAnalytics),
			zap.Bool("cinematic", cur.CinematicMode))
	}))

	st := m.store.Snapshot()
	switch {
	case opts.Static:
		m.ticker.SetQuality(st.Quality)
	case st.ShowAnalytics:
		m.ticker.Start(ctx, st.Quality)
		m.waiting = true
	}
	return m
}

// Close stops the metrics loop and detaches from the store.
func (m App) Close() {
	m.ticker.Stop()
	m.unsub()
	m.cancel()
}

func (m App) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.waiting {
		cmds = append(cmds, waitSeries(m.ticker))
	}
	if m.store.Snapshot().SimulateUser {
		cmds = append(cmds, animTick(m.animGen))
	}
	return tea.Batch(cmds...)
}

func newSource() rand.Source { return rand.NewSource(time.Now().UnixNano()) }

func waitSeries(t *metrics.Ticker) tea.Cmd {
	return func() tea.Msg { return seriesMsg(<-t.Updates()) }
}

func animTick(gen int) tea.Cmd {
	return tea.Tick(animInterval, func(time.Time) tea.Msg { return animTickMsg{gen: gen} })
}

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.form.open {
			return m.updateForm(msg)
		}
		if m.showHelp {
			switch msg.String() {
			case "?", "esc":
				m.showHelp = false
			case "q":
				return m.quit()
			}
			return m, nil
		}
		prev := m.store.Snapshot()
		cmd := m.handleKey(msg)
		if m.quitting {
			return m, cmd
		}
		return m, tea.Batch(cmd, m.sync(prev))

	case seriesMsg:
		m.waiting = false
		if m.store.Snapshot().ShowAnalytics && !m.quitting {
			m.waiting = true
			return m, waitSeries(m.ticker)
		}
		return m, nil

	case animTickMsg:
		if msg.gen != m.animGen || !m.store.Snapshot().SimulateUser {
			return m, nil
		}
		m.animFrame++
		if m.animFrame%8 == 0 {
			m.scroll = m.autoScroll()
		}
		return m, animTick(m.animGen)

	case leadResultMsg:
		m.form.resolve(msg)
		m.toastSeq++
		t := &toast{id: m.toastSeq}
		if msg.err == nil {
			t.ok, t.title, t.body = true, "Success!", "You've been added to our VIP list."
			m.log.Info("lead acknowledged", zap.String("id", msg.receipt.ID.String()))
		} else {
			t.title, t.body = "Error", msg.err.Error()
			m.log.Warn("lead submission failed", zap.Error(msg.err))
		}
		m.toast = t
		id := t.id
		return m, tea.Tick(toastLifetime, func(time.Time) tea.Msg { return toastExpireMsg{id: id} })

	case toastExpireMsg:
		if m.toast != nil && m.toast.id == msg.id {
			m.toast = nil
		}
		return m, nil

	case spinner.TickMsg:
		if !m.form.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.form.spin, cmd = m.form.spin.Update(msg)
		return m, cmd
	}

	if m.form.open {
		var cmd tea.Cmd
		m.form.input, cmd = m.form.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m App) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.Close()
	return m, tea.Quit
}

func (m *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		m.quitting = true
		m.Close()
		return tea.Quit
	case "1":
		m.store.SetQuality(sim.QualityNone)
	case "2":
		m.store.SetQuality(sim.QualityBad)
	case "3":
		m.store.SetQuality(sim.QualityPerfect)
	case "tab":
		m.store.SetQuality(m.store.Snapshot().Quality.Next())
	case "m":
		m.store.SetDevice(sim.DeviceMobile)
	case "t":
		m.store.SetDevice(sim.DeviceTablet)
	case "d":
		m.store.SetDevice(sim.DeviceDesktop)
	case "e":
		m.store.SetEra(m.store.Snapshot().Era.Next())
	case "u":
		m.store.ToggleSimulateUser()
	case "a":
		m.store.ToggleAnalytics()
	case "c":
		m.store.ToggleCinematicMode()
	case "r":
		m.store.Reset()
		m.scroll = 0
	case "l":
		return m.form.show()
	case "?":
		m.showHelp = true
	case "up", "k":
		m.scroll--
	case "down", "j":
		m.scroll++
	case "pgup":
		m.scroll -= 10
	case "pgdown", " ":
		m.scroll += 10
	case "home", "g":
		m.scroll = 0
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
	return nil
}

// sync reacts to a store change: the metrics loop follows the analytics
// toggle and restarts on a quality change, and the visitor animation follows
// the simulate-user toggle.
func (m *App) sync(prev sim.State) tea.Cmd {
	cur := m.store.Snapshot()
	var cmds []tea.Cmd

	switch {
	case cur.ShowAnalytics && !prev.ShowAnalytics:
		m.ticker.Start(m.ctx, cur.Quality)
		if !m.waiting {
			m.waiting = true
			cmds = append(cmds, waitSeries(m.ticker))
		}
	case !cur.ShowAnalytics && prev.ShowAnalytics:
		m.ticker.Stop()
	case cur.ShowAnalytics && cur.Quality != prev.Quality:
		m.ticker.SetQuality(cur.Quality)
	}

	if cur.SimulateUser != prev.SimulateUser {
		m.animGen++
		m.animFrame = 0
		if cur.SimulateUser {
			cmds = append(cmds, animTick(m.animGen))
		}
	}
	if cur.Device != prev.Device {
		m.scroll = 0
	}
	if m.scroll > 0 {
		m.scroll = minInt(m.scroll, m.maxScroll())
	}
	return tea.Batch(cmds...)
}

func (m App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form.hide()
		return m, nil
	case "enter":
		return m, m.form.submit(m.ctx, m.submitter)
	}
	var cmd tea.Cmd
	m.form.input, cmd = m.form.input.Update(msg)
	m.form.fieldErr = ""
	return m, cmd
}

// layoutSize is the area left for the device frame.
func (m App) layoutSize(st sim.State) (int, int) {
	w := m.width
	if st.ShowAnalytics {
		w -= panelWidth + 1
	}
	h := m.height - lipgloss.Height(RenderHeader(st, m.width)) - lipgloss.Height(RenderControls(st)) - 1
	if m.width < narrowWidth {
		h--
	}
	return maxInt(w, 20), maxInt(h, 8)
}

func (m App) maxScroll() int {
	st := m.store.Snapshot()
	w, h := m.layoutSize(st)
	v := layout.SelectState(st)
	spec := layout.Frame(st.Device)
	_, ih := InnerSize(spec, w, h)
	return maxInt(0, SiteHeight(v, spec, w, h)-ih)
}

func (m App) autoScroll() int {
	limit := m.maxScroll()
	if limit == 0 {
		return 0
	}
	// ping-pong down the page and back up
	period := 2 * limit
	pos := (m.animFrame / 8) % period
	if pos > limit {
		pos = period - pos
	}
	return pos
}

func (m App) cursor(iw, ih int) Cursor {
	if !m.store.Snapshot().SimulateUser {
		return Cursor{}
	}
	return Cursor{X: triangle(m.animFrame, iw), Y: triangle(m.animFrame/2+ih/3, ih), Visible: true}
}

func triangle(t, n int) int {
	if n <= 1 {
		return 0
	}
	p := 2 * (n - 1)
	t %= p
	if t >= n {
		return p - t
	}
	return t
}

func (m App) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return renderHelp(minInt(m.width-4, 80))
	}

	st := m.store.Snapshot()
	header := RenderHeader(st, m.width)
	controls := RenderControls(st)
	w, h := m.layoutSize(st)

	var main string
	switch {
	case m.form.open:
		main = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, m.form.view())
	case st.CinematicMode:
		main = RenderCinematic(w, h)
	default:
		v := layout.SelectState(st)
		spec := layout.Frame(st.Device)
		iw, ih := InnerSize(spec, w, h)
		f := FrameView{Variant: v, Spec: spec, Width: w, Height: h, Scroll: m.scroll, Cursor: m.cursor(iw, ih)}
		main = f.Render()
	}
	if st.ShowAnalytics {
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, " ", RenderAnalytics(st.Quality, m.ticker.Series()))
	}

	parts := []string{header}
	if m.width < narrowWidth {
		parts = append(parts, Banner.Render("▭ Open on a wider terminal for the full experience"))
	}
	if m.toast != nil {
		style := ToastFail
		if m.toast.ok {
			style = ToastOK
		}
		parts = append(parts, style.Render(MetricValue.Render(m.toast.title)+" "+m.toast.body))
	} else {
		parts = append(parts, "")
	}
	parts = append(parts, main, controls)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Run starts the interactive demo and blocks until the user quits.
func Run(opts Options) error {
	app := NewApp(opts)
	defer app.Close()
	_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}

// RenderOnce returns a single frame of the demo without starting a program.
func RenderOnce(opts Options) string {
	opts.Static = true
	app := NewApp(opts)
	defer app.Close()
	return app.View()
}
