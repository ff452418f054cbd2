package main

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/ncc-erp/ncc-lucky-draw/audio"
	"github.com/ncc-erp/ncc-lucky-draw/config"
	"github.com/ncc-erp/ncc-lucky-draw/core"
	"github.com/ncc-erp/ncc-lucky-draw/reel"
	"github.com/ncc-erp/ncc-lucky-draw/slot"
	"github.com/ncc-erp/ncc-lucky-draw/status"
)

const (
	historyWidth    = 32
	minHistoryWidth = 70
	maxHistory      = 200
)

var (
	titleStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	statusStyle  = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	messageStyle = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	historyStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	helpStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// app wires the draw controller to the terminal
type app struct {
	screen  tcell.Screen
	cfg     *config.Config
	cfgPath string
	envPath string
	log     zerolog.Logger

	reel  *reel.Reel
	ctrl  *slot.Controller
	sound *audio.SoundManager
	stats *status.Registry

	// drawing guards the retry loop so only one draw request runs at a time
	drawing atomic.Bool

	mu      sync.Mutex
	message string
	history []string
}

func newApp(screen tcell.Screen, cfg *config.Config, clock reel.Clock, sound *audio.SoundManager, logger zerolog.Logger) *app {
	a := &app{
		screen: screen,
		cfg:    cfg,
		log:    logger,
		reel:   reel.New(clock, cfg.ItemDuration),
		sound:  sound,
		stats:  status.NewRegistry(),
	}

	slotCfg := slot.Config{
		MaxReelItems:      cfg.MaxReelItems,
		RemoveWinner:      cfg.RemoveWinner,
		OnSpinStart:       a.sound.PlaySpin,
		OnSpinEnd:         a.sound.StopSpin,
		OnNameListChanged: func() { a.setMessage("Name list updated") },
		Logger:            &a.log,
	}
	a.ctrl = slot.NewController(slotCfg, a.reel, cfg.Names, cfg.Exclude)
	a.setMessage(fmt.Sprintf("%d names loaded. Press SPACE to spin.", len(cfg.Names)))
	return a
}

func (a *app) setMessage(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.message = msg
}

func (a *app) currentMessage() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.message
}

func (a *app) winners() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.history)
}

func (a *app) addWinner(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = append(a.history, name)
	if len(a.history) > maxHistory {
		a.history = a.history[len(a.history)-maxHistory:]
	}
}

// requestSpin starts a draw on its own goroutine unless one is already running
// Returns false when the request was dropped
func (a *app) requestSpin() bool {
	if !a.drawing.CompareAndSwap(false, true) {
		return false
	}
	core.Go(func() {
		defer a.drawing.Store(false)
		a.draw()
	})
	return true
}

// draw spins until a winner lands, re-spinning excluded candidates up to MaxRetries times
func (a *app) draw() {
	defer a.sound.StopSpin()

	for attempt := 0; attempt <= a.cfg.MaxRetries; attempt++ {
		res, err := a.ctrl.Spin()
		a.stats.Record(res)

		switch {
		case err == nil && res.Outcome == slot.OutcomeWon:
			a.addWinner(res.Winner)
			a.setMessage("Winner: " + res.Winner)
			a.sound.PlayWin()
			return
		case err == nil:
			a.setMessage("Every remaining name is excluded, nothing to draw")
			return
		case errors.Is(err, slot.ErrExcludedWinner):
			continue
		case errors.Is(err, slot.ErrEmptyPool):
			a.setMessage("Name list is empty. Press r to reload.")
			a.sound.PlayError()
			return
		default:
			a.log.Warn().Err(err).Msg("spin refused")
			return
		}
	}

	a.log.Warn().Int("retries", a.cfg.MaxRetries).Msg("gave up after repeated excluded winners")
	a.setMessage(fmt.Sprintf("No eligible winner after %d re-spins", a.cfg.MaxRetries))
	a.sound.PlayError()
}

// reload re-reads the configuration and replaces the name list
// The exclusion list and reel settings are fixed for the session
func (a *app) reload() {
	cfg, err := config.Load(a.cfgPath, a.envPath)
	if err != nil {
		a.log.Error().Err(err).Msg("reload failed")
		a.setMessage("Reload failed: " + err.Error())
		return
	}
	if err := a.ctrl.SetNames(cfg.Names); err != nil {
		a.setMessage("Cannot reload while spinning")
		return
	}
	a.setMessage(fmt.Sprintf("Reloaded %d names", len(cfg.Names)))
}

// handleEvent processes one terminal event; returns false when the app should exit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			a.requestSpin()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				a.requestSpin()
			case 'r', 'R':
				a.reload()
			case 'm', 'M':
				a.sound.SetMuted(!a.sound.Muted())
			}
		}
	}
	return true
}

// render draws one frame: title, reel, history column, message and status bar
func (a *app) render() {
	a.reel.Tick()

	s := a.screen
	s.Clear()
	w, h := s.Size()
	if w < 10 || h < 6 {
		reel.DrawText(s, 0, 0, w, "Terminal too small", messageStyle)
		s.Show()
		return
	}

	reel.DrawCentered(s, 0, 0, w, "LUCKY DRAW", titleStyle)

	reelW := w
	if w >= minHistoryWidth {
		reelW = w - historyWidth - 1
		a.renderHistory(reelW+1, 2, historyWidth, h-5)
	}
	a.reel.Draw(s, 1, 2, reelW-2, h-5)

	reel.DrawText(s, 1, h-3, w-2, a.currentMessage(), messageStyle)
	reel.DrawText(s, 1, h-2, w-2, "SPACE spin  r reload  m mute  q quit", helpStyle)
	a.renderStatus(w, h-1)

	s.Show()
}

func (a *app) renderHistory(x, y, w, h int) {
	if h < 2 {
		return
	}
	reel.DrawText(a.screen, x, y, w, "Winners", titleStyle)

	history := a.winners()
	rows := h - 1
	start := max(len(history)-rows, 0)
	for i, name := range history[start:] {
		label := fmt.Sprintf("%3d. %s", start+i+1, name)
		reel.DrawText(a.screen, x, y+1+i, w, label, historyStyle)
	}
}

func (a *app) renderStatus(w, y int) {
	for x := 0; x < w; x++ {
		a.screen.SetContent(x, y, ' ', nil, statusStyle)
	}

	snap := a.stats.Snapshot()
	line := fmt.Sprintf(" Pool %d | Excluded %d | Spins %d | Won %d | Rejected %d",
		len(a.ctrl.Names()), len(a.ctrl.ExcludeList()), snap.Spins, snap.Won, snap.Rejected)
	if a.sound.Muted() {
		line += " | muted"
	}
	reel.DrawText(a.screen, 0, y, w, line, statusStyle)
}
