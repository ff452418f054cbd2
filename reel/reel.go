package reel

import (
	"math"
	"slices"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultItemDuration is the play-out time per reel item
const DefaultItemDuration = 100 * time.Millisecond

// Reel is a vertical list of names that scrolls upwards to its last item
// Mutators are called from the spin goroutine, Tick and Draw from the frame loop
type Reel struct {
	mu           sync.Mutex
	clock        Clock
	itemDuration time.Duration

	items  []string
	offset float64

	playing  bool
	start    time.Time
	duration time.Duration
	done     chan struct{}

	Style       tcell.Style
	PayStyle    tcell.Style
	MarkerStyle tcell.Style
}

// New creates an empty reel; non-positive itemDuration falls back to DefaultItemDuration
func New(clock Clock, itemDuration time.Duration) *Reel {
	if clock == nil {
		clock = SystemClock{}
	}
	if itemDuration <= 0 {
		itemDuration = DefaultItemDuration
	}
	return &Reel{
		clock:        clock,
		itemDuration: itemDuration,
		Style:        tcell.StyleDefault.Foreground(tcell.ColorSilver),
		PayStyle:     tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		MarkerStyle:  tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	}
}

// Clear removes all items and resets the scroll position
func (r *Reel) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
	r.offset = 0
}

// Append adds names after the current items
func (r *Reel) Append(names []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, names...)
}

// TrimToLast keeps only the final item, which then sits on the pay line
func (r *Reel) TrimToLast() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) > 1 {
		r.items = slices.Clone(r.items[len(r.items)-1:])
	}
	r.offset = 0
}

// Items returns a copy of the current items
func (r *Reel) Items() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.items)
}

// Play starts scrolling from the first to the last item over itemDuration per item
// The returned channel closes once, when Tick observes the end of the play-out
// While a play-out is running, Play returns its channel again
func (r *Reel) Play() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.playing {
		return r.done
	}

	r.done = make(chan struct{})
	if len(r.items) < 2 {
		r.offset = 0
		close(r.done)
		return r.done
	}

	r.playing = true
	r.start = r.clock.Now()
	r.duration = r.itemDuration * time.Duration(len(r.items))
	r.offset = 0
	return r.done
}

// Playing reports whether a play-out is running
func (r *Reel) Playing() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.playing
}

// Tick advances the animation to the clock's current time
// Returns true while a play-out is running
func (r *Reel) Tick() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.playing {
		return false
	}

	p := r.progressLocked()
	last := float64(len(r.items) - 1)
	r.offset = easeInOut(p) * last

	if p >= 1 {
		r.offset = last
		r.playing = false
		close(r.done)
		return false
	}
	return true
}

// Progress returns the play-out progress in [0, 1]; 1 when idle
func (r *Reel) Progress() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.playing {
		return 1
	}
	return r.progressLocked()
}

// Offset returns the eased scroll position, in items from the first
func (r *Reel) Offset() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.offset
}

func (r *Reel) progressLocked() float64 {
	if r.duration <= 0 {
		return 1
	}
	p := float64(r.clock.Now().Sub(r.start)) / float64(r.duration)
	return math.Max(0, math.Min(1, p))
}

// blurredLocked mirrors the mid-animation blur of the scroll: strongest at half way
func (r *Reel) blurredLocked() bool {
	if !r.playing {
		return false
	}
	return math.Abs(r.progressLocked()-0.5) < 0.3
}

// Draw renders the reel into the rectangle at x, y with the pay line on the middle row
func (r *Reel) Draw(screen tcell.Screen, x, y, w, h int) {
	if w < 5 || h < 1 {
		return
	}

	r.mu.Lock()
	items := r.items
	offset := r.offset
	blurred := r.blurredLocked()
	r.mu.Unlock()

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			screen.SetContent(x+col, y+row, ' ', nil, tcell.StyleDefault)
		}
	}

	payRow := h / 2
	screen.SetContent(x, y+payRow, '▶', nil, r.MarkerStyle)
	screen.SetContent(x+w-1, y+payRow, '◀', nil, r.MarkerStyle)

	// The item at the rounded offset sits on the pay line
	base := int(math.Floor(offset + 0.5))
	textX := x + 2
	textW := w - 4

	for row := 0; row < h; row++ {
		idx := base + row - payRow
		if idx < 0 || idx >= len(items) {
			continue
		}

		style := r.Style
		if row == payRow && !blurred {
			style = r.PayStyle
		}
		if blurred {
			style = style.Dim(true)
		}
		DrawCentered(screen, textX, y+row, textW, items[idx], style)
	}
}

// easeInOut is a smoothstep curve: slow start, fast middle, slow stop
func easeInOut(t float64) float64 {
	return t * t * (3 - 2*t)
}
