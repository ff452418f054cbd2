package slot

import (
	"math/rand/v2"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultMaxReelItems is the reel length used when none is configured
const DefaultMaxReelItems = 30

// Config is fixed at construction
type Config struct {
	// MaxReelItems is the number of items on the reel per spin, including a retained winner
	MaxReelItems int
	// RemoveWinner drops the winner from the name list after each spin
	RemoveWinner bool

	OnSpinStart       func()
	OnSpinEnd         func()
	OnNameListChanged func()

	// Logger receives diagnostics; nil disables logging
	Logger *zerolog.Logger
	// Rand drives the shuffle; nil seeds from the clock
	Rand *rand.Rand
}

// DefaultConfig returns a 30-item reel that removes winners
func DefaultConfig() Config {
	return Config{
		MaxReelItems: DefaultMaxReelItems,
		RemoveWinner: true,
	}
}

// Controller runs the spin lifecycle against a Surface
type Controller struct {
	cfg     Config
	log     zerolog.Logger
	surface Surface
	pool    *NamePool
	builder *SequenceBuilder
	guard   *Guard

	// busy is the single-flight flag shared by Spin and SetNames
	busy               atomic.Bool
	state              atomic.Int32
	havePreviousWinner atomic.Bool
}

// NewController creates a controller drawing from names and never crowning a name in exclude
func NewController(cfg Config, surface Surface, names, exclude []string) *Controller {
	if cfg.MaxReelItems < 1 {
		cfg.MaxReelItems = DefaultMaxReelItems
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "slot").Logger()
	}

	pool := NewNamePool(names, exclude)
	return &Controller{
		cfg:     cfg,
		log:     logger,
		surface: surface,
		pool:    pool,
		builder: NewSequenceBuilder(cfg.Rand),
		guard:   NewGuard(pool),
	}
}

// Names returns a copy of the current name list
func (c *Controller) Names() []string {
	return c.pool.Names()
}

// ExcludeList returns a copy of the exclusion list
func (c *Controller) ExcludeList() []string {
	return c.pool.ExcludeList()
}

// State returns the current lifecycle phase
func (c *Controller) State() State {
	return State(c.state.Load())
}

// HavePreviousWinner reports whether the last rendered item is a retained winner
func (c *Controller) HavePreviousWinner() bool {
	return c.havePreviousWinner.Load()
}

// MaxReelItems returns the effective reel length
func (c *Controller) MaxReelItems() int {
	return c.cfg.MaxReelItems
}

// RemovesWinner reports whether winners leave the pool
func (c *Controller) RemovesWinner() bool {
	return c.cfg.RemoveWinner
}

// SetNames replaces the name list, clears the surface and fires OnNameListChanged
// Refused while a spin is running
func (c *Controller) SetNames(names []string) error {
	if !c.busy.CompareAndSwap(false, true) {
		return ErrSpinInProgress
	}
	defer c.busy.Store(false)

	c.pool.SetNames(names)
	c.surface.Clear()
	c.havePreviousWinner.Store(false)
	c.state.Store(int32(StateIdle))

	c.log.Info().Int("names", len(names)).Msg("name list changed")

	if c.cfg.OnNameListChanged != nil {
		c.cfg.OnNameListChanged()
	}
	return nil
}

// Spin runs one draw to completion
// Blocks until the surface finishes its animation; failures return before any rendering
// A nil error means Result.Outcome.Success() is true
func (c *Controller) Spin() (Result, error) {
	res := Result{ID: uuid.New()}
	log := c.log.With().Str("spin_id", res.ID.String()).Logger()

	if !c.busy.CompareAndSwap(false, true) {
		res.Outcome = OutcomeBusy
		log.Warn().Msg("spin requested while another spin is running")
		return res, ErrSpinInProgress
	}
	defer c.busy.Store(false)

	names := c.pool.Names()
	if len(names) == 0 {
		res.Outcome = OutcomeEmptyPool
		log.Error().Err(ErrEmptyPool).Msg("spin aborted")
		return res, ErrEmptyPool
	}

	c.state.Store(int32(StateSpinning))
	if c.cfg.OnSpinStart != nil {
		c.cfg.OnSpinStart()
	}

	reserved := 0
	if c.havePreviousWinner.Load() {
		reserved = 1
	}
	seq := c.builder.Build(names, c.cfg.MaxReelItems, reserved)
	res.Sequence = seq

	switch c.guard.Evaluate(seq) {
	case VerdictUnspinnable:
		c.state.Store(int32(StateIdle))
		res.Outcome = OutcomeNoEligibleWinner
		log.Info().Int("names", len(names)).Msg("every name is excluded, nothing to spin")
		return res, nil
	case VerdictReject:
		c.state.Store(int32(StateIdle))
		res.Outcome = OutcomeExcluded
		res.Winner = seq[len(seq)-1]
		log.Info().Str("candidate", res.Winner).Msg("winner is excluded, re-spin")
		return res, ErrExcludedWinner
	}

	winner := seq[len(seq)-1]
	res.Winner = winner

	c.surface.Append(seq)
	log.Debug().Strs("displayed", seq).Str("winner", winner).Msg("reel rendered")

	if c.cfg.RemoveWinner {
		c.pool.RemoveWinner(winner)
		log.Debug().Int("remaining", c.pool.Len()).Msg("winner removed from name list")
	}

	<-c.surface.Play()

	c.surface.TrimToLast()
	c.havePreviousWinner.Store(true)
	c.state.Store(int32(StateFinished))

	if c.cfg.OnSpinEnd != nil {
		c.cfg.OnSpinEnd()
	}

	res.Outcome = OutcomeWon
	log.Info().Str("winner", winner).Msg("spin finished")
	return res, nil
}
