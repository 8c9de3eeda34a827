package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/player"
)

// Container is one bar chart under the controller's management.
type Container struct {
	ID       string
	Children int
	SortType string
	MaxValue int

	bars *bars.Collection
	busy atomic.Bool
}

// Bars returns the container's current collection. Callers must not mutate it
// while the container is busy unless they hold its Run.
func (c *Container) Bars() *bars.Collection { return c.bars }

func (c *Container) Busy() bool { return c.busy.Load() }

type Controller struct {
	mu         sync.RWMutex
	containers map[string]*Container
	rng        *rand.Rand
	rngMu      sync.Mutex
	pacing     player.Pacing
	logger     *slog.Logger
}

type Option func(*Controller)

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

func WithSeed(seed int64) Option {
	return func(c *Controller) { c.rng = rand.New(rand.NewSource(seed)) }
}

func WithPacing(p player.Pacing) Option {
	return func(c *Controller) { c.pacing = p }
}

func New(opts ...Option) *Controller {
	c := &Controller{
		containers: make(map[string]*Container),
		rng:        rand.New(rand.NewSource(1)),
		pacing:     player.DefaultPacing(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Pacing() player.Pacing { return c.pacing }

// Add registers an empty container. An existing container with the same id
// is replaced.
func (c *Controller) Add(id string, children int, sortType string) *Container {
	ct := &Container{
		ID:       id,
		Children: children,
		SortType: sortType,
		MaxValue: bars.DefaultMaxValue,
		bars:     bars.New(nil),
	}
	c.mu.Lock()
	c.containers[id] = ct
	c.mu.Unlock()
	return ct
}

func (c *Controller) Container(id string) (*Container, error) {
	c.mu.RLock()
	ct, ok := c.containers[id]
	c.mu.RUnlock()
	if !ok {
		c.logger.Error("container not found", "container", id)
		return nil, fmt.Errorf("%q: %w", id, ErrContainerNotFound)
	}
	return ct, nil
}

func (c *Controller) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]string, 0, len(c.containers))
	for id := range c.containers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (c *Controller) Busy(id string) bool {
	ct, err := c.Container(id)
	return err == nil && ct.Busy()
}

// Randomize replaces the container's bars with fresh random values. It is
// refused while a sort holds the container.
func (c *Controller) Randomize(id string) error {
	ct, err := c.Container(id)
	if err != nil {
		return err
	}
	if !ct.busy.CompareAndSwap(false, true) {
		c.logger.Warn("container is currently being sorted", "container", id)
		return fmt.Errorf("%q: %w", id, ErrBusy)
	}
	defer ct.busy.Store(false)

	c.rngMu.Lock()
	col, err := bars.Randomize(c.rng, ct.Children, ct.MaxValue)
	c.rngMu.Unlock()
	if errors.Is(err, bars.ErrInvalidCount) {
		c.logger.Error("invalid bar count", "container", id, "children", ct.Children)
		return err
	}
	if err != nil {
		c.logger.Error("randomization halted", "container", id, "generated", col.Len(), "err", err)
	}
	ct.bars = col
	c.logger.Debug("randomized", "container", id, "children", col.Len())
	return nil
}

// Load replaces the container's bars with the given values.
func (c *Controller) Load(id string, values []int) error {
	ct, err := c.Container(id)
	if err != nil {
		return err
	}
	if !ct.busy.CompareAndSwap(false, true) {
		c.logger.Warn("container is currently being sorted", "container", id)
		return fmt.Errorf("%q: %w", id, ErrBusy)
	}
	ct.bars = bars.New(values)
	ct.busy.Store(false)
	return nil
}

// Run is an in-progress sort. It holds the container's busy token until
// Release is called.
type Run struct {
	*player.Player
	Container *Container
	SortType  string

	released atomic.Bool
	logger   *slog.Logger
}

// Release closes the player and frees the container. It is idempotent.
func (r *Run) Release() {
	if !r.released.CompareAndSwap(false, true) {
		return
	}
	r.Player.Close()
	r.Container.busy.Store(false)
	r.logger.Info("sort finished", "container", r.Container.ID, "type", r.SortType, "steps", r.StepsTaken())
}

// Begin acquires the container for a sort. An empty sortType uses the
// container's configured type.
func (c *Controller) Begin(id, sortType string) (*Run, error) {
	ct, err := c.Container(id)
	if err != nil {
		return nil, err
	}
	if sortType == "" {
		sortType = ct.SortType
	}
	fn, err := algo.Lookup(sortType)
	if err != nil {
		c.logger.Warn("unknown sorting type", "container", id, "type", sortType)
		return nil, fmt.Errorf("%q: %w", sortType, ErrUnknownSortType)
	}
	if !ct.busy.CompareAndSwap(false, true) {
		c.logger.Warn("container is currently being sorted", "container", id)
		return nil, fmt.Errorf("%q: %w", id, ErrBusy)
	}

	p := player.New(ct.bars, fn(ct.bars.Values()), c.pacing)
	for _, m := range metrics.Default() {
		p.AddMetric(m)
	}
	c.logger.Info("sort started", "container", id, "type", sortType, "children", ct.bars.Len())
	return &Run{Player: p, Container: ct, SortType: sortType, logger: c.logger}, nil
}

// Start runs a sort on the container to completion.
func (c *Controller) Start(ctx context.Context, id, sortType string) (*player.Result, error) {
	run, err := c.Begin(id, sortType)
	if err != nil {
		return nil, err
	}
	defer run.Release()
	return run.Run(ctx)
}

// Stop is accepted but never interrupts a sort in progress.
func (c *Controller) Stop(id string) error {
	ct, err := c.Container(id)
	if err != nil {
		return err
	}
	if ct.Busy() {
		c.logger.Warn("stop requested; the running sort will complete", "container", id)
	}
	return fmt.Errorf("%q: %w", id, ErrStopUnsupported)
}
