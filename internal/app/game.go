// Package app runs one single-player game: it feeds the fixed-step driver,
// applies grid logic, detects collisions and fires particle bursts.
package app

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/stanislavbuket/SnakeGame/internal/config"
	"github.com/stanislavbuket/SnakeGame/internal/domain"
	"github.com/stanislavbuket/SnakeGame/internal/fx"
	"github.com/stanislavbuket/SnakeGame/internal/spline"
	"github.com/stanislavbuket/SnakeGame/internal/timestep"
)

type Game struct {
	cfg   config.Config
	field *domain.Field

	snake *domain.Snake
	prev  []domain.Coord
	food  domain.Coord
	state gameState

	// directionChanged allows one accepted turn per logic step.
	directionChanged bool

	clock     timestep.Clock
	driver    *timestep.Driver
	particles *fx.System
	rng       *rand.Rand
	seed      int64
	logger    *log.Logger

	eventCh chan Event
	err     error

	mu sync.RWMutex
}

type Option func(*Game)

func WithClock(clock timestep.Clock) Option {
	return func(g *Game) {
		g.clock = clock
	}
}

func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

func NewGame(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg.Copy(),
		field:   domain.NewField(cfg.BoardWidth, cfg.BoardHeight),
		clock:   timestep.SystemClock{},
		seed:    cfg.Seed,
		logger:  log.Default(),
		eventCh: make(chan Event, 100),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}

	driver, err := timestep.NewDriver(cfg.InitialStepDelay, cfg.MinStepDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}

	g.driver = driver
	g.rng = rand.New(rand.NewSource(g.seed))
	g.particles = fx.NewSystem(cfg.ParticleTemplates, cfg.ParticleCapacity, g.seed^0xBEAD)
	g.snake = &domain.Snake{Direction: domain.DirectionRight}

	return g, nil
}

// Restart lays out a fresh snake and food and starts the game.
func (g *Game) Restart() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.restartLocked()
}

// Reconfigure swaps in a new board and speed setup and restarts.
func (g *Game) Reconfigure(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	driver, err := timestep.NewDriver(cfg.InitialStepDelay, cfg.MinStepDelay)
	if err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.cfg = cfg.Copy()
	g.field = domain.NewField(cfg.BoardWidth, cfg.BoardHeight)
	g.driver = driver
	g.logger.Printf("Game: reconfigured to %dx%d, step %v", cfg.BoardWidth, cfg.BoardHeight, cfg.InitialStepDelay)

	return g.restartLocked()
}

func (g *Game) restartLocked() error {
	g.state.reset()
	g.directionChanged = false
	g.err = nil

	center := g.field.Center()
	g.snake = domain.NewSnake(center, g.cfg.InitialLength, domain.DirectionRight)
	g.prev = g.snake.Clone()

	g.driver.SetStep(g.cfg.InitialStepDelay)
	g.driver.Reset(g.clock.Now())

	if err := g.placeFoodLocked(); err != nil {
		return err
	}

	g.emit(Event{Type: EventRestarted})
	g.logger.Printf("Game: started, snake at %v heading %v", center, g.snake.Direction)
	return nil
}

// Tick advances the game to the clock's current time. Particles keep moving
// while paused or after the game ended.
func (g *Game) Tick() (TickResult, error) {
	now := g.clock.Now()

	g.mu.Lock()
	res := g.driver.Tick(now, simulation{g})
	err := g.err
	g.err = nil
	g.mu.Unlock()

	g.particles.Update(res.Elapsed.Seconds())

	return TickResult{Elapsed: res.Elapsed, Steps: res.Steps}, err
}

// simulation exposes the logic step to the driver.
type simulation struct {
	g *Game
}

func (s simulation) Active() bool {
	st := &s.g.state
	return st.running && !st.paused && !st.gameOver
}

func (s simulation) Snapshot() {
	s.g.prev = append(s.g.prev[:0], s.g.snake.Body...)
}

func (s simulation) Advance() {
	s.g.stepLocked()
}

func (g *Game) stepLocked() {
	g.directionChanged = false

	if g.snake.NextHead().Equals(g.food) {
		g.handleFoodEatenLocked()
		if g.state.gameOver {
			return
		}
	} else {
		g.snake.Move()
	}

	g.checkCollisionsLocked()
}

func (g *Game) handleFoodEatenLocked() {
	cell := g.cfg.CellSize
	eaten := g.food

	g.particles.SpawnBatch(eaten, fx.EffectConsumption, cell)

	g.snake.Move()
	g.snake.Grow()

	tail := g.snake.Tail()
	g.particles.SpawnBatch(tail, fx.EffectGrowth, cell)

	g.state.score += g.cfg.FoodReward
	g.state.foodEaten++

	g.emit(Event{Type: EventFoodEaten, Payload: FoodEatenPayload{Cell: eaten, Score: g.state.score}})
	g.emit(Event{Type: EventGrew, Payload: GrewPayload{Tail: tail, Length: g.snake.Len()}})

	if g.state.foodEaten%g.cfg.SpeedUpEvery == 0 {
		before := g.driver.Step()
		after := g.driver.SetStep(before - g.cfg.SpeedUpStep)
		if after != before {
			g.emit(Event{Type: EventSpeedUp, Payload: SpeedUpPayload{StepDelayMs: after.Milliseconds()}})
			g.logger.Printf("Game: speed up, step %v", after)
		}
	}

	if err := g.placeFoodLocked(); err != nil {
		g.err = err
	}
}

func (g *Game) placeFoodLocked() error {
	occupied := domain.Occupied(g.snake.Body)
	food, err := domain.PlaceFood(g.field, occupied, g.rng, g.cfg.MaxFoodAttempts)
	if err != nil {
		g.state.running = false
		g.state.gameOver = true
		g.state.outcome = OutcomeBoardFull
		g.emit(Event{Type: EventBoardFull, Payload: g.state.score})
		g.logger.Printf("Game: board full, final score %d", g.state.score)
		return fmt.Errorf("failed to place food: %w", err)
	}
	g.food = food
	return nil
}

func (g *Game) checkCollisionsLocked() {
	head := g.snake.Head()
	hitWall := !g.field.IsInterior(head)
	hitSelf := g.snake.CollidesWithSelf()
	if !hitWall && !hitSelf {
		return
	}

	g.state.running = false
	g.state.gameOver = true
	g.state.outcome = OutcomeCrashed

	g.particles.SpawnBatch(head, fx.EffectImpact, g.cfg.CellSize)
	g.emit(Event{Type: EventGameOver, Payload: GameOverPayload{Head: head, Score: g.state.score, Wall: hitWall}})
	g.logger.Printf("Game: over at %v (wall=%v), score %d", head, hitWall, g.state.score)
}

// Steer queues a turn for the next logic step. Reversals, repeats and a
// second turn within the same step are rejected.
func (g *Game) Steer(dir domain.Direction) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.state.running || g.state.paused || g.state.gameOver || g.directionChanged {
		return false
	}
	if dir == g.snake.Direction || !g.snake.SetDirection(dir) {
		return false
	}

	g.directionChanged = true
	return true
}

// TogglePause flips the pause flag of a running game and reports the new value.
func (g *Game) TogglePause() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.state.running || g.state.gameOver {
		return g.state.paused
	}

	g.state.paused = !g.state.paused
	if g.state.paused {
		g.emit(Event{Type: EventPaused})
	} else {
		g.emit(Event{Type: EventResumed})
	}
	return g.state.paused
}

func (g *Game) Paused() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.paused
}

func (g *Game) GameOver() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.gameOver
}

func (g *Game) Frame() Frame {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Frame{
		Field: *g.field,
		Food:  g.food,
		Snake: spline.Frame{
			Prev:     append([]domain.Coord(nil), g.prev...),
			Curr:     g.snake.Clone(),
			Fraction: g.driver.Fraction(),
			Heading:  g.snake.Direction,
		},
		Stats:    g.statsLocked(),
		Running:  g.state.running,
		Paused:   g.state.paused,
		GameOver: g.state.gameOver,
	}
}

func (g *Game) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.statsLocked()
}

func (g *Game) statsLocked() Stats {
	return Stats{
		Score:     g.state.score,
		FoodEaten: g.state.foodEaten,
		Length:    g.snake.Len(),
		Moves:     g.driver.TotalSteps(),
		StepDelay: g.driver.Step(),
		Outcome:   g.state.outcome,
	}
}

func (g *Game) Config() config.Config {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cfg.Copy()
}

func (g *Game) Particles() *fx.System {
	return g.particles
}

func (g *Game) Events() <-chan Event {
	return g.eventCh
}

func (g *Game) emit(ev Event) {
	select {
	case g.eventCh <- ev:
	default:
	}
}
