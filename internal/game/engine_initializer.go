package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mitchelldurbincs/TextMonopoly/internal/common"
	"github.com/mitchelldurbincs/TextMonopoly/internal/game/core"
	"github.com/mitchelldurbincs/TextMonopoly/internal/game/events"
	"github.com/mitchelldurbincs/TextMonopoly/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/TextMonopoly/internal/game/rules"
	"github.com/mitchelldurbincs/TextMonopoly/internal/game/states"
	"github.com/rs/zerolog"
)

// GameConfig holds everything needed to set up one game.
// Only Input and Display are required.
type GameConfig struct {
	GameID string
	// Players is the number of players; 0 means ask through Input
	Players int
	Rules   *Rules
	Board   *core.Board
	Input   Input
	Display Display
	Rng     *rand.Rand
	// Dice and Chances override the random sources built from Rng
	Dice        Roller
	Chances     ChanceDrawer
	Logger      zerolog.Logger
	Subscribers []events.Subscriber
}

// EngineInitializer handles the initialization of a game engine
type EngineInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg GameConfig) *EngineInitializer {
	logger := cfg.Logger.With().Str("component", "GameEngine").Logger()
	return &EngineInitializer{
		config: cfg,
		logger: logger,
	}
}

// NewEngine is shorthand for NewEngineInitializer(cfg).Initialize(ctx)
func NewEngine(ctx context.Context, cfg GameConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

// Initialize creates and initializes a new game engine
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	select {
	case <-ctx.Done():
		ei.logger.Error().Err(ctx.Err()).Msg("Engine creation cancelled before setup")
		return nil, ctx.Err()
	default:
	}

	if ei.config.Input == nil || ei.config.Display == nil {
		return nil, errors.New("game needs both an input and a display")
	}
	if err := ei.setupDefaults(); err != nil {
		return nil, err
	}

	count, err := ei.playerCount()
	if err != nil {
		return nil, err
	}

	gs := ei.initializeGameState(count)
	engine := ei.createEngine(gs)
	ei.setupEventHandling(engine)

	names := make([]string, 0, len(gs.Players))
	for _, p := range gs.Players {
		names = append(names, p.Name())
	}
	engine.eventBus.Publish(events.NewGameStartedEvent(
		engine.gameID,
		names,
		ei.config.Rules.Economy.StartingCash,
		gs.Board.Len(),
	))

	ei.logger.Info().
		Str("game_id", engine.gameID).
		Int("players", count).
		Int("board_size", gs.Board.Len()).
		Int("starting_cash", ei.config.Rules.Economy.StartingCash).
		Msg("Engine created successfully")

	return engine, nil
}

// setupDefaults fills in everything the caller left out
func (ei *EngineInitializer) setupDefaults() error {
	if ei.config.GameID == "" {
		ei.config.GameID = uuid.NewString()
	}
	if ei.config.Rules == nil {
		r := DefaultRules()
		ei.config.Rules = &r
	}
	if ei.config.Board == nil {
		ei.config.Board = core.NewStandardBoard()
	}
	if ei.config.Rng == nil {
		ei.logger.Debug().Msg("No RNG provided, creating new seeded RNG")
		ei.config.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if ei.config.Dice == nil {
		dice, err := rules.NewDice(ei.config.Rng, ei.config.Rules.DiceMin, ei.config.Rules.DiceMax)
		if err != nil {
			return fmt.Errorf("dice setup failed: %w", err)
		}
		ei.config.Dice = dice
	}
	if ei.config.Chances == nil {
		deck, err := rules.NewChanceDeck(ei.config.Rng, ei.config.Rules.Chances)
		if err != nil {
			return fmt.Errorf("chance deck setup failed: %w", err)
		}
		ei.config.Chances = deck
	}
	return nil
}

// playerCount asks for the number of players when none was configured
func (ei *EngineInitializer) playerCount() (int, error) {
	min, max := ei.config.Rules.MinPlayers, ei.config.Rules.MaxPlayers
	count := ei.config.Players
	if count == 0 {
		asked, err := ei.config.Input.AskPlayerCount(min, max)
		if err != nil {
			return 0, fmt.Errorf("reading player count: %w", err)
		}
		count = asked
	}
	if !common.InRange(count, min, max) {
		return 0, fmt.Errorf("%w: %d (allowed %d-%d)", core.ErrInvalidPlayerCount, count, min, max)
	}
	return count, nil
}

// initializeGameState creates the players in turn order, all on the start field
func (ei *EngineInitializer) initializeGameState(count int) *GameState {
	gs := &GameState{
		Board:   ei.config.Board,
		Players: make([]*core.Player, 0, count),
	}
	for i := 1; i <= count; i++ {
		gs.Players = append(gs.Players, core.NewPlayer(fmt.Sprintf("Player %d", i), gs.Board, ei.config.Rules.Economy))
	}
	return gs
}

// createEngine creates the engine with all its components
func (ei *EngineInitializer) createEngine(gs *GameState) *Engine {
	logger := ei.logger.With().Str("game_id", ei.config.GameID).Logger()
	eventBus := events.NewEventBusWithLogger(logger)

	gameContext := states.NewGameContext(ei.config.GameID, ei.logger)
	gameContext.ActivePlayers = len(gs.ActivePlayers())
	stateMachine := states.NewStateMachine(gameContext, eventBus)

	return &Engine{
		gs:           gs,
		rules:        *ei.config.Rules,
		dice:         ei.config.Dice,
		chances:      ei.config.Chances,
		input:        ei.config.Input,
		display:      ei.config.Display,
		logger:       logger,
		winCondition: rules.NewWinConditionChecker(logger),
		eventBus:     eventBus,
		ledger:       subscribers.NewLedgerSubscriber("ledger"),
		gameID:       ei.config.GameID,
		stateMachine: stateMachine,
	}
}

// setupEventHandling subscribes the ledger and any caller supplied subscribers
func (ei *EngineInitializer) setupEventHandling(engine *Engine) {
	engine.eventBus.Subscribe(engine.ledger)
	for _, s := range ei.config.Subscribers {
		engine.eventBus.Subscribe(s)
	}
	engine.logger.Debug().
		Int("subscribers", engine.eventBus.SubscriberCount()).
		Msg("Event handling configured")
}
