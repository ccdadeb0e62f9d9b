package game

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/mitchelldurbincs/TextMonopoly/internal/game/core"
	"github.com/mitchelldurbincs/TextMonopoly/internal/game/events"
	"github.com/mitchelldurbincs/TextMonopoly/internal/game/states"
	"github.com/mitchelldurbincs/TextMonopoly/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine_Defaults(t *testing.T) {
	recorder := &recordingSubscriber{}
	engine, err := NewEngine(context.Background(), GameConfig{
		Players:     3,
		Input:       &scriptedInput{},
		Display:     &recordingDisplay{},
		Rng:         testutil.NewTestRNG(12345),
		Logger:      zerolog.Nop(),
		Subscribers: []events.Subscriber{recorder},
	})
	require.NoError(t, err)

	_, err = uuid.Parse(engine.GameID())
	assert.NoError(t, err, "generated game id should be a uuid")
	assert.Equal(t, states.PhaseSetup, engine.CurrentPhase())
	assert.Equal(t, 0, engine.Round())
	assert.False(t, engine.IsGameOver())

	gs := engine.GameState()
	assert.Equal(t, core.StandardBoardSize, gs.Board.Len())
	require.Len(t, gs.Players, 3)
	for i, p := range gs.Players {
		assert.Equal(t, fmt.Sprintf("Player %d", i+1), p.Name())
		assert.Equal(t, 1, p.Position())
		assert.Equal(t, 15000000, p.Cash())
	}

	started := recorder.ofType(events.TypeGameStarted)
	require.Len(t, started, 1)
	ev := started[0].(*events.GameStartedEvent)
	assert.Equal(t, []string{"Player 1", "Player 2", "Player 3"}, ev.Players)
	assert.Equal(t, 15000000, ev.StartingCash)
	assert.Equal(t, core.StandardBoardSize, ev.BoardSize)
	assert.Equal(t, 2, engine.EventBus().SubscriberCount())
}

func TestEngineInitializer_PlayerCount(t *testing.T) {
	tests := []struct {
		name      string
		players   int
		asked     []int
		want      int
		wantErrIs error
	}{
		{name: "configured", players: 4, want: 4},
		{name: "asked", asked: []int{5}, want: 5},
		{name: "too few", players: 1, wantErrIs: core.ErrInvalidPlayerCount},
		{name: "too many", players: 9, wantErrIs: core.ErrInvalidPlayerCount},
		{name: "input closed", wantErrIs: errScriptExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := NewEngineInitializer(GameConfig{
				Players: tt.players,
				Input:   &scriptedInput{counts: tt.asked},
				Display: &recordingDisplay{},
				Rng:     testutil.NewTestRNG(12345),
				Logger:  zerolog.Nop(),
			}).Initialize(context.Background())

			if tt.wantErrIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErrIs)
				assert.Nil(t, engine)
				return
			}
			require.NoError(t, err)
			assert.Len(t, engine.GameState().Players, tt.want)
		})
	}
}

func TestEngineInitializer_Errors(t *testing.T) {
	badDice := DefaultRules()
	badDice.DiceMin, badDice.DiceMax = 6, 2
	noChances := DefaultRules()
	noChances.Chances = nil

	tests := []struct {
		name    string
		cfg     GameConfig
		wantMsg string
	}{
		{
			name:    "missing display",
			cfg:     GameConfig{Players: 2, Input: &scriptedInput{}},
			wantMsg: "input and a display",
		},
		{
			name:    "invalid dice range",
			cfg:     GameConfig{Players: 2, Input: &scriptedInput{}, Display: &recordingDisplay{}, Rules: &badDice},
			wantMsg: "dice setup failed",
		},
		{
			name:    "empty chance table",
			cfg:     GameConfig{Players: 2, Input: &scriptedInput{}, Display: &recordingDisplay{}, Rules: &noChances},
			wantMsg: "chance deck setup failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Logger = zerolog.Nop()
			_, err := NewEngine(context.Background(), tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestEngineInitializer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine, err := NewEngine(ctx, GameConfig{Players: 2, Input: &scriptedInput{}, Display: &recordingDisplay{}, Logger: zerolog.Nop()})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, engine)
}
