package game

import (
	"context"
	"fmt"
	"time"

	"github.com/mitchelldurbincs/TextMonopoly/internal/game/core"
	"github.com/mitchelldurbincs/TextMonopoly/internal/game/events"
	"github.com/mitchelldurbincs/TextMonopoly/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/TextMonopoly/internal/game/rules"
	"github.com/mitchelldurbincs/TextMonopoly/internal/game/states"
	"github.com/rs/zerolog"
)

// Engine runs the rounds of one game
type Engine struct {
	gs      *GameState
	rules   Rules
	dice    Roller
	chances ChanceDrawer
	input   Input
	display Display
	logger  zerolog.Logger

	winCondition *rules.WinConditionChecker
	eventBus     *events.EventBus
	ledger       *subscribers.LedgerSubscriber
	gameID       string
	stateMachine *states.StateMachine

	losers  []PlayerStat
	winners []PlayerStat
}

// Run plays rounds until the game is over. Cancellation of ctx is checked
// before every turn.
func (e *Engine) Run(ctx context.Context) error {
	if e.stateMachine.CurrentPhase() == states.PhaseSetup && !e.stateMachine.GetContext().CanContinue() {
		return e.finish("not enough players to start")
	}
	for !e.stateMachine.IsGameOver() {
		if err := e.PlayRound(ctx); err != nil {
			return err
		}
	}
	return nil
}

// PlayRound plays one round: every player still in the game gets one turn,
// unless someone ends the game first.
func (e *Engine) PlayRound(ctx context.Context) error {
	if e.stateMachine.IsGameOver() {
		return core.ErrGameOver
	}

	e.gs.Round++
	sctx := e.stateMachine.GetContext()
	sctx.Round = e.gs.Round
	sctx.ActivePlayers = len(e.gs.ActivePlayers())
	logger := e.logger.With().Int("round", e.gs.Round).Logger()

	if err := e.transition(states.PhaseRoundStart, fmt.Sprintf("round %d", e.gs.Round)); err != nil {
		return err
	}
	e.eventBus.Publish(events.NewRoundStartedEvent(e.gameID, e.gs.Round, sctx.ActivePlayers))
	roundStart := time.Now()

	for _, p := range e.gs.Players {
		if err := ctx.Err(); err != nil {
			return core.WrapRoundError(e.gs.Round, e.stateMachine.CurrentPhase().String(), err)
		}
		if !p.InGame() {
			logger.Debug().Str("player", p.Name()).Msg("Skipping player who is out of the game")
			continue
		}
		if err := e.playTurn(p); err != nil {
			return core.WrapRoundError(e.gs.Round, e.stateMachine.CurrentPhase().String(), err)
		}
		if e.gs.EndRequested {
			break
		}
	}

	reason := "all players moved"
	if e.gs.EndRequested {
		reason = "end requested"
	}
	if err := e.transition(states.PhaseRoundEnd, reason); err != nil {
		return err
	}
	e.display.ShowRoundSummary(e.roundSummary())
	e.eventBus.Publish(events.NewRoundEndedEvent(e.gameID, e.gs.Round, sctx.ActivePlayers, time.Since(roundStart)))
	logger.Debug().
		Int("active_players", sctx.ActivePlayers).
		Dur("duration", time.Since(roundStart)).
		Msg("Round complete")

	if e.winCondition.CheckGameOver(asRulesPlayers(e.gs.Players), e.gs.EndRequested) {
		if e.gs.EndRequested {
			return e.finish("end requested")
		}
		return e.finish("fewer than two players left")
	}
	return nil
}

// playTurn shows the menu to p until they roll or quit, then moves them and
// resolves the landing.
func (e *Engine) playTurn(p *core.Player) error {
	sctx := e.stateMachine.GetContext()
	sctx.CurrentPlayer = p.Name()
	if err := e.transition(states.PhasePlayerTurn, "next player"); err != nil {
		return err
	}

	e.display.ShowMessage(fmt.Sprintf("\n It's %s's turn", p.Name()))
	for {
		e.display.ShowMessage(MenuDescription)
		choice, err := e.askMenuChoice("Choose your action: ")
		if err != nil {
			return core.WrapPlayerError(p.Name(), "choose menu option", err)
		}

		switch choice {
		case MenuRoll:
			return e.moveAndResolve(p)
		case MenuFields:
			e.display.ShowFieldList(e.fieldList())
		case MenuQuit:
			e.gs.EndRequested = true
			sctx.EndRequested = true
			e.eventBus.Publish(events.NewGameQuitEvent(e.gameID, p.Name(), e.gs.Round))
			e.display.ShowMessage("End of game")
			e.logger.Info().Str("player", p.Name()).Int("round", e.gs.Round).Msg("End of game requested")
			return nil
		default:
			e.logger.Warn().Int("choice", choice).Msg("Ignoring unknown menu choice")
		}
	}
}

func (e *Engine) moveAndResolve(p *core.Player) error {
	roll := e.dice.Roll()
	move, err := p.Move(roll)
	if err != nil {
		return err
	}
	field, err := p.CurrentField()
	if err != nil {
		return err
	}

	e.eventBus.Publish(events.NewPlayerMovedEvent(e.gameID, p.Name(), e.gs.Round, move.From, move.To, roll, move.PassedStart, field.Name()))
	e.logger.Debug().
		Str("player", p.Name()).
		Int("roll", roll).
		Int("from", move.From).
		Int("to", move.To).
		Str("field", field.Name()).
		Msg("Player moved")
	e.display.ShowMessage(fmt.Sprintf("%s rolled %d and moved to field %d: %s", p.Name(), roll, move.To, field.Name()))
	if move.PassedStart {
		e.eventBus.Publish(events.NewBonusCreditedEvent(e.gameID, p.Name(), e.gs.Round, events.BonusPassStart, move.Bonus))
		e.display.ShowMessage(fmt.Sprintf("You passed the start field and got %d.", move.Bonus))
	}

	if err := e.transition(states.PhaseLandingResolution, "landed on "+field.Name()); err != nil {
		return err
	}
	if err := e.resolveLanding(p, field); err != nil {
		return core.NewGameError(e.gs.Round, p.Name(), "resolve landing on "+field.Name(), err)
	}

	if err := e.transition(states.PhaseEliminationCheck, "landing resolved"); err != nil {
		return err
	}
	e.checkElimination(p)
	return nil
}

// checkElimination removes p from rotation once they are out of money.
// A player enters the eliminated list only once.
func (e *Engine) checkElimination(p *core.Player) {
	if p.InGame() {
		return
	}
	p.Eliminate()
	e.stateMachine.GetContext().ActivePlayers = len(e.gs.ActivePlayers())
	if !e.gs.markEliminated(p) {
		return
	}

	e.eventBus.Publish(events.NewPlayerEliminatedEvent(e.gameID, p.Name(), e.gs.Round, p.Cash(), len(p.OwnedProperties()), len(e.gs.Eliminated)))
	e.display.ShowMessage(fmt.Sprintf("%s is out of the game.", p.Name()))
	e.logger.Info().
		Str("player", p.Name()).
		Int("round", e.gs.Round).
		Int("cash", p.Cash()).
		Msg("Player eliminated")
}

// finish computes the standings, reports them and moves to the terminal phase
func (e *Engine) finish(reason string) error {
	losers, winners := e.winCondition.Standings(asRulesPlayers(e.gs.Players), asRulesPlayers(e.gs.Eliminated))
	e.losers = statsOf(fromRulesPlayers(losers))
	e.winners = statsOf(fromRulesPlayers(winners))

	sctx := e.stateMachine.GetContext()
	sctx.ActivePlayers = len(e.gs.ActivePlayers())
	sctx.Winners = make([]string, 0, len(e.winners))
	for _, w := range e.winners {
		sctx.Winners = append(sctx.Winners, w.Name)
	}
	if err := e.transition(states.PhaseGameOver, reason); err != nil {
		return err
	}

	e.display.ShowEndGame(e.losers, e.winners)
	loserNames := make([]string, 0, len(e.losers))
	for _, l := range e.losers {
		loserNames = append(loserNames, l.Name)
	}
	e.eventBus.Publish(events.NewGameEndedEvent(e.gameID, sctx.Winners, loserNames, e.gs.Round, e.gs.EndRequested, sctx.GetElapsedTime()))
	return nil
}

func (e *Engine) transition(phase states.GamePhase, reason string) error {
	if err := e.stateMachine.TransitionTo(phase, reason); err != nil {
		return core.WrapRoundError(e.gs.Round, e.stateMachine.CurrentPhase().String(), err)
	}
	return nil
}

// Input is only read in the phases that accept it.

func (e *Engine) askMenuChoice(prompt string) (int, error) {
	if err := e.stateMachine.CheckInput(); err != nil {
		return 0, err
	}
	return e.input.AskMenuChoice(prompt, MenuOptions)
}

func (e *Engine) askYesNo(prompt string) (bool, error) {
	if err := e.stateMachine.CheckInput(); err != nil {
		return false, err
	}
	return e.input.AskYesNo(prompt)
}

func (e *Engine) askHouseCount(max int) (int, error) {
	if err := e.stateMachine.CheckInput(); err != nil {
		return 0, err
	}
	return e.input.AskHouseCount(max)
}

func asRulesPlayers(players []*core.Player) []rules.Player {
	out := make([]rules.Player, len(players))
	for i, p := range players {
		out[i] = p
	}
	return out
}

func fromRulesPlayers(players []rules.Player) []*core.Player {
	out := make([]*core.Player, 0, len(players))
	for _, p := range players {
		if cp, ok := p.(*core.Player); ok {
			out = append(out, cp)
		}
	}
	return out
}

// Public accessors
func (e *Engine) GameState() GameState                  { return *e.gs }
func (e *Engine) IsGameOver() bool                      { return e.stateMachine.IsGameOver() }
func (e *Engine) GameID() string                        { return e.gameID }
func (e *Engine) Round() int                            { return e.gs.Round }
func (e *Engine) EventBus() *events.EventBus            { return e.eventBus }
func (e *Engine) Ledger() *subscribers.LedgerSubscriber { return e.ledger }
func (e *Engine) CurrentPhase() states.GamePhase        { return e.stateMachine.CurrentPhase() }
func (e *Engine) History() []states.Transition          { return e.stateMachine.GetHistory() }

// Standings returns the losers in elimination order and the winners in turn
// order. Both are nil until the game is over.
func (e *Engine) Standings() (losers, winners []PlayerStat) {
	return e.losers, e.winners
}
