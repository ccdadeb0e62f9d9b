package game

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mitchelldurbincs/TextMonopoly/internal/game/core"
	"github.com/mitchelldurbincs/TextMonopoly/internal/game/events"
	"github.com/mitchelldurbincs/TextMonopoly/internal/testutil"
	"github.com/stretchr/testify/require"
)

var errScriptExhausted = errors.New("scripted input exhausted")

// scriptedInput answers prompts from fixed queues and fails once a queue runs dry
type scriptedInput struct {
	counts  []int
	menu    []int
	yesNo   []bool
	houses  []int
	prompts []string
}

func (in *scriptedInput) AskPlayerCount(min, max int) (int, error) {
	if len(in.counts) == 0 {
		return 0, errScriptExhausted
	}
	n := in.counts[0]
	in.counts = in.counts[1:]
	return n, nil
}

func (in *scriptedInput) AskMenuChoice(prompt string, options []int) (int, error) {
	in.prompts = append(in.prompts, prompt)
	if len(in.menu) == 0 {
		return 0, errScriptExhausted
	}
	c := in.menu[0]
	in.menu = in.menu[1:]
	return c, nil
}

func (in *scriptedInput) AskYesNo(prompt string) (bool, error) {
	in.prompts = append(in.prompts, prompt)
	if len(in.yesNo) == 0 {
		return false, errScriptExhausted
	}
	y := in.yesNo[0]
	in.yesNo = in.yesNo[1:]
	return y, nil
}

func (in *scriptedInput) AskHouseCount(max int) (int, error) {
	if len(in.houses) == 0 {
		return 0, errScriptExhausted
	}
	n := in.houses[0]
	in.houses = in.houses[1:]
	return n, nil
}

// recordingDisplay keeps everything the engine shows
type recordingDisplay struct {
	messages   []string
	summaries  []RoundSummary
	fieldLists [][]FieldInfo
	losers     []PlayerStat
	winners    []PlayerStat
	ended      bool
}

func (d *recordingDisplay) ShowRoundSummary(s RoundSummary) { d.summaries = append(d.summaries, s) }
func (d *recordingDisplay) ShowMessage(msg string)          { d.messages = append(d.messages, msg) }
func (d *recordingDisplay) ShowFieldList(f []FieldInfo)     { d.fieldLists = append(d.fieldLists, f) }

func (d *recordingDisplay) ShowEndGame(losers, winners []PlayerStat) {
	d.ended = true
	d.losers = losers
	d.winners = winners
}

// contains reports whether any shown message contains substr
func (d *recordingDisplay) contains(substr string) bool {
	return d.count(substr) > 0
}

func (d *recordingDisplay) count(substr string) int {
	n := 0
	for _, m := range d.messages {
		if strings.Contains(m, substr) {
			n++
		}
	}
	return n
}

// fixedRolls returns its totals in order
type fixedRolls struct {
	t     *testing.T
	rolls []int
}

func (r *fixedRolls) Roll() int {
	require.NotEmpty(r.t, r.rolls, "dice script exhausted")
	n := r.rolls[0]
	r.rolls = r.rolls[1:]
	return n
}

// fixedChances returns its amounts in order
type fixedChances struct {
	t       *testing.T
	amounts []int
}

func (c *fixedChances) Draw() int {
	require.NotEmpty(c.t, c.amounts, "chance script exhausted")
	n := c.amounts[0]
	c.amounts = c.amounts[1:]
	return n
}

// recordingSubscriber keeps every event it receives
type recordingSubscriber struct {
	events []events.Event
}

func (s *recordingSubscriber) ID() string                  { return "recorder" }
func (s *recordingSubscriber) InterestedIn(_ string) bool  { return true }
func (s *recordingSubscriber) HandleEvent(ev events.Event) { s.events = append(s.events, ev) }

func (s *recordingSubscriber) ofType(eventType string) []events.Event {
	var out []events.Event
	for _, ev := range s.events {
		if ev.Type() == eventType {
			out = append(out, ev)
		}
	}
	return out
}

// testRules are the default rules without lap and start bonuses
func testRules(startingCash int) *Rules {
	r := DefaultRules()
	r.Economy = core.Economy{StartingCash: startingCash}
	r.StartFieldBonus = 0
	return &r
}

type engineFixture struct {
	engine   *Engine
	input    *scriptedInput
	display  *recordingDisplay
	recorder *recordingSubscriber
}

// newFixture builds an engine driven entirely by scripted collaborators
func newFixture(t *testing.T, cfg GameConfig, rolls, chances []int, input *scriptedInput) *engineFixture {
	t.Helper()
	if input == nil {
		input = &scriptedInput{}
	}
	display := &recordingDisplay{}
	recorder := &recordingSubscriber{}

	cfg.Input = input
	cfg.Display = display
	cfg.Dice = &fixedRolls{t: t, rolls: rolls}
	cfg.Chances = &fixedChances{t: t, amounts: chances}
	cfg.Logger = testutil.NopLogger()
	cfg.Subscribers = append(cfg.Subscribers, recorder)
	if cfg.GameID == "" {
		cfg.GameID = "test-game"
	}

	engine, err := NewEngine(context.Background(), cfg)
	require.NoError(t, err)
	return &engineFixture{engine: engine, input: input, display: display, recorder: recorder}
}

func (f *engineFixture) player(i int) *core.Player {
	return f.engine.gs.Players[i]
}
