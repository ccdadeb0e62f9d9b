package game

// Input reads player decisions. Implementations retry invalid answers until
// they get a valid one; the only error is the input source going away.
type Input interface {
	// AskPlayerCount returns a number of players in [min, max]
	AskPlayerCount(min, max int) (int, error)
	// AskMenuChoice returns one of options
	AskMenuChoice(prompt string, options []int) (int, error)
	// AskYesNo returns true for yes
	AskYesNo(prompt string) (bool, error)
	// AskHouseCount returns a number of houses in [1, max]
	AskHouseCount(max int) (int, error)
}

// Display shows game progress to the players
type Display interface {
	ShowRoundSummary(summary RoundSummary)
	ShowMessage(msg string)
	ShowFieldList(fields []FieldInfo)
	ShowEndGame(losers, winners []PlayerStat)
}

// PlayerStat is a snapshot of one player for summaries
type PlayerStat struct {
	Name     string
	Position int
	Cash     int
}

// RoundSummary is reported after every round
type RoundSummary struct {
	Round   int
	Players []PlayerStat
}

// FieldInfo describes one board field for the field listing
type FieldInfo struct {
	Position int
	Name     string
	// Price is zero for fields that cannot be bought
	Price int
	Color string
	State string
}

// Roller produces dice totals
type Roller interface {
	Roll() int
}

// ChanceDrawer produces signed chance amounts: positive debits, negative credits
type ChanceDrawer interface {
	Draw() int
}

// Menu options offered at the start of every turn
const (
	MenuRoll   = 0
	MenuFields = 1
	MenuQuit   = 2
)

// MenuOptions lists the turn menu choices in display order
var MenuOptions = []int{MenuRoll, MenuFields, MenuQuit}

// MenuDescription is shown before every menu prompt
const MenuDescription = "ACTIONS: 0 - roll dice and move, 1 - print field layout, 2 - quit game"
