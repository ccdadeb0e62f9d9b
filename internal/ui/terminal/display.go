package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/mitchelldurbincs/TextMonopoly/internal/game"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
	ColorOrange = "\033[38;5;208m"
	ColorBrown  = "\033[38;5;130m"
)

var groupColors = map[string]string{
	"brown":     ColorBrown,
	"grey":      ColorGray,
	"pink":      ColorPurple,
	"orange":    ColorOrange,
	"red":       ColorRed,
	"yellow":    ColorYellow,
	"green":     ColorGreen,
	"blue":      ColorBlue,
	"transport": ColorCyan,
	"power":     ColorWhite,
}

var playerColors = []string{ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPurple, ColorCyan}

var separator = strings.Repeat("-", 83)

// Display prints game progress as plain lines, optionally with ANSI colors
type Display struct {
	out   io.Writer
	color bool
}

func NewDisplay(w io.Writer, color bool) *Display {
	return &Display{out: w, color: color}
}

func (d *Display) paint(code, s string) string {
	if !d.color || code == "" {
		return s
	}
	return code + s + ColorReset
}

// ShowRoundSummary prints the round number, every player's position and
// cash, and a separator line.
func (d *Display) ShowRoundSummary(summary game.RoundSummary) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Round #: %d\n", summary.Round)
	sb.WriteString("Player stats:\n")
	for i, p := range summary.Players {
		name := d.paint(playerColors[i%len(playerColors)], p.Name)
		fmt.Fprintf(&sb, "%s: position: %d, %d\n", name, p.Position, p.Cash)
	}
	sb.WriteString(separator + "\n")
	io.WriteString(d.out, sb.String())
}

func (d *Display) ShowMessage(msg string) {
	fmt.Fprintln(d.out, msg)
}

// ShowFieldList prints the board numbered by position
func (d *Display) ShowFieldList(fields []game.FieldInfo) {
	var sb strings.Builder
	for _, f := range fields {
		if f.Color != "" {
			color := d.paint(groupColors[f.Color], f.Color)
			fmt.Fprintf(&sb, "%d. %s: price: %d, color: %s, %s\n", f.Position, f.Name, f.Price, color, f.State)
		} else {
			fmt.Fprintf(&sb, "%d. %s: price: %d, %s\n", f.Position, f.Name, f.Price, f.State)
		}
	}
	sb.WriteString(separator + "\n")
	io.WriteString(d.out, sb.String())
}

func (d *Display) ShowEndGame(losers, winners []game.PlayerStat) {
	var sb strings.Builder
	sb.WriteString(d.paint(ColorRed, "Losers:") + "\n")
	for _, p := range losers {
		fmt.Fprintf(&sb, "%s, balance: %d\n", p.Name, p.Cash)
	}
	sb.WriteString(d.paint(ColorGreen, "Winners:") + "\n")
	for _, p := range winners {
		fmt.Fprintf(&sb, "%s, balance: %d\n", p.Name, p.Cash)
	}
	sb.WriteString("Thank you for playing! :)\n")
	io.WriteString(d.out, sb.String())
}
