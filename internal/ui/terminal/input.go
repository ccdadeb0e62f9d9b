package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/TextMonopoly/internal/common"
)

// ErrInputClosed is returned once the input stream has no more lines
var ErrInputClosed = errors.New("input closed")

// Input reads answers line by line and asks again until an answer is valid
type Input struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewInput reads answers from r and writes prompts to w
func NewInput(r io.Reader, w io.Writer) *Input {
	return &Input{scanner: bufio.NewScanner(r), out: w}
}

// readLine prints prompt and returns the next line without surrounding spaces
func (in *Input) readLine(prompt string) (string, error) {
	fmt.Fprint(in.out, prompt)
	if !in.scanner.Scan() {
		if err := in.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(in.scanner.Text()), nil
}

// askNumber repeats prompt until the answer is a plain number in [min, max]
func (in *Input) askNumber(prompt string, min, max int) (int, error) {
	full := fmt.Sprintf("%s(%d-%d)", prompt, min, max)
	for {
		line, err := in.readLine(full)
		if err != nil {
			return 0, err
		}
		if !isDigits(line) {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil || !common.InRange(n, min, max) {
			continue
		}
		return n, nil
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (in *Input) AskPlayerCount(min, max int) (int, error) {
	return in.askNumber("Welcome to Monopoly! Enter the number of players: ", min, max)
}

// AskMenuChoice accepts only numbers listed in options
func (in *Input) AskMenuChoice(prompt string, options []int) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("menu has no options")
	}
	lo, hi := common.MinMax(options)
	for {
		n, err := in.askNumber(prompt, lo, hi)
		if err != nil {
			return 0, err
		}
		if common.ContainsInt(options, n) {
			return n, nil
		}
	}
}

// AskYesNo accepts y, Y, n and N
func (in *Input) AskYesNo(prompt string) (bool, error) {
	for {
		line, err := in.readLine(prompt + "(y/n)")
		if err != nil {
			return false, err
		}
		switch line {
		case "y", "Y":
			return true, nil
		case "n", "N":
			return false, nil
		}
	}
}

func (in *Input) AskHouseCount(max int) (int, error) {
	return in.askNumber(fmt.Sprintf("Enter the number of houses (maximum: %d): ", max), 1, max)
}
