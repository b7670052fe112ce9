package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pushfour/game"
)

// HumanAgent reads moves from a terminal, asking again until it gets a legal one.
type HumanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHumanAgent(r io.Reader, w io.Writer) *HumanAgent {
	return &HumanAgent{in: bufio.NewScanner(r), out: w}
}

func (a *HumanAgent) Choose(board *game.Board) (game.LegalMove, error) {
	for {
		side, err := a.side()
		if err != nil {
			return game.LegalMove{}, err
		}
		offset, err := a.offset()
		if err != nil {
			return game.LegalMove{}, err
		}
		if m, ok := game.NewMove(side, offset).Annotated(board); ok {
			return m, nil
		}
		fmt.Fprintln(a.out, "Illegal move!")
	}
}

func (a *HumanAgent) side() (game.Side, error) {
	for {
		line, err := a.prompt("Side? ")
		if err != nil {
			return 0, err
		}
		side, err := game.ParseSide(line)
		if err == nil {
			return side, nil
		}
		fmt.Fprintln(a.out, "Invalid side!")
	}
}

func (a *HumanAgent) offset() (int, error) {
	for {
		line, err := a.prompt("Position? ")
		if err != nil {
			return 0, err
		}
		offset, err := strconv.Atoi(line)
		if err == nil && offset >= 0 {
			return offset, nil
		}
		fmt.Fprintln(a.out, "Invalid position!")
	}
}

func (a *HumanAgent) prompt(question string) (string, error) {
	fmt.Fprint(a.out, question)
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(a.in.Text()), nil
}
