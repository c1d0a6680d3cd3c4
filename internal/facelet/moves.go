package facelet

import (
	"fmt"
	"strings"
)

// Move is a single face turn on the facelet cube: which face, and
// whether it turns clockwise, counter-clockwise or a double (180°)
// turn. There are no wide, slice (M/E/S) or whole-cube rotation
// (x/y/z) variants: nothing in this repo's CLI, CFEN conversion or
// scramble generator asks for them, and this cube only ever turns the
// single outer layer of a named face, on any cube size.
type Move struct {
	Face      Face
	Clockwise bool
	Double    bool
}

// quarterTurns returns how many clockwise quarter turns m represents.
func (m Move) quarterTurns() int {
	switch {
	case m.Double:
		return 2
	case m.Clockwise:
		return 1
	default:
		return 3
	}
}

// String renders a move in standard notation: "R", "R'", "R2".
func (m Move) String() string {
	switch {
	case m.Double:
		return m.Face.String() + "2"
	case m.Clockwise:
		return m.Face.String()
	default:
		return m.Face.String() + "'"
	}
}

var faceByLetter = map[byte]Face{
	'F': Front,
	'B': Back,
	'L': Left,
	'R': Right,
	'U': Up,
	'D': Down,
}

// ParseMove parses a single move token ("R", "R'", "R2"). Any suffix
// other than "'" or "2" is an error, as are wide ("Rw"), slice ("M",
// "E", "S") and whole-cube rotation ("x", "y", "z") tokens, none of
// which this cube supports.
func ParseMove(token string) (Move, error) {
	if token == "" {
		return Move{}, fmt.Errorf("empty move token")
	}
	face, ok := faceByLetter[token[0]]
	if !ok {
		return Move{}, fmt.Errorf("unrecognized face letter %q in move %q", token[0], token)
	}
	switch token[1:] {
	case "":
		return Move{Face: face, Clockwise: true}, nil
	case "'":
		return Move{Face: face, Clockwise: false}, nil
	case "2":
		return Move{Face: face, Clockwise: true, Double: true}, nil
	default:
		return Move{}, fmt.Errorf("unrecognized move modifier in %q", token)
	}
}

// ParseMoves parses a whitespace-separated sequence of move tokens. The
// first invalid token aborts the whole parse.
func ParseMoves(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// ParseScramble is ParseMoves under the name the CLI's scramble-taking
// commands (solve, twist, show, pdb, cfen generate) and the web handler
// call.
func ParseScramble(s string) ([]Move, error) {
	return ParseMoves(s)
}

// ApplyMove turns the single outer layer of move.Face by move's amount.
func (c *Cube) ApplyMove(move Move) {
	applyPermutation(c, facePermutation(c.Size, move.Face, move.quarterTurns()))
}

// ApplyMoves applies a sequence of moves in order.
func (c *Cube) ApplyMoves(moves []Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}
