package aoc2021day02

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/povarna/aoc2021/internal/aoc/utils"
)

type Direction int

const (
	Forward Direction = iota
	Down
	Up
)

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "forward":
		return Forward, nil
	case "down":
		return Down, nil
	case "up":
		return Up, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Capture implements participle.Capture.
func (d *Direction) Capture(values []string) error {
	parsed, err := ParseDirection(values[0])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Instruction is a single "<direction> <units>" command.
type Instruction struct {
	Direction Direction
	Units     uint
}

// unitsBits keeps units within the non-negative range of int.
const unitsBits = strconv.IntSize - 1

// Fields are separated by exactly one space. Anything after the units and
// a following space is ignored, and any other character sequence lexes as a
// Word, which the grammar then rejects.
var instructionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\+?[0-9]+`},
	{Name: "Sep", Pattern: ` `},
	{Name: "Word", Pattern: `[^ ]+`},
})

type instructionLine struct {
	Direction Direction `parser:"@Word Sep"`
	Units     string    `parser:"@Int (Sep (Word | Int | Sep)*)?"`
}

var parser = participle.MustBuild[instructionLine](participle.Lexer(instructionLexer))

// ParseInstruction parses a single "<direction> <units>" line.
func ParseInstruction(line string) (Instruction, error) {
	parsed, err := parser.ParseString("", line)
	if err != nil {
		return Instruction{}, err
	}

	units, err := utils.ToUint(parsed.Units, unitsBits)
	if err != nil {
		return Instruction{}, fmt.Errorf("invalid units %q: %w", parsed.Units, err)
	}

	return Instruction{Direction: parsed.Direction, Units: units}, nil
}

// Parse reads one instruction per line. Lines that do not match the
// instruction grammar are skipped.
func Parse(input string) []Instruction {
	instructions := []Instruction{}
	for line := range utils.Lines(input) {
		instruction, err := ParseInstruction(line)
		if err != nil {
			continue
		}
		instructions = append(instructions, instruction)
	}
	return instructions
}
