package aoc2021day02

import (
	"github.com/povarna/aoc2021/internal/puzzle"
	"github.com/povarna/aoc2021/internal/seqs"
)

const day = 2

// Position tracks the submarine. Aim moves exactly like depth does when
// down/up are read as direct depth changes, which is what part 1 needs.
type Position struct {
	Horizontal int
	Vertical   int
	Aim        int
}

// Update returns the position after applying the instruction.
func (p Position) Update(instruction Instruction) Position {
	units := int(instruction.Units)
	switch instruction.Direction {
	case Forward:
		p.Horizontal += units
		p.Vertical += p.Aim * units
	case Down:
		p.Aim += units
	case Up:
		p.Aim -= units
	}
	return p
}

// Apply updates the position in place.
func (p *Position) Apply(instruction Instruction) {
	units := int(instruction.Units)
	switch instruction.Direction {
	case Forward:
		p.Horizontal += units
		p.Vertical += p.Aim * units
	case Down:
		p.Aim += units
	case Up:
		p.Aim -= units
	}
}

// Part1Result multiplies the horizontal position by the aim, which is the
// depth under the part 1 reading of the instructions.
func (p Position) Part1Result() int {
	return p.Horizontal * p.Aim
}

// Part2Result multiplies the horizontal position by the depth.
func (p Position) Part2Result() int {
	return p.Horizontal * p.Vertical
}

func fold(instructions []Instruction) Position {
	return seqs.Fold(seqs.From(instructions), Position{}, Position.Update)
}

func walk(instructions []Instruction) Position {
	var state Position
	for _, i := range instructions {
		state.Apply(i)
	}
	return state
}

// Part1 folds the instructions with Update and returns Part1Result.
func Part1(instructions []Instruction) int {
	return fold(instructions).Part1Result()
}

// Part1Mutable is Part1 applying each instruction in place.
func Part1Mutable(instructions []Instruction) int {
	return walk(instructions).Part1Result()
}

// Part2 folds the instructions with Update and returns Part2Result.
func Part2(instructions []Instruction) int {
	return fold(instructions).Part2Result()
}

// Part2Mutable is Part2 applying each instruction in place.
func Part2Mutable(instructions []Instruction) int {
	return walk(instructions).Part2Result()
}

var variants = []struct {
	part    int
	variant string
	solve   func([]Instruction) int
}{
	{1, puzzle.DefaultVariant, Part1},
	{1, "mutable", Part1Mutable},
	{2, puzzle.DefaultVariant, Part2},
	{2, "mutable", Part2Mutable},
}

// Register adds every day 2 variant to the registry.
func Register(r *puzzle.Registry) error {
	for _, v := range variants {
		solve := v.solve
		err := r.Register(puzzle.NewKey(day, v.part, v.variant), func(input string) int {
			return solve(Parse(input))
		})
		if err != nil {
			return err
		}
	}
	return nil
}
