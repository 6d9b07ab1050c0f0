package aoc2021day01

import (
	"strconv"

	"github.com/povarna/aoc2021/internal/aoc/utils"
	"github.com/povarna/aoc2021/internal/puzzle"
	"github.com/povarna/aoc2021/internal/seqs"
)

const day = 1

// measurementBits leaves two bits of headroom so a three-measurement
// window sum always fits in a uint.
const measurementBits = strconv.IntSize - 2

// Measurement is a single sonar depth reading.
type Measurement uint

// Parse reads one measurement per line. Lines that are not a
// non-negative decimal number below 2^measurementBits are skipped.
func Parse(input string) []Measurement {
	measurements := []Measurement{}
	for line := range utils.Lines(input) {
		n, err := utils.ToUint(line, measurementBits)
		if err != nil {
			continue
		}
		measurements = append(measurements, Measurement(n))
	}
	return measurements
}

func increased(window []Measurement) bool {
	return window[0] < window[1]
}

func sum(window []Measurement) Measurement {
	return seqs.Sum(seqs.From(window))
}

// Part1 counts the measurements that are larger than the previous one.
func Part1(input []Measurement) int {
	return seqs.Count(seqs.Filter(seqs.Windows(input, 2), increased))
}

// Part1Loop is Part1 as an indexed loop.
func Part1Loop(input []Measurement) int {
	count := 0
	for i := 0; i+1 < len(input); i++ {
		if input[i] < input[i+1] {
			count += 1
		}
	}
	return count
}

// Part1LoopRev is Part1Loop with the comparison operands swapped.
func Part1LoopRev(input []Measurement) int {
	count := 0
	for i := 0; i+1 < len(input); i++ {
		if input[i+1] > input[i] {
			count += 1
		}
	}
	return count
}

// Part2 counts the three-measurement window sums that are larger than
// the previous window sum.
func Part2(input []Measurement) int {
	sums := seqs.Map(seqs.Windows(input, 3), sum)
	increases := seqs.Filter(seqs.Pairs(sums), func(p seqs.Pair[Measurement, Measurement]) bool {
		return p.V1 < p.V2
	})
	return seqs.Count(increases)
}

// Part2Sums collects the window sums into a slice and counts them with Part1.
func Part2Sums(input []Measurement) int {
	windowSums := []Measurement{}
	for i := 0; i+2 < len(input); i++ {
		windowSums = append(windowSums, input[i]+input[i+1]+input[i+2])
	}

	return Part1(windowSums)
}

// Part2Comparison relies on consecutive windows sharing their two middle
// values, so only a[i] and a[i+3] decide whether the sum increased.
func Part2Comparison(input []Measurement) int {
	pairs := seqs.Zip(seqs.From(input), seqs.Skip(seqs.From(input), 3))
	return seqs.Count(seqs.Filter(pairs, func(p seqs.Pair[Measurement, Measurement]) bool {
		return p.V1 < p.V2
	}))
}

// Part2ComparisonLoop is Part2Comparison as an indexed loop.
func Part2ComparisonLoop(input []Measurement) int {
	count := 0
	for i := 0; i+3 < len(input); i++ {
		if input[i] < input[i+3] {
			count += 1
		}
	}
	return count
}

var variants = []struct {
	part    int
	variant string
	solve   func([]Measurement) int
}{
	{1, puzzle.DefaultVariant, Part1},
	{1, "loop", Part1Loop},
	{1, "loop-rev", Part1LoopRev},
	{2, puzzle.DefaultVariant, Part2},
	{2, "sums", Part2Sums},
	{2, "comparison", Part2Comparison},
	{2, "comparison-loop", Part2ComparisonLoop},
}

// Register adds every day 1 variant to the registry.
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
