package puzzle

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"
)

const DefaultVariant = "default"

var (
	ErrUnknownPuzzle   = errors.New("unknown puzzle")
	ErrDuplicatePuzzle = errors.New("puzzle already registered")
	ErrInvalidKey      = errors.New("invalid puzzle key")
)

// Key identifies one implementation of one part of a day's puzzle.
type Key struct {
	Day     int    `json:"day"`
	Part    int    `json:"part"`
	Variant string `json:"variant"`
}

func NewKey(day int, part int, variant string) Key {
	if variant == "" {
		variant = DefaultVariant
	}
	return Key{Day: day, Part: part, Variant: variant}
}

func (k Key) String() string {
	return fmt.Sprintf("day%02d/part%d/%s", k.Day, k.Part, k.Variant)
}

func (k Key) Validate() error {
	if k.Day < 1 || k.Day > 25 {
		return fmt.Errorf("%w: day %d out of range 1-25", ErrInvalidKey, k.Day)
	}
	if k.Part != 1 && k.Part != 2 {
		return fmt.Errorf("%w: part %d must be 1 or 2", ErrInvalidKey, k.Part)
	}
	if k.Variant == "" {
		return fmt.Errorf("%w: empty variant", ErrInvalidKey)
	}
	return nil
}

// SolveFunc turns raw puzzle input into an answer.
type SolveFunc func(input string) int

// Registry maps puzzle keys to solvers. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	solvers map[Key]SolveFunc
}

func NewRegistry() *Registry {
	return &Registry{
		solvers: make(map[Key]SolveFunc),
	}
}

func (r *Registry) Register(key Key, fn SolveFunc) error {
	if err := key.Validate(); err != nil {
		return err
	}
	if fn == nil {
		return fmt.Errorf("%w: nil solver for %s", ErrInvalidKey, key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.solvers[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePuzzle, key)
	}
	r.solvers[key] = fn
	return nil
}

func (r *Registry) Lookup(key Key) (SolveFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.solvers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPuzzle, key)
	}
	return fn, nil
}

// Keys returns every registered key ordered by day, part and variant.
func (r *Registry) Keys() []Key {
	r.mu.RLock()
	keys := make([]Key, 0, len(r.solvers))
	for k := range r.solvers {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	slices.SortFunc(keys, func(a, b Key) int {
		return cmp.Or(
			cmp.Compare(a.Day, b.Day),
			cmp.Compare(a.Part, b.Part),
			cmp.Compare(a.Variant, b.Variant),
		)
	})
	return keys
}

func (r *Registry) Solve(key Key, input string) (int, error) {
	fn, err := r.Lookup(key)
	if err != nil {
		return 0, err
	}
	return fn(input), nil
}
