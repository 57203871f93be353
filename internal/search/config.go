package search

import (
	"fmt"

	"github.com/telepair/lifesearch/internal/rule"
	"github.com/telepair/lifesearch/internal/symmetry"
)

// SearchOrder selects which axis the guess/deduction front advances along.
type SearchOrder int

const (
	// SearchOrderAuto lets Config.check pick an order from the world's
	// effective (post-symmetry) dimensions, preferring the shortest edge.
	SearchOrderAuto SearchOrder = iota
	RowFirst
	ColumnFirst
	Diagonal
)

func (o SearchOrder) String() string {
	switch o {
	case RowFirst:
		return "row"
	case ColumnFirst:
		return "column"
	case Diagonal:
		return "diagonal"
	default:
		return "auto"
	}
}

// NewState is the policy used to pick a state when guess() needs one.
type NewState int

const (
	NewStateDead NewState = iota
	NewStateAlive
	NewStateRandom
)

// Config describes one search: the rule, bounding box, period, translation,
// and the optional symmetry/transformation/ordering/population constraints.
type Config struct {
	RuleStr string `json:"rule"`

	Width  int `json:"width"`
	Height int `json:"height"`
	Period int `json:"period"`
	DX     int `json:"dx"`
	DY     int `json:"dy"`

	// DiagonalWidth, when non-nil, excludes cells with |x-y| >= *DiagonalWidth.
	DiagonalWidth *int `json:"diagonal_width,omitempty"`

	Symmetry       symmetry.Symmetry       `json:"symmetry"`
	Transformation symmetry.Transformation `json:"transformation"`

	// SearchOrder, when SearchOrderAuto, is resolved by check().
	SearchOrder SearchOrder `json:"search_order"`

	NewState NewState `json:"new_state"`

	// Seed, when non-nil, makes the guess RNG deterministic.
	Seed *uint64 `json:"seed,omitempty"`

	// MaxPopulation, when non-nil, bounds the minimum-across-generations
	// population.
	MaxPopulation *int `json:"max_population,omitempty"`

	ReduceMaxPopulation bool `json:"reduce_max_population"`
}

// NewConfig returns a Config with the same defaults the original search
// tool uses: no translation, C1 symmetry, identity transformation, always-
// Dead guesses, auto search order.
func NewConfig(ruleStr string, width, height, period int) Config {
	return Config{
		RuleStr:        ruleStr,
		Width:          width,
		Height:         height,
		Period:         period,
		Symmetry:       symmetry.C1,
		Transformation: symmetry.R0,
		SearchOrder:    SearchOrderAuto,
		NewState:       NewStateDead,
	}
}

// requiresSquare reports whether any configured constraint forces a square
// world.
func (c Config) requiresSquare() bool {
	return c.Symmetry.RequiresSquare() ||
		c.Transformation.RequiresSquare() ||
		c.DiagonalWidth != nil ||
		c.SearchOrder == Diagonal
}

func (c Config) requiresNoDiagonalWidth() bool {
	return c.Symmetry.RequiresNoDiagonalWidth() || c.Transformation.RequiresNoDiagonalWidth()
}

// check validates c and resolves SearchOrderAuto into a concrete order,
// returning the normalized Config.
func (c Config) check() (Config, error) {
	if c.Width == 0 || c.Height == 0 || c.Period == 0 || (c.DiagonalWidth != nil && *c.DiagonalWidth == 0) {
		return c, ErrInvalidSize
	}
	if c.MaxPopulation != nil && *c.MaxPopulation == 0 {
		return c, ErrInvalidMaxPopulation
	}
	if c.Width != c.Height && c.requiresSquare() {
		return c, ErrNotSquare
	}
	if c.DiagonalWidth != nil && c.requiresNoDiagonalWidth() {
		return c, ErrHasDiagonalWidth
	}
	if !c.Symmetry.TranslationIsValid(c.DX, c.DY) {
		return c, ErrInvalidTranslation
	}

	if c.SearchOrder == SearchOrderAuto {
		width := c.Width
		if c.Symmetry == symmetry.D2H || c.Symmetry == symmetry.D4O || c.Symmetry == symmetry.D8 {
			width = (c.Width + 1) / 2
		}
		height := c.Height
		if c.Symmetry == symmetry.D2V || c.Symmetry == symmetry.D4O || c.Symmetry == symmetry.D8 {
			height = (c.Height + 1) / 2
		}

		var diagonalWidth *int
		if c.DiagonalWidth != nil {
			switch c.Symmetry {
			case symmetry.D2D, symmetry.D4X, symmetry.D8:
				diagonalWidth = c.DiagonalWidth
			default:
				d := 2*(*c.DiagonalWidth) + 1
				diagonalWidth = &d
			}
		}

		switch {
		case diagonalWidth != nil && *diagonalWidth < width && *diagonalWidth < height:
			c.SearchOrder = Diagonal
		case width < height:
			c.SearchOrder = RowFirst
		case width > height:
			c.SearchOrder = ColumnFirst
		default:
			if abs(c.DX) < abs(c.DY) {
				c.SearchOrder = RowFirst
			} else {
				c.SearchOrder = ColumnFirst
			}
		}
	}

	return c, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// parseRule resolves Config.RuleStr into a rule.Table, wrapping any parse
// error as ErrInvalidRule.
func (c Config) parseRule() (*rule.Table, error) {
	table, err := rule.Parse(c.RuleStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}
	return table, nil
}
