package rule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRule and ErrUnsupportedRule are returned by Parse.
var (
	ErrInvalidRule     = errors.New("rule: invalid rule string")
	ErrUnsupportedRule = errors.New("rule: unsupported rule")
)

// Parse accepts two rule string grammars:
//
//   - life-like: "B<digits>/S<digits>", e.g. "B3/S23" (Conway's Game of
//     Life); Moore neighborhood, radius 1.
//   - generalized outer-totalistic: "R<radius>,C2,S<digits>,B<digits>,N<type>",
//     e.g. "R3,C2,S2,B3,N+" (N+ selects the Cross neighborhood; NM selects
//     Moore; N@ selects VonNeumann).
//
// Only two-state (C2) rules are supported; B0 rules and neighborhoods
// larger than MaxNeighborhoodSize are rejected as ErrUnsupportedRule.
func Parse(s string) (*Table, error) {
	s = strings.TrimSpace(s)

	if strings.Contains(s, "/") {
		return parseLifeLike(s)
	}
	if strings.HasPrefix(s, "R") {
		return parseGeneralized(s)
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidRule, s)
}

func parseLifeLike(s string) (*Table, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRule, s)
	}
	bPart, sPart := parts[0], parts[1]
	if !strings.HasPrefix(bPart, "B") || !strings.HasPrefix(sPart, "S") {
		// Also accept "S23/B3" order.
		if strings.HasPrefix(bPart, "S") && strings.HasPrefix(sPart, "B") {
			bPart, sPart = sPart, bPart
		} else {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRule, s)
		}
	}

	born, err := parseDigits(strings.TrimPrefix(bPart, "B"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidRule, s, err)
	}
	survive, err := parseDigits(strings.TrimPrefix(sPart, "S"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidRule, s, err)
	}

	if err := validateBornSurvive(born); err != nil {
		return nil, err
	}

	return NewTable(s, Moore, 1, born, survive)
}

func parseGeneralized(s string) (*Table, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 5 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRule, s)
	}

	var radius, cellCount int
	var bornField, surviveField, neighborhoodField string
	var haveRadius, haveCell, haveB, haveS, haveN bool

	for _, f := range fields {
		switch {
		case strings.HasPrefix(f, "R"):
			v, err := strconv.Atoi(strings.TrimPrefix(f, "R"))
			if err != nil {
				return nil, fmt.Errorf("%w: %q: bad radius", ErrInvalidRule, s)
			}
			radius, haveRadius = v, true
		case strings.HasPrefix(f, "C"):
			v, err := strconv.Atoi(strings.TrimPrefix(f, "C"))
			if err != nil {
				return nil, fmt.Errorf("%w: %q: bad cell count", ErrInvalidRule, s)
			}
			cellCount, haveCell = v, true
		case strings.HasPrefix(f, "B"):
			bornField, haveB = strings.TrimPrefix(f, "B"), true
		case strings.HasPrefix(f, "S"):
			surviveField, haveS = strings.TrimPrefix(f, "S"), true
		case strings.HasPrefix(f, "N"):
			neighborhoodField, haveN = strings.TrimPrefix(f, "N"), true
		default:
			return nil, fmt.Errorf("%w: %q: unrecognized field %q", ErrInvalidRule, s, f)
		}
	}
	if !haveRadius || !haveCell || !haveB || !haveS || !haveN {
		return nil, fmt.Errorf("%w: %q: missing field", ErrInvalidRule, s)
	}
	if cellCount != 2 {
		return nil, fmt.Errorf("%w: %q: only C2 (two-state) rules are supported", ErrUnsupportedRule, s)
	}

	neighborhoodType, err := parseNeighborhoodType(neighborhoodField)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidRule, s, err)
	}

	born, err := parseDigits(bornField)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidRule, s, err)
	}
	survive, err := parseDigits(surviveField)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidRule, s, err)
	}

	if err := validateBornSurvive(born); err != nil {
		return nil, err
	}

	table, err := NewTable(s, neighborhoodType, radius, born, survive)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnsupportedRule, s, err)
	}
	return table, nil
}

func parseNeighborhoodType(s string) (NeighborhoodType, error) {
	switch s {
	case "M":
		return Moore, nil
	case "@":
		return VonNeumann, nil
	case "+":
		return Cross, nil
	default:
		return 0, fmt.Errorf("unknown neighborhood type %q", s)
	}
}

// parseDigits reads a string of single decimal digits into a count list in
// the order given, e.g. "23" -> [2, 3].
func parseDigits(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	out := make([]int, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("invalid digit %q", r)
		}
		out = append(out, int(r-'0'))
	}
	return out, nil
}

func validateBornSurvive(born []int) error {
	if containsInt(born, 0) {
		return fmt.Errorf("%w: B0 rules are not supported", ErrUnsupportedRule)
	}
	return nil
}
