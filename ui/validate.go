package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCardChoice interprets a card-selection line: a 1-based hand index,
// or the literal "d" to draw. The returned index is 0-based.
func ParseCardChoice(input string, handSize int) (index int, draw bool, err error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "d" {
		return 0, true, nil
	}
	n, convErr := strconv.Atoi(trimmed)
	if convErr != nil {
		return 0, false, fmt.Errorf("enter a number or 'd', not '%s'", input)
	}
	if n < 1 || n > handSize {
		return 0, false, fmt.Errorf("index %d is not in your hand (1-%d)", n, handSize)
	}
	return n - 1, false, nil
}

// ParseYesNo interprets a binary prompt answer, accepting y/yes/n/no in
// any case.
func ParseYesNo(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("please enter 'y' or 'n'")
	}
}
