package colour

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Colour identifies one of the four playable card colours, or Black for a
// wild card that has not been assigned a colour yet.
type Colour int

const (
	Black Colour = iota
	Red
	Green
	Blue
	Yellow
)

// Stdout understands ANSI colour codes on Windows too.
var Stdout io.Writer = color.Output

var names = map[Colour]string{
	Black:  "BLACK",
	Red:    "RED",
	Green:  "GREEN",
	Blue:   "BLUE",
	Yellow: "YELLOW",
}

var paints = map[Colour]func(string, ...interface{}) string{
	Black:  color.New(color.FgHiWhite).SprintfFunc(),
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
}

// Canonical returns the four playable colours in their fixed order.
// The first element doubles as the default when no preference exists.
func Canonical() []Colour {
	return []Colour{Red, Green, Blue, Yellow}
}

func (c Colour) Name() string {
	name, ok := names[c]
	if !ok {
		return fmt.Sprintf("COLOUR(%d)", int(c))
	}
	return name
}

// Paint renders text in this colour's terminal escape codes.
func (c Colour) Paint(text string) string {
	paint, ok := paints[c]
	if !ok {
		return text
	}
	return paint(text)
}

func (c Colour) Paintf(format string, args ...interface{}) string {
	return c.Paint(fmt.Sprintf(format, args...))
}

func (c Colour) String() string {
	return c.Paint(c.Name())
}

// ByName resolves a playable colour from its name, case-insensitively.
// Black is not reachable by name; it is never a valid player choice.
func ByName(name string) (Colour, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, c := range Canonical() {
		if names[c] == upper {
			return c, nil
		}
	}
	return Black, fmt.Errorf("invalid colour '%s'", name)
}

// ByChoice resolves a playable colour from free-text input: either a 1-4
// numeral indexing the canonical order, or a colour name.
func ByChoice(input string) (Colour, error) {
	trimmed := strings.TrimSpace(input)
	if n, err := strconv.Atoi(trimmed); err == nil {
		canonical := Canonical()
		if n < 1 || n > len(canonical) {
			return Black, fmt.Errorf("colour number %d out of range 1-%d", n, len(canonical))
		}
		return canonical[n-1], nil
	}
	return ByName(trimmed)
}
