// Package cli provides terminal interaction utilities including banners, dividers, and user prompts.
//
// Banner and Divider functions create formatted output using Unicode box-drawing characters.
// Prompt functions provide interactive user input with validation.
// MultiSelect and SelectMenu enable interactive selection menus.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"unicode"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	dividerLeft    = "┠"
	dividerMiddle  = "─"
	dividerRight   = "┨"
	ellipsis       = "…"
)

const (
	AlignLeft = iota
	AlignCenter
	AlignRight
)

const (
	bannerPadding   = 2
	dividerPadding  = 2
	truncateReserve = 1
	halfDivisor     = 2
)

const DefaultTerminalWidth = 80

// DividerAutoWidth creates a horizontal divider line that spans the terminal width.
// Auto-detects the terminal width or falls back to DefaultTerminalWidth if detection fails.
func DividerAutoWidth() string {
	_, w, e := TerminalDimensions()
	if e != nil || w == 0 {
		w = DefaultTerminalWidth
	}

	return Divider(int(w)) //nolint:gosec // Terminal width is bounded by screen size, no overflow risk
}

// BannerAutoWidth creates a formatted banner with auto-detected terminal width.
// The banner is drawn with Unicode box characters and can align text left, center, or right.
// Parameters:
//   - s: The text to display (can include newlines for multi-line banners)
//   - a: Alignment constant (AlignLeft, AlignCenter, or AlignRight)
func BannerAutoWidth(s string, a int) string {
	_, w, e := TerminalDimensions()
	if e != nil || w == 0 {
		w = DefaultTerminalWidth
	}

	return Banner(s, int(w), a) //nolint:gosec // Terminal width is bounded by screen size, no overflow risk
}

// Divider creates a horizontal divider line with the specified width.
// Uses Unicode box-drawing characters (┠─┨).
func Divider(width int) string {
	return fmt.Sprintf("%s%s%s\n", dividerLeft, strings.Repeat(dividerMiddle, width-dividerPadding), dividerRight)
}

// Banner creates a formatted text banner with the specified width and alignment.
// The banner is drawn with Unicode box characters (╒═╕ for top, └─┘ for bottom, │ for sides).
// Text longer than the width is truncated with an ellipsis (…).
// Parameters:
//   - s: The text to display (can include newlines for multi-line banners)
//   - width: The total width of the banner in characters
//   - alignment: Alignment constant (AlignLeft, AlignCenter, or AlignRight)
func Banner(s string, width int, alignment int) string {
	lines := getLines(s)
	if len(lines) == 0 {
		return ""
	}

	if width <= 0 {
		return ""
	}

	dividerTop := fmt.Sprintf("%s%s%s", boxTopLeft, strings.Repeat(boxTop, width-bannerPadding), boxTopRight)
	parts := []string{dividerTop}

	for _, l := range lines {
		var line string

		switch alignment {
		case AlignCenter:
			line = padCenter(l, width-bannerPadding)
		case AlignLeft:
			line = padLeft(l, width-bannerPadding)
		case AlignRight:
			line = padRight(l, width-bannerPadding)
		default:
			return ""
		}

		parts = append(parts, fmt.Sprintf("%s%s%s", boxSide, line, boxSide))
	}

	dividerBottom := fmt.Sprintf("%s%s%s", boxBottomLeft, strings.Repeat(boxBottom, width-bannerPadding), boxBottomRight)
	parts = append(parts, dividerBottom)

	return strings.Join(parts, "\n")
}

// getLines splits text into lines, normalizing line endings.
func getLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	return strings.Split(s, "\n")
}

// countGraphic counts the number of visible (graphic) characters in a string.
// This is used for accurate width calculation when padding, as it ignores control characters.
func countGraphic(s string) int {
	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}
	}

	return count
}

// truncateGraphic keeps the first n-1 runes of s when s has at least n runes,
// and all of s otherwise. The returned count is n in the first case (the runes
// kept plus one, the slot the callers fill with an ellipsis) and the number of
// runes kept in the second. Unlike countGraphic it counts every rune, graphic
// or not.
func truncateGraphic(s string, n int) (string, int) {
	var out strings.Builder

	count := 0

	for _, r := range s {
		count++

		if count >= n {
			break
		}

		out.WriteRune(r)
	}

	return out.String(), count
}

// padCenter pads text to the specified width with center alignment.
// Text longer than width is truncated with an ellipsis.
func padCenter(text string, width int) string {
	length := countGraphic(text)
	if length == width {
		return text
	}

	str := text
	if length > width {
		str, length = truncateGraphic(str, width-truncateReserve)
		str += ellipsis
	}

	diff := width - length
	leftPad := diff / halfDivisor
	rightPad := diff - leftPad

	return fmt.Sprintf("%s%s%s", strings.Repeat(" ", leftPad), str, strings.Repeat(" ", rightPad))
}

// padLeft pads text to the specified width with left alignment (text on left, padding on right).
// Text longer than width is truncated with an ellipsis.
func padLeft(text string, width int) string {
	length := countGraphic(text)
	if length == width {
		return text
	}

	str := text
	if length > width {
		str, length = truncateGraphic(str, width-truncateReserve)
		str += ellipsis
	}

	return fmt.Sprintf("%s%s", str, strings.Repeat(" ", width-length))
}

// padRight pads text to the specified width with right alignment (padding on left, text on right).
// Text longer than width is truncated with an ellipsis.
func padRight(text string, width int) string {
	length := countGraphic(text)
	if length == width {
		return text
	}

	str := text
	if length > width {
		str, length = truncateGraphic(str, width-truncateReserve)
		str += ellipsis
	}

	return fmt.Sprintf("%s%s", strings.Repeat(" ", width-length), str)
}

// size executes the 'stty size' command to get terminal dimensions.
// Returns a string in the format "rows columns".
func size() (string, error) {
	f, e := os.Open("/dev/tty")
	if e != nil {
		return "", e
	}
	defer f.Close()

	cmd := exec.CommandContext(context.Background(), "stty", "size")
	cmd.Stdin = f
	out, err := cmd.Output()

	return string(out), err
}

// parse parses the output from 'stty size' command.
// Expects input in the format "rows columns" and returns (rows, columns, error).
func parse(input string) (uint, uint, error) {
	parts := strings.Split(input, " ")

	rows, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}

	cols, err := strconv.Atoi(strings.Replace(parts[1], "\n", "", 1))
	if err != nil {
		return 0, 0, err
	}

	return uint(rows), uint(cols), nil //nolint:gosec // Terminal dimensions are small positive integers, no overflow risk
}

// TerminalDimensions returns (rows, cols, err).
func TerminalDimensions() (uint, uint, error) {
	output, err := size()
	if err != nil {
		return 0, 0, err
	}

	return parse(output)
}
