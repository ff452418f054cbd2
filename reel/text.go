package reel

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawText writes text left-aligned in a field of width w, truncating with an ellipsis
// Returns the number of columns used
func DrawText(screen tcell.Screen, x, y, w int, text string, style tcell.Style) int {
	if w <= 0 {
		return 0
	}
	if runewidth.StringWidth(text) > w {
		text = runewidth.Truncate(text, w, "…")
	}

	// Zero-width runes are combining marks and ride on the preceding cell
	col := x
	var base rune
	var comb []rune
	baseCol := col
	flush := func() {
		if base != 0 {
			screen.SetContent(baseCol, y, base, comb, style)
		}
	}
	for _, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			if base != 0 {
				comb = append(comb, ch)
			}
			continue
		}
		flush()
		base, comb, baseCol = ch, nil, col
		col += cw
	}
	flush()
	return col - x
}

// DrawCentered writes text centred in a field of width w, truncating with an ellipsis
func DrawCentered(screen tcell.Screen, x, y, w int, text string, style tcell.Style) {
	width := runewidth.StringWidth(text)
	if width > w {
		width = w
	}
	DrawText(screen, x+(w-width)/2, y, w, text, style)
}
