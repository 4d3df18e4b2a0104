package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/amort/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// Bar is one row of a horizontal bar list.
type Bar struct {
	Label string
	Value float64
	Text  string // formatted value shown next to the bar
	Color lipgloss.Color
}

// BarList renders labeled horizontal bars scaled to the largest value.
// width is the full row width available, labelW the fixed label column.
func BarList(bars []Bar, width, labelW int) string {
	if len(bars) == 0 {
		return ""
	}
	t := theme.Active

	peak := 0.0
	textW := 0
	for _, bar := range bars {
		if bar.Value > peak {
			peak = bar.Value
		}
		if len(bar.Text) > textW {
			textW = len(bar.Text)
		}
	}
	if peak == 0 {
		peak = 1
	}

	barMax := width - labelW - textW - 2
	if barMax < 1 {
		barMax = 1
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	textStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for _, bar := range bars {
		barLen := int(bar.Value / peak * float64(barMax))
		if barLen < 1 && bar.Value > 0 {
			barLen = 1
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-*s", labelW, bar.Label)),
			textStyle.Render(fmt.Sprintf("%*s", textW, bar.Text)),
			lipgloss.NewStyle().Foreground(bar.Color).Render(strings.Repeat("█", barLen)))
	}
	return b.String()
}

// SplitBar renders a single proportional two-segment bar, for showing
// how an amount divides between two parts (e.g. interest vs principal).
func SplitBar(a, b float64, colorA, colorB lipgloss.Color, width int) string {
	total := a + b
	if total <= 0 || width < 2 {
		return ""
	}

	lenA := int(a / total * float64(width))
	if lenA < 1 && a > 0 {
		lenA = 1
	}
	if lenA > width {
		lenA = width
	}
	lenB := width - lenA

	return lipgloss.NewStyle().Foreground(colorA).Render(strings.Repeat("█", lenA)) +
		lipgloss.NewStyle().Foreground(colorB).Render(strings.Repeat("█", lenB))
}
