package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	ColorPrimary = lipgloss.Color("63")
	ColorSuccess = lipgloss.Color("42")
	ColorDanger  = lipgloss.Color("196")
	ColorMuted   = lipgloss.Color("241")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	PositiveStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	NegativeStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)
)

// FormatCurrency renders a decimal amount as a dollar figure with cents.
func FormatCurrency(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// StyleAmount renders a currency figure colored by sign.
func StyleAmount(d decimal.Decimal) string {
	s := FormatCurrency(d)
	if d.IsNegative() {
		return NegativeStyle.Render(s)
	}
	return PositiveStyle.Render(s)
}
