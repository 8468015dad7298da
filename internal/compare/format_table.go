package compare

import (
	"fmt"
	"strings"

	"github.com/lexsplit/pdgo/internal/output"
)

// TableFormatter renders a comparison set as a console table.
type TableFormatter struct{}

// Format generates the formatted jurisdiction comparison table.
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(output.TitleStyle.Render("JURISDICTION COMPARISON") + "\n")
	sb.WriteString(strings.Repeat("=", 88) + "\n")
	sb.WriteString(fmt.Sprintf("Base jurisdiction: %s\n", compSet.BaseJurisdiction))
	sb.WriteString(fmt.Sprintf("Net marital estate: %s\n", output.FormatCurrency(compSet.NetMaritalEstate)))
	sb.WriteString("\n")

	nameWidth := 14
	numWidth := 16

	sb.WriteString(fmt.Sprintf("%-*s %-10s %8s %*s %*s %*s\n",
		nameWidth, "Jurisdiction",
		"Regime",
		"Factor",
		numWidth, "Spouse 1",
		numWidth, "Spouse 2",
		numWidth, "Equalization"))
	sb.WriteString(strings.Repeat("-", 88) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth))
	for i := range compSet.AlternativeResults {
		sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth))
	}
	sb.WriteString(strings.Repeat("=", 88) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nDIFFERENCE FROM BASE (spouse 1 share)\n")
		sb.WriteString(strings.Repeat("-", 88) + "\n")
		for _, alt := range compSet.AlternativeResults {
			symbol := "+"
			if alt.Share1DiffFromBase.IsNegative() {
				symbol = ""
			}
			sb.WriteString(fmt.Sprintf("  %-*s %s%s\n",
				nameWidth, alt.Jurisdiction,
				symbol, output.FormatCurrency(alt.Share1DiffFromBase)))
		}
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(r *JurisdictionResult, nameWidth, numWidth int) string {
	equalization := "-"
	if r.Equalization != nil {
		equalization = fmt.Sprintf("%s (%s)",
			output.FormatCurrency(r.Equalization.Amount), r.Equalization.FromSpouse)
	}
	return fmt.Sprintf("%-*s %-10s %8s %*s %*s %*s\n",
		nameWidth, r.Jurisdiction,
		string(r.Regime),
		r.EquityFactor.StringFixed(4),
		numWidth, output.FormatCurrency(r.Spouse1Share),
		numWidth, output.FormatCurrency(r.Spouse2Share),
		numWidth, equalization)
}
