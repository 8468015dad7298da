package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lexsplit/pdgo/internal/domain"
)

// ReportGenerator renders division results in various formats.
type ReportGenerator struct {
	Writer io.Writer
}

// NewReportGenerator creates a report generator writing to w.
func NewReportGenerator(w io.Writer) *ReportGenerator {
	return &ReportGenerator{Writer: w}
}

// GenerateReport renders the result in the requested format.
func (rg *ReportGenerator) GenerateReport(result *domain.DivisionResult, format string) error {
	switch format {
	case "console":
		return rg.GenerateConsoleReport(result)
	case "json":
		return rg.GenerateJSONReport(result)
	case "csv":
		return rg.GenerateCSVReport(result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// GenerateConsoleReport writes a human-readable division summary.
func (rg *ReportGenerator) GenerateConsoleReport(result *domain.DivisionResult) error {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("PROPERTY DIVISION ANALYSIS") + "\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("%s %s (%s distribution)\n",
		LabelStyle.Render("Jurisdiction:"), result.Jurisdiction, result.Regime))
	sb.WriteString(fmt.Sprintf("%s %s\n",
		LabelStyle.Render("Equity factor:"), result.EquityFactor.StringFixed(4)))
	sb.WriteString(fmt.Sprintf("%s %s%%\n",
		LabelStyle.Render("Confidence:"),
		result.ConfidenceLevel.Mul(decimal.NewFromInt(100)).StringFixed(0)))
	sb.WriteString("\n")

	sb.WriteString(SectionStyle.Render("MARITAL ESTATE") + "\n")
	sb.WriteString(fmt.Sprintf("  Total assets:  %s\n", FormatCurrency(result.TotalMaritalAssets)))
	sb.WriteString(fmt.Sprintf("  Total debts:   %s\n", FormatCurrency(result.TotalMaritalDebts)))
	sb.WriteString(fmt.Sprintf("  Net estate:    %s\n", StyleAmount(result.NetMaritalEstate)))
	if result.NegativeNetEstate {
		sb.WriteString("  " + NegativeStyle.Render("Debts exceed assets; shares below represent owed debt.") + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(SectionStyle.Render("DIVISION") + "\n")
	sb.WriteString(fmt.Sprintf("  %-28s %16s %16s\n", "", "Spouse 1", "Spouse 2"))
	sb.WriteString(fmt.Sprintf("  %-28s %16s %16s\n", "Marital share",
		FormatCurrency(result.Spouse1Share), FormatCurrency(result.Spouse2Share)))
	sb.WriteString(fmt.Sprintf("  %-28s %16s %16s\n", "Separate property",
		FormatCurrency(result.Spouse1SeparateTotal), FormatCurrency(result.Spouse2SeparateTotal)))
	sb.WriteString(fmt.Sprintf("  %-28s %16s %16s\n", "Final total",
		FormatCurrency(result.Spouse1FinalTotal), FormatCurrency(result.Spouse2FinalTotal)))
	sb.WriteString("\n")

	if len(result.Awards) > 0 {
		sb.WriteString(SectionStyle.Render("ITEM AWARDS") + "\n")
		for _, award := range result.Awards {
			kind := "asset"
			if award.IsDebt {
				kind = "debt"
			}
			sb.WriteString(fmt.Sprintf("  %-24s %-6s %14s -> %s\n",
				truncate(award.Item.Description, 24), kind,
				FormatCurrency(award.Item.CurrentValue), award.AwardedTo))
		}
		sb.WriteString("\n")
	}

	if result.Equalization != nil {
		sb.WriteString(SectionStyle.Render("EQUALIZATION PAYMENT") + "\n")
		sb.WriteString(fmt.Sprintf("  %s pays %s to %s\n",
			result.Equalization.FromSpouse,
			StyleAmount(result.Equalization.Amount),
			result.Equalization.ToSpouse))
	} else {
		sb.WriteString("No equalization payment required.\n")
	}

	_, err := fmt.Fprint(rg.Writer, sb.String())
	return err
}

// GenerateJSONReport writes the result as indented JSON.
func (rg *ReportGenerator) GenerateJSONReport(result *domain.DivisionResult) error {
	enc := json.NewEncoder(rg.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// GenerateCSVReport writes the per-item awards plus a summary block as CSV.
func (rg *ReportGenerator) GenerateCSVReport(result *domain.DivisionResult) error {
	w := csv.NewWriter(rg.Writer)

	if err := w.Write([]string{"id", "description", "category", "kind", "value", "awarded_to"}); err != nil {
		return err
	}
	for _, award := range result.Awards {
		kind := "asset"
		if award.IsDebt {
			kind = "debt"
		}
		record := []string{
			award.Item.ID,
			award.Item.Description,
			string(award.Item.Category),
			kind,
			award.Item.CurrentValue.StringFixed(2),
			string(award.AwardedTo),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	summary := [][]string{
		{"net_marital_estate", "", "", "", result.NetMaritalEstate.StringFixed(2), ""},
		{"spouse1_share", "", "", "", result.Spouse1Share.StringFixed(2), string(domain.Spouse1)},
		{"spouse2_share", "", "", "", result.Spouse2Share.StringFixed(2), string(domain.Spouse2)},
	}
	if result.Equalization != nil {
		summary = append(summary, []string{
			"equalization_payment", "", "", "",
			result.Equalization.Amount.StringFixed(2),
			string(result.Equalization.ToSpouse),
		})
	}
	for _, record := range summary {
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
