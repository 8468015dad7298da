package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter renders a comparison set as CSV, one row per jurisdiction.
type CSVFormatter struct{}

// Format generates the CSV representation of the comparison.
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := []string{"jurisdiction", "regime", "equity_factor",
		"spouse1_share", "spouse2_share", "equalization_amount", "equalization_from", "spouse1_diff_from_base"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	rows := append([]JurisdictionResult{*compSet.BaseResult}, compSet.AlternativeResults...)
	for _, r := range rows {
		amount, from := "", ""
		if r.Equalization != nil {
			amount = r.Equalization.Amount.StringFixed(2)
			from = string(r.Equalization.FromSpouse)
		}
		record := []string{
			r.Jurisdiction,
			string(r.Regime),
			r.EquityFactor.StringFixed(4),
			r.Spouse1Share.StringFixed(2),
			r.Spouse2Share.StringFixed(2),
			amount,
			from,
			r.Share1DiffFromBase.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	return sb.String(), w.Error()
}
