package compare

import (
	"encoding/json"
	"fmt"
)

// JSONFormatter renders a comparison set as indented JSON.
type JSONFormatter struct{}

// Format generates the JSON representation of the comparison.
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	data, err := json.MarshalIndent(compSet, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal comparison: %w", err)
	}
	return string(data), nil
}
