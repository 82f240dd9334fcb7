package constants

import "strings"

// Classification is the content kind of a document.
type Classification string

const (
	Digital Classification = "DIGITAL"
	Scanned Classification = "SCANNED"
)

// Strategy tags the table extraction algorithm that produced a table.
// The values double as the label suffix in sheet names.
type Strategy string

const (
	StrategyNative Strategy = "Nativa"
	StrategyAI     Strategy = "IA"
	StrategyOCR    Strategy = "OCR"
)

var allStrategies = []Strategy{
	StrategyNative,
	StrategyAI,
	StrategyOCR,
}

func StrategiesAsStringSlice() []string {
	result := make([]string, len(allStrategies))
	for i, s := range allStrategies {
		result[i] = string(s)
	}
	return result
}

// ParseClassification accepts the canonical values and a few loose spellings.
func ParseClassification(input string) (Classification, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]Classification{
		"digital": Digital,
		"native":  Digital,
		"text":    Digital,
		"scanned": Scanned,
		"scan":    Scanned,
		"image":   Scanned,
	}
	if c, ok := synonyms[normalized]; ok {
		return c, true
	}
	return Scanned, false
}
