package fueleconomy

import (
	"regexp"
	"strings"
)

var cylindersRegex = regexp.MustCompile(`(\d+)\s*cyl`)

// modelAliases lists the names fueleconomy.gov files some catalog models under
var modelAliases = map[string][]string{
	"mx-5":    {"MX-5 Miata", "MX-5", "Miata"},
	"miata":   {"MX-5 Miata", "Miata"},
	"gr86":    {"GR86", "GT86", "86"},
	"86":      {"86", "GR86", "FR-S"},
	"370z":    {"370Z", "Z"},
	"cayman":  {"718 Cayman", "Cayman"},
	"boxster": {"718 Boxster", "Boxster"},
	"supra":   {"GR Supra", "Supra"},
}

// ModelAliases returns the model names to try in order, starting with model itself
func ModelAliases(model string) []string {
	aliases := []string{model}
	for _, alias := range modelAliases[strings.ToLower(strings.TrimSpace(model))] {
		if !strings.EqualFold(alias, model) {
			aliases = append(aliases, alias)
		}
	}
	return aliases
}

// ScoreOption rates how well a fueleconomy.gov option fits a catalog trim.
// Gasoline vehicles are preferred, then engine and transmission agreement.
func ScoreOption(optionText, fuelType, engine, transmission string) int {
	score := 0
	text := strings.ToLower(optionText)

	if strings.Contains(strings.ToLower(fuelType), "gasoline") {
		score += 10
	}

	if engine != "" {
		engineLower := strings.ToLower(engine)
		if strings.Contains(engineLower, "turbo") && strings.Contains(text, "turbo") {
			score += 5
		}
		if strings.Contains(engineLower, "supercharg") && strings.Contains(text, "supercharg") {
			score += 5
		}
		if want := cylinders(engineLower); want != "" && want == cylinders(text) {
			score += 3
		}
	}

	if transmission != "" {
		transLower := strings.ToLower(transmission)
		if strings.Contains(transLower, "manual") && strings.Contains(text, "man") {
			score += 2
		}
		if strings.Contains(transLower, "auto") && strings.Contains(text, "auto") {
			score += 2
		}
	}

	return score
}

func cylinders(s string) string {
	m := cylindersRegex.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}
