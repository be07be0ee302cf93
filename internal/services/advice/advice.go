package advice

import (
	"strings"

	"weather-advisor/internal/models"
)

const adviceColdTemperature = 5.0

// NeutralAdvice is returned when no rule fires.
const NeutralAdvice = "Weather looks moderate today. Dress comfortably and enjoy your day."

// AdviceRules are evaluated in order; every match contributes one sentence.
var AdviceRules = []Rule{
	{Name: "rain", Applies: WillRain, Text: "It may rain today, bring an umbrella."},
	{Name: "cold", Applies: ColderThan(adviceColdTemperature), Text: "It's quite cold at times, wear warm layers."},
	{Name: "hot", Applies: HotterThan(hotTemperature), Text: "It may feel hot, stay hydrated."},
	{Name: "swing", Applies: SwingsAtLeast(swingSpread), Text: "Large temperature swing; consider dressing in layers."},
	{Name: "windy", Applies: IsWindy, Text: "It will be windy; secure hats or consider windproof outerwear."},
}

// MakeAdvice joins the sentences of all matching rules with a space.
func MakeAdvice(f models.DailyForecast) string {
	sentences := apply(AdviceRules, f)
	if len(sentences) == 0 {
		return NeutralAdvice
	}
	return strings.Join(sentences, " ")
}
