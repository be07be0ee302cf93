package advice

import (
	"strings"

	"weather-advisor/internal/models"
)

// The accessory cold threshold is 8°C while the advisory one is 5°C. Both are kept as
// they are; see DESIGN.md before unifying them.
const accessoryColdTemperature = 8.0

// AccessoryRules are weather-driven and cumulative.
var AccessoryRules = []Rule{
	{Name: "rain", Applies: WillRain, Text: "Umbrella"},
	{Name: "cold", Applies: ColderThan(accessoryColdTemperature), Text: "Warm hat/gloves"},
	{Name: "hot", Applies: HotterThan(hotTemperature), Text: "Water bottle"},
	{Name: "windy", Applies: IsWindy, Text: "Secure hat / windproof jacket"},
}

type purposeRule struct {
	keyword string
	item    string
}

// purposeRules are matched as substrings of the lower-cased purpose; the first match wins.
var purposeRules = []purposeRule{
	{keyword: "work", item: "Bag / briefcase"},
	{keyword: "gym", item: "Gym bag"},
	{keyword: "travel", item: "Suitcase / travel bag"},
	{keyword: "date", item: "Small clutch / wallet"},
	{keyword: "beach", item: "Sunscreen / sunglasses"},
}

// RecommendAccessories lists the weather items followed by at most one purpose item.
// Items are never removed or deduplicated.
func RecommendAccessories(f models.DailyForecast, purpose string) []string {
	out := apply(AccessoryRules, f)
	if out == nil {
		out = []string{}
	}

	p := strings.ToLower(purpose)
	for _, r := range purposeRules {
		if strings.Contains(p, r.keyword) {
			out = append(out, r.item)
			break
		}
	}

	return out
}
