package classify

// CategoryKeywords pairs an industry category with the name fragments that
// imply it. Evaluation order is the slice order, so the table is a slice
// rather than a map.
type CategoryKeywords struct {
	Category string
	Keywords []string
}

// DefaultSICDescriptions maps the SIC codes this tool recognizes to their
// official descriptions. Codes outside the table fall back to a synthesized
// "SIC <code>" label.
func DefaultSICDescriptions() map[string]string {
	return map[string]string{
		"5812": "Eating Places/Restaurants",
		"7372": "Prepackaged Software",
		"3571": "Electronic Computers",
		"7373": "Computer Integrated Systems Design",
		"3674": "Semiconductors & Related Devices",
		"6211": "Security Brokers & Dealers",
		"2834": "Pharmaceutical Preparations",
		"3711": "Motor Vehicles & Car Bodies",
		"4813": "Telephone Communications",
		"1311": "Crude Petroleum & Natural Gas",
		"2911": "Petroleum Refining",
		"5961": "Catalog & Mail-Order Houses",
		"7370": "Computer Programming & Data Processing",
		"8742": "Management Consulting Services",
		"2080": "Beverages",
		"3577": "Computer Peripheral Equipment",
		"6141": "Personal Credit Institutions",
		"4899": "Communications Services",
		"7371": "Computer Programming Services",
		"7389": "Business Services, NEC",
	}
}

// DefaultNameKeywords returns the ordered category keyword table used by the
// name fallback. The first category with a substring hit wins.
func DefaultNameKeywords() []CategoryKeywords {
	return []CategoryKeywords{
		{Category: "Technology", Keywords: []string{
			"software", "tech", "systems", "data", "cloud", "cyber", "digital",
			"computer", "platform", "analytics", "ai", "artificial intelligence",
			"app", "mobile", "web", "internet", "online",
		}},
		{Category: "Financial Services", Keywords: []string{
			"bank", "financial", "capital", "investment", "fund", "credit",
			"loan", "mortgage", "insurance", "securities", "finance",
		}},
		{Category: "Healthcare", Keywords: []string{
			"pharma", "medical", "health", "bio", "therapeutic", "clinical",
			"hospital", "drug", "medicine", "healthcare",
		}},
		{Category: "Retail", Keywords: []string{
			"retail", "store", "shop", "market", "grocery", "consumer", "commerce",
		}},
		{Category: "Energy", Keywords: []string{
			"energy", "oil", "gas", "petroleum", "solar", "wind", "utility",
			"electric", "power", "renewable",
		}},
		{Category: "Manufacturing", Keywords: []string{
			"manufacturing", "industrial", "auto", "motor", "machinery",
			"equipment", "materials", "production",
		}},
		{Category: "Food & Beverage", Keywords: []string{
			"food", "restaurant", "coffee", "beverage", "dining", "kitchen",
			"cafe", "bar", "brewery", "wine",
		}},
		{Category: "Real Estate", Keywords: []string{
			"real estate", "property", "construction", "building", "development",
		}},
		{Category: "Transportation", Keywords: []string{
			"transport", "logistics", "shipping", "delivery", "freight",
		}},
		{Category: "Media", Keywords: []string{
			"media", "entertainment", "publishing", "content", "broadcast", "film",
		}},
	}
}
