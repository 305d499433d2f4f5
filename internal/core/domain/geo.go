package domain

import "strings"

// carrierSlugs maps natural-language carrier descriptions to the exact
// eShipz API slugs.
var carrierSlugs = map[string]string{
	"bluedart":          "bluedart",
	"blue dart":         "bluedart",
	"delhivery":         "delhivery",
	"delhivery surface": "delhivery-surface",
	"dtdc":              "dtdc",
	"ekart":             "ekart",
	"xpressbees":        "xpressbees",
	"amazon":            "amazon-shipping",
}

// CarrierSlug resolves a natural-language carrier description to an API slug.
// Exact match first, then substring ("ship via BlueDart express" → bluedart),
// falling back to "auto" so the API applies rule-based routing.
func CarrierSlug(description string) string {
	if description == "" {
		return "auto"
	}
	desc := strings.ToLower(strings.TrimSpace(description))
	if slug, ok := carrierSlugs[desc]; ok {
		return slug
	}
	for key, slug := range carrierSlugs {
		if strings.Contains(desc, key) {
			return slug
		}
	}
	return "auto"
}

// cityAliases maps legacy/colonial city names to their current ones.
var cityAliases = map[string]string{
	"bangalore":  "bengaluru",
	"bombay":     "mumbai",
	"calcutta":   "kolkata",
	"madras":     "chennai",
	"mysore":     "mysuru",
	"cochin":     "kochi",
	"calicut":    "kozhikode",
	"trivandrum": "thiruvananthapuram",
	"poona":      "pune",
	"baroda":     "vadodara",
	"allahabad":  "prayagraj",
}

// cityStates covers the major Indian cities a shipment is likely to touch.
// Lookup misses are expected; callers fall back to asking for the state.
var cityStates = map[string]string{
	"mumbai":             "maharashtra",
	"pune":               "maharashtra",
	"nagpur":             "maharashtra",
	"nashik":             "maharashtra",
	"delhi":              "delhi",
	"new delhi":          "delhi",
	"bengaluru":          "karnataka",
	"mysuru":             "karnataka",
	"mangaluru":          "karnataka",
	"hubli":              "karnataka",
	"chennai":            "tamil nadu",
	"coimbatore":         "tamil nadu",
	"madurai":            "tamil nadu",
	"kolkata":            "west bengal",
	"howrah":             "west bengal",
	"durgapur":           "west bengal",
	"hyderabad":          "telangana",
	"secunderabad":       "telangana",
	"warangal":           "telangana",
	"ahmedabad":          "gujarat",
	"surat":              "gujarat",
	"vadodara":           "gujarat",
	"rajkot":             "gujarat",
	"jaipur":             "rajasthan",
	"jodhpur":            "rajasthan",
	"udaipur":            "rajasthan",
	"lucknow":            "uttar pradesh",
	"kanpur":             "uttar pradesh",
	"varanasi":           "uttar pradesh",
	"agra":               "uttar pradesh",
	"noida":              "uttar pradesh",
	"ghaziabad":          "uttar pradesh",
	"patna":              "bihar",
	"gaya":               "bihar",
	"bhopal":             "madhya pradesh",
	"indore":             "madhya pradesh",
	"gwalior":            "madhya pradesh",
	"chandigarh":         "chandigarh",
	"ludhiana":           "punjab",
	"amritsar":           "punjab",
	"gurgaon":            "haryana",
	"gurugram":           "haryana",
	"faridabad":          "haryana",
	"kochi":              "kerala",
	"thiruvananthapuram": "kerala",
	"kozhikode":          "kerala",
	"visakhapatnam":      "andhra pradesh",
	"vijayawada":         "andhra pradesh",
	"bhubaneswar":        "odisha",
	"cuttack":            "odisha",
	"guwahati":           "assam",
	"ranchi":             "jharkhand",
	"jamshedpur":         "jharkhand",
	"raipur":             "chhattisgarh",
	"dehradun":           "uttarakhand",
	"shimla":             "himachal pradesh",
	"panaji":             "goa",
	"margao":             "goa",
	"srinagar":           "jammu and kashmir",
	"jammu":              "jammu and kashmir",
	"prayagraj":          "uttar pradesh",
}

// InferState tries to resolve an Indian state from a city name, normalizing
// punctuation and resolving aliases first. Returns "" when inference fails.
func InferState(city string) string {
	if city == "" {
		return ""
	}
	norm := strings.ToLower(strings.TrimSpace(city))
	norm = strings.NewReplacer(",", "", ".", "").Replace(norm)
	norm = strings.Join(strings.Fields(norm), " ")

	if alias, ok := cityAliases[norm]; ok {
		norm = alias
	}
	if state, ok := cityStates[norm]; ok {
		return state
	}
	if state, ok := cityStates[strings.ReplaceAll(norm, " ", "-")]; ok {
		return state
	}
	if state, ok := cityStates[strings.ReplaceAll(norm, "-", " ")]; ok {
		return state
	}
	return ""
}
