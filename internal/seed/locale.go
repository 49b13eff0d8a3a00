package seed

import "fmt"

type place struct {
	City     string
	Province string
}

type locale struct {
	name        string
	places      []place
	freeDomains []string
}

var locales = map[string]locale{
	"en_CA": {
		name: "en_CA",
		places: []place{
			{"Toronto", "Ontario"},
			{"Ottawa", "Ontario"},
			{"Hamilton", "Ontario"},
			{"London", "Ontario"},
			{"Kingston", "Ontario"},
			{"Thunder Bay", "Ontario"},
			{"Montreal", "Quebec"},
			{"Quebec City", "Quebec"},
			{"Gatineau", "Quebec"},
			{"Sherbrooke", "Quebec"},
			{"Vancouver", "British Columbia"},
			{"Victoria", "British Columbia"},
			{"Kelowna", "British Columbia"},
			{"Calgary", "Alberta"},
			{"Edmonton", "Alberta"},
			{"Red Deer", "Alberta"},
			{"Winnipeg", "Manitoba"},
			{"Brandon", "Manitoba"},
			{"Saskatoon", "Saskatchewan"},
			{"Regina", "Saskatchewan"},
			{"Halifax", "Nova Scotia"},
			{"Sydney", "Nova Scotia"},
			{"Moncton", "New Brunswick"},
			{"Fredericton", "New Brunswick"},
			{"Saint John", "New Brunswick"},
			{"St. John's", "Newfoundland and Labrador"},
			{"Corner Brook", "Newfoundland and Labrador"},
			{"Charlottetown", "Prince Edward Island"},
			{"Whitehorse", "Yukon"},
			{"Yellowknife", "Northwest Territories"},
			{"Iqaluit", "Nunavut"},
		},
		freeDomains: []string{"gmail.com", "yahoo.ca", "hotmail.com", "outlook.com"},
	},
}

func lookupLocale(name string) (locale, error) {
	l, ok := locales[name]
	if !ok {
		return locale{}, fmt.Errorf("unsupported locale %q", name)
	}
	return l, nil
}

// Provinces returns the province and territory names a locale can produce.
func Provinces(name string) ([]string, error) {
	l, err := lookupLocale(name)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for _, p := range l.places {
		if !seen[p.Province] {
			seen[p.Province] = true
			out = append(out, p.Province)
		}
	}
	return out, nil
}
