package fixture

const (
	AwayVenue    = "Away"
	UnknownVenue = "TBD"
	UnknownTime  = "??:??"
)

var monthAbbrevs = map[string]string{
	"01": "Jan",
	"02": "Feb",
	"03": "Mar",
	"04": "Apr",
	"05": "May",
	"06": "Jun",
	"07": "Jul",
	"08": "Aug",
	"09": "Sep",
	"10": "Oct",
	"11": "Nov",
	"12": "Dec",
}

// Home venues as they appear in the feed, mapped to the names the club uses.
var venueAliases = map[string]string{
	"Long Road Sixth Form College":    "Long Road",
	"Cambridge University HC Astro":   "Wilberforce Road",
	"Coldhams Common":                 "Abbey",
	"Peter Boizot Astro":              "St Catz",
	"St John's College Sports Ground": "St Johns",
	"The Leys School":                 "Leys",
	"Perse Girls School":              "Perse Girls",
	"Perse Boys School":               "Perse Boys",
}

// MonthAbbrev maps a two-digit month number ("01".."12") to its three-letter
// abbreviation.
func MonthAbbrev(mm string) (string, bool) {
	name, ok := monthAbbrevs[mm]
	return name, ok
}

// MonthAbbrevs returns the twelve abbreviations in calendar order.
func MonthAbbrevs() []string {
	names := make([]string, 0, len(monthAbbrevs))
	for i := 1; i <= 12; i++ {
		names = append(names, monthAbbrevs[twoDigits(i)])
	}
	return names
}

// VenueAlias returns the colloquial name of a known home venue, or raw
// unchanged.
func VenueAlias(raw string) string {
	if alias, ok := venueAliases[raw]; ok {
		return alias
	}
	return raw
}

func twoDigits(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
