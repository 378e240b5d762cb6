package csvimport

import (
	"regexp"
	"strings"
)

// OtherRole labels campaigns whose name reveals no role.
const OtherRole = "Övrig roll"

// rolePatterns are checked in order; the first role with a pattern contained
// in the lower-cased campaign name wins. Specific titles precede the generic
// ones they contain.
var rolePatterns = []struct {
	role     string
	patterns []string
}{
	{"Sjuksköterska", []string{"sjuksköterska", "sjukskötare"}},
	{"Butikschef", []string{"butikschef"}},
	{"Butikssäljare", []string{"butikssälj"}},
	{"Säljare", []string{"säljare", "sälj"}},
	{"Utvecklare", []string{"utvecklare", "developer", "programmerare"}},
	{"Projektledare", []string{"projektledare", "project"}},
	{"Chef", []string{"chef", "ledare", "manager"}},
	{"Tekniker", []string{"tekniker"}},
	{"Ingenjör", []string{"ingenjör", "engineer"}},
	{"Lagerarbetare", []string{"lagerarbetare", "lager"}},
	{"Chaufför", []string{"chaufför", "förare", "driver"}},
	{"Elektriker", []string{"elektriker"}},
	{"Mekaniker", []string{"mekaniker"}},
	{"Konsult", []string{"konsult"}},
}

var (
	roleQualifier = regexp.MustCompile(`(?i)\s+(till|som|på)\s+.*$`)
	spaces        = regexp.MustCompile(`\s+`)
	cities        = regexp.MustCompile(`(?i)(?:^|[^\p{L}])(Stockholm|Göteborg|Malmö|Uppsala|Linköping|Örebro|Västerås|Norrköping|Helsingborg|Jönköping|Umeå|Lund|Borås|Sundsvall|Gävle|Eskilstuna|Karlstad|Växjö|Halmstad|Trollhättan|Östersund)(?:$|[^\p{L}])`)
)

// ExtractRole derives the role from a campaign name such as
// "Företag AB - Grafisk formgivare till LRF Media - Stockholm". Known titles
// win; otherwise the second dash-separated part is used with trailing
// "till/som/på ..." clauses removed.
func ExtractRole(name string) string {
	lower := strings.ToLower(name)
	for _, rp := range rolePatterns {
		for _, p := range rp.patterns {
			if strings.Contains(lower, p) {
				return rp.role
			}
		}
	}

	parts := strings.Split(name, " - ")
	if len(parts) < 2 {
		return OtherRole
	}
	part := roleQualifier.ReplaceAllString(strings.TrimSpace(parts[1]), "")
	part = strings.TrimSpace(spaces.ReplaceAllString(part, " "))
	if part == "" || len(strings.Fields(part)) > 3 || strings.ContainsAny(part, "0123456789") {
		return OtherRole
	}
	return part
}

// ExtractCompany returns the first dash-separated part of a campaign name.
func ExtractCompany(name string) string {
	company, _, _ := strings.Cut(name, " - ")
	return strings.TrimSpace(company)
}

// ExtractLocation returns the first Swedish city named in s.
func ExtractLocation(s string) string {
	if m := cities.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}
