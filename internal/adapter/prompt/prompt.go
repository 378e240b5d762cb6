// Package prompt builds the model prompts shared by the text generation
// adapters and interprets their answers.
package prompt

import (
	"fmt"
	"strings"

	"recruitads/internal/core/domain"
	"recruitads/internal/core/port"
)

// Explain asks for one Swedish sentence on why a channel suits a role.
func Explain(in port.ExplainInput) string {
	var b strings.Builder
	b.WriteString("Du är expert på rekryteringsannonsering i Sverige. ")
	fmt.Fprintf(&b, "Förklara i en mening varför %s passar för att rekrytera %s", in.Platform, in.Role)
	if in.Industry != "" && in.Industry != domain.UnknownIndustry {
		fmt.Fprintf(&b, " inom %s", in.Industry)
	}
	b.WriteString(".\nHistorik: ")
	fmt.Fprintf(&b, "CTR %.2f%%", in.CTR)
	if in.CPC != nil {
		fmt.Fprintf(&b, ", CPC %.0f kr", *in.CPC)
	}
	fmt.Fprintf(&b, ", %d kampanjer, tillförlitlighet %s.\n", in.SampleSize, in.Confidence)
	b.WriteString("Svara med enbart meningen, utan inledning.")
	return b.String()
}

// Classify asks the model to pick one of labels for a role.
func Classify(role, company string, labels []string) string {
	var b strings.Builder
	b.WriteString("Vilken bransch hör följande rekrytering till?\n")
	fmt.Fprintf(&b, "Roll: %s\n", role)
	if company != "" {
		fmt.Fprintf(&b, "Företag: %s\n", company)
	}
	b.WriteString("Svara med exakt ett av följande alternativ, eller \"unknown\":\n")
	for _, l := range labels {
		b.WriteString("- " + l + "\n")
	}
	return b.String()
}

// MatchLabel maps a model answer onto one of labels, ignoring case,
// surrounding punctuation and list markers. Anything else is
// domain.UnknownIndustry.
func MatchLabel(answer string, labels []string) string {
	answer = strings.Trim(strings.TrimSpace(answer), "-*\"'.` \n")
	for _, l := range labels {
		if strings.EqualFold(answer, l) {
			return l
		}
	}
	return domain.UnknownIndustry
}

// Sentence trims a generated explanation to its first line.
func Sentence(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}
	return strings.Trim(text, "\"")
}
