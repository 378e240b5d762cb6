package industry

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"recruitads/internal/core/domain"
)

//go:embed industries.yaml
var defaultRules []byte

type rulesFile struct {
	Industries []domain.IndustryProfile `yaml:"industries"`
}

// Rules is an ordered keyword table. The first industry with a keyword
// contained in the text wins.
type Rules struct {
	profiles []domain.IndustryProfile
}

// ParseRules decodes a YAML rule file. Keywords are lower-cased; empty
// industries or keyword lists are rejected.
func ParseRules(data []byte) (*Rules, error) {
	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode industry rules: %w", err)
	}
	r := &Rules{profiles: make([]domain.IndustryProfile, 0, len(f.Industries))}
	for i, p := range f.Industries {
		name := strings.TrimSpace(p.Industry)
		if name == "" {
			return nil, fmt.Errorf("industry rule %d: missing industry", i)
		}
		kws := make([]string, 0, len(p.Keywords))
		for _, k := range p.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				kws = append(kws, k)
			}
		}
		if len(kws) == 0 {
			return nil, fmt.Errorf("industry rule %q: no keywords", name)
		}
		r.profiles = append(r.profiles, domain.IndustryProfile{Industry: name, Keywords: kws})
	}
	return r, nil
}

// LoadRules reads a rule file from disk.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read industry rules: %w", err)
	}
	return ParseRules(data)
}

// DefaultRules is the compiled-in table.
func DefaultRules() *Rules {
	r, err := ParseRules(defaultRules)
	if err != nil {
		panic(err)
	}
	return r
}

// Match returns the first industry whose keyword is a substring of text.
func (r *Rules) Match(text string) (string, bool) {
	text = strings.ToLower(text)
	for _, p := range r.profiles {
		for _, k := range p.Keywords {
			if strings.Contains(text, k) {
				return p.Industry, true
			}
		}
	}
	return "", false
}

// Industries lists the labels in declaration order.
func (r *Rules) Industries() []string {
	out := make([]string, len(r.profiles))
	for i, p := range r.profiles {
		out[i] = p.Industry
	}
	return out
}
