package matcher

import (
	"sort"
	"strings"

	"recruitads/internal/core/domain"
)

type entry struct {
	role       string
	key        string
	stem       string
	industries map[string]string
	samples    int
}

// indexed is one vector held by the index for a catalog generation.
type indexed struct {
	key    string
	vector []float32
}

// Catalog is an immutable snapshot of the canonical roles. It is swapped
// as a whole on Rebuild.
type Catalog struct {
	entries []entry
	byKey   map[string]int
	byStem  map[string][]int
	// vectors are what the index holds for this snapshot.
	vectors []indexed
}

// NewCatalog indexes roles by normalized and stemmed form. Duplicate roles
// differing only in case or spacing are merged, keeping the spelling with
// the most campaigns.
func NewCatalog(roles []domain.RoleSummary) *Catalog {
	c := &Catalog{
		byKey:  make(map[string]int, len(roles)),
		byStem: make(map[string][]int, len(roles)),
	}
	for _, r := range roles {
		key := Normalize(r.Role)
		if key == "" {
			continue
		}
		if i, ok := c.byKey[key]; ok {
			e := &c.entries[i]
			if r.Campaigns > e.samples {
				e.role = strings.TrimSpace(r.Role)
			}
			e.samples += r.Campaigns
			addIndustries(e.industries, r.Industries)
			continue
		}
		e := entry{
			role:       strings.TrimSpace(r.Role),
			key:        key,
			stem:       Stem(key),
			industries: make(map[string]string, len(r.Industries)),
			samples:    r.Campaigns,
		}
		addIndustries(e.industries, r.Industries)
		c.byKey[key] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	for i, e := range c.entries {
		c.byStem[e.stem] = append(c.byStem[e.stem], i)
	}
	return c
}

func addIndustries(dst map[string]string, industries []string) {
	for _, ind := range industries {
		if k := Normalize(ind); k != "" {
			if _, ok := dst[k]; !ok {
				dst[k] = strings.TrimSpace(ind)
			}
		}
	}
}

// Len is the number of canonical roles.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Keys returns the normalized role keys in catalog order. They are the ids
// stored in the vector index.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.key
	}
	return out
}

// Roles returns the canonical roles sorted by name.
func (c *Catalog) Roles() []domain.RoleSummary {
	out := make([]domain.RoleSummary, 0, len(c.entries))
	for _, e := range c.entries {
		inds := make([]string, 0, len(e.industries))
		for _, ind := range e.industries {
			inds = append(inds, ind)
		}
		sort.Strings(inds)
		out = append(out, domain.RoleSummary{Role: e.role, Industries: inds, Campaigns: e.samples})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Role < out[j].Role })
	return out
}

func (c *Catalog) lookup(key string) (entry, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return entry{}, false
	}
	return c.entries[i], true
}

func (c *Catalog) inIndustry(e entry, industry string) bool {
	_, ok := e.industries[industry]
	return ok
}

func (c *Catalog) scored(e entry, score float64) domain.ScoredRole {
	return domain.ScoredRole{Role: e.role, Score: score, Samples: e.samples}
}
