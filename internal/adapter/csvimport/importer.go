package csvimport

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"recruitads/internal/core/domain"
)

// IndustryResolver labels a role with an industry.
type IndustryResolver interface {
	Resolve(ctx context.Context, role, company string) string
}

// Report summarises one import.
type Report struct {
	Rows     int
	Accepted int
	Skipped  int
}

// Importer turns campaign exports into historical campaigns. Headers are
// matched case-insensitively against a set of known aliases; only platform,
// spend, impressions and clicks are mandatory.
type Importer struct {
	resolver IndustryResolver
	log      *slog.Logger
}

func NewImporter(resolver IndustryResolver, log *slog.Logger) *Importer {
	if log == nil {
		log = slog.Default()
	}
	return &Importer{resolver: resolver, log: log}
}

const (
	colID = iota
	colName
	colRole
	colIndustry
	colCompany
	colPlatform
	colLocation
	colSpend
	colImpressions
	colClicks
	colDays
	colStart
	colEnd
	numCols
)

var headerAliases = map[string]int{
	"id": colID, "campaign_id": colID,
	"name": colName, "campaign_name": colName, "original_campaign": colName,
	"role": colRole, "roll": colRole, "job_role": colRole,
	"industry": colIndustry, "bransch": colIndustry,
	"company": colCompany, "företag": colCompany,
	"platform": colPlatform, "plattform": colPlatform,
	"location": colLocation, "ort": colLocation,
	"spend": colSpend, "spend_sek": colSpend, "total_spend": colSpend, "total_spend_sek": colSpend,
	"impressions": colImpressions, "total_impressions": colImpressions,
	"clicks": colClicks, "total_clicks": colClicks,
	"campaign_days": colDays, "duration_days": colDays, "days": colDays,
	"start_date": colStart, "end_date": colEnd,
}

var required = []struct {
	col  int
	name string
}{
	{colPlatform, "platform"},
	{colSpend, "spend"},
	{colImpressions, "impressions"},
	{colClicks, "clicks"},
}

// Import reads a CSV export. Rows that cannot be parsed, name an unknown
// platform or are not admissible are skipped and counted.
func (im *Importer) Import(ctx context.Context, r io.Reader) ([]domain.HistoricalCampaign, Report, error) {
	var rep Report
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, rep, fmt.Errorf("read header: %w", err)
	}
	idx := make([]int, numCols)
	for i := range idx {
		idx[i] = -1
	}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if col, ok := headerAliases[h]; ok && idx[col] < 0 {
			idx[col] = i
		}
	}
	for _, req := range required {
		if idx[req.col] < 0 {
			return nil, rep, fmt.Errorf("missing %s column", req.name)
		}
	}

	var out []domain.HistoricalCampaign
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, rep, fmt.Errorf("line %d: %w", line, err)
		}
		if err = ctx.Err(); err != nil {
			return nil, rep, err
		}
		rep.Rows++

		c, err := im.parse(ctx, rec, idx)
		if err != nil {
			rep.Skipped++
			im.log.Debug("skipping campaign row", slog.Int("line", line), slog.Any("error", err))
			continue
		}
		if c.ID == "" {
			c.ID = fmt.Sprintf("import-%d", line)
		}
		out = append(out, c)
	}
	rep.Accepted = len(out)
	return out, rep, nil
}

func (im *Importer) parse(ctx context.Context, rec []string, idx []int) (domain.HistoricalCampaign, error) {
	field := func(col int) string {
		if i := idx[col]; i >= 0 && i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}

	var c domain.HistoricalCampaign
	p, ok := domain.ParsePlatform(field(colPlatform))
	if !ok {
		return c, fmt.Errorf("unknown platform %q", field(colPlatform))
	}
	spend, err := parseFloat(field(colSpend))
	if err != nil {
		return c, fmt.Errorf("spend: %w", err)
	}
	imp, err := parseInt(field(colImpressions))
	if err != nil {
		return c, fmt.Errorf("impressions: %w", err)
	}
	clicks, err := parseInt(field(colClicks))
	if err != nil {
		return c, fmt.Errorf("clicks: %w", err)
	}
	days, _ := parseInt(field(colDays))

	c = domain.HistoricalCampaign{
		ID:           field(colID),
		Name:         field(colName),
		Role:         field(colRole),
		Industry:     field(colIndustry),
		Company:      field(colCompany),
		Platform:     p,
		Location:     field(colLocation),
		Spend:        spend,
		Impressions:  imp,
		Clicks:       clicks,
		DurationDays: int(days),
		StartDate:    parseDate(field(colStart)),
		EndDate:      parseDate(field(colEnd)),
	}
	if !c.Admissible() {
		return c, errors.New("inadmissible metrics")
	}
	if c.Role == "" {
		c.Role = ExtractRole(c.Name)
	}
	if c.Company == "" {
		c.Company = ExtractCompany(c.Name)
	}
	if c.Location == "" {
		c.Location = ExtractLocation(c.Name)
	}
	if c.Industry == "" && im.resolver != nil {
		if ind := im.resolver.Resolve(ctx, c.Role, c.Company+" "+c.Name); ind != domain.UnknownIndustry {
			c.Industry = ind
		}
	}
	return c, nil
}

// parseFloat accepts Swedish decimal commas and thin-space grouping.
func parseFloat(s string) (float64, error) {
	s = strings.NewReplacer(" ", "", "\u00a0", "", "kr", "", "SEK", "").Replace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseInt(s string) (int64, error) {
	f, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

func parseDate(s string) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
