package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"                  // Postgres driver
	_ "github.com/snowflakedb/gosnowflake" // Snowflake driver

	"recruitads/internal/core/domain"
	"recruitads/internal/core/port"
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*){0,2}$`)

// Source reads campaign history from an analytics warehouse through
// database/sql. It implements port.CampaignSource.
type Source struct {
	db     *sql.DB
	driver string
	table  string
}

// Open connects to the warehouse with the named driver ("snowflake" or
// "postgres") and verifies the connection.
func Open(ctx context.Context, driver, dsn, table string) (*Source, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s warehouse: %w", driver, err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	pctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err = db.PingContext(pctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s warehouse: %w", driver, err)
	}
	return NewSource(db, driver, table)
}

// NewSource wraps an open database. table may be schema qualified.
func NewSource(db *sql.DB, driver, table string) (*Source, error) {
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid warehouse table %q", table)
	}
	return &Source{db: db, driver: driver, table: table}, nil
}

func (s *Source) Close() error {
	return s.db.Close()
}

// placeholder returns the n-th (1-based) bind parameter for the driver.
func (s *Source) placeholder(n int) string {
	if s.driver == "postgres" {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// key returns the SQL form of domain.RoleKey applied to column.
func (s *Source) key(column string) string {
	if s.driver == "postgres" {
		return "BTRIM(REGEXP_REPLACE(LOWER(" + column + `), '\s+', ' ', 'g'))`
	}
	// Snowflake replaces every occurrence by default and unescapes literals.
	return "TRIM(REGEXP_REPLACE(LOWER(" + column + `), '\\s+', ' '))`
}

func (s *Source) Campaigns(ctx context.Context, f port.CampaignFilter) ([]domain.HistoricalCampaign, error) {
	var (
		where []string
		args  []any
	)
	if len(f.Roles) > 0 {
		ph := make([]string, len(f.Roles))
		for i, r := range f.Roles {
			args = append(args, domain.RoleKey(r))
			ph[i] = s.placeholder(len(args))
		}
		where = append(where, s.key("role")+" IN ("+strings.Join(ph, ", ")+")")
	}
	if ind := domain.RoleKey(f.Industry); ind != "" {
		args = append(args, ind)
		where = append(where, s.key("industry")+" = "+s.placeholder(len(args)))
	}
	if f.Platform != "" {
		args = append(args, string(f.Platform))
		where = append(where, "platform = "+s.placeholder(len(args)))
	}

	query := `SELECT id, name, role, industry, company, platform, location,
        spend, impressions, clicks, duration_days, start_date, end_date
        FROM ` + s.table
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query warehouse campaigns: %w", err)
	}
	defer rows.Close()

	var out []domain.HistoricalCampaign
	for rows.Next() {
		var (
			id, name, role, industry, company, platform, location sql.NullString
			spend                                                 sql.NullFloat64
			impressions, clicks, days                             sql.NullInt64
			start, end                                            sql.NullTime
		)
		if err := rows.Scan(&id, &name, &role, &industry, &company, &platform, &location,
			&spend, &impressions, &clicks, &days, &start, &end); err != nil {
			return nil, fmt.Errorf("scan warehouse campaign: %w", err)
		}
		p, ok := domain.ParsePlatform(platform.String)
		if !ok {
			continue
		}
		out = append(out, domain.HistoricalCampaign{
			ID:           id.String,
			Name:         name.String,
			Role:         role.String,
			Industry:     industry.String,
			Company:      company.String,
			Platform:     p,
			Location:     location.String,
			Spend:        spend.Float64,
			Impressions:  impressions.Int64,
			Clicks:       clicks.Int64,
			DurationDays: int(days.Int64),
			StartDate:    start.Time,
			EndDate:      end.Time,
		})
	}
	return out, rows.Err()
}

// Roles groups the warehouse history by role. Grouping by role and industry
// in SQL keeps the query portable across drivers.
func (s *Source) Roles(ctx context.Context) ([]domain.RoleSummary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT role, industry, COUNT(*) FROM `+s.table+`
        WHERE role IS NOT NULL AND role <> ''
        GROUP BY role, industry`)
	if err != nil {
		return nil, fmt.Errorf("query warehouse roles: %w", err)
	}
	defer rows.Close()

	byRole := make(map[string]*domain.RoleSummary)
	for rows.Next() {
		var (
			role     string
			industry sql.NullString
			n        int
		)
		if err := rows.Scan(&role, &industry, &n); err != nil {
			return nil, fmt.Errorf("scan warehouse role: %w", err)
		}
		sum, ok := byRole[role]
		if !ok {
			sum = &domain.RoleSummary{Role: role}
			byRole[role] = sum
		}
		sum.Campaigns += n
		if industry.String != "" {
			sum.Industries = append(sum.Industries, industry.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.RoleSummary, 0, len(byRole))
	for _, sum := range byRole {
		sort.Strings(sum.Industries)
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Role < out[j].Role })
	return out, nil
}

var _ port.CampaignSource = (*Source)(nil)
