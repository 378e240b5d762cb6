package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recruitads/internal/core/domain"
	"recruitads/internal/core/port"
)

// CampaignRepository implements port.CampaignSource and port.CampaignWriter
// using pgxpool for PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

var campaignColumns = []string{
	"id", "name", "role", "industry", "company", "platform", "location",
	"spend", "impressions", "clicks", "duration_days", "start_date", "end_date",
}

// roleKeySQL and industryKeySQL compute domain.RoleKey in SQL. They match
// the expression indexes created by the migrations.
const (
	roleKeySQL     = `btrim(regexp_replace(lower(role), '\s+', ' ', 'g'))`
	industryKeySQL = `btrim(regexp_replace(lower(industry), '\s+', ' ', 'g'))`
)

// Campaigns returns the stored history narrowed by f. Roles and industry
// are compared by domain.RoleKey.
func (r *CampaignRepository) Campaigns(ctx context.Context, f port.CampaignFilter) ([]domain.HistoricalCampaign, error) {
	var roles []string
	for _, role := range f.Roles {
		roles = append(roles, domain.RoleKey(role))
	}
	query := `
        SELECT ` + strings.Join(campaignColumns, ", ") + `
        FROM historical_campaigns
        WHERE ($1::text[] IS NULL OR ` + roleKeySQL + ` = ANY($1))
          AND ($2 = '' OR ` + industryKeySQL + ` = $2)
          AND ($3 = '' OR platform = $3)
        ORDER BY end_date DESC NULLS LAST, id`
	rows, err := r.pool.Query(ctx, query, roles, domain.RoleKey(f.Industry), string(f.Platform))
	if err != nil {
		return nil, fmt.Errorf("query campaigns: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.HistoricalCampaign, error) {
		var (
			c          domain.HistoricalCampaign
			platform   string
			start, end *time.Time
		)
		err := row.Scan(
			&c.ID,
			&c.Name,
			&c.Role,
			&c.Industry,
			&c.Company,
			&platform,
			&c.Location,
			&c.Spend,
			&c.Impressions,
			&c.Clicks,
			&c.DurationDays,
			&start,
			&end,
		)
		c.Platform = domain.Platform(platform)
		if start != nil {
			c.StartDate = *start
		}
		if end != nil {
			c.EndDate = *end
		}
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan campaigns: %w", err)
	}
	return out, nil
}

// Roles lists every distinct role with its campaign count and industries.
func (r *CampaignRepository) Roles(ctx context.Context) ([]domain.RoleSummary, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT role, count(*), coalesce(array_agg(DISTINCT industry) FILTER (WHERE industry <> ''), '{}')
        FROM historical_campaigns
        WHERE role <> ''
        GROUP BY role
        ORDER BY role`)
	if err != nil {
		return nil, fmt.Errorf("query roles: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RoleSummary, error) {
		var s domain.RoleSummary
		err := row.Scan(&s.Role, &s.Campaigns, &s.Industries)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan roles: %w", err)
	}
	return out, nil
}

// SaveCampaigns bulk loads rows through a temporary table and inserts them,
// skipping ids that already exist. It returns the number of new rows.
func (r *CampaignRepository) SaveCampaigns(ctx context.Context, rows []domain.HistoricalCampaign) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, `CREATE TEMP TABLE campaign_staging (LIKE historical_campaigns INCLUDING DEFAULTS) ON COMMIT DROP`); err != nil {
		return 0, fmt.Errorf("create staging table: %w", err)
	}
	_, err = tx.CopyFrom(ctx, pgx.Identifier{"campaign_staging"}, campaignColumns,
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			c := rows[i]
			id := c.ID
			if id == "" {
				id = uuid.NewString()
			}
			return []any{
				id, c.Name, c.Role, c.Industry, c.Company, string(c.Platform), c.Location,
				c.Spend, c.Impressions, c.Clicks, c.DurationDays, nullDate(c.StartDate), nullDate(c.EndDate),
			}, nil
		}))
	if err != nil {
		return 0, fmt.Errorf("copy campaigns: %w", err)
	}

	cols := strings.Join(campaignColumns, ", ")
	tag, err := tx.Exec(ctx, `INSERT INTO historical_campaigns (`+cols+`)
        SELECT `+cols+` FROM campaign_staging
        ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return 0, fmt.Errorf("insert campaigns: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func nullDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

var (
	_ port.CampaignSource = (*CampaignRepository)(nil)
	_ port.CampaignWriter = (*CampaignRepository)(nil)
)
