package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"recruitads/internal/core/port"
)

// RoleIndex implements port.VectorIndex on a pgvector table. The table is
// created on first use so the index works against databases migrated before
// the vector extension was available.
type RoleIndex struct {
	pool  *pgxpool.Pool
	table string

	once    sync.Once
	initErr error
}

func NewRoleIndex(pool *pgxpool.Pool) *RoleIndex {
	return &RoleIndex{pool: pool, table: "role_embeddings"}
}

func (x *RoleIndex) init(ctx context.Context) error {
	x.once.Do(func() {
		ident := pgx.Identifier{x.table}.Sanitize()
		_, err := x.pool.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS vector`)
		if err == nil {
			_, err = x.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS `+ident+` (
                id        text PRIMARY KEY,
                embedding vector NOT NULL
            )`)
		}
		if err != nil {
			x.initErr = fmt.Errorf("create role index: %w", err)
		}
	})
	return x.initErr
}

func (x *RoleIndex) Upsert(ctx context.Context, id string, vec []float32) error {
	if err := x.init(ctx); err != nil {
		return err
	}
	_, err := x.pool.Exec(ctx, `INSERT INTO `+pgx.Identifier{x.table}.Sanitize()+` (id, embedding)
        VALUES ($1, $2)
        ON CONFLICT (id) DO UPDATE SET embedding = EXCLUDED.embedding`,
		id, pgvector.NewVector(vec))
	return err
}

// Search returns the k nearest ids by cosine similarity, clamped to [0,1].
func (x *RoleIndex) Search(ctx context.Context, vec []float32, k int) ([]port.Neighbor, error) {
	if k <= 0 {
		return nil, nil
	}
	if err := x.init(ctx); err != nil {
		return nil, err
	}
	rows, err := x.pool.Query(ctx, `
        SELECT id, 1 - (embedding <=> $1) AS score
        FROM `+pgx.Identifier{x.table}.Sanitize()+`
        ORDER BY embedding <=> $1, id
        LIMIT $2`, pgvector.NewVector(vec), k)
	if err != nil {
		return nil, fmt.Errorf("search role index: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.Neighbor, error) {
		var n port.Neighbor
		err := row.Scan(&n.ID, &n.Score)
		n.Score = min(max(n.Score, 0), 1)
		return n, err
	})
}

func (x *RoleIndex) Reset(ctx context.Context) error {
	if err := x.init(ctx); err != nil {
		return err
	}
	_, err := x.pool.Exec(ctx, `TRUNCATE `+pgx.Identifier{x.table}.Sanitize())
	return err
}

var _ port.VectorIndex = (*RoleIndex)(nil)
