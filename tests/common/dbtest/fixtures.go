//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"parkspace-booking/internal/infra/migrations"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestCompany(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	companyID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO companies (id, name, street, house_number, postal_code, city, email)
		VALUES ($1, $2, 'Hafenstraße', '12', '20457', 'Hamburg', 'info@example.com')
		ON CONFLICT (name) DO NOTHING`, companyID, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM companies WHERE name = $1", name).Scan(&companyID)
	}

	return companyID
}

func CreateTestLocation(t *testing.T, db DBLike, companyID *uuid.UUID, name, category string) uuid.UUID {
	t.Helper()

	locationID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO locations (id, name, address, category, company_id) VALUES ($1, $2, 'Industriestraße 5, 12345 Berlin', $3, $4)",
		locationID, name, category, companyID)
	require.NoError(t, err)

	return locationID
}

// VehicleTypeID looks up a seeded vehicle type by its maximum length, e.g. "5.00".
func VehicleTypeID(t *testing.T, db DBLike, maxLength string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM vehicle_types WHERE max_length = $1::numeric", maxLength).Scan(&id)
	require.NoError(t, err, "vehicle type %s not seeded", maxLength)
	return id
}

func CreateTestDiscount(t *testing.T, db DBLike, code, discountType, value string, usageLimit *int) uuid.UUID {
	t.Helper()

	discountID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO discounts (id, code, discount_type, value, usage_limit) VALUES ($1, $2, $3, $4::numeric, $5)",
		discountID, code, discountType, value, usageLimit)
	require.NoError(t, err)

	return discountID
}

func CreateTestBlackout(t *testing.T, db DBLike, locationID uuid.UUID, start, end string) uuid.UUID {
	t.Helper()

	blackoutID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO location_blackouts (id, location_id, start_date, end_date) VALUES ($1, $2, $3::date, $4::date)",
		blackoutID, locationID, start, end)
	require.NoError(t, err)

	return blackoutID
}

// CountRows counts rows of table matching an optional WHERE clause.
func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

// inserts the reference data the schema migrations seed
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	seed, err := migrations.ReferenceData()
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, seed)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
