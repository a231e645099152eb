package readstore

import (
	"log/slog"

	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/pkg/caldate"
	"parkspace-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// collect scans every row with scan and closes rows.
func collect[T any](logger *slog.Logger, rows pgx.Rows, scan func(pgx.Row) (T, error), msg string) ([]T, error) {
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(logger, infra.KindDBFailure, msg, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindDBFailure, msg, err)
	}
	return out, nil
}

func notFoundOr(logger *slog.Logger, err error, notFoundMsg, failMsg string) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(logger, infra.KindNotFound, notFoundMsg, err)
	}
	return infra.WrapRepoErr(logger, infra.KindDBFailure, failMsg, err)
}

func dateString(d pgtype.Date) string {
	return caldate.Format(pgconv.DateFromPgtype(d))
}

func dateStringPtr(d pgtype.Date) *string {
	t := pgconv.DatePtrFromPgtype(d)
	if t == nil {
		return nil
	}
	s := caldate.Format(*t)
	return &s
}
