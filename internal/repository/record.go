package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
)

// RecordRepository reads bibliographic records
type RecordRepository interface {
	FieldValues(ctx context.Context, recid int64, tag string) ([]string, error)
	IsPublic(ctx context.Context, recid int64) (bool, error)
	FormatRecord(ctx context.Context, recid int64, format string) (string, error)
}

var tagPattern = regexp.MustCompile(`^[0-9]{3}[0-9_]{0,2}[a-z0-9_%]?$`)

type recordRepository struct {
	db Querier
}

func NewRecordRepository(db Querier) RecordRepository {
	return &recordRepository{
		db: db,
	}
}

// FieldValues returns the values of a MARC field such as "245__a", ordered by field position.
// The first two digits of the tag select the bibXXx table pair.
func (r *recordRepository) FieldValues(ctx context.Context, recid int64, tag string) ([]string, error) {
	if !tagPattern.MatchString(tag) {
		return nil, fmt.Errorf("invalid field tag %q", tag)
	}

	table := "bib" + tag[0:2] + "x"
	query := fmt.Sprintf(`
	SELECT b.value FROM bibrec_%[1]s AS bb
	JOIN %[1]s AS b ON bb.id_bibxxx = b.id
	WHERE bb.id_bibrec = $1 AND b.tag LIKE $2
	ORDER BY bb.field_number, b.tag`, table)

	rows, err := r.db.Query(ctx, query, recid, strings.ReplaceAll(tag, "_", "\\_"))
	if err != nil {
		return nil, fmt.Errorf("failed to query field %s of record %d: %w", tag, recid, err)
	}

	values, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to read field %s of record %d: %w", tag, recid, err)
	}

	return values, nil
}

// IsPublic reports whether the record is outside every restricted collection
func (r *recordRepository) IsPublic(ctx context.Context, recid int64) (bool, error) {
	query := `
	SELECT NOT EXISTS (
		SELECT 1 FROM collection_bibrec cb
		JOIN collection_restriction cr ON cr.id_collection = cb.id_collection
		WHERE cb.id_bibrec = $1
	)`

	var public bool
	if err := r.db.QueryRow(ctx, query, recid).Scan(&public); err != nil {
		return false, fmt.Errorf("failed to check restriction of record %d: %w", recid, err)
	}

	return public, nil
}

// FormatRecord returns the cached rendering of a record in the given output format ("hs", "hd", ...)
func (r *recordRepository) FormatRecord(ctx context.Context, recid int64, format string) (string, error) {
	query := `SELECT value FROM bibfmt WHERE id_bibrec = $1 AND format = $2`

	var value string
	err := r.db.QueryRow(ctx, query, recid, format).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to format record %d as %s: %w", recid, format, err)
	}

	return value, nil
}
