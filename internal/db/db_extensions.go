package db

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// GetDBTX returns the underlying database transaction or connection interface
// This is useful for starting transactions or accessing the raw database connection
func (q *Queries) GetDBTX() DBTX {
	return q.db
}

// applicationColumns is the set of insertable columns on the applications
// table. InsertApplicationCompat drops any key not in this set instead of
// failing the whole insert.
var applicationColumns = map[string]bool{
	"internship_id":    true,
	"name":             true,
	"email":            true,
	"phone":            true,
	"education":        true,
	"college":          true,
	"city":             true,
	"cover_letter":     true,
	"skills":           true,
	"resume_url":       true,
	"resume_file_name": true,
	"linkedin_profile": true,
	"github_profile":   true,
	"portfolio_url":    true,
	"hear_about_us":    true,
	"agrees_to_terms":  true,
	"status":           true,
	"payment_status":   true,
	"payment_id":       true,
	"payment_amount":   true,
	"coupon_code":      true,
	"discount_amount":  true,
	"original_amount":  true,
}

// InsertApplicationCompat inserts an application from a loosely shaped field
// map, keeping only keys that match known snake_case columns. It exists for
// the compatibility step of the submission ladder, where the full typed
// insert has already failed and a reduced, column-filtered payload is tried
// instead.
func (q *Queries) InsertApplicationCompat(ctx context.Context, fields map[string]interface{}) (uuid.UUID, error) {
	cols := make([]string, 0, len(fields))
	for col := range fields {
		if applicationColumns[col] {
			cols = append(cols, col)
		}
	}
	if len(cols) == 0 {
		return uuid.Nil, fmt.Errorf("no insertable columns in record")
	}
	// Stable order keeps the statement cacheable and the logs readable.
	sort.Strings(cols)

	placeholders := make([]string, len(cols))
	args := make([]interface{}, len(cols))
	for idx, col := range cols {
		placeholders[idx] = fmt.Sprintf("$%d", idx+1)
		args[idx] = fields[col]
	}

	query := fmt.Sprintf(
		"INSERT INTO applications (%s) VALUES (%s) RETURNING id",
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
	)

	var id uuid.UUID
	if err := q.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
