package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByUpdated = "updated_at"
	orderByListed  = "listed_at"
	orderByTitle   = "title"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByUpdated: "l.updated_at DESC",
	orderByListed:  "l.listed_at DESC NULLS LAST",
	orderByTitle:   "l.title ASC",
}

const defaultOrderBy = "l.updated_at DESC"

const baseListingsSelect = `SELECT ` + listingColumns + `
FROM listings l
JOIN stores s ON s.id = l.store_id`

const countListingsSelect = `SELECT COUNT(*)
FROM listings l
JOIN stores s ON s.id = l.store_id`

const baseDraftsSelect = `SELECT ` + draftSummaryColumns + `
FROM drafts d
JOIN stores s ON s.id = d.store_id`

const countDraftsSelect = `SELECT COUNT(*)
FROM drafts d
JOIN stores s ON s.id = d.store_id`

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a listing
// query scoped to userID. It returns the data and count SQL along with the
// positional parameters shared by both.
func (q *ListingQuery) ToSQL(userID string) (dataSQL, countSQL string, args []any) {
	conditions := []string{"s.user_id = $1"}
	args = []any{userID}
	paramIdx := 2

	if q.Status != nil {
		conditions = append(conditions, fmt.Sprintf("l.status = $%d", paramIdx))
		args = append(args, *q.Status)
		paramIdx++
	}

	if q.StoreID != nil {
		conditions = append(conditions, fmt.Sprintf("l.store_id = $%d", paramIdx))
		args = append(args, *q.StoreID)
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	limit, offset := clampPage(q.Limit, q.Offset)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseListingsSelect, whereClause, orderClause, limit, offset,
	)
	countSQL = countListingsSelect + whereClause

	return dataSQL, countSQL, args
}

// ToSQL builds the draft list query for userID. Drafts are always returned
// newest first.
func (q *DraftQuery) ToSQL(userID string) (dataSQL, countSQL string, args []any) {
	conditions := []string{"s.user_id = $1"}
	args = []any{userID}

	if q.Status != nil {
		conditions = append(conditions, "d.status = $2")
		args = append(args, string(*q.Status))
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")
	limit, offset := clampPage(q.Limit, q.Offset)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY d.created_at DESC LIMIT %d OFFSET %d",
		baseDraftsSelect, whereClause, limit, offset,
	)
	countSQL = countDraftsSelect + whereClause

	return dataSQL, countSQL, args
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit, max(offset, 0)
}
