package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderBySoldAt     = "sold_at"
	orderByRecordedAt = "recorded_at"
	orderBySoldPrice  = "sold_price"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderBySoldAt:     "sold_at DESC",
	orderByRecordedAt: "recorded_at DESC",
	orderBySoldPrice:  "sold_price DESC",
}

const defaultOrderBy = "sold_at DESC"

const baseOutcomesSelect = `SELECT ` + outcomeColumns + `
FROM outcomes`

const countOutcomesSelect = "SELECT COUNT(*) FROM outcomes"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an outcome
// query. It returns two SQL strings (one for the data query, one for the
// count query) and the positional parameters. OrgID is always the first
// condition: outcome listings never cross organizations.
func (q *OutcomeQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	conditions := []string{"org_id = $1"}
	args = append(args, q.OrgID)
	paramIdx := 2

	if q.Quality != nil {
		conditions = append(conditions, fmt.Sprintf("quality = $%d", paramIdx))
		args = append(args, *q.Quality)
		paramIdx++
	}

	if q.Marketplace != nil {
		conditions = append(conditions, fmt.Sprintf("marketplace = $%d", paramIdx))
		args = append(args, *q.Marketplace)
		paramIdx++
	}

	if q.Returned != nil {
		conditions = append(conditions, fmt.Sprintf("was_returned = $%d", paramIdx))
		args = append(args, *q.Returned)
		paramIdx++
	}

	if q.Since != nil {
		conditions = append(conditions, fmt.Sprintf("sold_at >= $%d", paramIdx))
		args = append(args, *q.Since)
		paramIdx++
	}

	if q.Until != nil {
		conditions = append(conditions, fmt.Sprintf("sold_at < $%d", paramIdx))
		args = append(args, *q.Until)
		paramIdx++
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	// Order by
	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	// Limit
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseOutcomesSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countOutcomesSelect + whereClause

	return dataSQL, countSQL, args
}

const baseAnomaliesSelect = `SELECT ` + anomalyColumns + `
FROM anomalies`

// ToSQL builds the anomaly list query. An empty OrgID spans all
// organizations; resolved records are excluded unless requested.
func (q *AnomalyQuery) ToSQL() (dataSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.OrgID != "" {
		conditions = append(conditions, fmt.Sprintf("org_id = $%d", paramIdx))
		args = append(args, q.OrgID)
		paramIdx++
	}

	if q.Type != nil {
		conditions = append(conditions, fmt.Sprintf("anomaly_type = $%d", paramIdx))
		args = append(args, *q.Type)
		paramIdx++
	}

	if q.Severity != nil {
		conditions = append(conditions, fmt.Sprintf("severity = $%d", paramIdx))
		args = append(args, *q.Severity)
		paramIdx++
	}

	if !q.IncludeResolved {
		conditions = append(conditions, "resolved = false")
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY detected_at DESC LIMIT %d",
		baseAnomaliesSelect, whereClause, limit,
	)

	return dataSQL, args
}
