package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

const baseWatchesSelect = `SELECT id, user_id, card_key, card_name, pack_id, pack_name,
	pack_card_id, rare, image_url, target_price, target_price_min, is_active,
	notification_target, created_at, updated_at
FROM watches`

const countWatchesSelect = "SELECT COUNT(*) FROM watches"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a watch query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *WatchQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", paramIdx))
		args = append(args, *q.UserID)
		paramIdx++
	}

	if q.CardKey != nil {
		conditions = append(conditions, fmt.Sprintf("card_key = $%d", paramIdx))
		args = append(args, *q.CardKey)
	}

	if q.ActiveOnly {
		conditions = append(conditions, "is_active = true")
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

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY created_at DESC, id DESC LIMIT %d OFFSET %d",
		baseWatchesSelect, whereClause, limit, offset,
	)

	countSQL = countWatchesSelect + whereClause

	return dataSQL, countSQL, args
}
