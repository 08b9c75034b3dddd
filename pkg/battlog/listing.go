package battlog

import (
	"context"
	"strings"

	"liyu1981.xyz/battlogger/pkg/common"
	"liyu1981.xyz/battlogger/pkg/models"
)

// sortableColumns maps the listing's external field names to the SQL they
// sort by. Nothing outside this map is ever interpolated into the query.
var sortableColumns = map[string]string{
	"id":                  "b.id",
	"modelId":             "b.model_id",
	"modelName":           "m.name",
	"designCapacity":      "m.design_capacity",
	"lastTestedCapacity":  "bt.capacity",
	"lastTestedTimestamp": "bt.timestamp",
	"chemistryName":       "c.name",
	"chemistryShortName":  "c.short_name",
	"formfactorName":      "ff.name",
}

// The latest test of each battery is the rank 1 row of its partition. Equal
// timestamps are ranked by descending test run id.
const batteryListingSelect = `SELECT
	b.id AS id,
	b.model_id AS model_id,
	m.name AS model_name,
	m.design_capacity AS design_capacity,
	bt.capacity AS last_tested_capacity,
	bt.timestamp AS last_tested_timestamp,
	c.name AS chemistry_name,
	c.short_name AS chemistry_short_name,
	ff.name AS formfactor_name
FROM batteries b
LEFT JOIN models m ON b.model_id = m.id
LEFT JOIN chemistries c ON m.chemistry_id = c.id
LEFT JOIN formfactors ff ON m.formfactor_id = ff.id
LEFT JOIN (
	SELECT
		battery_id,
		capacity,
		timestamp,
		ROW_NUMBER() OVER (PARTITION BY battery_id ORDER BY timestamp DESC, id DESC) AS rn
	FROM battery_tests
) bt ON bt.battery_id = b.id AND bt.rn = 1`

// buildBatteryListing renders q into SQL and its bind arguments.
func buildBatteryListing(q models.BatteryQuery) (string, []any) {
	var sb strings.Builder
	sb.WriteString(batteryListingSelect)

	var conditions []string
	var args []any
	if q.BatteryID != "" {
		conditions = append(conditions, "b.id = ?")
		args = append(args, q.BatteryID)
	}
	if q.ModelID != "" {
		conditions = append(conditions, "b.model_id = ?")
		args = append(args, q.ModelID)
	}
	if q.FormFactorID != "" {
		conditions = append(conditions, "m.formfactor_id = ?")
		args = append(args, q.FormFactorID)
	}
	if q.ChemistryID != "" {
		conditions = append(conditions, "m.chemistry_id = ?")
		args = append(args, q.ChemistryID)
	}
	if len(conditions) > 0 {
		sb.WriteString("\nWHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}

	sb.WriteString("\nORDER BY ")
	if column, ok := sortableColumns[q.SortBy]; ok && column != "b.id" {
		sb.WriteString(column)
		sb.WriteString(" ")
		sb.WriteString(sortDirection(q.Order))
		sb.WriteString(", b.id ASC")
	} else if ok {
		sb.WriteString("b.id ")
		sb.WriteString(sortDirection(q.Order))
	} else {
		sb.WriteString("b.id ASC")
	}

	return sb.String(), args
}

func sortDirection(order string) string {
	if strings.EqualFold(order, models.OrderDesc) {
		return "DESC"
	}
	return "ASC"
}

func (b *BattLog) queryBatteries(ctx context.Context, q models.BatteryQuery) ([]models.BatteryData, error) {
	query, args := buildBatteryListing(q)

	rows := []models.BatteryData{}
	if err := b.Db.Conn.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, common.NewInternalError("Failed to retrieve battery data.", err)
	}
	return rows, nil
}
