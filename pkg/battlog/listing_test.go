package battlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/battlogger/pkg/common"
	"liyu1981.xyz/battlogger/pkg/models"
	_ "liyu1981.xyz/battlogger/pkg/testing"
)

func TestBuildBatteryListingSort(t *testing.T) {
	tests := []struct {
		name  string
		query models.BatteryQuery
		order string
	}{
		{"default", models.BatteryQuery{}, "ORDER BY b.id ASC"},
		{"known column", models.BatteryQuery{SortBy: "lastTestedCapacity", Order: "desc"}, "ORDER BY bt.capacity DESC, b.id ASC"},
		{"id descending", models.BatteryQuery{SortBy: "id", Order: "DESC"}, "ORDER BY b.id DESC"},
		{"bad order", models.BatteryQuery{SortBy: "modelName", Order: "sideways"}, "ORDER BY m.name ASC, b.id ASC"},
		{"injection", models.BatteryQuery{SortBy: "id; DROP TABLE batteries", Order: "desc"}, "ORDER BY b.id ASC"},
		{"snake case is not an alias", models.BatteryQuery{SortBy: "model_id"}, "ORDER BY b.id ASC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _ := buildBatteryListing(tt.query)
			assert.Contains(t, query, tt.order)
			assert.NotContains(t, query, "DROP")
		})
	}
}

func TestBuildBatteryListingFilters(t *testing.T) {
	query, args := buildBatteryListing(models.BatteryQuery{ModelID: "m", ChemistryID: "c"})
	assert.Contains(t, query, "WHERE b.model_id = ? AND m.chemistry_id = ?")
	assert.Equal(t, []any{"m", "c"}, args)

	query, args = buildBatteryListing(models.BatteryQuery{})
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestListBatteriesLatestTest(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, b, _ := GetMockBattLogWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	ctx := context.Background()

	ids := createReferenceData(t, b)
	require.NoError(t, b.Battery.CreateBattery(ctx, "B1", ids.ModelID))
	require.NoError(t, b.Battery.CreateBattery(ctx, "B2", ids.ModelID))

	// inserted out of order; T3 must win
	for _, run := range []models.TestRun{
		{BatteryID: "B1", Capacity: 1950, Timestamp: "2024-02-01T00:00:00Z"},
		{BatteryID: "B1", Capacity: 1800, Timestamp: "2024-03-01T00:00:00Z"},
		{BatteryID: "B1", Capacity: 2000, Timestamp: "2024-01-01T00:00:00Z"},
	} {
		_, err := b.TestRun.CreateTestRun(ctx, &run)
		require.NoError(t, err)
	}

	rows, err := b.Battery.ListBatteries(ctx, models.BatteryQuery{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "B1", rows[0].ID)
	assert.Equal(t, ids.ModelID, rows[0].ModelID)
	require.NotNil(t, rows[0].LastTestedCapacity)
	assert.Equal(t, 1800.0, *rows[0].LastTestedCapacity)
	assert.Equal(t, "2024-03-01T00:00:00.000000000Z", *rows[0].LastTestedTimestamp)
	assert.Equal(t, 2000, *rows[0].DesignCapacity)
	assert.Equal(t, "Lithium", *rows[0].ChemistryName)

	assert.Equal(t, "B2", rows[1].ID)
	assert.Nil(t, rows[1].LastTestedCapacity)
}

func TestListBatteriesTieBreakOnTestRunID(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, b, _ := GetMockBattLogWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	ctx := context.Background()

	ids := createReferenceData(t, b)
	require.NoError(t, b.Battery.CreateBattery(ctx, "B1", ids.ModelID))

	timestamp := "2024-05-05T10:00:00.000000000Z"
	require.NoError(t, b.Db.Conn.Create(&[]models.TestRun{
		{ID: "run-b", BatteryID: "B1", Capacity: 1500, Timestamp: timestamp},
		{ID: "run-c", BatteryID: "B1", Capacity: 1600, Timestamp: timestamp},
		{ID: "run-a", BatteryID: "B1", Capacity: 1700, Timestamp: timestamp},
	}).Error)

	details, err := b.Battery.GetBatteryDetails(ctx, "B1")
	require.NoError(t, err)
	assert.Equal(t, 1600.0, *details.LastTestedCapacity)
}

func TestListBatteriesSubMillisecondOrder(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, b, _ := GetMockBattLogWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	ctx := context.Background()

	ids := createReferenceData(t, b)
	batteryIDs := []string{"B1", "B2", "B3", "B4", "B5", "B6", "B7", "B8"}
	for _, batteryID := range batteryIDs {
		require.NoError(t, b.Battery.CreateBattery(ctx, batteryID, ids.ModelID))
		// later one first, both inside the same millisecond
		for _, run := range []models.TestRun{
			{BatteryID: batteryID, Capacity: 3, Timestamp: "2024-01-01T00:00:00.0009Z"},
			{BatteryID: batteryID, Capacity: 2, Timestamp: "2024-01-01T00:00:00.0005Z"},
		} {
			_, err := b.TestRun.CreateTestRun(ctx, &run)
			require.NoError(t, err)
		}
	}

	for _, batteryID := range batteryIDs {
		details, err := b.Battery.GetBatteryDetails(ctx, batteryID)
		require.NoError(t, err)
		require.NotNil(t, details.LastTestedCapacity)
		assert.Equal(t, 3.0, *details.LastTestedCapacity, batteryID)
		assert.Equal(t, "2024-01-01T00:00:00.000900000Z", *details.LastTestedTimestamp, batteryID)
	}

	tests, err := b.TestRun.GetBatteryTests(ctx, "B1")
	require.NoError(t, err)
	require.Len(t, tests, 2)
	assert.Equal(t, "2024-01-01T00:00:00.000500000Z", tests[1].Timestamp)
}

func TestListBatteriesFilterAndSort(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, b, _ := GetMockBattLogWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	ctx := context.Background()

	ids := createReferenceData(t, b)
	otherFormFactor, err := b.FormFactor.CreateFormFactor(ctx, &models.FormFactor{Name: "AA"})
	require.NoError(t, err)
	otherModel, err := b.Model.CreateModel(ctx, &models.Model{Name: "Eneloop", FormFactorID: otherFormFactor, ChemistryID: ids.ChemistryID})
	require.NoError(t, err)

	require.NoError(t, b.Battery.CreateBattery(ctx, "A", ids.ModelID))
	require.NoError(t, b.Battery.CreateBattery(ctx, "B", otherModel))
	require.NoError(t, b.Battery.CreateBattery(ctx, "C", ids.ModelID))
	for id, capacity := range map[string]float64{"A": 1000, "B": 3000, "C": 2000} {
		_, err := b.TestRun.CreateTestRun(ctx, &models.TestRun{BatteryID: id, Capacity: capacity, Timestamp: "2024-01-01"})
		require.NoError(t, err)
	}

	batteryIDs := func(rows []models.BatteryData) []string {
		return common.Mapper(rows, func(row models.BatteryData) string { return row.ID })
	}

	rows, err := b.Battery.ListBatteries(ctx, models.BatteryQuery{SortBy: "lastTestedCapacity", Order: "desc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, batteryIDs(rows))

	rows, err = b.Battery.ListBatteries(ctx, models.BatteryQuery{FormFactorID: ids.FormFactorID})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, batteryIDs(rows))

	rows, err = b.Battery.ListBatteries(ctx, models.BatteryQuery{FormFactorID: ids.FormFactorID, ModelID: otherModel})
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = b.Battery.ListBatteries(ctx, models.BatteryQuery{ChemistryID: ids.ChemistryID, SortBy: "formfactorName"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, batteryIDs(rows))

	rows, err = b.Battery.ListBatteries(ctx, models.BatteryQuery{SortBy: "nonsense", Order: "desc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, batteryIDs(rows))
}

func TestGetBatteryDetailsNotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, b, _ := GetMockBattLogWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()

	_, err := b.Battery.GetBatteryDetails(context.Background(), "nope")
	assert.Equal(t, common.KindNotFound, common.KindOf(err))
}
