package battlog

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"

	"liyu1981.xyz/battlogger/pkg/common"
	"liyu1981.xyz/battlogger/pkg/models"
	_ "liyu1981.xyz/battlogger/pkg/testing"
)

func TestCreateTestRun(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, b, _ := GetMockBattLogWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	ctx := context.Background()

	ids := createReferenceData(t, b)
	require.NoError(t, b.Battery.CreateBattery(ctx, "B1", ids.ModelID))

	processID, err := b.TestRun.CreateTestRunProcess(ctx, &models.TestRunProcess{Name: "0.5C", Description: "Discharge at half rate"})
	require.NoError(t, err)

	id, err := b.TestRun.CreateTestRun(ctx, &models.TestRun{
		BatteryID: "B1",
		Capacity:  1900,
		Timestamp: "2024-01-01T02:00:00+02:00",
		ProcessID: &processID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	tests, err := b.TestRun.GetBatteryTests(ctx, "B1")
	require.NoError(t, err)
	require.Len(t, tests, 1)
	assert.Equal(t, id, tests[0].ID)
	assert.Equal(t, "2024-01-01T00:00:00.000000000Z", tests[0].Timestamp)
	assert.Equal(t, processID, *tests[0].ProcessID)
}

func TestCreateTestRunValidation(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, b, _ := GetMockBattLogWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	ctx := context.Background()

	ids := createReferenceData(t, b)
	require.NoError(t, b.Battery.CreateBattery(ctx, "B1", ids.ModelID))

	tests := []struct {
		name    string
		input   models.TestRun
		kind    common.ErrorKind
		message string
	}{
		{"missing battery", models.TestRun{Capacity: 1, Timestamp: "2024-01-01"}, common.KindValidation, "Missing required field: batteryId."},
		{"negative capacity", models.TestRun{BatteryID: "B1", Capacity: -5, Timestamp: "2024-01-01"}, common.KindValidation, "Capacity must be a positive number."},
		{"bad timestamp", models.TestRun{BatteryID: "B1", Capacity: 5, Timestamp: "yesterday"}, common.KindValidation, "Timestamp must be a valid ISO 8601 string."},
		{"unknown battery", models.TestRun{BatteryID: "B9", Capacity: 5, Timestamp: "2024-01-01"}, common.KindIntegrity, "Invalid battery ID."},
		{"unknown process", models.TestRun{BatteryID: "B1", Capacity: 5, Timestamp: "2024-01-01", ProcessID: strPtr("nope")}, common.KindIntegrity, "Invalid test run process ID."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.TestRun.CreateTestRun(ctx, &tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.kind, common.KindOf(err))
			assert.Equal(t, tt.message, common.MessageOf(err, ""))
		})
	}

	// zero capacity and an empty process id are accepted
	_, err := b.TestRun.CreateTestRun(ctx, &models.TestRun{BatteryID: "B1", Capacity: 0, Timestamp: "2024-01-01", ProcessID: strPtr("")})
	require.NoError(t, err)

	all, err := b.TestRun.GetAllTestRuns(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Nil(t, all[0].ProcessID)
}

func TestGetBatteryTestsNewestFirst(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, b, _ := GetMockBattLogWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	ctx := context.Background()

	ids := createReferenceData(t, b)
	require.NoError(t, b.Battery.CreateBattery(ctx, "B1", ids.ModelID))

	for _, timestamp := range []string{"2024-01-02", "2023-12-31T23:59:59.5Z", "2024-01-03T00:00:00Z", "2024-01-01T00:00"} {
		_, err := b.TestRun.CreateTestRun(ctx, &models.TestRun{BatteryID: "B1", Capacity: 1, Timestamp: timestamp})
		require.NoError(t, err)
	}

	tests, err := b.TestRun.GetBatteryTests(ctx, "B1")
	require.NoError(t, err)
	timestamps := common.Mapper(tests, func(run models.TestRun) string { return run.Timestamp })
	assert.Equal(t, []string{
		"2024-01-03T00:00:00.000000000Z",
		"2024-01-02T00:00:00.000000000Z",
		"2024-01-01T00:00:00.000000000Z",
		"2023-12-31T23:59:59.500000000Z",
	}, timestamps)

	empty, err := b.TestRun.GetBatteryTests(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestCreateTestRunWithMockBattery(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, b, m := GetMockBattLogWithMemorySqliteDialector(t, useMocks{Battery: true})
	defer ctrl.Finish()

	m.Battery.
		EXPECT().
		GetBattery(gomock.Any(), gomock.Eq("B1")).
		Return(nil, common.NewNotFoundError("Battery not found.")).
		Times(1)

	_, err := b.TestRun.CreateTestRun(context.Background(), &models.TestRun{BatteryID: "B1", Capacity: 1, Timestamp: "2024-01-01"})
	assert.Equal(t, common.KindIntegrity, common.KindOf(err))

	// force the battery service to be nil
	b.Battery = nil
	_, err = b.TestRun.CreateTestRun(context.Background(), &models.TestRun{BatteryID: "B1", Capacity: 1, Timestamp: "2024-01-01"})
	assert.Equal(t, common.KindInternal, common.KindOf(err))
}

func TestTestRunProcesses(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, b, _ := GetMockBattLogWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	ctx := context.Background()

	_, err := b.TestRun.CreateTestRunProcess(ctx, &models.TestRunProcess{Description: "no name"})
	assert.Equal(t, "Missing required field: name.", common.MessageOf(err, ""))
	_, err = b.TestRun.CreateTestRunProcess(ctx, &models.TestRunProcess{Name: "no description"})
	assert.Equal(t, "Missing required field: description.", common.MessageOf(err, ""))

	slow, err := b.TestRun.CreateTestRunProcess(ctx, &models.TestRunProcess{Name: "Slow", Description: "0.2C"})
	require.NoError(t, err)
	_, err = b.TestRun.CreateTestRunProcess(ctx, &models.TestRunProcess{Name: "Fast", Description: "1C"})
	require.NoError(t, err)

	processes, err := b.TestRun.GetTestRunProcesses(ctx)
	require.NoError(t, err)
	names := common.Mapper(processes, func(p models.TestRunProcess) string { return p.Name })
	assert.Equal(t, []string{"Fast", "Slow"}, names)

	process, err := b.TestRun.GetTestRunProcess(ctx, slow)
	require.NoError(t, err)
	assert.Equal(t, "0.2C", process.Description)

	_, err = b.TestRun.GetTestRunProcess(ctx, "missing")
	assert.Equal(t, common.KindNotFound, common.KindOf(err))
}

func TestCreateTestRun_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, b, _ := GetMockBattLogWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	ctx := context.Background()

	ids := createReferenceData(t, b)
	require.NoError(t, b.Battery.CreateBattery(ctx, "B1", ids.ModelID))
	id, err := b.TestRun.CreateTestRun(ctx, &models.TestRun{BatteryID: "B1", Capacity: 1234.5, Timestamp: "2024-01-01"})
	require.NoError(t, err)

	logs := ParseLogs(buf)

	assert.True(t, findLog(logs, func(lobj map[string]any) bool {
		run, ok := lobj["testRun"].(map[string]any)
		return ok &&
			lobj["logger"] == "battlog_core" &&
			lobj["category"] == "testrun" &&
			lobj["msg"] == "Received test run" &&
			run["batteryId"] == "B1" &&
			run["capacity"] == 1234.5 &&
			run["timestamp"] == "2024-01-01T00:00:00.000000000Z"
	}))
	assert.True(t, findLog(logs, func(lobj map[string]any) bool {
		return lobj["msg"] == "Appended test run" && lobj["id"] == id && lobj["batteryId"] == "B1"
	}))
}
