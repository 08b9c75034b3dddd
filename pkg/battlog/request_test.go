package battlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/battlogger/pkg/common"
)

func TestTestRunFromFields(t *testing.T) {
	run, err := TestRunFromFields(common.Fields{
		"batteryId": " B1 ",
		"capacity":  1900.0,
		"timestamp": "2024-01-01T02:00:00+02:00",
		"processId": "",
	})
	require.NoError(t, err)
	assert.Equal(t, "B1", run.BatteryID)
	assert.Equal(t, 1900.0, run.Capacity)
	assert.Equal(t, "2024-01-01T00:00:00.000000000Z", run.Timestamp)
	assert.Nil(t, run.ProcessID)

	back, err := TestRunFromFields(TestRunFields(run))
	require.NoError(t, err)
	assert.Equal(t, run, back)
}

func TestTestRunFromFieldsOrder(t *testing.T) {
	cases := []struct {
		name    string
		fields  common.Fields
		message string
	}{
		{"empty", common.Fields{}, "Missing required field: batteryId."},
		{"capacity before timestamp", common.Fields{"batteryId": "B1"}, "Missing required field: capacity."},
		{"presence before range", common.Fields{"batteryId": "B1", "capacity": -5.0}, "Missing required field: timestamp."},
		{"negative", common.Fields{"batteryId": "B1", "capacity": -5.0, "timestamp": "nope"}, "Capacity must be a positive number."},
		{"timestamp", common.Fields{"batteryId": "B1", "capacity": 5.0, "timestamp": "nope"}, "Timestamp must be a valid ISO 8601 string."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := TestRunFromFields(tc.fields)
			require.Error(t, err)
			assert.Equal(t, common.KindValidation, common.KindOf(err))
			assert.Equal(t, tc.message, common.MessageOf(err, ""))
		})
	}
}
