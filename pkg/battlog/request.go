package battlog

import (
	"liyu1981.xyz/battlogger/pkg/common"
	"liyu1981.xyz/battlogger/pkg/models"
)

const (
	msgMissingCapacity  = "Missing required field: capacity."
	msgMissingTimestamp = "Missing required field: timestamp."
)

// TestRunFromFields reads a test run out of a transport payload. Presence of
// batteryId, capacity and timestamp is checked first, then the capacity
// range, then the timestamp format; the first failure is returned.
func TestRunFromFields(fields common.Fields) (*models.TestRun, error) {
	batteryID, ok := fields.NonEmptyString("batteryId")
	if !ok {
		return nil, common.NewValidationError(msgMissingBatteryID)
	}
	if !fields.Present("capacity") {
		return nil, common.NewValidationError(msgMissingCapacity)
	}
	rawTimestamp, ok := fields.NonEmptyString("timestamp")
	if !ok {
		return nil, common.NewValidationError(msgMissingTimestamp)
	}
	capacity, ok := fields.NonNegative("capacity")
	if !ok {
		return nil, common.NewValidationError(msgNegativeCapacity)
	}
	timestamp, ok := models.NormalizeTimestamp(rawTimestamp)
	if !ok {
		return nil, common.NewValidationError(msgInvalidTimestamp)
	}

	return &models.TestRun{
		BatteryID: batteryID,
		Capacity:  capacity,
		Timestamp: timestamp,
		ProcessID: fields.OptionalString("processId"),
	}, nil
}

// TestRunFields is the inverse of TestRunFromFields, used by clients.
func TestRunFields(run *models.TestRun) common.Fields {
	fields := common.Fields{
		"batteryId": run.BatteryID,
		"capacity":  run.Capacity,
		"timestamp": run.Timestamp,
	}
	if run.ProcessID != nil {
		fields["processId"] = *run.ProcessID
	}
	return fields
}
