package battlog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/battlogger/pkg/common"
	"liyu1981.xyz/battlogger/pkg/models"
)

const (
	msgMissingBatteryID    = "Missing required field: batteryId."
	msgNegativeCapacity    = "Capacity must be a positive number."
	msgInvalidTimestamp    = "Timestamp must be a valid ISO 8601 string."
	msgInvalidBatteryID    = "Invalid battery ID."
	msgInvalidProcessID    = "Invalid test run process ID."
	msgMissingName         = "Missing required field: name."
	msgMissingDescription  = "Missing required field: description."
	msgTestProcessNotFound = "Test run process not found."
)

type ITestRunImpl struct {
	battlog *BattLog
}

func (b *BattLog) GetITestRun() *ITestRunImpl {
	return &ITestRunImpl{battlog: b}
}

func (i *ITestRunImpl) CreateTestRun(ctx context.Context, input *models.TestRun) (string, error) {
	return i.battlog.createTestRun(ctx, input)
}

func (i *ITestRunImpl) GetBatteryTests(ctx context.Context, batteryID string) ([]models.TestRun, error) {
	return i.battlog.getBatteryTests(ctx, batteryID)
}

func (i *ITestRunImpl) GetAllTestRuns(ctx context.Context) ([]models.TestRun, error) {
	return i.battlog.getAllTestRuns(ctx)
}

func (i *ITestRunImpl) CreateTestRunProcess(ctx context.Context, input *models.TestRunProcess) (string, error) {
	return i.battlog.createTestRunProcess(ctx, input)
}

func (i *ITestRunImpl) GetTestRunProcess(ctx context.Context, id string) (*models.TestRunProcess, error) {
	return i.battlog.getTestRunProcess(ctx, id)
}

func (i *ITestRunImpl) GetTestRunProcesses(ctx context.Context) ([]models.TestRunProcess, error) {
	return i.battlog.getTestRunProcesses(ctx)
}

// validateTestRun checks the fields of a test run and normalizes its
// timestamp and process reference in place.
func validateTestRun(run *models.TestRun) error {
	run.BatteryID = strings.TrimSpace(run.BatteryID)
	if run.BatteryID == "" {
		return common.NewValidationError(msgMissingBatteryID)
	}
	if math.IsNaN(run.Capacity) || math.IsInf(run.Capacity, 0) || run.Capacity < 0 {
		return common.NewValidationError(msgNegativeCapacity)
	}
	timestamp, ok := models.NormalizeTimestamp(strings.TrimSpace(run.Timestamp))
	if !ok {
		return common.NewValidationError(msgInvalidTimestamp)
	}
	run.Timestamp = timestamp
	if run.ProcessID != nil && strings.TrimSpace(*run.ProcessID) == "" {
		run.ProcessID = nil
	}
	return nil
}

func (b *BattLog) createTestRun(ctx context.Context, input *models.TestRun) (string, error) {
	logger := coreLogger(common.LoggerCategoryTestRun)

	run := models.TestRun{
		ID:        uuid.NewString(),
		BatteryID: input.BatteryID,
		Capacity:  input.Capacity,
		Timestamp: input.Timestamp,
		ProcessID: input.ProcessID,
	}
	if err := validateTestRun(&run); err != nil {
		return "", err
	}

	logger.Info("Received test run", zap.Reflect("testRun", run))

	if b.Battery == nil {
		return "", common.NewInternalError("Failed to add test run.", errors.New("battery service is not configured"))
	}
	if _, err := b.Battery.GetBattery(ctx, run.BatteryID); err != nil {
		return "", asIntegrity(err, msgInvalidBatteryID)
	}
	if run.ProcessID != nil {
		if _, err := b.getTestRunProcess(ctx, *run.ProcessID); err != nil {
			return "", asIntegrity(err, msgInvalidProcessID)
		}
	}

	if err := b.Db.Conn.WithContext(ctx).Create(&run).Error; err != nil {
		logger.Error("Failed to add test run", zap.Error(err))
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return "", common.NewIntegrityError(msgInvalidBatteryID)
		}
		return "", common.NewInternalError("Failed to add test run.", err)
	}

	logger.Info("Appended test run", zap.String("id", run.ID), zap.String("batteryId", run.BatteryID))
	return run.ID, nil
}

func (b *BattLog) getBatteryTests(ctx context.Context, batteryID string) ([]models.TestRun, error) {
	rows := []models.TestRun{}
	err := b.Db.Conn.WithContext(ctx).
		Where("battery_id = ?", batteryID).
		Order("timestamp DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, common.NewInternalError("Failed to retrieve battery tests.", err)
	}
	return rows, nil
}

func (b *BattLog) getAllTestRuns(ctx context.Context) ([]models.TestRun, error) {
	rows := []models.TestRun{}
	if err := b.Db.Conn.WithContext(ctx).Order("battery_id, timestamp, id").Find(&rows).Error; err != nil {
		return nil, common.NewInternalError("Failed to retrieve test runs.", err)
	}
	return rows, nil
}

func validateTestRunProcess(process *models.TestRunProcess) error {
	process.Name = strings.TrimSpace(process.Name)
	process.Description = strings.TrimSpace(process.Description)
	if process.Name == "" {
		return common.NewValidationError(msgMissingName)
	}
	if process.Description == "" {
		return common.NewValidationError(msgMissingDescription)
	}
	return nil
}

func (b *BattLog) createTestRunProcess(ctx context.Context, input *models.TestRunProcess) (string, error) {
	logger := coreLogger(common.LoggerCategoryTestRun)

	process := models.TestRunProcess{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
	}
	if err := validateTestRunProcess(&process); err != nil {
		return "", err
	}

	if err := b.Db.Conn.WithContext(ctx).Create(&process).Error; err != nil {
		logger.Error("Failed to add test run process", zap.Error(err))
		return "", common.NewInternalError("Failed to add test run process.", err)
	}

	logger.Info("Created test run process", zap.String("id", process.ID), zap.String("name", process.Name))
	return process.ID, nil
}

func (b *BattLog) getTestRunProcess(ctx context.Context, id string) (*models.TestRunProcess, error) {
	var process models.TestRunProcess
	err := b.Db.Conn.WithContext(ctx).Where("id = ?", id).First(&process).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewNotFoundError(msgTestProcessNotFound)
	}
	if err != nil {
		return nil, common.NewInternalError("Failed to retrieve test run process.", err)
	}
	return &process, nil
}

func (b *BattLog) getTestRunProcesses(ctx context.Context) ([]models.TestRunProcess, error) {
	rows := []models.TestRunProcess{}
	if err := b.Db.Conn.WithContext(ctx).Order("name, id").Find(&rows).Error; err != nil {
		return nil, common.NewInternalError("Failed to retrieve test run processes.", err)
	}
	return rows, nil
}

func populateTestRunProcesses(tx *gorm.DB, rows []models.TestRunProcess) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		if rows[i].ID == "" {
			rows[i].ID = uuid.NewString()
		}
		if err := validateTestRunProcess(&rows[i]); err != nil {
			return rowError("test run process", i, err)
		}
	}
	return upsert(tx, rows)
}

func populateTestRuns(tx *gorm.DB, rows []models.TestRun) error {
	if len(rows) == 0 {
		return nil
	}
	batteryIDs := make([]string, 0, len(rows))
	var processIDs []string
	for i := range rows {
		if rows[i].ID == "" {
			rows[i].ID = uuid.NewString()
		}
		if err := validateTestRun(&rows[i]); err != nil {
			return rowError("test run", i, err)
		}
		batteryIDs = append(batteryIDs, rows[i].BatteryID)
		if rows[i].ProcessID != nil {
			processIDs = append(processIDs, *rows[i].ProcessID)
		}
	}

	batteries, err := existingIDs(tx, &models.Battery{}, batteryIDs)
	if err != nil {
		return err
	}
	processes, err := existingIDs(tx, &models.TestRunProcess{}, processIDs)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if !batteries[row.BatteryID] {
			return common.NewIntegrityError(fmt.Sprintf("Test run %s references unknown battery %s.", row.ID, row.BatteryID))
		}
		if row.ProcessID != nil && !processes[*row.ProcessID] {
			return common.NewIntegrityError(fmt.Sprintf("Test run %s references unknown test run process %s.", row.ID, *row.ProcessID))
		}
	}
	// recorded runs are never rewritten
	return insertNew(tx, rows)
}
