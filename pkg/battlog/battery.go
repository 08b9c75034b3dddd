package battlog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/battlogger/pkg/common"
	"liyu1981.xyz/battlogger/pkg/models"
)

const (
	msgBatteryMissingFields = "Missing required fields."
	msgInvalidModelID       = "Invalid model identifier."
	msgBatteryExists        = "Battery with this ID already exists."
	msgBatteryNotFound      = "Battery not found."
	msgBatteryHasTestRuns   = "Battery has recorded test runs and cannot be deleted."
)

type IBatteryImpl struct {
	battlog *BattLog
}

func (b *BattLog) GetIBattery() *IBatteryImpl {
	return &IBatteryImpl{battlog: b}
}

func (i *IBatteryImpl) CreateBattery(ctx context.Context, batteryID, modelID string) error {
	return i.battlog.createBattery(ctx, batteryID, modelID)
}

func (i *IBatteryImpl) GetBattery(ctx context.Context, batteryID string) (*models.Battery, error) {
	return i.battlog.getBattery(ctx, batteryID)
}

func (i *IBatteryImpl) GetBatteryDetails(ctx context.Context, batteryID string) (*models.BatteryData, error) {
	return i.battlog.getBatteryDetails(ctx, batteryID)
}

func (i *IBatteryImpl) ListBatteries(ctx context.Context, query models.BatteryQuery) ([]models.BatteryData, error) {
	return i.battlog.listBatteries(ctx, query)
}

func (i *IBatteryImpl) UpdateBattery(ctx context.Context, batteryID, modelID string) error {
	return i.battlog.updateBattery(ctx, batteryID, modelID)
}

func (i *IBatteryImpl) DeleteBattery(ctx context.Context, batteryID string) error {
	return i.battlog.deleteBattery(ctx, batteryID)
}

func (i *IBatteryImpl) GetAllBatteries(ctx context.Context) ([]models.Battery, error) {
	return i.battlog.getAllBatteries(ctx)
}

func (b *BattLog) checkModelExists(ctx context.Context, modelID string) error {
	if b.Model == nil {
		return common.NewInternalError("Failed to resolve model.", errors.New("model service is not configured"))
	}
	if _, err := b.Model.GetModel(ctx, modelID); err != nil {
		return asIntegrity(err, msgInvalidModelID)
	}
	return nil
}

func (b *BattLog) createBattery(ctx context.Context, batteryID, modelID string) error {
	logger := coreLogger(common.LoggerCategoryBattery)

	battery := models.Battery{ID: strings.TrimSpace(batteryID), ModelID: strings.TrimSpace(modelID)}
	if battery.ID == "" || battery.ModelID == "" {
		return common.NewValidationError(msgBatteryMissingFields)
	}

	logger.Info("Received battery", zap.Reflect("battery", battery))

	if err := b.checkModelExists(ctx, battery.ModelID); err != nil {
		return err
	}

	conn := b.Db.Conn.WithContext(ctx)

	var count int64
	if err := conn.Model(&models.Battery{}).Where("id = ?", battery.ID).Count(&count).Error; err != nil {
		logger.Error("Failed to check battery id", zap.Error(err))
		return common.NewInternalError("Failed to add battery.", err)
	}
	if count > 0 {
		return common.NewConflictError(msgBatteryExists)
	}

	if err := conn.Create(&battery).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.NewConflictError(msgBatteryExists)
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return common.NewIntegrityError(msgInvalidModelID)
		}
		logger.Error("Failed to add battery", zap.Error(err))
		return common.NewInternalError("Failed to add battery.", err)
	}

	logger.Info("Created battery", zap.String("id", battery.ID))
	return nil
}

func (b *BattLog) getBattery(ctx context.Context, batteryID string) (*models.Battery, error) {
	var battery models.Battery
	err := b.Db.Conn.WithContext(ctx).Where("id = ?", batteryID).First(&battery).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewNotFoundError(msgBatteryNotFound)
	}
	if err != nil {
		return nil, common.NewInternalError("Failed to retrieve battery.", err)
	}
	return &battery, nil
}

func (b *BattLog) getBatteryDetails(ctx context.Context, batteryID string) (*models.BatteryData, error) {
	rows, err := b.queryBatteries(ctx, models.BatteryQuery{BatteryID: batteryID})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, common.NewNotFoundError(msgBatteryNotFound)
	}
	return &rows[0], nil
}

func (b *BattLog) listBatteries(ctx context.Context, query models.BatteryQuery) ([]models.BatteryData, error) {
	coreLogger(common.LoggerCategoryBattery).Debug("Listing batteries", zap.Reflect("query", query))
	return b.queryBatteries(ctx, query)
}

func (b *BattLog) updateBattery(ctx context.Context, batteryID, modelID string) error {
	logger := coreLogger(common.LoggerCategoryBattery)

	modelID = strings.TrimSpace(modelID)
	if modelID == "" {
		return common.NewValidationError(msgBatteryMissingFields)
	}
	if err := b.checkModelExists(ctx, modelID); err != nil {
		return err
	}

	result := b.Db.Conn.WithContext(ctx).
		Model(&models.Battery{}).
		Where("id = ?", batteryID).
		Update("model_id", modelID)
	if result.Error != nil {
		logger.Error("Failed to update battery", zap.String("id", batteryID), zap.Error(result.Error))
		return common.NewInternalError("Failed to update battery.", result.Error)
	}
	if result.RowsAffected == 0 {
		return common.NewNotFoundError(msgBatteryNotFound)
	}

	logger.Info("Updated battery", zap.String("id", batteryID), zap.String("modelId", modelID))
	return nil
}

func (b *BattLog) deleteBattery(ctx context.Context, batteryID string) error {
	logger := coreLogger(common.LoggerCategoryBattery)

	err := b.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tests int64
		if err := tx.Model(&models.TestRun{}).Where("battery_id = ?", batteryID).Count(&tests).Error; err != nil {
			return common.NewInternalError("Failed to delete battery.", err)
		}
		if tests > 0 {
			return common.NewConflictError(msgBatteryHasTestRuns)
		}

		result := tx.Where("id = ?", batteryID).Delete(&models.Battery{})
		if result.Error != nil {
			return common.NewInternalError("Failed to delete battery.", result.Error)
		}
		if result.RowsAffected == 0 {
			return common.NewNotFoundError(msgBatteryNotFound)
		}
		return nil
	})
	if err != nil {
		if common.KindOf(err) == common.KindInternal {
			logger.Error("Failed to delete battery", zap.String("id", batteryID), zap.Error(err))
		}
		return err
	}

	logger.Info("Deleted battery", zap.String("id", batteryID))
	return nil
}

func (b *BattLog) getAllBatteries(ctx context.Context) ([]models.Battery, error) {
	var rows []models.Battery
	if err := b.Db.Conn.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, common.NewInternalError("Failed to retrieve batteries.", err)
	}
	return rows, nil
}

func populateBatteries(tx *gorm.DB, rows []models.Battery) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		rows[i].ID = strings.TrimSpace(rows[i].ID)
		rows[i].ModelID = strings.TrimSpace(rows[i].ModelID)
		if rows[i].ID == "" || rows[i].ModelID == "" {
			return rowError("battery", i, common.NewValidationError(msgBatteryMissingFields))
		}
	}

	modelIDs := common.Mapper(rows, func(row models.Battery) string { return row.ModelID })
	known, err := existingIDs(tx, &models.Model{}, modelIDs)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if !known[row.ModelID] {
			return common.NewIntegrityError(fmt.Sprintf("Battery %s references unknown model %s.", row.ID, row.ModelID))
		}
	}
	return upsert(tx, rows)
}
