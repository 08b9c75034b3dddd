package battlog

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/battlogger/pkg/common"
	"liyu1981.xyz/battlogger/pkg/models"
)

type IImportExportImpl struct {
	battlog *BattLog
}

func (b *BattLog) GetIImportExport() *IImportExportImpl {
	return &IImportExportImpl{battlog: b}
}

func (i *IImportExportImpl) ExportAll(ctx context.Context) (*models.Dataset, error) {
	return i.battlog.exportDataset(ctx)
}

func (i *IImportExportImpl) ImportAll(ctx context.Context, dataset *models.Dataset) error {
	return i.battlog.importDataset(ctx, dataset)
}

func (i *IImportExportImpl) ExportEntityType(ctx context.Context, kind models.EntityType) ([]byte, error) {
	return i.battlog.exportEntityType(ctx, kind)
}

func (i *IImportExportImpl) ImportEntityType(ctx context.Context, kind models.EntityType, data []byte) error {
	return i.battlog.importEntityType(ctx, kind, data)
}

func (b *BattLog) exportDataset(ctx context.Context) (*models.Dataset, error) {
	var (
		dataset models.Dataset
		err     error
	)
	if dataset.Chemistries, err = b.chemistryCache.all(ctx); err != nil {
		return nil, err
	}
	if dataset.FormFactors, err = b.formFactorCache.all(ctx); err != nil {
		return nil, err
	}
	if dataset.Models, err = b.modelCache.all(ctx); err != nil {
		return nil, err
	}
	if dataset.Batteries, err = b.getAllBatteries(ctx); err != nil {
		return nil, err
	}
	if dataset.TestRunProcesses, err = b.getTestRunProcesses(ctx); err != nil {
		return nil, err
	}
	if dataset.TestRuns, err = b.getAllTestRuns(ctx); err != nil {
		return nil, err
	}

	dataset.Chemistries = common.NonNil(dataset.Chemistries)
	dataset.FormFactors = common.NonNil(dataset.FormFactors)
	dataset.Models = common.NonNil(dataset.Models)
	dataset.Batteries = common.NonNil(dataset.Batteries)
	return &dataset, nil
}

func (b *BattLog) exportEntityType(ctx context.Context, kind models.EntityType) ([]byte, error) {
	logger := coreLogger(common.LoggerCategoryImportExport)

	var (
		payload any
		err     error
	)
	switch kind {
	case models.EntityAll:
		payload, err = b.exportDataset(ctx)
	case models.EntityChemistries:
		payload, err = nonNil(b.chemistryCache.all(ctx))
	case models.EntityFormFactors:
		payload, err = nonNil(b.formFactorCache.all(ctx))
	case models.EntityModels:
		payload, err = nonNil(b.modelCache.all(ctx))
	case models.EntityBatteries:
		payload, err = nonNil(b.getAllBatteries(ctx))
	case models.EntityTestRuns:
		payload, err = nonNil(b.getAllTestRuns(ctx))
	case models.EntityTestRunProcesses:
		payload, err = nonNil(b.getTestRunProcesses(ctx))
	default:
		return nil, common.NewValidationError("Invalid data type.")
	}
	if err != nil {
		logger.Error("Failed to export data", zap.String("kind", string(kind)), zap.Error(err))
		return nil, err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, common.NewInternalError("Failed to export data.", err)
	}

	logger.Info("Exported data", zap.String("kind", string(kind)), zap.Int("bytes", len(data)))
	return data, nil
}

func nonNil[T any](rows []T, err error) ([]T, error) {
	return common.NonNil(rows), err
}

func (b *BattLog) importEntityType(ctx context.Context, kind models.EntityType, data []byte) error {
	logger := coreLogger(common.LoggerCategoryImportExport)

	var err error
	switch kind {
	case models.EntityAll:
		var dataset models.Dataset
		if err = decodeImport(data, &dataset); err != nil {
			return err
		}
		err = b.importDataset(ctx, &dataset)
	case models.EntityChemistries:
		err = importRows(ctx, b, data, populateChemistries, b.chemistryCache)
	case models.EntityFormFactors:
		err = importRows(ctx, b, data, populateFormFactors, b.formFactorCache)
	case models.EntityModels:
		err = importRows(ctx, b, data, populateModels, b.modelCache)
	case models.EntityBatteries:
		err = importRows(ctx, b, data, populateBatteries)
	case models.EntityTestRuns:
		err = importRows(ctx, b, data, populateTestRuns)
	case models.EntityTestRunProcesses:
		err = importRows(ctx, b, data, populateTestRunProcesses)
	default:
		return common.NewValidationError("Invalid data type.")
	}
	if err != nil {
		logger.Error("Failed to import data", zap.String("kind", string(kind)), zap.Error(err))
		return err
	}

	logger.Info("Imported data", zap.String("kind", string(kind)), zap.Int("bytes", len(data)))
	return nil
}

func (b *BattLog) importDataset(ctx context.Context, dataset *models.Dataset) error {
	if dataset == nil {
		return nil
	}
	return b.populate(ctx, func(tx *gorm.DB) error {
		return populateDataset(tx, dataset)
	}, b.formFactorCache, b.chemistryCache, b.modelCache)
}

// populateDataset writes every table in dependency order.
func populateDataset(tx *gorm.DB, dataset *models.Dataset) error {
	steps := []func() error{
		func() error { return populateFormFactors(tx, dataset.FormFactors) },
		func() error { return populateChemistries(tx, dataset.Chemistries) },
		func() error { return populateModels(tx, dataset.Models) },
		func() error { return populateBatteries(tx, dataset.Batteries) },
		func() error { return populateTestRunProcesses(tx, dataset.TestRunProcesses) },
		func() error { return populateTestRuns(tx, dataset.TestRuns) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

type invalidator interface {
	invalidate()
}

func importRows[T any](
	ctx context.Context,
	b *BattLog,
	data []byte,
	populate func(tx *gorm.DB, rows []T) error,
	caches ...invalidator,
) error {
	var rows []T
	if err := decodeImport(data, &rows); err != nil {
		return err
	}
	return b.populate(ctx, func(tx *gorm.DB) error {
		return populate(tx, rows)
	}, caches...)
}

// populate runs fn in one transaction. The caches are dropped once the
// transaction has finished, whether it committed or not.
func (b *BattLog) populate(ctx context.Context, fn func(tx *gorm.DB) error, caches ...invalidator) error {
	err := b.Db.Conn.WithContext(ctx).Transaction(fn)
	for _, cache := range caches {
		cache.invalidate()
	}
	if err == nil {
		return nil
	}

	var typed *common.Error
	if errors.As(err, &typed) {
		return err
	}
	return common.NewInternalError("Failed to import data.", err)
}

func decodeImport(data []byte, dest any) error {
	if err := json.Unmarshal(data, dest); err != nil {
		return &common.Error{Kind: common.KindValidation, Message: "Invalid JSON payload.", Err: err}
	}
	return nil
}
