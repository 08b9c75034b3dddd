package battlog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/battlogger/pkg/common"
	"liyu1981.xyz/battlogger/pkg/models"
)

const (
	msgModelMissingFields  = "Missing required fields: name, formFactorId, and chemistryId are required."
	msgModelCapacity       = "Design capacity must be a positive number."
	msgInvalidFormFactorID = "Invalid form factor ID."
	msgInvalidChemistryID  = "Invalid chemistry ID."
)

type IModelImpl struct {
	battlog *BattLog
}

func (b *BattLog) GetIModel() *IModelImpl {
	return &IModelImpl{battlog: b}
}

func (i *IModelImpl) CreateModel(ctx context.Context, input *models.Model) (string, error) {
	return i.battlog.createModel(ctx, input)
}

func (i *IModelImpl) GetModel(ctx context.Context, id string) (*models.Model, error) {
	return i.battlog.getModel(ctx, id)
}

func (i *IModelImpl) GetModelDetails(ctx context.Context) (map[string]models.Model, error) {
	return i.battlog.modelCache.asMap(ctx)
}

func (i *IModelImpl) GetModelMap(ctx context.Context) (map[string]string, error) {
	details, _, err := i.battlog.modelCache.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(details))
	for id, model := range details {
		names[id] = model.Name
	}
	return names, nil
}

func (i *IModelImpl) GetAllModels(ctx context.Context) ([]models.Model, error) {
	return i.battlog.modelCache.all(ctx)
}

func validateModel(model *models.Model) error {
	model.Name = strings.TrimSpace(model.Name)
	model.FormFactorID = strings.TrimSpace(model.FormFactorID)
	model.ChemistryID = strings.TrimSpace(model.ChemistryID)
	if model.Name == "" || model.FormFactorID == "" || model.ChemistryID == "" {
		return common.NewValidationError(msgModelMissingFields)
	}
	if model.DesignCapacity != nil && *model.DesignCapacity <= 0 {
		return common.NewValidationError(msgModelCapacity)
	}
	if model.Manufacturer != nil {
		manufacturer := strings.TrimSpace(*model.Manufacturer)
		if manufacturer == "" {
			model.Manufacturer = nil
		} else {
			model.Manufacturer = &manufacturer
		}
	}
	return nil
}

func (b *BattLog) createModel(ctx context.Context, input *models.Model) (string, error) {
	logger := coreLogger(common.LoggerCategoryModel)

	model := models.Model{
		ID:             uuid.NewString(),
		Name:           input.Name,
		DesignCapacity: input.DesignCapacity,
		FormFactorID:   input.FormFactorID,
		ChemistryID:    input.ChemistryID,
		Manufacturer:   input.Manufacturer,
	}
	if err := validateModel(&model); err != nil {
		return "", err
	}

	logger.Info("Received model", zap.Reflect("model", model))

	if b.FormFactor == nil || b.Chemistry == nil {
		return "", common.NewInternalError("Failed to create model.", errors.New("reference services are not configured"))
	}
	if _, err := b.FormFactor.GetFormFactor(ctx, model.FormFactorID); err != nil {
		return "", asIntegrity(err, msgInvalidFormFactorID)
	}
	if _, err := b.Chemistry.GetChemistry(ctx, model.ChemistryID); err != nil {
		return "", asIntegrity(err, msgInvalidChemistryID)
	}

	if err := b.Db.Conn.WithContext(ctx).Create(&model).Error; err != nil {
		logger.Error("Failed to create model", zap.Error(err))
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return "", common.NewIntegrityError("Invalid form factor or chemistry ID.")
		}
		return "", common.NewInternalError("Failed to create model.", err)
	}
	b.modelCache.invalidate()

	logger.Info("Created model", zap.String("id", model.ID))
	return model.ID, nil
}

func (b *BattLog) getModel(ctx context.Context, id string) (*models.Model, error) {
	model, ok, err := b.modelCache.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.NewNotFoundError("Model not found.")
	}
	return &model, nil
}

func (b *BattLog) loadModels(ctx context.Context) ([]models.Model, error) {
	var rows []models.Model
	if err := b.Db.Conn.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, common.NewInternalError("Failed to load models.", err)
	}
	return rows, nil
}

func populateModels(tx *gorm.DB, rows []models.Model) error {
	if len(rows) == 0 {
		return nil
	}
	formFactorIDs := make([]string, 0, len(rows))
	chemistryIDs := make([]string, 0, len(rows))
	for i := range rows {
		if rows[i].ID == "" {
			rows[i].ID = uuid.NewString()
		}
		if err := validateModel(&rows[i]); err != nil {
			return rowError("model", i, err)
		}
		formFactorIDs = append(formFactorIDs, rows[i].FormFactorID)
		chemistryIDs = append(chemistryIDs, rows[i].ChemistryID)
	}

	formFactors, err := existingIDs(tx, &models.FormFactor{}, formFactorIDs)
	if err != nil {
		return err
	}
	chemistries, err := existingIDs(tx, &models.Chemistry{}, chemistryIDs)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if !formFactors[row.FormFactorID] {
			return common.NewIntegrityError(fmt.Sprintf("Model %s references unknown form factor %s.", row.ID, row.FormFactorID))
		}
		if !chemistries[row.ChemistryID] {
			return common.NewIntegrityError(fmt.Sprintf("Model %s references unknown chemistry %s.", row.ID, row.ChemistryID))
		}
	}
	return upsert(tx, rows)
}
