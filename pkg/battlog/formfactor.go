package battlog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/battlogger/pkg/common"
	"liyu1981.xyz/battlogger/pkg/models"
)

type IFormFactorImpl struct {
	battlog *BattLog
}

func (b *BattLog) GetIFormFactor() *IFormFactorImpl {
	return &IFormFactorImpl{battlog: b}
}

func (i *IFormFactorImpl) CreateFormFactor(ctx context.Context, input *models.FormFactor) (string, error) {
	return i.battlog.createFormFactor(ctx, input)
}

func (i *IFormFactorImpl) GetFormFactor(ctx context.Context, id string) (*models.FormFactor, error) {
	return i.battlog.getFormFactor(ctx, id)
}

func (i *IFormFactorImpl) GetFormFactorsMap(ctx context.Context) (map[string]models.FormFactor, error) {
	return i.battlog.formFactorCache.asMap(ctx)
}

func (i *IFormFactorImpl) GetAllFormFactors(ctx context.Context) ([]models.FormFactor, error) {
	return i.battlog.formFactorCache.all(ctx)
}

func validateFormFactor(formFactor *models.FormFactor) error {
	formFactor.Name = strings.TrimSpace(formFactor.Name)
	if formFactor.Name == "" {
		return common.NewValidationError("Missing required fields.")
	}
	return nil
}

func (b *BattLog) createFormFactor(ctx context.Context, input *models.FormFactor) (string, error) {
	logger := coreLogger(common.LoggerCategoryFormFactor)

	formFactor := models.FormFactor{ID: uuid.NewString(), Name: input.Name}
	if err := validateFormFactor(&formFactor); err != nil {
		return "", err
	}

	logger.Info("Received form factor", zap.Reflect("formFactor", formFactor))

	if err := b.Db.Conn.WithContext(ctx).Create(&formFactor).Error; err != nil {
		logger.Error("Failed to create form factor", zap.Error(err))
		return "", common.NewInternalError("Failed to create form factor.", err)
	}
	b.formFactorCache.invalidate()

	logger.Info("Created form factor", zap.String("id", formFactor.ID))
	return formFactor.ID, nil
}

func (b *BattLog) getFormFactor(ctx context.Context, id string) (*models.FormFactor, error) {
	formFactor, ok, err := b.formFactorCache.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.NewNotFoundError("Form factor not found.")
	}
	return &formFactor, nil
}

func (b *BattLog) loadFormFactors(ctx context.Context) ([]models.FormFactor, error) {
	var rows []models.FormFactor
	if err := b.Db.Conn.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, common.NewInternalError("Failed to load form factors.", err)
	}
	return rows, nil
}

func populateFormFactors(tx *gorm.DB, rows []models.FormFactor) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		if rows[i].ID == "" {
			rows[i].ID = uuid.NewString()
		}
		if err := validateFormFactor(&rows[i]); err != nil {
			return rowError("form factor", i, err)
		}
	}
	return upsert(tx, rows)
}
