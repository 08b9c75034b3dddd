package battlog

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/battlogger/pkg/common"
	"liyu1981.xyz/battlogger/pkg/models"
)

type IChemistryImpl struct {
	battlog *BattLog
}

func (b *BattLog) GetIChemistry() *IChemistryImpl {
	return &IChemistryImpl{battlog: b}
}

func (i *IChemistryImpl) CreateChemistry(ctx context.Context, input *models.Chemistry) (string, error) {
	return i.battlog.createChemistry(ctx, input)
}

func (i *IChemistryImpl) GetChemistry(ctx context.Context, id string) (*models.Chemistry, error) {
	return i.battlog.getChemistry(ctx, id)
}

func (i *IChemistryImpl) GetChemistriesMap(ctx context.Context) (map[string]models.Chemistry, error) {
	return i.battlog.chemistryCache.asMap(ctx)
}

func (i *IChemistryImpl) GetAllChemistries(ctx context.Context) ([]models.Chemistry, error) {
	return i.battlog.chemistryCache.all(ctx)
}

func validateChemistry(chemistry *models.Chemistry) error {
	chemistry.Name = strings.TrimSpace(chemistry.Name)
	chemistry.ShortName = strings.TrimSpace(chemistry.ShortName)
	if chemistry.Name == "" || chemistry.ShortName == "" {
		return common.NewValidationError("Missing required fields.")
	}
	if math.IsNaN(chemistry.NominalVoltage) || math.IsInf(chemistry.NominalVoltage, 0) || chemistry.NominalVoltage <= 0 {
		return common.NewValidationError("Nominal voltage must be a positive number.")
	}
	return nil
}

func (b *BattLog) createChemistry(ctx context.Context, input *models.Chemistry) (string, error) {
	logger := coreLogger(common.LoggerCategoryChemistry)

	chemistry := models.Chemistry{
		ID:             uuid.NewString(),
		Name:           input.Name,
		ShortName:      input.ShortName,
		NominalVoltage: input.NominalVoltage,
	}
	if err := validateChemistry(&chemistry); err != nil {
		return "", err
	}

	logger.Info("Received chemistry", zap.Reflect("chemistry", chemistry))

	if err := b.Db.Conn.WithContext(ctx).Create(&chemistry).Error; err != nil {
		logger.Error("Failed to create chemistry", zap.Error(err))
		return "", common.NewInternalError("Failed to create chemistry.", err)
	}
	b.chemistryCache.invalidate()

	logger.Info("Created chemistry", zap.String("id", chemistry.ID))
	return chemistry.ID, nil
}

func (b *BattLog) getChemistry(ctx context.Context, id string) (*models.Chemistry, error) {
	chemistry, ok, err := b.chemistryCache.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.NewNotFoundError("Chemistry not found.")
	}
	return &chemistry, nil
}

func (b *BattLog) loadChemistries(ctx context.Context) ([]models.Chemistry, error) {
	var rows []models.Chemistry
	if err := b.Db.Conn.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, common.NewInternalError("Failed to load chemistries.", err)
	}
	return rows, nil
}

func populateChemistries(tx *gorm.DB, rows []models.Chemistry) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		if rows[i].ID == "" {
			rows[i].ID = uuid.NewString()
		}
		if err := validateChemistry(&rows[i]); err != nil {
			return rowError("chemistry", i, err)
		}
	}
	return upsert(tx, rows)
}
