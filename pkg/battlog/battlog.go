package battlog

//go:generate mockgen -source=battlog.go -destination=mocks/battlog_mock.go -package=mocks

import (
	"context"

	"go.uber.org/zap"
	"liyu1981.xyz/battlogger/pkg/common"
	"liyu1981.xyz/battlogger/pkg/db"
	"liyu1981.xyz/battlogger/pkg/metrics"
	"liyu1981.xyz/battlogger/pkg/models"
)

type IChemistry interface {
	CreateChemistry(ctx context.Context, input *models.Chemistry) (string, error)
	GetChemistry(ctx context.Context, id string) (*models.Chemistry, error)
	GetChemistriesMap(ctx context.Context) (map[string]models.Chemistry, error)
	GetAllChemistries(ctx context.Context) ([]models.Chemistry, error)
}

type IFormFactor interface {
	CreateFormFactor(ctx context.Context, input *models.FormFactor) (string, error)
	GetFormFactor(ctx context.Context, id string) (*models.FormFactor, error)
	GetFormFactorsMap(ctx context.Context) (map[string]models.FormFactor, error)
	GetAllFormFactors(ctx context.Context) ([]models.FormFactor, error)
}

type IModel interface {
	CreateModel(ctx context.Context, input *models.Model) (string, error)
	GetModel(ctx context.Context, id string) (*models.Model, error)
	GetModelDetails(ctx context.Context) (map[string]models.Model, error)
	GetModelMap(ctx context.Context) (map[string]string, error)
	GetAllModels(ctx context.Context) ([]models.Model, error)
}

type IBattery interface {
	CreateBattery(ctx context.Context, batteryID, modelID string) error
	GetBattery(ctx context.Context, batteryID string) (*models.Battery, error)
	GetBatteryDetails(ctx context.Context, batteryID string) (*models.BatteryData, error)
	ListBatteries(ctx context.Context, query models.BatteryQuery) ([]models.BatteryData, error)
	UpdateBattery(ctx context.Context, batteryID, modelID string) error
	DeleteBattery(ctx context.Context, batteryID string) error
	GetAllBatteries(ctx context.Context) ([]models.Battery, error)
}

type ITestRun interface {
	CreateTestRun(ctx context.Context, input *models.TestRun) (string, error)
	GetBatteryTests(ctx context.Context, batteryID string) ([]models.TestRun, error)
	GetAllTestRuns(ctx context.Context) ([]models.TestRun, error)
	CreateTestRunProcess(ctx context.Context, input *models.TestRunProcess) (string, error)
	GetTestRunProcess(ctx context.Context, id string) (*models.TestRunProcess, error)
	GetTestRunProcesses(ctx context.Context) ([]models.TestRunProcess, error)
}

type IImportExport interface {
	ExportAll(ctx context.Context) (*models.Dataset, error)
	ImportAll(ctx context.Context, dataset *models.Dataset) error
	ExportEntityType(ctx context.Context, kind models.EntityType) ([]byte, error)
	ImportEntityType(ctx context.Context, kind models.EntityType, data []byte) error
}

// BattLog is the application core. Each entity is reached through an
// interface service so transports and tests can swap implementations.
type BattLog struct {
	Db      *db.DB
	Metrics *metrics.Metrics

	Chemistry    IChemistry
	FormFactor   IFormFactor
	Model        IModel
	Battery      IBattery
	TestRun      ITestRun
	ImportExport IImportExport

	chemistryCache  *refCache[models.Chemistry]
	formFactorCache *refCache[models.FormFactor]
	modelCache      *refCache[models.Model]
}

type ServiceOpts struct {
	Chemistry    IChemistry
	FormFactor   IFormFactor
	Model        IModel
	Battery      IBattery
	TestRun      ITestRun
	ImportExport IImportExport
}

// New builds the core over database with the default service
// implementations wired in. m may be nil.
func New(database *db.DB, m *metrics.Metrics) *BattLog {
	b := &BattLog{Db: database, Metrics: m}

	b.chemistryCache = newRefCache(common.LoggerCategoryChemistry, m,
		func(c models.Chemistry) string { return c.ID }, b.loadChemistries)
	b.formFactorCache = newRefCache(common.LoggerCategoryFormFactor, m,
		func(f models.FormFactor) string { return f.ID }, b.loadFormFactors)
	b.modelCache = newRefCache(common.LoggerCategoryModel, m,
		func(md models.Model) string { return md.ID }, b.loadModels)

	return b.WithServices(ServiceOpts{
		Chemistry:    b.GetIChemistry(),
		FormFactor:   b.GetIFormFactor(),
		Model:        b.GetIModel(),
		Battery:      b.GetIBattery(),
		TestRun:      b.GetITestRun(),
		ImportExport: b.GetIImportExport(),
	})
}

func (b *BattLog) WithServices(opts ServiceOpts) *BattLog {
	if opts.Chemistry != nil {
		b.Chemistry = opts.Chemistry
	}
	if opts.FormFactor != nil {
		b.FormFactor = opts.FormFactor
	}
	if opts.Model != nil {
		b.Model = opts.Model
	}
	if opts.Battery != nil {
		b.Battery = opts.Battery
	}
	if opts.TestRun != nil {
		b.TestRun = opts.TestRun
	}
	if opts.ImportExport != nil {
		b.ImportExport = opts.ImportExport
	}
	return b
}

// InvalidateCaches drops every reference cache.
func (b *BattLog) InvalidateCaches() {
	b.chemistryCache.invalidate()
	b.formFactorCache.invalidate()
	b.modelCache.invalidate()
}

// Reset empties the database, optionally reloads the built-in seed data, and
// drops the caches that now describe rows which no longer exist.
func (b *BattLog) Reset(ctx context.Context, seed bool) error {
	defer b.InvalidateCaches()

	if err := b.Db.Reset(ctx); err != nil {
		return common.NewInternalError("Failed to reset database.", err)
	}
	if seed {
		if err := b.Db.Seed(ctx); err != nil {
			return common.NewInternalError("Failed to seed database.", err)
		}
	}
	return nil
}

func coreLogger(category string) *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameBattlogCore,
		zap.String(common.LoggerFieldCategory, category),
	)
}
