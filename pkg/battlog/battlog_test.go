package battlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/battlogger/pkg/common"
	"liyu1981.xyz/battlogger/pkg/models"
	_ "liyu1981.xyz/battlogger/pkg/testing"
)

func TestWithServicesKeepsUnsetServices(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, b, m := GetMockBattLogWithMemorySqliteDialector(t, useMocks{Chemistry: true})
	defer ctrl.Finish()

	assert.Same(t, m.Chemistry, b.Chemistry)
	assert.IsType(t, &IFormFactorImpl{}, b.FormFactor)
	assert.IsType(t, &IModelImpl{}, b.Model)
	assert.IsType(t, &IBatteryImpl{}, b.Battery)
	assert.IsType(t, &ITestRunImpl{}, b.TestRun)
	assert.IsType(t, &IImportExportImpl{}, b.ImportExport)

	m.Chemistry.
		EXPECT().
		GetChemistriesMap(gomock.Any()).
		Return(map[string]models.Chemistry{"x": {ID: "x"}}, nil).
		Times(1)

	byID, err := b.Chemistry.GetChemistriesMap(context.Background())
	require.NoError(t, err)
	assert.Contains(t, byID, "x")
}

func TestResetReseedsAndInvalidates(t *testing.T) {
	common.SetTestLoggerNop()
	ctx := context.Background()

	ctrl, b, _ := GetMockBattLogWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()

	ids := createReferenceData(t, b)
	names, err := b.Model.GetModelMap(ctx)
	require.NoError(t, err)
	require.Contains(t, names, ids.ModelID)

	require.NoError(t, b.Reset(ctx, true))

	names, err = b.Model.GetModelMap(ctx)
	require.NoError(t, err)
	assert.NotContains(t, names, ids.ModelID)
	assert.Equal(t, "INR18650-30Q", names["6a7b8c9d-0e1f-4a2b-8c3d-4e5f6a7b8c01"])

	chemistries, err := b.Chemistry.GetAllChemistries(ctx)
	require.NoError(t, err)
	assert.Len(t, chemistries, 5)

	require.NoError(t, b.Reset(ctx, false))
	chemistries, err = b.Chemistry.GetAllChemistries(ctx)
	require.NoError(t, err)
	assert.Empty(t, chemistries)
}
