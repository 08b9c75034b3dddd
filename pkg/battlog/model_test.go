package battlog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/battlogger/pkg/common"
	"liyu1981.xyz/battlogger/pkg/models"
	_ "liyu1981.xyz/battlogger/pkg/testing"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestCreateModel(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, b, _ := GetMockBattLogWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	ctx := context.Background()

	ids := createReferenceData(t, b)

	model, err := b.Model.GetModel(ctx, ids.ModelID)
	require.NoError(t, err)
	assert.Equal(t, "Sample", model.Name)
	assert.Equal(t, 2000, *model.DesignCapacity)
	assert.Nil(t, model.Manufacturer)

	names, err := b.Model.GetModelMap(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{ids.ModelID: "Sample"}, names)

	details, err := b.Model.GetModelDetails(ctx)
	require.NoError(t, err)
	assert.Equal(t, ids.ChemistryID, details[ids.ModelID].ChemistryID)

	// designCapacity and manufacturer are optional
	id, err := b.Model.CreateModel(ctx, &models.Model{
		Name:         "Unrated",
		FormFactorID: ids.FormFactorID,
		ChemistryID:  ids.ChemistryID,
		Manufacturer: strPtr(" Acme "),
	})
	require.NoError(t, err)
	unrated, err := b.Model.GetModel(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, unrated.DesignCapacity)
	assert.Equal(t, "Acme", *unrated.Manufacturer)

	all, err := b.Model.GetAllModels(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateModelValidation(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, b, _ := GetMockBattLogWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	ctx := context.Background()

	ids := createReferenceData(t, b)

	tests := []struct {
		name    string
		input   models.Model
		kind    common.ErrorKind
		message string
	}{
		{
			name:    "missing name",
			input:   models.Model{FormFactorID: ids.FormFactorID, ChemistryID: ids.ChemistryID},
			kind:    common.KindValidation,
			message: "Missing required fields: name, formFactorId, and chemistryId are required.",
		},
		{
			name:    "non positive capacity",
			input:   models.Model{Name: "Bad", DesignCapacity: intPtr(0), FormFactorID: ids.FormFactorID, ChemistryID: ids.ChemistryID},
			kind:    common.KindValidation,
			message: "Design capacity must be a positive number.",
		},
		{
			name:    "unknown form factor",
			input:   models.Model{Name: "Bad", FormFactorID: "nope", ChemistryID: ids.ChemistryID},
			kind:    common.KindIntegrity,
			message: "Invalid form factor ID.",
		},
		{
			name:    "unknown chemistry",
			input:   models.Model{Name: "Bad", FormFactorID: ids.FormFactorID, ChemistryID: "nope"},
			kind:    common.KindIntegrity,
			message: "Invalid chemistry ID.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.Model.CreateModel(ctx, &tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.kind, common.KindOf(err))
			assert.Equal(t, tt.message, common.MessageOf(err, ""))
		})
	}

	// no rejected model reached the table
	var count int64
	require.NoError(t, b.Db.Conn.Model(&models.Model{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateModelResolvesReferencesThroughServices(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, b, m := GetMockBattLogWithMemorySqliteDialector(t, useMocks{FormFactor: true, Chemistry: true})
	defer ctrl.Finish()
	ctx := context.Background()

	m.FormFactor.
		EXPECT().
		GetFormFactor(gomock.Any(), gomock.Eq("ff")).
		Return(nil, common.NewInternalError("Failed to load form factors.", errors.New("locked"))).
		Times(1)

	_, err := b.Model.CreateModel(ctx, &models.Model{Name: "X", FormFactorID: "ff", ChemistryID: "chem"})
	require.Error(t, err)
	assert.Equal(t, common.KindInternal, common.KindOf(err))

	m.FormFactor.
		EXPECT().
		GetFormFactor(gomock.Any(), gomock.Eq("ff")).
		Return(&models.FormFactor{ID: "ff", Name: "18650"}, nil).
		Times(1)
	m.Chemistry.
		EXPECT().
		GetChemistry(gomock.Any(), gomock.Eq("chem")).
		Return(nil, common.NewNotFoundError("Chemistry not found.")).
		Times(1)

	_, err = b.Model.CreateModel(ctx, &models.Model{Name: "X", FormFactorID: "ff", ChemistryID: "chem"})
	require.Error(t, err)
	assert.Equal(t, common.KindIntegrity, common.KindOf(err))
	assert.Equal(t, "Invalid chemistry ID.", common.MessageOf(err, ""))
}

func TestCreateModel_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, b, _ := GetMockBattLogWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()

	// force the form factor service to be nil
	b.FormFactor = nil

	_, err := b.Model.CreateModel(context.Background(), &models.Model{Name: "X", FormFactorID: "ff", ChemistryID: "chem"})
	require.Error(t, err)
	assert.Equal(t, common.KindInternal, common.KindOf(err))
}
