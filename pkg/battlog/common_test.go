package battlog

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"liyu1981.xyz/battlogger/pkg/battlog/mocks"
	"liyu1981.xyz/battlogger/pkg/db"
	"liyu1981.xyz/battlogger/pkg/metrics"
	"liyu1981.xyz/battlogger/pkg/models"
)

type useMocks struct {
	Chemistry  bool
	FormFactor bool
	Model      bool
	Battery    bool
}

type mockServices struct {
	Chemistry  *mocks.MockIChemistry
	FormFactor *mocks.MockIFormFactor
	Model      *mocks.MockIModel
	Battery    *mocks.MockIBattery
}

func GetMockBattLogWithMemorySqliteDialector(t *testing.T, use useMocks) (*gomock.Controller, *BattLog, *mockServices) {
	ctrl := gomock.NewController(t)

	dbInstance, err := db.New(db.UseMemorySqliteDialector())
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbInstance.Close() })

	b := New(dbInstance, metrics.New())

	m := &mockServices{
		Chemistry:  mocks.NewMockIChemistry(ctrl),
		FormFactor: mocks.NewMockIFormFactor(ctrl),
		Model:      mocks.NewMockIModel(ctrl),
		Battery:    mocks.NewMockIBattery(ctrl),
	}

	opts := ServiceOpts{}
	if use.Chemistry {
		opts.Chemistry = m.Chemistry
	}
	if use.FormFactor {
		opts.FormFactor = m.FormFactor
	}
	if use.Model {
		opts.Model = m.Model
	}
	if use.Battery {
		opts.Battery = m.Battery
	}
	b.WithServices(opts)

	return ctrl, b, m
}

type referenceIDs struct {
	FormFactorID string
	ChemistryID  string
	ModelID      string
}

// createReferenceData creates one form factor, chemistry and model through the
// services under test.
func createReferenceData(t *testing.T, b *BattLog) referenceIDs {
	t.Helper()
	ctx := context.Background()

	formFactorID, err := b.FormFactor.CreateFormFactor(ctx, &models.FormFactor{Name: "18650"})
	require.NoError(t, err)
	chemistryID, err := b.Chemistry.CreateChemistry(ctx, &models.Chemistry{Name: "Lithium", ShortName: "Li", NominalVoltage: 3.7})
	require.NoError(t, err)
	capacity := 2000
	modelID, err := b.Model.CreateModel(ctx, &models.Model{
		Name:           "Sample",
		DesignCapacity: &capacity,
		FormFactorID:   formFactorID,
		ChemistryID:    chemistryID,
	})
	require.NoError(t, err)

	return referenceIDs{FormFactorID: formFactorID, ChemistryID: chemistryID, ModelID: modelID}
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func findLog(logs []any, match func(map[string]any) bool) bool {
	for _, log := range logs {
		if lobj, ok := log.(map[string]any); ok && match(lobj) {
			return true
		}
	}
	return false
}

var testEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
