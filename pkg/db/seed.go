package db

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/battlogger/pkg/common"
	"liyu1981.xyz/battlogger/pkg/models"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// SeedData is the built-in reference data shipped with the binary.
type SeedData struct {
	Chemistries []models.Chemistry
	FormFactors []models.FormFactor
	Models      []models.Model
}

func readFixture(name string, dest any) error {
	raw, err := fixtures.ReadFile("fixtures/" + name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}

func LoadSeedData() (*SeedData, error) {
	var data SeedData
	if err := readFixture("chemistries.json", &data.Chemistries); err != nil {
		return nil, err
	}
	if err := readFixture("formfactors.json", &data.FormFactors); err != nil {
		return nil, err
	}
	if err := readFixture("models.json", &data.Models); err != nil {
		return nil, err
	}
	return &data, nil
}

// Seed inserts the built-in reference data, leaving existing rows untouched.
func (d *DB) Seed(ctx context.Context) error {
	logger := common.GetLoggerWith(common.LoggerNameDB)

	data, err := LoadSeedData()
	if err != nil {
		return err
	}

	err = d.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ignore := clause.OnConflict{DoNothing: true}
		if err := tx.Clauses(ignore).Create(&data.Chemistries).Error; err != nil {
			return fmt.Errorf("seed chemistries: %w", err)
		}
		if err := tx.Clauses(ignore).Create(&data.FormFactors).Error; err != nil {
			return fmt.Errorf("seed formfactors: %w", err)
		}
		if err := tx.Clauses(ignore).Create(&data.Models).Error; err != nil {
			return fmt.Errorf("seed models: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Seeded reference data",
		zap.Int("chemistries", len(data.Chemistries)),
		zap.Int("formfactors", len(data.FormFactors)),
		zap.Int("models", len(data.Models)))
	return nil
}
