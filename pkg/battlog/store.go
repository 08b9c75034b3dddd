package battlog

import (
	"fmt"
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/battlogger/pkg/common"
)

const (
	upsertBatchSize = 200
	lookupChunkSize = 500
)

// upsert inserts rows, replacing every non key column of rows whose id already
// exists.
func upsert[T any](tx *gorm.DB, rows []T) error {
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).CreateInBatches(&rows, upsertBatchSize).Error
	if err != nil {
		return common.NewInternalError("Failed to import data.", err)
	}
	return nil
}

// insertNew inserts rows, leaving rows whose id already exists untouched.
func insertNew[T any](tx *gorm.DB, rows []T) error {
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).CreateInBatches(&rows, upsertBatchSize).Error
	if err != nil {
		return common.NewInternalError("Failed to import data.", err)
	}
	return nil
}

// existingIDs reports which of ids are present in model's table. It must be
// called with the transaction the ids are about to be written in.
func existingIDs(tx *gorm.DB, model any, ids []string) (map[string]bool, error) {
	unique := slices.Compact(slices.Sorted(slices.Values(ids)))
	found := make(map[string]bool, len(unique))

	for chunk := range slices.Chunk(unique, lookupChunkSize) {
		var present []string
		if err := tx.Model(model).Where("id IN ?", chunk).Pluck("id", &present).Error; err != nil {
			return nil, common.NewInternalError("Failed to verify references.", err)
		}
		for _, id := range present {
			found[id] = true
		}
	}
	return found, nil
}

// rowError prefixes a row validation failure with its position in the batch.
func rowError(entity string, index int, err error) error {
	return &common.Error{
		Kind:    common.KindOf(err),
		Message: fmt.Sprintf("Invalid %s at index %d: %s", entity, index, common.MessageOf(err, err.Error())),
	}
}

// asIntegrity turns a failed reference lookup into an integrity error with
// message. Other failures pass through.
func asIntegrity(err error, message string) error {
	if common.KindOf(err) == common.KindNotFound {
		return common.NewIntegrityError(message)
	}
	return err
}
