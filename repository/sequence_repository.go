package repository

import (
	"context"
	"fmt"

	"github.com/jibrilosman/self-order-kiosk/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderNumberSequence is the counter row name used for order numbers.
const OrderNumberSequence = "order_number"

// SequenceRepository hands out numbers from a counter row. The increment and
// the read happen in one transaction, so concurrent callers never share a value.
type SequenceRepository struct {
	DB   *gorm.DB
	Name string
}

func NewSequenceRepository(db *gorm.DB, name string) *SequenceRepository {
	return &SequenceRepository{DB: db, Name: name}
}

// Next never returns a number at or below the highest stored order, so a
// counter left behind by another sequencer catches up instead of colliding.
func (r *SequenceRepository) Next(ctx context.Context) (int, error) {
	var next int
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		max, err := maxOrderNumber(tx)
		if err != nil {
			return err
		}

		res := tx.Model(&entity.Sequence{}).
			Where("name = ?", r.Name).
			UpdateColumn("value", gorm.Expr("MAX(value + 1, ?)", max+1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			seed := entity.Sequence{Name: r.Name, Value: max + 1}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
				return err
			}
		}

		var seq entity.Sequence
		if err := tx.Where("name = ?", r.Name).First(&seq).Error; err != nil {
			return err
		}
		next = seq.Value
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("next %s: %w", r.Name, err)
	}
	return next, nil
}
