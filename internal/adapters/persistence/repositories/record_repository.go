package repositories

import (
	"context"

	"gorm.io/gorm"
)

// RecordRepository is the generic row-level gateway for one managed table.
// Every entity page of the console talks to its table through one of these;
// the per-entity differences (pk column, default ordering) live in the
// constructor arguments instead of a copy of the type.
type RecordRepository[T any] struct {
	db       *gorm.DB
	pkColumn string
	orderBy  string
}

// NewRecordRepository creates a repository for entity type T.
// pkColumn is the primary key column name; orderBy is the default ordering
// clause for List ("" for none).
func NewRecordRepository[T any](db *gorm.DB, pkColumn, orderBy string) *RecordRepository[T] {
	return &RecordRepository[T]{db: db, pkColumn: pkColumn, orderBy: orderBy}
}

// PKColumn returns the primary key column name
func (r *RecordRepository[T]) PKColumn() string {
	return r.pkColumn
}

// List returns all records matching the equality filters, in the default
// order. No matches yields an empty slice, never an error.
func (r *RecordRepository[T]) List(ctx context.Context, filters map[string]interface{}) ([]T, error) {
	records := []T{}
	q := r.db.WithContext(ctx).Model(new(T))
	for column, value := range filters {
		q = q.Where(column+" = ?", value)
	}
	if r.orderBy != "" {
		q = q.Order(r.orderBy)
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetByPK gets a record by primary key
func (r *RecordRepository[T]) GetByPK(ctx context.Context, pk uint) (*T, error) {
	var record T
	err := r.db.WithContext(ctx).Where(r.pkColumn+" = ?", pk).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Create inserts a new record; the database assigns the primary key
func (r *RecordRepository[T]) Create(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Update applies a partial column patch keyed on the primary key.
// Concurrent patches are last-write-wins at the database; nothing here
// detects or reports a conflict.
func (r *RecordRepository[T]) Update(ctx context.Context, pk uint, patch map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(new(T)).Where(r.pkColumn+" = ?", pk).Updates(patch).Error
}

// Delete removes a record by primary key. Irreversible.
func (r *RecordRepository[T]) Delete(ctx context.Context, pk uint) error {
	return r.db.WithContext(ctx).Where(r.pkColumn+" = ?", pk).Delete(new(T)).Error
}

// Count counts all records in the table
func (r *RecordRepository[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Count(&count).Error
	return count, err
}
