package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"luxpackers-admin/internal/adapters/persistence/repositories"
	"luxpackers-admin/internal/core/domain"
)

// RequiredRule reports the name of the first missing required field of a
// record, or "" when the record is complete. Policy differs per entity,
// so each instantiation supplies its own rule.
type RequiredRule[T any] func(record *T) string

// RecordService is the generic list/create/update/delete controller
// behind every entity page of the console. One instance exists per
// entity; it also tracks the page's single in-flight row edit.
type RecordService[T any] struct {
	repo     *repositories.RecordRepository[T]
	required RequiredRule[T]

	// Edit sub-state: Viewing (editing == false) or Editing(editPK, scratch).
	// At most one row is in edit at a time.
	mu      sync.Mutex
	editing bool
	editPK  uint
	scratch map[string]interface{}
}

// NewRecordService creates a record service. required may be nil for
// entities with no mandatory fields.
func NewRecordService[T any](repo *repositories.RecordRepository[T], required RequiredRule[T]) *RecordService[T] {
	return &RecordService[T]{repo: repo, required: required}
}

// List returns all records matching the equality filters
func (s *RecordService[T]) List(ctx context.Context, filters map[string]interface{}) ([]T, error) {
	return s.repo.List(ctx, filters)
}

// Get gets one record by primary key
func (s *RecordService[T]) Get(ctx context.Context, pk uint) (*T, error) {
	return s.repo.GetByPK(ctx, pk)
}

// Create validates required fields and inserts the record. A missing
// field fails with domain.ErrValidation and no insert is attempted;
// the caller re-runs List after a successful insert.
func (s *RecordService[T]) Create(ctx context.Context, record *T) error {
	if s.required != nil {
		if field := s.required(record); field != "" {
			return fmt.Errorf("%w: %s is required", domain.ErrValidation, field)
		}
	}
	return s.repo.Create(ctx, record)
}

// Update applies a partial field patch keyed on the primary key.
// No validation beyond what the form already enforced; the caller
// re-runs List afterward.
func (s *RecordService[T]) Update(ctx context.Context, pk uint, patch map[string]interface{}) error {
	return s.repo.Update(ctx, pk, patch)
}

// Delete removes a record. The destructive call is only issued when the
// user explicitly confirmed it; otherwise nothing reaches the database.
func (s *RecordService[T]) Delete(ctx context.Context, pk uint, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	return s.repo.Delete(ctx, pk)
}

// ============================================================
// Edit sub-state
// ============================================================

// StartEdit moves the service into Editing(pk) with a scratch copy of the
// record's current fields. Starting an edit while another row is already
// being edited silently abandons the previous scratch; that matches the
// console's behavior and is intentional.
func (s *RecordService[T]) StartEdit(ctx context.Context, pk uint) (map[string]interface{}, error) {
	record, err := s.repo.GetByPK(ctx, pk)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	scratch := map[string]interface{}{}
	if err := json.Unmarshal(raw, &scratch); err != nil {
		return nil, err
	}
	// The pk identifies the edit; it is not part of the editable fields.
	delete(scratch, s.repo.PKColumn())

	s.mu.Lock()
	s.editing = true
	s.editPK = pk
	s.scratch = scratch
	s.mu.Unlock()

	return scratch, nil
}

// UpdateScratch merges field values into the scratch copy. Nothing is
// written remotely until SaveEdit.
func (s *RecordService[T]) UpdateScratch(fields map[string]interface{}) (map[string]interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.editing {
		return nil, domain.ErrInvalidInput
	}
	for k, v := range fields {
		s.scratch[k] = v
	}
	return s.scratch, nil
}

// SaveEdit writes the scratch copy to the database and returns to
// Viewing. pk must name the row currently being edited; a save aimed at
// any other row is rejected without touching the open edit. On a remote
// failure the edit stays open so the user can re-attempt.
func (s *RecordService[T]) SaveEdit(ctx context.Context, pk uint) error {
	s.mu.Lock()
	if !s.editing || s.editPK != pk {
		s.mu.Unlock()
		return domain.ErrInvalidInput
	}
	patch := make(map[string]interface{}, len(s.scratch))
	for k, v := range s.scratch {
		patch[k] = v
	}
	s.mu.Unlock()

	if err := s.repo.Update(ctx, pk, patch); err != nil {
		return err
	}

	s.mu.Lock()
	s.editing = false
	s.editPK = 0
	s.scratch = nil
	s.mu.Unlock()
	return nil
}

// CancelEdit discards the scratch copy and returns to Viewing.
// Safe to call when nothing is being edited.
func (s *RecordService[T]) CancelEdit() {
	s.mu.Lock()
	s.editing = false
	s.editPK = 0
	s.scratch = nil
	s.mu.Unlock()
}

// Editing reports the row currently being edited, if any
func (s *RecordService[T]) Editing() (uint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editPK, s.editing
}
