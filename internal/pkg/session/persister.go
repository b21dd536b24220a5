package session

import (
	"errors"
	"time"

	"luxpackers-admin/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// session_state is a single-row table; the one row always has this id.
const stateRowID = 1

// GormPersister persists the session into the session_state table
type GormPersister struct {
	db *gorm.DB
}

// NewGormPersister creates a new database-backed persister
func NewGormPersister(db *gorm.DB) *GormPersister {
	return &GormPersister{db: db}
}

// Load reads the persisted session payload, if any
func (p *GormPersister) Load() ([]byte, time.Time, error) {
	var state models.SessionState
	err := p.db.First(&state, stateRowID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, time.Time{}, nil
		}
		return nil, time.Time{}, err
	}
	return []byte(state.Payload), state.UpdatedAt, nil
}

// Save writes the session payload, replacing any previous one
func (p *GormPersister) Save(payload []byte) error {
	state := models.SessionState{
		ID:      stateRowID,
		Payload: string(payload),
	}
	return p.db.Save(&state).Error
}

// Delete removes the persisted session payload
func (p *GormPersister) Delete() error {
	return p.db.Delete(&models.SessionState{}, stateRowID).Error
}
