package repositories

import (
	"errors"

	"github.com/blogem/privacy-toolkit/storage"
)

// ErrNotFound is returned by updates and deletes of records that do not exist
var ErrNotFound = errors.New("record not found")

// Repositories struct holds all repository interfaces
type Repositories struct {
	Consent ConsentRepository
	DSR     DSRRepository
	Breach  BreachRepository
	DPIA    DPIARepository
	Audit   AuditRepository
}

// NewRepositories creates and initializes all repositories over one storage adapter
func NewRepositories(store storage.Adapter) *Repositories {
	return &Repositories{
		Consent: NewConsentRepository(store),
		DSR:     NewDSRRepository(store),
		Breach:  NewBreachRepository(store),
		DPIA:    NewDPIARepository(store),
		Audit:   NewAuditRepository(store),
	}
}
