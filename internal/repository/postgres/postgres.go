package postgres

import (
	"database/sql"

	"propertypulse-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.FamilyRepository
	repository.JoinRequestRepository
	repository.PropertyRepository
	repository.ContractRepository
	repository.EventRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		UserRepository:        NewUserRepository(db),
		FamilyRepository:      NewFamilyRepository(db),
		JoinRequestRepository: NewJoinRequestRepository(db),
		PropertyRepository:    NewPropertyRepository(db),
		ContractRepository:    NewContractRepository(db),
		EventRepository:       NewEventRepository(db),
	}
}
