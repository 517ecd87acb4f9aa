package postgres

import (
	"context"
	"database/sql"
	"time"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/repository"
)

type familyRepository struct {
	db *sql.DB
}

func NewFamilyRepository(db *sql.DB) repository.FamilyRepository {
	return &familyRepository{db: db}
}

func (r *familyRepository) Create(ctx context.Context, f *domain.Family) error {
	query := `INSERT INTO families (name, size, credit_score, preferred_location, preferred_rent_cents, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query,
		f.Name, f.Size, f.CreditScore, f.PreferredLocation, f.PreferredRentCents, time.Now(),
	).Scan(&f.ID, &f.CreatedOn)
}

func (r *familyRepository) GetByID(ctx context.Context, id int32) (*domain.Family, error) {
	f := &domain.Family{}
	query := `SELECT id, name, size, credit_score, preferred_location, preferred_rent_cents, created_on
	          FROM families WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&f.ID, &f.Name, &f.Size, &f.CreditScore, &f.PreferredLocation, &f.PreferredRentCents, &f.CreatedOn)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *familyRepository) List(ctx context.Context) ([]domain.Family, error) {
	query := `SELECT id, name, size, credit_score, preferred_location, preferred_rent_cents, created_on
	          FROM families ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var families []domain.Family
	for rows.Next() {
		var f domain.Family
		if err := rows.Scan(&f.ID, &f.Name, &f.Size, &f.CreditScore, &f.PreferredLocation, &f.PreferredRentCents, &f.CreatedOn); err != nil {
			return nil, err
		}
		families = append(families, f)
	}
	return families, rows.Err()
}

func (r *familyRepository) Update(ctx context.Context, f *domain.Family) error {
	query := `UPDATE families SET name = $1, size = $2, credit_score = $3, preferred_location = $4, preferred_rent_cents = $5
	          WHERE id = $6`
	_, err := r.db.ExecContext(ctx, query, f.Name, f.Size, f.CreditScore, f.PreferredLocation, f.PreferredRentCents, f.ID)
	return err
}
