package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/repository"
)

type propertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

const propertyColumns = `id, owner_id, name, address, city, type, bedrooms, bathrooms, rent_cents, status, created_on, updated_on`

func (r *propertyRepository) Create(ctx context.Context, p *domain.Property) error {
	query := `INSERT INTO properties (owner_id, name, address, city, type, bedrooms, bathrooms, rent_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10) RETURNING id, created_on, updated_on`
	return r.db.QueryRowContext(ctx, query,
		p.OwnerID, p.Name, p.Address, p.City, p.Type, p.Bedrooms, p.Bathrooms, p.RentCents, p.Status, time.Now(),
	).Scan(&p.ID, &p.CreatedOn, &p.UpdatedOn)
}

func (r *propertyRepository) GetByID(ctx context.Context, id int32) (*domain.Property, error) {
	p := &domain.Property{}
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Address, &p.City, &p.Type, &p.Bedrooms, &p.Bathrooms,
		&p.RentCents, &p.Status, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *propertyRepository) Update(ctx context.Context, p *domain.Property) error {
	query := `UPDATE properties SET name = $1, address = $2, city = $3, type = $4, bedrooms = $5,
	          bathrooms = $6, rent_cents = $7, status = $8, updated_on = $9 WHERE id = $10`
	_, err := r.db.ExecContext(ctx, query,
		p.Name, p.Address, p.City, p.Type, p.Bedrooms, p.Bathrooms, p.RentCents, p.Status, time.Now(), p.ID)
	return err
}

func (r *propertyRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	return err
}

func (r *propertyRepository) List(ctx context.Context, ownerID int32, city string, status domain.PropertyStatus) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE 1=1`
	args := []any{}
	if ownerID != 0 {
		args = append(args, ownerID)
		query += fmt.Sprintf(` AND owner_id = $%d`, len(args))
	}
	if city != "" {
		args = append(args, city)
		query += fmt.Sprintf(` AND LOWER(city) = LOWER($%d)`, len(args))
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var props []domain.Property
	for rows.Next() {
		var p domain.Property
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Address, &p.City, &p.Type, &p.Bedrooms,
			&p.Bathrooms, &p.RentCents, &p.Status, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	return props, rows.Err()
}
