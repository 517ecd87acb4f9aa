package postgres

import (
	"context"
	"database/sql"
	"time"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/repository"
)

type contractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) repository.ContractRepository {
	return &contractRepository{db: db}
}

const contractColumns = `id, property_id, tenant_id, start_date, end_date, monthly_rent_cents, deposit_cents, status, COALESCE(terminated_reason, ''), created_on`

func (r *contractRepository) Create(ctx context.Context, c *domain.Contract) error {
	query := `INSERT INTO contracts (property_id, tenant_id, start_date, end_date, monthly_rent_cents, deposit_cents, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query,
		c.PropertyID, c.TenantID, c.StartDate, c.EndDate, c.MonthlyRentCents, c.DepositCents, c.Status, time.Now(),
	).Scan(&c.ID, &c.CreatedOn)
}

func (r *contractRepository) GetByID(ctx context.Context, id int32) (*domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	return scanContract(r.db.QueryRowContext(ctx, query, id))
}

func (r *contractRepository) Update(ctx context.Context, c *domain.Contract) error {
	query := `UPDATE contracts SET end_date = $1, monthly_rent_cents = $2, status = $3, terminated_reason = $4 WHERE id = $5`
	_, err := r.db.ExecContext(ctx, query, c.EndDate, c.MonthlyRentCents, c.Status, c.TerminatedReason, c.ID)
	return err
}

func (r *contractRepository) ListByProperty(ctx context.Context, propertyID int32) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE property_id = $1 ORDER BY created_on DESC`
	return r.queryContracts(ctx, query, propertyID)
}

func (r *contractRepository) ListByTenant(ctx context.Context, tenantID int32) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE tenant_id = $1 ORDER BY created_on DESC`
	return r.queryContracts(ctx, query, tenantID)
}

func (r *contractRepository) ListEndingBefore(ctx context.Context, date string, status domain.ContractStatus) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE end_date <= $1 AND status = $2 ORDER BY end_date`
	return r.queryContracts(ctx, query, date, status)
}

func (r *contractRepository) queryContracts(ctx context.Context, query string, args ...any) ([]domain.Contract, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, *c)
	}
	return contracts, rows.Err()
}

func scanContract(row rowScanner) (*domain.Contract, error) {
	c := &domain.Contract{}
	var start, end time.Time
	err := row.Scan(&c.ID, &c.PropertyID, &c.TenantID, &start, &end,
		&c.MonthlyRentCents, &c.DepositCents, &c.Status, &c.TerminatedReason, &c.CreatedOn)
	if err != nil {
		return nil, err
	}
	c.StartDate = start.Format("2006-01-02")
	c.EndDate = end.Format("2006-01-02")
	return c, nil
}
