package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "name", "password_hash", "role", "phone_number", "created_on", "updated_on",
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := userRows().
			AddRow(1, "test@test.com", "Name", "hash", "TENANT", "123", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		user, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), user.ID)
		assert.Equal(t, domain.RoleTenant, user.Role)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
			WithArgs(int32(2)).
			WillReturnError(assert.AnError)

		user, err := repo.GetByID(ctx, 2)
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	rows := userRows().
		AddRow(1, "test@test.com", "Name", "hash", "OWNER", "", time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM users WHERE LOWER\\(email\\) = LOWER\\(\\$1\\)").
		WithArgs("Test@Test.com").
		WillReturnRows(rows)

	user, err := repo.GetByEmail(ctx, "Test@Test.com")
	assert.NoError(t, err)
	assert.Equal(t, "test@test.com", user.Email)
}

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		u := &domain.User{
			Email:        "new@test.com",
			Name:         "New User",
			PasswordHash: "hash",
			Role:         domain.RoleTenant,
		}

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(u.Email, u.Name, u.PasswordHash, u.Role, u.PhoneNumber, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_on", "updated_on"}).
				AddRow(1, time.Now(), time.Now()))

		err := repo.Create(ctx, u)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), u.ID)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		u := &domain.User{Email: "dup@test.com", Name: "Dup", PasswordHash: "hash", Role: domain.RoleTenant}

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(u.Email, u.Name, u.PasswordHash, u.Role, u.PhoneNumber, sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, u)
		assert.Error(t, err)
		assert.True(t, postgres.IsUniqueViolation(err))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, postgres.IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, postgres.IsUniqueViolation(fmt.Errorf("wrapped: %w", &pq.Error{Code: "23505"})))
	assert.False(t, postgres.IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, postgres.IsUniqueViolation(errors.New("plain")))
	assert.False(t, postgres.IsUniqueViolation(nil))
}

func TestUserRepository_ListByRole(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	rows := userRows().
		AddRow(1, "admin1@test.com", "Admin One", "hash", "ADMIN", "", time.Now(), time.Now()).
		AddRow(2, "admin2@test.com", "Admin Two", "hash", "ADMIN", "", time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM users WHERE role = \\$1").
		WithArgs(domain.RoleAdmin).
		WillReturnRows(rows)

	users, err := repo.ListByRole(ctx, domain.RoleAdmin)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "Admin One", users[0].Name)
}
