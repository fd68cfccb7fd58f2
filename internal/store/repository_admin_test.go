package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"offerdeck/internal/logger"
	"offerdeck/models"
)

var adminColumnNames = []string{"id", "email", "name", "password_hash", "created_at"}

func newTestAdminRepo(t *testing.T) (*adminRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &adminRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateAdmin_Success(t *testing.T) {
	repo, mock, db := newTestAdminRepo(t)
	defer db.Close()

	ctx := context.Background()
	admin := models.Admin{
		Email:        "admin@offers-system.com",
		Name:         "Administrator",
		PasswordHash: "bcrypt-hash",
	}

	now := time.Now()
	rows := sqlmock.NewRows(adminColumnNames).
		AddRow("generated-id", admin.Email, admin.Name, admin.PasswordHash, now)

	mock.ExpectQuery("INSERT INTO admins").
		WithArgs(sqlmock.AnyArg(), admin.Email, admin.Name, admin.PasswordHash).
		WillReturnRows(rows)

	created, err := repo.Create(ctx, admin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "generated-id" {
		t.Errorf("expected ID generated-id, got %s", created.ID)
	}
	if created.Email != admin.Email {
		t.Errorf("expected email %s, got %s", admin.Email, created.Email)
	}
}

func TestCreateAdmin_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestAdminRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO admins").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(context.Background(), models.Admin{Email: "admin@offers-system.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateAdmin_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestAdminRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO admins").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.Create(context.Background(), models.Admin{Email: "admin@offers-system.com"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindAdminByEmail_Success(t *testing.T) {
	repo, mock, db := newTestAdminRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(adminColumnNames).
		AddRow("admin-id", "admin@offers-system.com", "Administrator", "bcrypt-hash", now)

	mock.ExpectQuery(`WHERE lower\(email\) = lower\(\$1\)`).
		WithArgs("admin@offers-system.com").
		WillReturnRows(rows)

	admin, err := repo.FindByEmail(context.Background(), "admin@offers-system.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if admin.ID != "admin-id" {
		t.Errorf("expected ID admin-id, got %s", admin.ID)
	}
	if admin.PasswordHash != "bcrypt-hash" {
		t.Error("expected password hash to be loaded for credential verification")
	}
}

func TestFindAdminByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestAdminRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM admins").
		WithArgs("nobody@offers-system.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "nobody@offers-system.com")
	if !errors.Is(err, ErrAdminNotFound) {
		t.Fatalf("expected ErrAdminNotFound, got %v", err)
	}
}

func TestCountAdmins(t *testing.T) {
	repo, mock, db := newTestAdminRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM admins`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1, got %d", count)
	}
}
