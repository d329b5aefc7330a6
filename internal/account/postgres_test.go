package account

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestExistsByEmailNormalizesCase(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("select 1 from customers where lower").
		WithArgs("a@b.com").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	store := NewPGStore(db)
	exists, err := store.ExistsByEmail(context.Background(), RoleCustomer, "A@B.com")
	if err != nil {
		t.Fatalf("ExistsByEmail: %v", err)
	}
	if !exists {
		t.Fatal("expected existing e-mail to be found case-insensitively")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateAssignsGeneratedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("insert into sellers").
		WithArgs("Shop One", "shop@b.com", "hash", "SELLER", "12 Rue X", StatusActive, "Shop One Store").
		WillReturnRows(sqlmock.NewRows([]string{"seller_id"}).AddRow(7))

	store := NewPGStore(db)
	a := &Account{
		Name:         "Shop One",
		Email:        "Shop@B.com",
		PasswordHash: "hash",
		Role:         RoleSeller,
		Address:      "12 Rue X",
		StoreName:    "Shop One Store",
	}
	if err := store.Create(context.Background(), a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID != 7 {
		t.Fatalf("expected generated id 7, got %d", a.ID)
	}
	if a.Email != "shop@b.com" {
		t.Fatalf("expected normalized e-mail, got %q", a.Email)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReplaceVerificationCodeDiscardsPrior(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("delete from verification_codes").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("insert into verification_codes").
		WithArgs(int64(42), 123456).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	store := NewPGStore(db)
	if err := store.ReplaceVerificationCode(context.Background(), 42, 123456); err != nil {
		t.Fatalf("ReplaceVerificationCode: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConsumeVerificationCode(t *testing.T) {
	t.Run("match destroys code and verifies e-mail", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock.New: %v", err)
		}
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("select 1 from verification_codes").
			WithArgs(int64(42), 123456).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
		mock.ExpectExec("delete from verification_codes").
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("update customers set email_verified").
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		store := NewPGStore(db)
		ok, err := store.ConsumeVerificationCode(context.Background(), 42, 123456)
		if err != nil {
			t.Fatalf("ConsumeVerificationCode: %v", err)
		}
		if !ok {
			t.Fatal("expected matching code to verify")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("stale code no longer verifies", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock.New: %v", err)
		}
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("select 1 from verification_codes").
			WithArgs(int64(42), 111111).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
		mock.ExpectRollback()

		store := NewPGStore(db)
		ok, err := store.ConsumeVerificationCode(context.Background(), 42, 111111)
		if err != nil {
			t.Fatalf("ConsumeVerificationCode: %v", err)
		}
		if ok {
			t.Fatal("expected stale code to be rejected")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})
}
