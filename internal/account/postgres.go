package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var _ Store = (*PGStore)(nil)

// PGStore implements Store on PostgreSQL. The pool is injected, never global.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

// tableFor maps a role onto its table and id column.
func tableFor(role Role) (table, idCol string, err error) {
	switch role {
	case RoleAdmin:
		return "admins", "admin_id", nil
	case RoleSeller:
		return "sellers", "seller_id", nil
	case RoleCustomer:
		return "customers", "customer_id", nil
	}
	return "", "", ErrUnknownRole
}

const accountColumns = `name, email, password, role, address, status, coalesce(store_name,''), email_verified, created_at`

func (s *PGStore) Create(ctx context.Context, a *Account) error {
	table, idCol, err := tableFor(a.Role)
	if err != nil {
		return err
	}
	a.Email = NormalizeEmail(a.Email)
	if a.Status == "" {
		a.Status = StatusActive
	}
	query := fmt.Sprintf(
		`insert into %s(name, email, password, role, address, status, store_name)
		 values($1,$2,$3,$4,$5,$6,nullif($7,'')) returning %s`, table, idCol)
	if err := s.db.QueryRowContext(ctx, query,
		a.Name, a.Email, a.PasswordHash, string(a.Role), a.Address, a.Status, a.StoreName,
	).Scan(&a.ID); err != nil {
		return fmt.Errorf("create %s account: %w", a.Role, err)
	}
	return nil
}

func (s *PGStore) FindByEmail(ctx context.Context, role Role, email string) (*Account, error) {
	table, idCol, err := tableFor(role)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(
		`select %s, %s from %s where lower(email)=$1 and status=$2`, idCol, accountColumns, table)
	return s.scanAccount(s.db.QueryRowContext(ctx, query, NormalizeEmail(email), StatusActive))
}

func (s *PGStore) FindByID(ctx context.Context, role Role, id int64) (*Account, error) {
	table, idCol, err := tableFor(role)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`select %s, %s from %s where %s=$1`, idCol, accountColumns, table, idCol)
	return s.scanAccount(s.db.QueryRowContext(ctx, query, id))
}

func (s *PGStore) scanAccount(row *sql.Row) (*Account, error) {
	var a Account
	var role string
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &role,
		&a.Address, &a.Status, &a.StoreName, &a.EmailVerified, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	a.Role = Role(role)
	return &a, nil
}

func (s *PGStore) ExistsByEmail(ctx context.Context, role Role, email string) (bool, error) {
	table, _, err := tableFor(role)
	if err != nil {
		return false, err
	}
	var one int
	query := fmt.Sprintf(`select 1 from %s where lower(email)=$1`, table)
	err = s.db.QueryRowContext(ctx, query, NormalizeEmail(email)).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *PGStore) ListByRole(ctx context.Context, role Role) ([]PublicView, error) {
	table, idCol, err := tableFor(role)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(
		`select %s, name, email, role, address, status, coalesce(store_name,''), email_verified
		 from %s order by %s`, idCol, table, idCol)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []PublicView
	for rows.Next() {
		var v PublicView
		var r string
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &r, &v.Address, &v.Status, &v.StoreName, &v.EmailVerified); err != nil {
			return nil, err
		}
		v.Role = Role(r)
		views = append(views, v)
	}
	return views, rows.Err()
}

func (s *PGStore) UpdateStatus(ctx context.Context, role Role, id int64, status string) error {
	table, idCol, err := tableFor(role)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`update %s set status=$1 where %s=$2`, table, idCol)
	res, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStore) ReplaceVerificationCode(ctx context.Context, userID int64, code int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `delete from verification_codes where user_id=$1`, userID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`insert into verification_codes(user_id, code) values($1,$2)`, userID, code); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *PGStore) ConsumeVerificationCode(ctx context.Context, userID int64, code int) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	var one int
	err = tx.QueryRowContext(ctx,
		`select 1 from verification_codes where user_id=$1 and code=$2`, userID, code).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if _, err := tx.ExecContext(ctx, `delete from verification_codes where user_id=$1`, userID); err != nil {
		return false, err
	}
	if _, err := tx.ExecContext(ctx,
		`update customers set email_verified=true where customer_id=$1`, userID); err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}
