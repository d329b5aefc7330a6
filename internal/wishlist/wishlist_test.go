package wishlist

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestAddIsIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(`insert into wishlists`).
		WithArgs(int64(5), int64(10)).
		WillReturnRows(mock.NewRows([]string{"wishlist_id"}).AddRow(3))
	mock.ExpectQuery(`insert into wishlists`).
		WithArgs(int64(5), int64(10)).
		WillReturnRows(mock.NewRows([]string{"wishlist_id"}).AddRow(3))

	store := NewPGStore(db)
	first := &Entry{CustomerID: 5, ProductID: 10}
	if err := store.Add(context.Background(), first); err != nil {
		t.Fatalf("Add: %v", err)
	}
	second := &Entry{CustomerID: 5, ProductID: 10}
	if err := store.Add(context.Background(), second); err != nil {
		t.Fatalf("Add again: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("ids differ: %d vs %d", first.ID, second.ID)
	}
}

func TestExists(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(`select 1 from wishlists`).
		WithArgs(int64(5), int64(10)).
		WillReturnRows(mock.NewRows([]string{"one"}).AddRow(1))
	mock.ExpectQuery(`select 1 from wishlists`).
		WithArgs(int64(5), int64(11)).
		WillReturnRows(mock.NewRows([]string{"one"}))

	store := NewPGStore(db)
	ok, err := store.Exists(context.Background(), 5, 10)
	if err != nil || !ok {
		t.Fatalf("Exists = %v, %v; want true, nil", ok, err)
	}
	ok, err = store.Exists(context.Background(), 5, 11)
	if err != nil || ok {
		t.Fatalf("Exists = %v, %v; want false, nil", ok, err)
	}
}

func TestListByCustomerJoinsProducts(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	rows := mock.NewRows([]string{
		"wishlist_id", "customer_id", "product_id", "title", "thumbnail_url",
		"regular_price", "sale_price", "store_name", "stock_status",
	}).AddRow(3, 5, 10, "Clavier", "/img/k.png", 59.9, 49.9, "Boutique A", "In Stock")
	mock.ExpectQuery(`join products p`).WithArgs(int64(5)).WillReturnRows(rows)

	got, err := NewPGStore(db).ListByCustomer(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListByCustomer: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Clavier" || got[0].StoreName != "Boutique A" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}
