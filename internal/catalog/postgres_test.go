package catalog

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func productRows(mock sqlmock.Sqlmock) *sqlmock.Rows {
	return mock.NewRows([]string{
		"product_id", "seller_id", "store_name", "title", "description",
		"thumbnail_url", "regular_price", "sale_price", "category", "stock_status", "stock_count", "status",
	})
}

func TestListActiveFiltersInactive(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	rows := productRows(mock).
		AddRow(4, 2, "Boutique A", "Clavier", "Clavier mécanique", "", 59.9, 49.9, "Informatique", "In Stock", 12, "Active")
	mock.ExpectQuery(`p\.status = 'Active' and s\.status = 'Active'`).WillReturnRows(rows)

	got, err := NewPGStore(db).ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(got) != 1 || got[0].StoreName != "Boutique A" || got[0].SalePrice != 49.9 {
		t.Fatalf("unexpected products: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSearchLowercasesPattern(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(`lower\(p\.title\) like`).
		WithArgs("%clavier%").
		WillReturnRows(productRows(mock))

	if _, err := NewPGStore(db).Search(context.Background(), "  Clavier "); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestGetMissingProduct(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(`where p\.product_id = \$1`).WithArgs(int64(99)).WillReturnRows(productRows(mock))

	if _, err := NewPGStore(db).Get(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateProductChecksOwnership(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec(`update products set`).
		WithArgs("Clavier", "", "", 59.9, 49.9, "Informatique", "In Stock", 12, "Active", int64(4), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	p := &Product{ID: 4, SellerID: 3, Title: "Clavier", RegularPrice: 59.9, SalePrice: 49.9,
		Category: "Informatique", StockStatus: "In Stock", StockCount: 12, Status: "Active"}
	if err := NewPGStore(db).UpdateProduct(context.Background(), p); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound for foreign product", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreateCategoryReturnsGeneratedID(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(`insert into categories`).
		WithArgs("Informatique").
		WillReturnRows(mock.NewRows([]string{"category_id"}).AddRow(7))

	c, err := NewPGStore(db).CreateCategory(context.Background(), "Informatique")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if c.ID != 7 || c.Name != "Informatique" {
		t.Fatalf("unexpected category: %+v", c)
	}
}
