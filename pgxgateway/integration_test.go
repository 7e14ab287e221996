package pgxgateway_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	picopg "github.com/camarin24/pico-pg"
	"github.com/camarin24/pico-pg/pgxgateway"
	"github.com/joho/godotenv"
)

type account struct {
	Id      int
	Email   string
	Balance int
}

func openGateway(t *testing.T) *pgxgateway.Gateway {
	t.Helper()

	godotenv.Load()
	connStr := os.Getenv("DBCONNSTR")
	if connStr == "" {
		connStr = "postgres://localhost:5432/picopgtests?sslmode=disable"
	}

	gw, err := pgxgateway.Open(context.Background(), connStr)
	if err != nil {
		t.Skip("Database connection not available:", err)
	}
	return gw
}

func TestAccountLifecycle(t *testing.T) {
	gw := openGateway(t)
	defer gw.Close()
	ctx := context.Background()

	accounts := picopg.MustNewModel(account{}, picopg.Gateway(gw))

	mustExec := func(sql string) {
		t.Helper()
		if _, err := accounts.NewSQL(sql).Execute(ctx); err != nil {
			t.Fatal(err)
		}
	}
	mustExec(`DROP TABLE IF EXISTS "account"`)
	mustExec(`CREATE TABLE "account" (
		id serial PRIMARY KEY,
		email text NOT NULL,
		balance integer NOT NULL DEFAULT 0
	)`)
	defer mustExec(`DROP TABLE IF EXISTS "account"`)

	t.Run("Insert", func(t *testing.T) {
		a := account{Email: "alice@example.com", Balance: 100}
		if err := accounts.Insert(ctx, &a); err != nil {
			t.Fatal(err)
		}
		if a.Id == 0 {
			t.Error("expected generated id to be written back")
		}
	})

	t.Run("SelectOne", func(t *testing.T) {
		var a account
		found, err := accounts.SelectOne(ctx, &a, accounts.Filter("Email", "alice@example.com"))
		if err != nil {
			t.Fatal(err)
		}
		if !found {
			t.Fatal("expected row")
		}
		if a.Balance != 100 {
			t.Errorf("Balance = %d, want 100", a.Balance)
		}

		found, err = accounts.SelectOne(ctx, &a, accounts.Filter("Email", "nobody@example.com"))
		if err != nil {
			t.Fatal(err)
		}
		if found {
			t.Error("expected no row")
		}
	})

	t.Run("Update", func(t *testing.T) {
		var a account
		if _, err := accounts.SelectOne(ctx, &a, accounts.Filter("Email", "alice@example.com")); err != nil {
			t.Fatal(err)
		}
		a.Balance = 250
		found, err := accounts.Update(ctx, &a)
		if err != nil {
			t.Fatal(err)
		}
		if !found {
			t.Fatal("expected updated row")
		}

		var check account
		if _, err := accounts.SelectOne(ctx, &check, accounts.Filter("Id", a.Id)); err != nil {
			t.Fatal(err)
		}
		if check.Balance != 250 {
			t.Errorf("Balance = %d, want 250", check.Balance)
		}
	})

	t.Run("Paginate", func(t *testing.T) {
		for i := 0; i < 25; i++ {
			a := account{Email: fmt.Sprintf("user%02d@example.com", i), Balance: i}
			if err := accounts.Insert(ctx, &a); err != nil {
				t.Fatal(err)
			}
		}

		var page []account
		total, err := accounts.Paginate(ctx, &page, 3, 10, nil)
		if err != nil {
			t.Fatal(err)
		}
		if total != 26 { // alice + 25 generated
			t.Errorf("total = %d, want 26", total)
		}
		if len(page) != 6 {
			t.Errorf("len(page) = %d, want 6", len(page))
		}
		for i := 1; i < len(page); i++ {
			if page[i].Id <= page[i-1].Id {
				t.Fatal("expected pages ordered by primary key")
			}
		}
	})

	t.Run("Count", func(t *testing.T) {
		n, err := accounts.Count(ctx, accounts.Filter("Balance", 0))
		if err != nil {
			t.Fatal(err)
		}
		if n != 1 {
			t.Errorf("Count = %d, want 1", n)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		var a account
		if _, err := accounts.SelectOne(ctx, &a, accounts.Filter("Email", "alice@example.com")); err != nil {
			t.Fatal(err)
		}
		deleted, err := accounts.Delete(ctx, a)
		if err != nil {
			t.Fatal(err)
		}
		if !deleted {
			t.Error("expected row to be deleted")
		}
		deleted, err = accounts.Delete(ctx, a)
		if err != nil {
			t.Fatal(err)
		}
		if deleted {
			t.Error("expected second delete to report false")
		}
	})
}
