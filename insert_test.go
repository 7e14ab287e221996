package picopg

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

// User mirrors the canonical example: optional generated primary key,
// snake_case columns, table "user".
type User struct {
	UserId   *int
	Username string
	IsActive bool
}

func (User) PrimaryKey() string { return "user_id" }

type invoice struct {
	Id     int
	Number string
	Amount decimal.Decimal
}

func TestBuildInsert(t *testing.T) {
	t.Parallel()
	m := MustNewModel(User{})

	tests := []struct {
		name     string
		record   interface{}
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "unset primary key is excluded",
			record:   User{Username: "alice", IsActive: true},
			wantSQL:  `INSERT INTO "user" (username, is_active) VALUES ($1, $2) RETURNING *`,
			wantArgs: []interface{}{"alice", true},
		},
		{
			name:     "set primary key is included",
			record:   User{UserId: intptr(7), Username: "bob"},
			wantSQL:  `INSERT INTO "user" (user_id, username, is_active) VALUES ($1, $2, $3) RETURNING *`,
			wantArgs: []interface{}{intptr(7), "bob", false},
		},
		{
			name:     "pointer record",
			record:   &User{Username: "carol", IsActive: true},
			wantSQL:  `INSERT INTO "user" (username, is_active) VALUES ($1, $2) RETURNING *`,
			wantArgs: []interface{}{"carol", true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := m.BuildInsert(tt.record)
			if err != nil {
				t.Fatalf("BuildInsert() error = %v", err)
			}
			if s.String() != tt.wantSQL {
				t.Errorf("SQL = %q, want %q", s.String(), tt.wantSQL)
			}
			if !reflect.DeepEqual(s.Values(), tt.wantArgs) {
				t.Errorf("args = %v, want %v", s.Values(), tt.wantArgs)
			}
		})
	}
}

func TestBuildInsertZeroIntegerPrimaryKey(t *testing.T) {
	t.Parallel()
	m := MustNewModel(invoice{})

	s, err := m.BuildInsert(invoice{Number: "INV-1", Amount: decimal.NewFromInt(100)})
	if err != nil {
		t.Fatalf("BuildInsert() error = %v", err)
	}
	wantSQL := `INSERT INTO "invoice" (number, amount) VALUES ($1, $2) RETURNING *`
	if s.String() != wantSQL {
		t.Errorf("SQL = %q, want %q", s.String(), wantSQL)
	}
	wantArgs := []interface{}{"INV-1", decimal.NewFromInt(100)}
	if !reflect.DeepEqual(s.Values(), wantArgs) {
		t.Errorf("args = %v, want %v", s.Values(), wantArgs)
	}
}

func TestBuildInsertTypeMismatch(t *testing.T) {
	t.Parallel()
	m := MustNewModel(User{})
	if _, err := m.BuildInsert(invoice{}); err == nil {
		t.Error("expected error for record of a different type")
	}
}

func intptr(i int) *int { return &i }
