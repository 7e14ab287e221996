package picopg

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestBuildUpdate(t *testing.T) {
	t.Parallel()

	t.Run("full record overwrite, key bound last", func(t *testing.T) {
		m := MustNewModel(User{})
		s, err := m.BuildUpdate(User{UserId: intptr(7), Username: "alice", IsActive: true})
		if err != nil {
			t.Fatalf("BuildUpdate() error = %v", err)
		}
		wantSQL := `UPDATE "user" SET username = $1, is_active = $2 WHERE user_id = $3 RETURNING *`
		if s.String() != wantSQL {
			t.Errorf("SQL = %q, want %q", s.String(), wantSQL)
		}
		wantArgs := []interface{}{"alice", true, intptr(7)}
		if !reflect.DeepEqual(s.Values(), wantArgs) {
			t.Errorf("args = %v, want %v", s.Values(), wantArgs)
		}
	})

	t.Run("zero values are written too", func(t *testing.T) {
		m := MustNewModel(invoice{})
		s, err := m.BuildUpdate(invoice{Id: 3})
		if err != nil {
			t.Fatalf("BuildUpdate() error = %v", err)
		}
		wantSQL := `UPDATE "invoice" SET number = $1, amount = $2 WHERE id = $3 RETURNING *`
		if s.String() != wantSQL {
			t.Errorf("SQL = %q, want %q", s.String(), wantSQL)
		}
		wantArgs := []interface{}{"", decimal.Decimal{}, 3}
		if !reflect.DeepEqual(s.Values(), wantArgs) {
			t.Errorf("args = %v, want %v", s.Values(), wantArgs)
		}
	})

	t.Run("unset primary key", func(t *testing.T) {
		m := MustNewModel(User{})
		if _, err := m.BuildUpdate(User{Username: "alice"}); !errors.Is(err, ErrMissingPrimaryKey) {
			t.Errorf("err = %v, want ErrMissingPrimaryKey", err)
		}
	})

	t.Run("record of a different type", func(t *testing.T) {
		m := MustNewModel(User{})
		if _, err := m.BuildUpdate(invoice{Id: 1}); !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("err = %v, want ErrTypeMismatch", err)
		}
	})
}
