package inventory

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestAdd_AccumulatesQuantity(t *testing.T) {
	inv := New()

	if err := inv.Add("apple", 10); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := inv.Add("apple", 5); err != nil {
		t.Fatalf("add: %v", err)
	}

	if got := inv.QuantityOf("apple"); got != 15 {
		t.Errorf("expected 15, got %d", got)
	}
}

func TestAdd_EmptyNameRejected(t *testing.T) {
	inv := Inventory{"apple": 1}

	err := inv.Add("", 5)
	if !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if len(inv) != 1 || inv["apple"] != 1 {
		t.Errorf("inventory mutated: %v", inv)
	}
}

func TestRemove_Decrements(t *testing.T) {
	inv := Inventory{"apple": 10}

	res, err := inv.Remove("apple", 3)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if res.Depleted {
		t.Error("unexpected depletion")
	}
	if res.Remaining != 7 {
		t.Errorf("expected remaining 7, got %d", res.Remaining)
	}
	if inv["apple"] != 7 {
		t.Errorf("expected stored 7, got %d", inv["apple"])
	}
}

func TestRemove_DepletionDeletesKey(t *testing.T) {
	for _, qty := range []int{10, 15} {
		inv := Inventory{"apple": 10}

		res, err := inv.Remove("apple", qty)
		if err != nil {
			t.Fatalf("remove %d: %v", qty, err)
		}
		if !res.Depleted {
			t.Errorf("remove %d: expected depletion", qty)
		}
		if _, ok := inv["apple"]; ok {
			t.Errorf("remove %d: key should be deleted, got %v", qty, inv)
		}
	}
}

func TestRemove_AbsentItem(t *testing.T) {
	inv := Inventory{"apple": 10}

	_, err := inv.Remove("orange", 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if inv["apple"] != 10 || len(inv) != 1 {
		t.Errorf("inventory mutated: %v", inv)
	}
}

func TestRemove_NonPositiveQuantity(t *testing.T) {
	inv := Inventory{"apple": 10}

	for _, qty := range []int{0, -2} {
		_, err := inv.Remove("apple", qty)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("remove %d: expected ErrInvalidQuantity, got %v", qty, err)
		}
	}
	if inv["apple"] != 10 {
		t.Errorf("inventory mutated: %v", inv)
	}
}

func TestQuantityOf_MissingIsZero(t *testing.T) {
	inv := Inventory{"apple": 10}

	if got := inv.QuantityOf("missing"); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestLowStock(t *testing.T) {
	inv := Inventory{"a": 1, "b": 6, "c": 5}

	got := inv.LowStock(5)
	want := []string{"a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLowStock_EmptyInventory(t *testing.T) {
	if got := New().LowStock(DefaultLowStockThreshold); len(got) != 0 {
		t.Errorf("expected no items, got %v", got)
	}
}

func TestReport_Empty(t *testing.T) {
	report := New().Report()
	if !strings.Contains(report, "Inventory is empty.") {
		t.Errorf("unexpected report: %q", report)
	}
}

func TestReport_ListsItemsSorted(t *testing.T) {
	inv := Inventory{"banana": 15, "apple": 7}

	report := inv.Report()
	appleAt := strings.Index(report, "apple: 7")
	bananaAt := strings.Index(report, "banana: 15")
	if appleAt < 0 || bananaAt < 0 {
		t.Fatalf("missing lines in report: %q", report)
	}
	if appleAt > bananaAt {
		t.Errorf("expected sorted order, got %q", report)
	}
}

func TestAsQuantity(t *testing.T) {
	cases := []struct {
		in      any
		want    int
		wantErr bool
	}{
		{in: 7, want: 7},
		{in: int64(3), want: 3},
		{in: float64(4), want: 4},
		{in: json.Number("12"), want: 12},
		{in: 1.5, wantErr: true},
		{in: json.Number("1.5"), wantErr: true},
		{in: "ten", wantErr: true},
		{in: nil, wantErr: true},
	}

	for _, tc := range cases {
		got, err := AsQuantity(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidQuantity) {
				t.Errorf("AsQuantity(%v): expected ErrInvalidQuantity, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("AsQuantity(%v): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("AsQuantity(%v): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestClone_Independent(t *testing.T) {
	inv := Inventory{"apple": 10}
	clone := inv.Clone()

	clone["apple"] = 1
	if inv["apple"] != 10 {
		t.Errorf("clone mutated the original: %v", inv)
	}
}
