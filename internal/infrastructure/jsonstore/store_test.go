package jsonstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stockroom/core/internal/domain/inventory"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	store := New(path)
	ctx := context.Background()

	want := inventory.Inventory{"apple": 7, "banana": 15}
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "missing.json"))

	inv, err := store.Load(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
	if len(inv) != 0 {
		t.Errorf("expected empty inventory, got %v", inv)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	inv, err := New(path).Load(context.Background())
	if err == nil {
		t.Fatal("expected decode error")
	}
	if errors.Is(err, os.ErrNotExist) {
		t.Fatalf("decode failure misreported as missing file: %v", err)
	}
	if len(inv) != 0 {
		t.Errorf("expected empty inventory, got %v", inv)
	}
}

func TestLoad_NonIntegerQuantity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	if err := os.WriteFile(path, []byte(`{"apple": 1.5}`), 0o644); err != nil {
		t.Fatal(err)
	}

	inv, err := New(path).Load(context.Background())
	if err == nil {
		t.Fatal("expected decode error for fractional quantity")
	}
	if len(inv) != 0 {
		t.Errorf("expected empty inventory, got %v", inv)
	}
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	store := New(path)
	ctx := context.Background()

	if err := store.Save(ctx, inventory.Inventory{"apple": 1}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, inventory.Inventory{"banana": 2}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, inventory.Inventory{"banana": 2}) {
		t.Errorf("expected overwrite, got %v", got)
	}
}

func TestSave_UnwritablePath(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "no-such-dir", "inventory.json"))

	if err := store.Save(context.Background(), inventory.Inventory{"apple": 1}); err == nil {
		t.Fatal("expected write error")
	}
}

func TestNew_DefaultPath(t *testing.T) {
	if got := New("").Path(); got != DefaultPath {
		t.Errorf("expected %q, got %q", DefaultPath, got)
	}
}
