package cmd

import (
	"errors"
	"testing"

	"github.com/zouantchaw/financebrain/graph"
)

func TestRequireInitialized(t *testing.T) {
	store := graph.NewMemStore()
	if err := requireInitialized(store); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("requireInitialized on empty graph: %v, want ErrNotInitialized", err)
	}

	store.CreatePage(rootPage)
	if err := requireInitialized(store); err != nil {
		t.Errorf("requireInitialized after init: %v", err)
	}
}

func TestAppendRecord(t *testing.T) {
	store := graph.NewMemStore()
	store.CreatePage(accountsPage)

	props := map[string]string{
		"type":         "account",
		"account-name": "Chase Checking",
		"balance":      "3500.00",
	}
	if err := appendRecord(store, accountsPage, "Chase Checking", props); err != nil {
		t.Fatal(err)
	}

	page, err := store.GetPage(accountsPage)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Blocks) != 1 {
		t.Fatalf("page has %d blocks, want 1", len(page.Blocks))
	}
	b := page.Blocks[0]
	if b.Content != "Chase Checking" {
		t.Errorf("content = %q", b.Content)
	}
	for key, want := range props {
		if got := b.Property(key); got != want {
			t.Errorf("property %q = %q, want %q", key, got, want)
		}
	}
}

func TestAppendRecord_MissingPage(t *testing.T) {
	store := graph.NewMemStore()
	err := appendRecord(store, transactionsPage, "", map[string]string{"type": "expense"})
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("appendRecord on missing page: %v, want ErrNotInitialized", err)
	}
}
