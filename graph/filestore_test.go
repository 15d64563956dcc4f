package graph

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileName(t *testing.T) {
	tests := []struct{ page, file string }{
		{"Finance", "Finance.md"},
		{"Finance/Dashboard", "Finance___Dashboard.md"},
		{"Finance/Reports/2026", "Finance___Reports___2026.md"},
	}
	for _, test := range tests {
		if got := fileName(test.page); got != test.file {
			t.Errorf("fileName(%q) = %q, want %q", test.page, got, test.file)
		}
		if got := pageName(test.file); got != test.page {
			t.Errorf("pageName(%q) = %q, want %q", test.file, got, test.page)
		}
	}
}

func TestFileStore_Persistence(t *testing.T) {
	dir := t.TempDir()

	// Write through one store instance.
	store, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.CreatePage("Finance/Accounts"); err != nil {
		t.Fatal(err)
	}
	rec, err := store.CreateRecord("Finance/Accounts")
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SetContent(rec.ID, "Chase Checking"); err != nil {
		t.Fatal(err)
	}
	if err := store.SetProperty(rec.ID, "type", "account"); err != nil {
		t.Fatal(err)
	}
	if err := store.SetProperty(rec.ID, "balance", "3500.00"); err != nil {
		t.Fatal(err)
	}

	// The page file reflects every mutation immediately.
	if _, err := os.Stat(filepath.Join(dir, "Finance___Accounts.md")); err != nil {
		t.Fatalf("page file missing: %v", err)
	}

	// Read through a fresh instance.
	reopened, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	page, err := reopened.GetPage("Finance/Accounts")
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Blocks) != 1 {
		t.Fatalf("reopened page has %d blocks, want 1", len(page.Blocks))
	}
	b := page.Blocks[0]
	if b.Content != "Chase Checking" {
		t.Errorf("content = %q", b.Content)
	}
	if got := b.Property("balance"); got != "3500.00" {
		t.Errorf("balance = %q, want 3500.00", got)
	}
}

func TestFileStore_Errors(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := store.GetPage("Nope"); !errors.Is(err, ErrPageNotFound) {
		t.Errorf("GetPage on missing page: %v, want ErrPageNotFound", err)
	}
	if _, err := store.CreateRecord("Nope"); !errors.Is(err, ErrPageNotFound) {
		t.Errorf("CreateRecord on missing page: %v, want ErrPageNotFound", err)
	}
	if err := store.SetProperty("no-such-id", "k", "v"); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("SetProperty on missing record: %v, want ErrRecordNotFound", err)
	}

	if _, err := store.CreatePage("Finance"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.CreatePage("Finance"); !errors.Is(err, ErrPageExists) {
		t.Errorf("CreatePage twice: %v, want ErrPageExists", err)
	}
}

func TestFileStore_Reload(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.CreatePage("Finance/Transactions"); err != nil {
		t.Fatal(err)
	}

	// Simulate an external edit to the page file.
	src := "- Whole Foods 125.50\n  type:: expense\n  amount:: 125.50\n"
	if err := os.WriteFile(filepath.Join(dir, "Finance___Transactions.md"), []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	if err := store.Reload(); err != nil {
		t.Fatal(err)
	}
	blocks, err := store.QueryByProperty("type", "expense")
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 1 || blocks[0].Property("amount") != "125.50" {
		t.Errorf("after reload, matches = %+v", blocks)
	}
}
