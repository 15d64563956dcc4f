package graph

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// FileStore is a Store persisted as a directory of markdown page files.
// Every mutation rewrites the owning page file, so the directory always
// reflects the current graph state.
type FileStore struct {
	dir    string
	pages  map[string]*Page
	order  []string
	index  map[string]*Block // record id -> block
	pageOf map[string]string // record id -> page name
}

var _ Store = (*FileStore)(nil)

// pathSeparator replaces "/" in page names on disk, so hierarchical
// pages like "Finance/Dashboard" map to flat file names.
const pathSeparator = "___"

func fileName(page string) string {
	return strings.ReplaceAll(page, "/", pathSeparator) + ".md"
}

func pageName(file string) string {
	name := strings.TrimSuffix(file, ".md")
	return strings.ReplaceAll(name, pathSeparator, "/")
}

// Open loads (or initializes) a file-backed graph rooted at dir.
func Open(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not open graph directory %q: %w", dir, err)
	}
	s := &FileStore{
		dir:    dir,
		pages:  make(map[string]*Page),
		index:  make(map[string]*Block),
		pageOf: make(map[string]string),
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read graph directory %q: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, f := range files {
		src, err := os.ReadFile(filepath.Join(dir, f))
		if err != nil {
			return nil, fmt.Errorf("could not read page file %q: %w", f, err)
		}
		page := ParsePage(pageName(f), src)
		s.pages[page.Name] = page
		s.order = append(s.order, page.Name)
		walk(page.Blocks, func(b *Block) {
			s.index[b.ID] = b
			s.pageOf[b.ID] = page.Name
		})
	}
	return s, nil
}

// Dir returns the directory backing the store.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) save(page *Page) error {
	path := filepath.Join(s.dir, fileName(page.Name))
	if err := os.WriteFile(path, RenderPage(page), 0644); err != nil {
		return fmt.Errorf("could not save page %q: %w", page.Name, err)
	}
	return nil
}

// CreatePage creates an empty page and its backing file.
func (s *FileStore) CreatePage(name string) (*Page, error) {
	if _, ok := s.pages[name]; ok {
		return nil, ErrPageExists
	}
	p := &Page{Name: name}
	s.pages[name] = p
	s.order = append(s.order, name)
	if err := s.save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPage returns a page by name.
func (s *FileStore) GetPage(name string) (*Page, error) {
	p, ok := s.pages[name]
	if !ok {
		return nil, ErrPageNotFound
	}
	return p, nil
}

// CreateRecord appends a fresh block to the named page and persists it.
func (s *FileStore) CreateRecord(page string) (*Block, error) {
	p, ok := s.pages[page]
	if !ok {
		return nil, ErrPageNotFound
	}
	b := &Block{ID: uuid.NewString(), Properties: make(map[string]string)}
	p.Blocks = append(p.Blocks, b)
	s.index[b.ID] = b
	s.pageOf[b.ID] = page
	if err := s.save(p); err != nil {
		return nil, err
	}
	return b, nil
}

// SetProperty sets one property on an existing record and persists the
// owning page.
func (s *FileStore) SetProperty(recordID, key, value string) error {
	b, ok := s.index[recordID]
	if !ok {
		return ErrRecordNotFound
	}
	if b.Properties == nil {
		b.Properties = make(map[string]string)
	}
	b.Properties[key] = value
	return s.save(s.pages[s.pageOf[recordID]])
}

// SetContent sets the content line of an existing record and persists
// the owning page.
func (s *FileStore) SetContent(recordID, content string) error {
	b, ok := s.index[recordID]
	if !ok {
		return ErrRecordNotFound
	}
	b.Content = content
	return s.save(s.pages[s.pageOf[recordID]])
}

// GetChildren returns the child blocks of a record.
func (s *FileStore) GetChildren(recordID string) ([]*Block, error) {
	b, ok := s.index[recordID]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return b.Children, nil
}

// QueryByProperty returns every block whose property key equals value.
func (s *FileStore) QueryByProperty(key, value string) ([]*Block, error) {
	pages := make([]*Page, 0, len(s.order))
	for _, name := range s.order {
		pages = append(pages, s.pages[name])
	}
	return queryByProperty(pages, key, value)
}

// Reload discards the in-memory state and re-reads every page file.
// Block identities are reassigned.
func (s *FileStore) Reload() error {
	fresh, err := Open(s.dir)
	if err != nil {
		return err
	}
	*s = *fresh
	log.Printf("reloaded graph from %q: %d pages", s.dir, len(s.order))
	return nil
}
