package graph

import (
	"github.com/google/uuid"
)

// MemStore is an in-memory Store. It backs tests and short-lived
// library embeddings; nothing survives the process.
//
// MemStore is not safe for concurrent mutation; the finance core only
// issues concurrent reads.
type MemStore struct {
	pages map[string]*Page
	order []string
	index map[string]*Block // record id -> block
}

var _ Store = (*MemStore)(nil)

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		pages: make(map[string]*Page),
		index: make(map[string]*Block),
	}
}

// CreatePage creates an empty page.
func (s *MemStore) CreatePage(name string) (*Page, error) {
	if _, ok := s.pages[name]; ok {
		return nil, ErrPageExists
	}
	p := &Page{Name: name}
	s.pages[name] = p
	s.order = append(s.order, name)
	return p, nil
}

// GetPage returns a page by name.
func (s *MemStore) GetPage(name string) (*Page, error) {
	p, ok := s.pages[name]
	if !ok {
		return nil, ErrPageNotFound
	}
	return p, nil
}

// CreateRecord appends a fresh block to the named page.
func (s *MemStore) CreateRecord(page string) (*Block, error) {
	p, ok := s.pages[page]
	if !ok {
		return nil, ErrPageNotFound
	}
	b := &Block{ID: uuid.NewString(), Properties: make(map[string]string)}
	p.Blocks = append(p.Blocks, b)
	s.index[b.ID] = b
	return b, nil
}

// SetProperty sets one property on an existing record.
func (s *MemStore) SetProperty(recordID, key, value string) error {
	b, ok := s.index[recordID]
	if !ok {
		return ErrRecordNotFound
	}
	if b.Properties == nil {
		b.Properties = make(map[string]string)
	}
	b.Properties[key] = value
	return nil
}

// SetContent sets the content line of an existing record.
func (s *MemStore) SetContent(recordID, content string) error {
	b, ok := s.index[recordID]
	if !ok {
		return ErrRecordNotFound
	}
	b.Content = content
	return nil
}

// GetChildren returns the child blocks of a record.
func (s *MemStore) GetChildren(recordID string) ([]*Block, error) {
	b, ok := s.index[recordID]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return b.Children, nil
}

// QueryByProperty returns every block whose property key equals value.
func (s *MemStore) QueryByProperty(key, value string) ([]*Block, error) {
	pages := make([]*Page, 0, len(s.order))
	for _, name := range s.order {
		pages = append(pages, s.pages[name])
	}
	return queryByProperty(pages, key, value)
}

// Add is a convenience for tests and seeding: it appends a block with
// the given properties to a page, creating the page if needed.
func (s *MemStore) Add(page string, props map[string]string) *Block {
	if _, ok := s.pages[page]; !ok {
		s.CreatePage(page)
	}
	b, _ := s.CreateRecord(page)
	for k, v := range props {
		b.Properties[k] = v
	}
	return b
}
