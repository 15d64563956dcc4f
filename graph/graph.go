// Package graph implements the schema-less document graph that backs
// all finance records: named pages holding a tree of blocks, each block
// carrying a flat string-keyed property map.
//
// The Store interface is the narrow capability the finance core needs;
// MemStore serves tests and embedding, FileStore persists pages as
// markdown files.
package graph

import "errors"

// ErrPageNotFound is returned when a named page does not exist in the store.
var ErrPageNotFound = errors.New("graph: page not found")

// ErrPageExists is returned when creating a page that already exists.
var ErrPageExists = errors.New("graph: page already exists")

// ErrRecordNotFound is returned when a record id is unknown to the store.
var ErrRecordNotFound = errors.New("graph: record not found")

// Block is one record of the graph: an identity the store assigns, a
// free-text content line, a flat property map, and child blocks.
type Block struct {
	ID         string            `json:"id"`
	Content    string            `json:"content,omitempty"`
	Properties map[string]string `json:"properties"`
	Children   []*Block          `json:"children,omitempty"`
}

// Property returns the named property, or "" when absent.
func (b *Block) Property(key string) string {
	if b.Properties == nil {
		return ""
	}
	return b.Properties[key]
}

// Page is a named collection of blocks.
type Page struct {
	Name   string   `json:"name"`
	Blocks []*Block `json:"blocks,omitempty"`
}

// Store is the capability the finance core requires from the host
// document graph. Reads are read-after-write consistent within a
// session; there is no snapshot isolation, so concurrent scans may
// observe slightly different states if writes race with them.
type Store interface {
	// QueryByProperty returns every block whose property key equals value,
	// in no guaranteed order.
	QueryByProperty(key, value string) ([]*Block, error)

	// CreatePage creates an empty page. ErrPageExists if it already does.
	CreatePage(name string) (*Page, error)

	// GetPage returns a page by name, or ErrPageNotFound.
	GetPage(name string) (*Page, error)

	// CreateRecord appends a fresh empty block to the named page and
	// returns its handle. ErrPageNotFound if the page does not exist.
	CreateRecord(page string) (*Block, error)

	// SetProperty sets one property on an existing record.
	SetProperty(recordID, key, value string) error

	// SetContent sets the free-text content line of an existing record.
	SetContent(recordID, content string) error

	// GetChildren returns the child blocks of a record.
	GetChildren(recordID string) ([]*Block, error)
}

// walk calls fn for every block of the tree, parents before children.
func walk(blocks []*Block, fn func(*Block)) {
	for _, b := range blocks {
		fn(b)
		walk(b.Children, fn)
	}
}
