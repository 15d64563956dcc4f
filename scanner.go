package financebrain

import (
	"log"

	"github.com/zouantchaw/financebrain/graph"
)

// Scanner retrieves all records of a given tagged type from an injected
// graph store. Scanning is best-effort and never fails from the
// aggregator's point of view: a store error degrades to an empty result
// set plus a diagnostic log line.
type Scanner struct {
	store graph.Store
}

// NewScanner returns a scanner over the given store.
func NewScanner(store graph.Store) *Scanner {
	return &Scanner{store: store}
}

// ScanByType returns every record carrying the given type tag, in
// whatever order the store yields. Each call re-issues the query; there
// is no caching.
func (s *Scanner) ScanByType(typeTag string) []*graph.Block {
	blocks, err := s.store.QueryByProperty(PropType, typeTag)
	if err != nil {
		log.Printf("scan for records of type %q failed: %v", typeTag, err)
		return nil
	}
	return blocks
}
