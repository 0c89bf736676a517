package store

import (
	"strings"
	"sync"

	"bizdash/internal/modules/dashboard/domain"
)

const (
	KindBranches = "branches"
	KindVendors  = "vendors"
)

// Collection holds the most recently loaded copy of one reference list. Update replaces
// the whole list; there is no merge and no version check, so the last Update wins.
type Collection[T domain.Entity] struct {
	kind     string
	mu       sync.RWMutex
	items    []T
	index    map[domain.ID]int
	onUpdate func(kind string, count int)
}

func NewCollection[T domain.Entity](kind string) *Collection[T] {
	return &Collection[T]{kind: kind, index: map[domain.ID]int{}}
}

// Update replaces the held collection with a copy of items.
func (c *Collection[T]) Update(items []T) {
	copied := make([]T, len(items))
	copy(copied, items)
	index := make(map[domain.ID]int, len(copied))
	for i, item := range copied {
		id := domain.ID(strings.TrimSpace(string(item.EntityID())))
		if _, dup := index[id]; !dup {
			index[id] = i
		}
	}

	c.mu.Lock()
	c.items = copied
	c.index = index
	hook := c.onUpdate
	c.mu.Unlock()

	if hook != nil {
		hook(c.kind, len(copied))
	}
}

// Read returns a copy of the current contents; empty before the first Update.
func (c *Collection[T]) Read() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Resolve looks up id. A missing id is reported with ok=false, never an error.
func (c *Collection[T]) Resolve(id domain.ID) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var zero T
	i, ok := c.index[domain.ID(strings.TrimSpace(string(id)))]
	if !ok {
		return zero, false
	}
	return c.items[i], true
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) setHook(fn func(kind string, count int)) {
	c.mu.Lock()
	c.onUpdate = fn
	c.mu.Unlock()
}

// CompanyReferences is the set of reference collections loaded for one company.
type CompanyReferences struct {
	CompanyID string
	Branches  *Collection[domain.Branch]
	Vendors   *Collection[domain.Vendor]
}

// BranchName resolves a branch id to its display name, or "" when unknown.
func (r *CompanyReferences) BranchName(id domain.ID) string {
	branch, ok := r.Branches.Resolve(id)
	if !ok {
		return ""
	}
	return branch.Name
}

// ReferenceStore keys reference collections by company id so one company's branches
// never resolve another company's records. Build one per process with NewReferenceStore.
type ReferenceStore struct {
	mu        sync.RWMutex
	companies map[string]*CompanyReferences
	onUpdate  func(companyID, kind string, count int)
}

func NewReferenceStore() *ReferenceStore {
	return &ReferenceStore{companies: map[string]*CompanyReferences{}}
}

// For returns the collections of companyID, creating empty ones on first use.
func (s *ReferenceStore) For(companyID string) *CompanyReferences {
	companyID = strings.TrimSpace(companyID)

	s.mu.RLock()
	refs, ok := s.companies[companyID]
	s.mu.RUnlock()
	if ok {
		return refs
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if refs, ok := s.companies[companyID]; ok {
		return refs
	}
	refs = &CompanyReferences{
		CompanyID: companyID,
		Branches:  NewCollection[domain.Branch](KindBranches),
		Vendors:   NewCollection[domain.Vendor](KindVendors),
	}
	hook := func(kind string, count int) { s.notify(companyID, kind, count) }
	refs.Branches.setHook(hook)
	refs.Vendors.setHook(hook)
	s.companies[companyID] = refs
	return refs
}

// OnUpdate registers fn to run after every Update on any company's collection.
// Passing nil removes it.
func (s *ReferenceStore) OnUpdate(fn func(companyID, kind string, count int)) {
	s.mu.Lock()
	s.onUpdate = fn
	s.mu.Unlock()
}

func (s *ReferenceStore) notify(companyID, kind string, count int) {
	s.mu.RLock()
	fn := s.onUpdate
	s.mu.RUnlock()
	if fn != nil {
		fn(companyID, kind, count)
	}
}
