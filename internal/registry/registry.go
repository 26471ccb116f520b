// Package registry tracks the primary keys generated during a run so that
// concurrent generators can pick valid foreign keys without querying the
// database. The registry lives only for the lifetime of the process and is
// rebuilt from scratch on every run.
package registry

import (
	"math/rand"
	"sync"
)

// Kind names one entity's ID list.
type Kind string

const (
	Suppliers Kind = "suppliers"
	Employees Kind = "employees"
	Customers Kind = "customers"
	Products  Kind = "products"
	Pets      Kind = "pets"
)

// Registry is a set of append-only ID lists guarded by a single mutex.
// Entries are never removed. The coarse lock is acceptable here: there are
// at most two producer goroutines ticking on multi-second intervals.
type Registry struct {
	mu  sync.Mutex
	ids map[Kind][]int64
}

func New() *Registry {
	return &Registry{ids: make(map[Kind][]int64)}
}

// Append records a generated primary key.
func (r *Registry) Append(kind Kind, id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids[kind] = append(r.ids[kind], id)
}

// Len returns the number of recorded IDs for kind.
func (r *Registry) Len(kind Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ids[kind])
}

// Random returns one recorded ID chosen uniformly, or false when the list
// is empty.
func (r *Registry) Random(kind Kind) (int64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.ids[kind]
	if len(list) == 0 {
		return 0, false
	}
	return list[rand.Intn(len(list))], true
}

// Sample returns up to n distinct IDs chosen without replacement.
func (r *Registry) Sample(kind Kind, n int) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.ids[kind]
	if len(list) == 0 {
		return nil
	}
	if n > len(list) {
		n = len(list)
	}
	perm := rand.Perm(len(list))
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		out[i] = list[perm[i]]
	}
	return out
}

// Snapshot returns a copy of the full list for kind.
func (r *Registry) Snapshot(kind Kind) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.ids[kind]...)
}
