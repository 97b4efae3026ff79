package benchmark

import (
	"fmt"
	"strings"
	"sync"
)

// Registry holds declared benchmarks in the order they were registered.
type Registry struct {
	mtx        sync.Mutex
	benchmarks []*Benchmark
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds b. It panics if b is not a valid declaration, since that is
// a programming error in the declaring package.
func (r *Registry) Register(b *Benchmark) {
	if b.Name == "" {
		panic(fmt.Sprintf("benchmark in module %q has no name", b.Module))
	}
	if b.Module == "" {
		panic(fmt.Sprintf("benchmark %q has no module", b.Name))
	}
	if b.PageSet == nil {
		panic(fmt.Sprintf("benchmark %q has no page set", b.Name))
	}
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.benchmarks = append(r.benchmarks, b)
}

// All returns every registered benchmark, duplicates included.
func (r *Registry) All() []*Benchmark {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return append([]*Benchmark(nil), r.benchmarks...)
}

// Discover returns the benchmarks whose module is root or lies under root. An
// empty root matches everything. Benchmarks are keyed by name if indexByName
// is true and by module otherwise; when a key repeats, the benchmark
// registered last is kept. The result is in registration order.
func (r *Registry) Discover(root string, indexByName bool) []*Benchmark {
	all := r.All()
	last := map[string]int{}
	for i, b := range all {
		if !underRoot(b.Module, root) {
			continue
		}
		last[discoveryKey(b, indexByName)] = i
	}
	rv := []*Benchmark{}
	for i, b := range all {
		if idx, ok := last[discoveryKey(b, indexByName)]; ok && idx == i && underRoot(b.Module, root) {
			rv = append(rv, b)
		}
	}
	return rv
}

// Get returns the benchmark registered last under name.
func (r *Registry) Get(name string) (*Benchmark, bool) {
	all := r.All()
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Name == name {
			return all[i], true
		}
	}
	return nil, false
}

func discoveryKey(b *Benchmark, indexByName bool) string {
	if indexByName {
		return b.Name
	}
	return b.Module
}

func underRoot(module, root string) bool {
	root = strings.TrimSuffix(root, "/")
	return root == "" || module == root || strings.HasPrefix(module, root+"/")
}

var defaultRegistry = NewRegistry()

// Register adds b to the default registry. Declaration packages call it from
// init.
func Register(b *Benchmark) {
	defaultRegistry.Register(b)
}

// Default returns the registry that Register adds to.
func Default() *Registry {
	return defaultRegistry
}
