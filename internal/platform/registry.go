package platform

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry = make(map[string]Extractor)
	mu       sync.RWMutex
)

func Register(e Extractor) {
	mu.Lock()
	defer mu.Unlock()
	registry[e.Name()] = e
}

func Get(name string) (Extractor, error) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("platform %q not registered", name)
	}
	return e, nil
}

func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
