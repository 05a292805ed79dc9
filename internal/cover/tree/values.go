package tree

import "sync"

// values is an append-only store addressed by insertion index.
type values[T any] struct {
	mu   sync.RWMutex
	data []T
}

func (v *values[T]) put(value T) int32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.data = append(v.data, value)
	return int32(len(v.data) - 1)
}

func (v *values[T]) value(index int32) T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if index < 0 || int(index) >= len(v.data) {
		var zero T
		return zero
	}
	return v.data[index]
}

func (v *values[T]) len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.data)
}
