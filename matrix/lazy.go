// SPDX-License-Identifier: MIT

package matrix

import "sync"

// lazy is a compute-once cell. Concurrent first calls block until the
// single computation finishes; later calls return the stored value.
type lazy[T any] struct {
	once sync.Once
	val  T
	err  error
}

func (l *lazy[T]) get(compute func() (T, error)) (T, error) {
	l.once.Do(func() { l.val, l.err = compute() })

	return l.val, l.err
}

// must is get for computations that cannot fail.
func (l *lazy[T]) must(compute func() T) T {
	v, _ := l.get(func() (T, error) { return compute(), nil })

	return v
}
