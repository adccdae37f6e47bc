package memory

import (
	"fmt"
	"log/slog"

	"royal-stay/internal/infra"
)

// table is an insertion-ordered collection keyed by int. It is not safe for
// concurrent use; the front desk runs single-threaded.
type table[V any] struct {
	name   string
	logger *slog.Logger
	rows   map[int]V
	order  []int
	maxKey int
}

func newTable[V any](name string, logger *slog.Logger) *table[V] {
	return &table[V]{
		name:   name,
		logger: logger,
		rows:   make(map[int]V),
	}
}

func (t *table[V]) insert(key int, v V) error {
	if key <= 0 {
		return infra.WrapRepoErr(t.logger, infra.KindInvalidKey, fmt.Sprintf("%s key must be positive, got %d", t.name, key), nil)
	}
	if _, ok := t.rows[key]; ok {
		return infra.WrapRepoErr(t.logger, infra.KindDuplicateKey, fmt.Sprintf("%s %d already exists", t.name, key), nil)
	}
	t.rows[key] = v
	t.order = append(t.order, key)
	t.maxKey = max(t.maxKey, key)
	return nil
}

func (t *table[V]) update(key int, v V) error {
	if _, ok := t.rows[key]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, fmt.Sprintf("%s %d", t.name, key))
	}
	t.rows[key] = v
	return nil
}

func (t *table[V]) get(key int) (V, error) {
	v, ok := t.rows[key]
	if !ok {
		var zero V
		return zero, infra.NewRepoErr(infra.KindNotFound, fmt.Sprintf("%s %d", t.name, key))
	}
	return v, nil
}

func (t *table[V]) all() []V {
	out := make([]V, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, t.rows[k])
	}
	return out
}

func (t *table[V]) filter(keep func(V) bool) []V {
	var out []V
	for _, k := range t.order {
		if v := t.rows[k]; keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func (t *table[V]) nextKey() int {
	return t.maxKey + 1
}
