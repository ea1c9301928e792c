package ledger

import (
	"bytes"
	"sort"
)

type change struct {
	key     []byte
	value   []byte
	deleted bool
}

// overlay buffers the writes of one invocation on top of a base store.
type overlay struct {
	base    Store
	pending map[string]change
}

func newOverlay(base Store) *overlay {
	return &overlay{base: base, pending: make(map[string]change)}
}

func (o *overlay) Get(key []byte) ([]byte, bool, error) {
	if c, ok := o.pending[string(key)]; ok {
		if c.deleted {
			return nil, false, nil
		}
		return bytes.Clone(c.value), true, nil
	}
	return o.base.Get(key)
}

func (o *overlay) Has(key []byte) (bool, error) {
	if c, ok := o.pending[string(key)]; ok {
		return !c.deleted, nil
	}
	return o.base.Has(key)
}

func (o *overlay) Set(key, value []byte) error {
	o.pending[string(key)] = change{key: bytes.Clone(key), value: bytes.Clone(value)}
	return nil
}

func (o *overlay) Remove(key []byte) error {
	o.pending[string(key)] = change{key: bytes.Clone(key), deleted: true}
	return nil
}

func (o *overlay) Iterate(prefix []byte, fn func(key, value []byte) (bool, error)) error {
	merged := make(map[string][]byte)
	err := o.base.Iterate(prefix, func(key, value []byte) (bool, error) {
		merged[string(key)] = bytes.Clone(value)
		return true, nil
	})
	if err != nil {
		return err
	}
	for k, c := range o.pending {
		if !bytes.HasPrefix(c.key, prefix) {
			continue
		}
		if c.deleted {
			delete(merged, k)
			continue
		}
		merged[k] = c.value
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		next, err := fn([]byte(k), bytes.Clone(merged[k]))
		if err != nil {
			return err
		}
		if !next {
			return nil
		}
	}
	return nil
}

// changes returns pending writes in key order.
func (o *overlay) changes() []change {
	out := make([]change, 0, len(o.pending))
	for _, c := range o.pending {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].key, out[j].key) < 0
	})
	return out
}
