package ttable

// Table is a fixed-capacity chained hash map from Key to *Record,
// grounded on core's sentinel-error-plus-struct convention and
// builder's functional-options constructor shape (see DESIGN.md).
// Capacity is fixed at construction; the table never rehashes, so
// lookup cost degrades gracefully toward bucket-chain length rather
// than triggering a stop-the-world resize under search load.
type Table struct {
	buckets [][]*Record
	count   int
}

// Options configures a Table at construction time.
type Options struct {
	capacity int
}

// Option mutates Options.
type Option func(*Options)

// WithCapacity sets the number of buckets. Larger capacities trade
// memory for shorter chains.
func WithCapacity(capacity int) Option {
	return func(o *Options) { o.capacity = capacity }
}

func defaultOptions() Options {
	return Options{capacity: 1 << 20}
}

// New builds an empty Table.
func New(opts ...Option) (*Table, error) {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if o.capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Table{buckets: make([][]*Record, o.capacity)}, nil
}

func (t *Table) slot(k Key) int {
	return int(k.hash() % uint64(len(t.buckets)))
}

// Lookup returns the stored record for k, if any.
func (t *Table) Lookup(k Key) (*Record, bool) {
	bucket := t.buckets[t.slot(k)]
	for _, r := range bucket {
		if r.Key == k {
			return r, true
		}
	}

	return nil, false
}

// InsertOrReplace stores r under r.Key, replacing any existing record
// with an equal key. It reports whether an existing record was
// replaced.
func (t *Table) InsertOrReplace(r *Record) (*Record, bool) {
	idx := t.slot(r.Key)
	bucket := t.buckets[idx]
	for i, existing := range bucket {
		if existing.Key == r.Key {
			bucket[i] = r

			return existing, true
		}
	}
	t.buckets[idx] = append(bucket, r)
	t.count++

	return nil, false
}

// Size returns the number of stored records.
func (t *Table) Size() int {
	return t.count
}

// Clear empties the table while keeping its bucket capacity.
func (t *Table) Clear() {
	for i := range t.buckets {
		t.buckets[i] = nil
	}
	t.count = 0
}
