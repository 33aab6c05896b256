package itemmemory

import (
	"errors"
	"runtime"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vsago"
	"github.com/hupe1980/vsago/binary"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")
)

// Match is a single query result.
type Match struct {
	Name       string
	Similarity float64
}

type item struct {
	name    string
	vec     binary.Vector
	deleted bool
}

// Memory is a cleanup memory over sparse binary hypervectors of one fixed
// dimension. Safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	dim     int
	items   []item // id = slice index; tombstoned on delete
	byName  map[string]uint32
	labels  map[string]*roaring.Bitmap // label -> ids carrying it
	live    *roaring.Bitmap            // ids not tombstoned
	logger  *vsago.Logger
	workers int
}

type options struct {
	logger  *vsago.Logger
	workers int
}

// Option configures Memory construction.
type Option func(*options)

// WithLogger configures the logger used for operation logging.
// If nil is passed, logging is disabled.
func WithLogger(l *vsago.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = vsago.NoopLogger()
		}
		o.logger = l
	}
}

// WithWorkers configures the number of goroutines a Query fans out to.
// Values below 1 fall back to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// New creates an empty Memory for vectors of the given dimension.
//
// Errors: vsago.ErrZeroDimension if dimension < 1.
func New(dimension int, opts ...Option) (*Memory, error) {
	if dimension <= 0 {
		return nil, vsago.ErrZeroDimension
	}

	o := options{
		logger: vsago.NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	workers := o.workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Memory{
		dim:     dimension,
		byName:  make(map[string]uint32),
		labels:  make(map[string]*roaring.Bitmap),
		live:    roaring.New(),
		logger:  o.logger.WithDimension(dimension),
		workers: workers,
	}, nil
}

// Dim returns the dimension this memory stores.
func (m *Memory) Dim() int { return m.dim }

// Add stores v under name, tagged with the given labels. An existing item of
// the same name is replaced.
//
// Errors: *vsago.ErrVectorSizeMismatch if v does not match the memory's
// dimension.
func (m *Memory) Add(name string, v binary.Vector, labels ...string) error {
	if v.Dim() != m.dim {
		err := &vsago.ErrVectorSizeMismatch{Expected: m.dim, Actual: v.Dim()}
		m.logger.LogAdd(name, v.Dim(), err)
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.byName[name]; ok {
		m.tombstone(old)
	}

	id := uint32(len(m.items))
	m.items = append(m.items, item{name: name, vec: v})
	m.byName[name] = id
	m.live.Add(id)
	for _, label := range labels {
		bm, ok := m.labels[label]
		if !ok {
			bm = roaring.New()
			m.labels[label] = bm
		}
		bm.Add(id)
	}

	m.logger.LogAdd(name, v.Dim(), nil)
	return nil
}

// Get returns the stored vector for name.
func (m *Memory) Get(name string) (binary.Vector, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byName[name]
	if !ok {
		return binary.Vector{}, false
	}
	return m.items[id].vec, true
}

// Delete removes the item stored under name and reports whether it existed.
func (m *Memory) Delete(name string) bool {
	m.mu.Lock()
	id, ok := m.byName[name]
	if ok {
		m.tombstone(id)
		delete(m.byName, name)
	}
	m.mu.Unlock()

	m.logger.LogDelete(name, ok)
	return ok
}

// Len returns the number of stored items.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int(m.live.GetCardinality())
}

// tombstone marks id as deleted and drops it from all bitmaps.
// Caller holds m.mu.
func (m *Memory) tombstone(id uint32) {
	m.items[id].deleted = true
	m.live.Remove(id)
	for _, bm := range m.labels {
		bm.Remove(id)
	}
}

type queryOptions struct {
	labels []string
}

// QueryOption configures a single Query call.
type QueryOption func(*queryOptions)

// WithLabels restricts the query to items carrying all of the given labels.
func WithLabels(labels ...string) QueryOption {
	return func(o *queryOptions) {
		o.labels = append(o.labels, labels...)
	}
}

// Query returns the k stored items most similar to q (normalized Hamming
// similarity), strongest first. Candidate scanning fans out across the
// configured number of workers; equal similarities rank by name so results
// are deterministic regardless of the fan-out.
//
// Errors: ErrInvalidK if k < 1, and *vsago.ErrVectorSizeMismatch if q does
// not match the memory's dimension.
func (m *Memory) Query(q binary.Vector, k int, opts ...QueryOption) ([]Match, error) {
	if k < 1 {
		m.logger.LogQuery(k, 0, ErrInvalidK)
		return nil, ErrInvalidK
	}
	if q.Dim() != m.dim {
		err := &vsago.ErrVectorSizeMismatch{Expected: m.dim, Actual: q.Dim()}
		m.logger.LogQuery(k, 0, err)
		return nil, err
	}

	var o queryOptions
	for _, opt := range opts {
		opt(&o)
	}

	// The read lock covers the whole scan: tombstoning mutates items in
	// place, so the workers must not race a concurrent Delete.
	m.mu.RLock()
	defer m.mu.RUnlock()

	candidates := m.live.Clone()
	for _, label := range o.labels {
		bm, ok := m.labels[label]
		if !ok {
			m.logger.LogQuery(k, 0, nil)
			return nil, nil
		}
		candidates.And(bm)
	}
	ids := candidates.ToArray()
	items := m.items

	if len(ids) == 0 {
		m.logger.LogQuery(k, 0, nil)
		return nil, nil
	}

	workers := min(m.workers, len(ids))
	chunk := (len(ids) + workers - 1) / workers
	heaps := make([]*topK, 0, workers)

	var g errgroup.Group
	for lo := 0; lo < len(ids); lo += chunk {
		hi := min(lo+chunk, len(ids))
		h := newTopK(k)
		heaps = append(heaps, h)
		g.Go(func() error {
			for _, id := range ids[lo:hi] {
				it := items[id]
				sim, err := binary.Similarity(q, it.vec)
				if err != nil {
					return err
				}
				h.Push(Match{Name: it.name, Similarity: sim})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		m.logger.LogQuery(k, 0, err)
		return nil, err
	}

	merged := newTopK(k)
	for _, h := range heaps {
		for _, match := range h.items {
			merged.Push(match)
		}
	}

	matches := merged.Sorted()
	m.logger.LogQuery(k, len(matches), nil)
	return matches, nil
}
