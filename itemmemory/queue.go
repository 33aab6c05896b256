package itemmemory

// topK is a bounded min-heap of matches: the root is the weakest match kept
// so far, so a better candidate replaces it in O(log k). Value-based storage,
// no pointer indirection.
type topK struct {
	capacity int
	items    []Match
}

func newTopK(capacity int) *topK {
	return &topK{
		capacity: capacity,
		items:    make([]Match, 0, capacity),
	}
}

// weaker reports whether a ranks below b. Ties on similarity break on name
// so that results are deterministic regardless of scan order.
func weaker(a, b Match) bool {
	if a.Similarity != b.Similarity {
		return a.Similarity < b.Similarity
	}
	return a.Name > b.Name
}

// Push inserts a match while maintaining the heap invariant.
// If the heap is full and the candidate is weaker than the root, it is
// skipped; otherwise it replaces the root.
func (q *topK) Push(m Match) {
	if len(q.items) < q.capacity {
		q.items = append(q.items, m)
		q.siftUp(len(q.items) - 1)
		return
	}

	if weaker(q.items[0], m) {
		q.items[0] = m
		q.siftDown(0)
	}
}

// Sorted pops the heap into a slice ordered strongest-first.
// The heap is consumed.
func (q *topK) Sorted() []Match {
	out := make([]Match, len(q.items))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = q.items[0]
		last := len(q.items) - 1
		q.items[0] = q.items[last]
		q.items = q.items[:last]
		q.siftDown(0)
	}

	return out
}

func (q *topK) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !weaker(q.items[i], q.items[parent]) {
			break
		}
		q.items[i], q.items[parent] = q.items[parent], q.items[i]
		i = parent
	}
}

func (q *topK) siftDown(i int) {
	n := len(q.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		weakest := left
		if right := left + 1; right < n && weaker(q.items[right], q.items[left]) {
			weakest = right
		}
		if !weaker(q.items[weakest], q.items[i]) {
			return
		}
		q.items[i], q.items[weakest] = q.items[weakest], q.items[i]
		i = weakest
	}
}
