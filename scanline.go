package polyclip

// scanlineStore holds the distinct Y stops still to be processed, popped in
// strictly descending order. Small runs keep a sorted slice; once the store
// grows past smallScanlineLimit it upgrades to a max-heap with a hash set
// rejecting duplicate inserts. Pop order is identical in both modes.
type scanlineStore struct {
	sorted []int64 // ascending; pop takes the last element
	heap   []int64 // max-heap once upgraded
	seen   map[int64]struct{}
}

const smallScanlineLimit = 32

func (s *scanlineStore) reset() {
	s.sorted = s.sorted[:0]
	s.heap = nil
	s.seen = nil
}

func (s *scanlineStore) empty() bool {
	return len(s.sorted) == 0 && len(s.heap) == 0
}

// push inserts y unless it is already queued.
func (s *scanlineStore) push(y int64) {
	if s.heap != nil {
		if _, dup := s.seen[y]; dup {
			return
		}
		s.seen[y] = struct{}{}
		s.heap = append(s.heap, y)
		s.siftUp(len(s.heap) - 1)
		return
	}

	// binary search the sorted slice
	lo, hi := 0, len(s.sorted)
	for lo < hi {
		mid := (lo + hi) / 2
		if s.sorted[mid] < y {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(s.sorted) && s.sorted[lo] == y {
		return
	}
	if len(s.sorted) < smallScanlineLimit {
		s.sorted = append(s.sorted, 0)
		copy(s.sorted[lo+1:], s.sorted[lo:])
		s.sorted[lo] = y
		return
	}

	// upgrade to heap mode
	s.seen = make(map[int64]struct{}, 2*len(s.sorted))
	s.heap = make([]int64, 0, 2*len(s.sorted))
	for _, v := range s.sorted {
		s.seen[v] = struct{}{}
		s.heap = append(s.heap, v)
	}
	s.sorted = s.sorted[:0]
	for i := len(s.heap)/2 - 1; i >= 0; i-- {
		s.siftDown(i)
	}
	s.seen[y] = struct{}{}
	s.heap = append(s.heap, y)
	s.siftUp(len(s.heap) - 1)
}

// pop removes and returns the largest queued y.
func (s *scanlineStore) pop() (int64, bool) {
	if s.heap != nil {
		if len(s.heap) == 0 {
			return 0, false
		}
		y := s.heap[0]
		last := len(s.heap) - 1
		s.heap[0] = s.heap[last]
		s.heap = s.heap[:last]
		if last > 0 {
			s.siftDown(0)
		}
		delete(s.seen, y)
		return y, true
	}
	if len(s.sorted) == 0 {
		return 0, false
	}
	y := s.sorted[len(s.sorted)-1]
	s.sorted = s.sorted[:len(s.sorted)-1]
	return y, true
}

func (s *scanlineStore) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if s.heap[parent] >= s.heap[i] {
			break
		}
		s.heap[parent], s.heap[i] = s.heap[i], s.heap[parent]
		i = parent
	}
}

func (s *scanlineStore) siftDown(i int) {
	n := len(s.heap)
	for {
		largest := i
		if l := 2*i + 1; l < n && s.heap[l] > s.heap[largest] {
			largest = l
		}
		if r := 2*i + 2; r < n && s.heap[r] > s.heap[largest] {
			largest = r
		}
		if largest == i {
			return
		}
		s.heap[i], s.heap[largest] = s.heap[largest], s.heap[i]
		i = largest
	}
}
