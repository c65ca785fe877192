package store

import (
	"sort"
	"sync"
)

// memoryTier keeps records in insertion order plus an index sorted by
// booking id, so lookups binary-search without re-sorting.
type memoryTier struct {
	mu      sync.RWMutex
	records []Record
	byID    []int
}

func newMemoryTier() *memoryTier {
	return &memoryTier{}
}

func (m *memoryTier) append(rec Record) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = append(m.records, rec)
	pos := m.upperBound(rec.BookingID)
	m.byID = append(m.byID, 0)
	copy(m.byID[pos+1:], m.byID[pos:])
	m.byID[pos] = len(m.records) - 1
}

// find returns the most recently inserted record with the given id.
func (m *memoryTier) find(id string) (Record, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.locate(id)
	if !ok {
		return Record{}, false
	}
	return m.records[i], true
}

func (m *memoryTier) setStatus(rec Record) {
	m.mu.Lock()
	if i, ok := m.locate(rec.BookingID); ok {
		m.records[i].Status = rec.Status
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()
	m.append(rec)
}

func (m *memoryTier) all() []Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Record(nil), m.records...)
}

func (m *memoryTier) locate(id string) (int, bool) {
	u := m.upperBound(id)
	if u == 0 {
		return 0, false
	}
	i := m.byID[u-1]
	if m.records[i].BookingID != id {
		return 0, false
	}
	return i, true
}

// upperBound is the first index position whose id sorts after id. Equal ids
// stay in insertion order.
func (m *memoryTier) upperBound(id string) int {
	return sort.Search(len(m.byID), func(i int) bool {
		return m.records[m.byID[i]].BookingID > id
	})
}
