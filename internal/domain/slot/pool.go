package slot

import (
	"container/heap"
	"sort"
	"sync"
)

// Pool hands out the nearest free slot first. Peek is O(1); Allocate and
// Release are O(log n) thanks to the position index kept alongside the heap.
type Pool struct {
	mu        sync.Mutex
	slots     map[string]*Slot
	available idHeap
}

func NewPool(ids []string, occupied map[string]string) (*Pool, error) {
	p := &Pool{
		slots:     make(map[string]*Slot, len(ids)),
		available: idHeap{pos: make(map[string]int, len(ids))},
	}
	for _, id := range ids {
		if _, dup := p.slots[id]; dup {
			return nil, ErrDuplicateSlot
		}
		s := &Slot{ID: id, Available: true}
		if vehicle := occupied[id]; vehicle != "" {
			s.Available = false
			s.Occupant = vehicle
		}
		p.slots[id] = s
		if s.Available {
			p.available.ids = append(p.available.ids, id)
		}
	}
	for i, id := range p.available.ids {
		p.available.pos[id] = i
	}
	heap.Init(&p.available)
	return p, nil
}

func (p *Pool) Peek() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.available.Len() == 0 {
		return "", false
	}
	return p.available.ids[0], true
}

func (p *Pool) Allocate(id, occupant string) error {
	if occupant == "" {
		return ErrEmptyOccupant
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.slots[id]
	if !ok {
		return ErrUnknownSlot
	}
	i, free := p.available.pos[id]
	if !free {
		return ErrNotAvailable
	}
	heap.Remove(&p.available, i)
	s.Available = false
	s.Occupant = occupant
	return nil
}

func (p *Pool) Release(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.slots[id]
	if !ok {
		return ErrUnknownSlot
	}
	if _, free := p.available.pos[id]; free {
		return nil
	}
	heap.Push(&p.available, id)
	s.Available = true
	s.Occupant = ""
	return nil
}

// Snapshot drains a copy of the heap, leaving the live one untouched.
func (p *Pool) Snapshot() []string {
	p.mu.Lock()
	cp := idHeap{
		ids: append([]string(nil), p.available.ids...),
		pos: make(map[string]int, len(p.available.ids)),
	}
	p.mu.Unlock()

	for i, id := range cp.ids {
		cp.pos[id] = i
	}
	out := make([]string, 0, cp.Len())
	for cp.Len() > 0 {
		out = append(out, heap.Pop(&cp).(string))
	}
	return out
}

func (p *Pool) Get(id string) (Slot, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.slots[id]
	if !ok {
		return Slot{}, false
	}
	return *s, true
}

// Slots lists every slot, free or not, in id order.
func (p *Pool) Slots() []Slot {
	p.mu.Lock()
	out := make([]Slot, 0, len(p.slots))
	for _, s := range p.slots {
		out = append(out, *s)
	}
	p.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return Less(out[i].ID, out[j].ID) })
	return out
}

func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.slots)
}

type idHeap struct {
	ids []string
	pos map[string]int
}

func (h idHeap) Len() int           { return len(h.ids) }
func (h idHeap) Less(i, j int) bool { return Less(h.ids[i], h.ids[j]) }

func (h idHeap) Swap(i, j int) {
	h.ids[i], h.ids[j] = h.ids[j], h.ids[i]
	h.pos[h.ids[i]] = i
	h.pos[h.ids[j]] = j
}

func (h *idHeap) Push(x any) {
	id := x.(string)
	h.pos[id] = len(h.ids)
	h.ids = append(h.ids, id)
}

func (h *idHeap) Pop() any {
	n := len(h.ids)
	id := h.ids[n-1]
	h.ids = h.ids[:n-1]
	delete(h.pos, id)
	return id
}
