package entity

// Handle refers to an entity in an Arena. A handle stays valid until its
// entity is removed; after that it never resolves again, even when the
// slot is reused.
type Handle struct {
	index int32
	gen   uint32
}

// NilHandle never resolves.
var NilHandle = Handle{index: -1}

// Index returns the slot index. Only meaningful while the handle is alive.
func (h Handle) Index() int {
	return int(h.index)
}

type slot struct {
	gen   uint32
	alive bool
	ent   Entity
}

// Arena owns a set of entities addressed by Handle.
// Pointers returned by Get are valid until the next Add.
type Arena struct {
	slots []slot
	free  []int32
	count int
}

// NewArena creates an arena with room for capacity entities.
func NewArena(capacity int) *Arena {
	return &Arena{
		slots: make([]slot, 0, capacity),
	}
}

// Add stores e and returns its handle. Freed slots are reused first.
func (a *Arena) Add(e Entity) Handle {
	a.count++
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.alive = true
		s.ent = e
		return Handle{index: idx, gen: s.gen}
	}
	a.slots = append(a.slots, slot{alive: true, ent: e})
	return Handle{index: int32(len(a.slots) - 1)}
}

// Remove deletes the entity behind h. Returns false if h was not alive.
func (a *Arena) Remove(h Handle) bool {
	if !a.Alive(h) {
		return false
	}
	s := &a.slots[h.index]
	s.alive = false
	s.gen++
	s.ent = Entity{}
	a.free = append(a.free, h.index)
	a.count--
	return true
}

// Alive reports whether h still refers to an entity.
func (a *Arena) Alive(h Handle) bool {
	if h.index < 0 || int(h.index) >= len(a.slots) {
		return false
	}
	s := a.slots[h.index]
	return s.alive && s.gen == h.gen
}

// Get returns the entity behind h.
func (a *Arena) Get(h Handle) (*Entity, bool) {
	if !a.Alive(h) {
		return nil, false
	}
	return &a.slots[h.index].ent, true
}

// Len returns the number of live entities.
func (a *Arena) Len() int {
	return a.count
}

// Each calls fn for every live entity in slot order.
// fn may Remove entities but must not Add.
func (a *Arena) Each(fn func(h Handle, e *Entity)) {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.alive {
			continue
		}
		fn(Handle{index: int32(i), gen: s.gen}, &s.ent)
	}
}

// Reset removes every entity. Outstanding handles are invalidated.
func (a *Arena) Reset() {
	a.free = a.free[:0]
	for i := len(a.slots) - 1; i >= 0; i-- {
		s := &a.slots[i]
		if s.alive {
			s.gen++
		}
		s.alive = false
		s.ent = Entity{}
		a.free = append(a.free, int32(i))
	}
	a.count = 0
}
