package game

// Projectile is one shot in flight. Inactive shots are skipped by the
// simulation and the geometry builder but keep their slot until evicted.
type Projectile struct {
	Pos    Vec2
	Dir    Vec2 // unit length
	Active bool
}

// Projectiles is a fixed-capacity FIFO of projectiles held by value.
// Pushing into a full ring overwrites the oldest entry; eviction is just
// the head index moving on.
type Projectiles struct {
	items [ProjectileCapacity]Projectile
	head  int // next write slot
	count int
}

// Push appends p, evicting the oldest projectile when the ring is full.
// It reports whether an eviction happened.
func (r *Projectiles) Push(p Projectile) bool {
	r.items[r.head] = p
	r.head = (r.head + 1) % ProjectileCapacity
	if r.count < ProjectileCapacity {
		r.count++
		return false
	}
	return true
}

// Len returns the number of stored projectiles, active or not.
func (r *Projectiles) Len() int {
	return r.count
}

// At returns the i-th projectile, oldest first. The pointer is into the ring
// itself and is invalidated by the next Push.
func (r *Projectiles) At(i int) *Projectile {
	idx := (r.head - r.count + i + ProjectileCapacity) % ProjectileCapacity
	return &r.items[idx]
}

// ActiveCount returns how many stored projectiles are still in flight.
func (r *Projectiles) ActiveCount() int {
	n := 0
	for i := 0; i < r.count; i++ {
		if r.At(i).Active {
			n++
		}
	}
	return n
}

// Slice returns a copy of the stored projectiles in chronological order.
func (r *Projectiles) Slice() []Projectile {
	out := make([]Projectile, r.count)
	for i := 0; i < r.count; i++ {
		out[i] = *r.At(i)
	}
	return out
}
