package game

// boxesOverlap reports whether two axis-aligned boxes given by centre and
// half-extents overlap. Touching edges do not count.
func boxesOverlap(aPos, aR, bPos, bR Vec2) bool {
	return aPos.Y+aR.Y > bPos.Y-bR.Y &&
		aPos.Y-aR.Y < bPos.Y+bR.Y &&
		aPos.X+aR.X > bPos.X-bR.X &&
		aPos.X-aR.X < bPos.X+bR.X
}

// leavesArena reports whether a box of half-extent r centred at p sticks out
// of an arena with half-extents arena.
func leavesArena(p, r, arena Vec2) bool {
	return p.Y > arena.Y-r.Y ||
		p.Y < -arena.Y+r.Y ||
		p.X > arena.X-r.X ||
		p.X < -arena.X+r.X
}
