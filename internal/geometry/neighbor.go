package geometry

// Candidate pairs a rectangle with an opaque id used only for the
// final id-based tie-break (spec §4.3 step 3c) and for identifying
// the winner back to the caller.
type Candidate struct {
	ID   int64
	Rect Rect
}

// DirectionalNeighbor implements spec.md §4.3: given a reference
// rectangle and a set of candidates, find the one "beyond" the
// reference along dir's axis with the lowest Manhattan-like score,
// breaking ties by smaller primary delta, then smaller secondary
// delta, then smaller id. Returns false if no candidate is eligible.
func DirectionalNeighbor(ref Rect, candidates []Candidate, dir Direction) (Candidate, bool) {
	rcx, rcy := ref.Center()
	return nearest(rcx, rcy, candidates, dir, func(c Candidate) (int, int) {
		return c.Rect.Center()
	})
}

// OutputNeighbor is the "closest point inside candidate" variant used
// for outputs (spec.md §4.3): candidates need not be axis-aligned with
// the reference, so each candidate's point is its closest point to the
// reference center rather than its own center.
func OutputNeighbor(refCenter Rect, candidates []Candidate, dir Direction) (Candidate, bool) {
	rcx, rcy := refCenter.Center()
	return nearest(rcx, rcy, candidates, dir, func(c Candidate) (int, int) {
		return c.Rect.ClosestPoint(rcx, rcy)
	})
}

func nearest(
	rcx, rcy int,
	candidates []Candidate,
	dir Direction,
	point func(Candidate) (int, int),
) (Candidate, bool) {
	const alpha = 1

	type scored struct {
		c                          Candidate
		score, primary, secondary int
	}

	var best *scored
	for _, c := range candidates {
		cx, cy := point(c)
		dx := cx - rcx
		dy := cy - rcy

		var eligible bool
		var primary, secondary int
		switch dir {
		case Right:
			eligible = dx > 0
			primary, secondary = dx, dy
		case Left:
			eligible = dx < 0
			primary, secondary = -dx, dy
		case Down:
			eligible = dy > 0
			primary, secondary = dy, dx
		case Up:
			eligible = dy < 0
			primary, secondary = -dy, dx
		}
		if !eligible {
			continue
		}

		primary, secondary = abs(primary), abs(secondary)
		s := scored{c: c, score: primary + alpha*secondary, primary: primary, secondary: secondary}

		if best == nil || better(s.score, s.primary, s.secondary, s.c.ID, best.score, best.primary, best.secondary, best.c.ID) {
			cp := s
			best = &cp
		}
	}

	if best == nil {
		return Candidate{}, false
	}
	return best.c, true
}

// better reports whether (score, primary, secondary, id) sorts before
// (oScore, oPrimary, oSecondary, oID) under spec.md §4.3's tie-break
// order: score, then primary delta, then secondary delta, then id.
func better(score, primary, secondary int, id int64, oScore, oPrimary, oSecondary int, oID int64) bool {
	if score != oScore {
		return score < oScore
	}
	if primary != oPrimary {
		return primary < oPrimary
	}
	if secondary != oSecondary {
		return secondary < oSecondary
	}
	return id < oID
}
