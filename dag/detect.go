package dag

// Detect runs the linear-time superbubble detector of Brankovic et al. over
// d, which must be single-source, single-sink. PrepareForSuperbubbles is
// called as part of Detect; d should not be prepared twice.
//
// The result is indexed by vertex id: result[s] == t means <s, t> is a
// superbubble; result[s] == -1 means no superbubble starts at s. Only the
// innermost superbubble starting at a given vertex is ever reported, which
// matches the reference's one-slot-per-vertex array. A trivial superbubble
// (a single edge, with no vertex between entrance and exit in topological
// order) is not recorded.
func Detect(d *DAG) []int {
	d.PrepareForSuperbubbles()

	n := d.NumVertices()
	result := make([]int, n)
	for i := range result {
		result[i] = -1
	}

	// mark[v] records the tighter entrance vertex validate last proposed
	// while tightening from v, so reportSuperBubble never re-walks the same
	// chain twice.
	// -1 (None), not 0, so vertex id 0 is never mistaken for "unmarked".
	mark := make([]int, n)
	for i := range mark {
		mark[i] = None
	}

	cl := d.candidates
	for !cl.Empty() {
		tail := cl.Tail()
		if cl.IsEntrance(tail) {
			cl.PopTail()
		} else {
			reportSuperBubble(d, mark, cl.Front(), tail, result)
		}
	}

	return result
}

// reportSuperBubble reports the superbubble ending at exit, if any, along
// with every superbubble nested between its entrance and exit.
func reportSuperBubble(d *DAG, mark []int, start, exit int, result []int) {
	cl := d.candidates

	if start == None || exit == None || d.ord[cl.VertexID(start)] >= d.ord[cl.VertexID(exit)] {
		cl.PopTail()

		return
	}

	// s walks backwards from exit's nearest preceding entrance, tightening
	// towards a valid pairing. A nil s (no entrance precedes exit at all)
	// is an immediate invalid-exit, not a candidate to dereference.
	s := cl.PrevEntrance(exit)
	valid := None
	for s != None && d.ord[cl.VertexID(s)] >= d.ord[cl.VertexID(start)] {
		valid = validateSuperBubble(d, s, exit)
		if valid == None {
			break
		}
		if valid == s || cl.VertexID(valid) == mark[cl.VertexID(s)] {
			break
		}

		mark[cl.VertexID(s)] = cl.VertexID(valid)
		s = valid
	}

	exitVertex := cl.VertexID(exit)
	cl.PopTail()

	if valid == None || valid != s {
		return
	}

	// superbubble found: <s, exit>. Its vertices are exactly the orders
	// between the two, so adjacent orders mean a single edge: not recorded.
	if d.ord[exitVertex]-d.ord[cl.VertexID(s)] > 1 {
		result[cl.VertexID(s)] = exitVertex
	}

	next := cl.Tail()
	for next != None && next != s {
		if cl.IsEntrance(next) {
			cl.PopTail()
		} else {
			reportSuperBubble(d, mark, cl.Next(s), next, result)
		}
		next = cl.Tail()
	}
}

// validateSuperBubble checks whether the vertices behind startHandle and
// endHandle form a valid superbubble. It returns startHandle on success, an
// alternative (tighter) entrance candidate to retry with, or None if
// endHandle cannot be a valid exit at all.
func validateSuperBubble(d *DAG, startHandle, endHandle int) int {
	cl := d.candidates

	start := d.ord[cl.VertexID(startHandle)]
	end := d.ord[cl.VertexID(endHandle)]

	outChild := d.RangeMaxOutChild(start, end-1)
	if outChild != end {
		return None
	}

	outParent := d.RangeMinOutParent(start+1, end)
	if outParent == start {
		return startHandle
	}

	return d.PreviousEntrance(d.VertexAtOrder(outParent))
}
