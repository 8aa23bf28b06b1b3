package dag

// None is the sentinel handle meaning "no candidate" — an absent
// prevEntrance, an empty list, or an invalid lookup all resolve to it.
const None = -1

// candidate mirrors the reference's Candidate node, minus the pointers:
// next/prev/prevEntrance are handles into the owning CandidateList's arena.
type candidate struct {
	vertexID     int
	isEntrance   bool
	prevEntrance int
	next         int
	prev         int
}

// CandidateList is a doubly-linked list of candidates backed by an
// append-only arena. Handles returned by Insert stay valid for the life of
// the list: PopTail only moves the head/tail cursors, it never shrinks the
// arena, so a handle captured earlier (e.g. a Candidate's prevEntrance)
// never dangles.
type CandidateList struct {
	arena []candidate
	front int
	tail  int
}

// NewCandidateList returns an empty list.
func NewCandidateList() *CandidateList {
	return &CandidateList{front: None, tail: None}
}

// Insert appends a candidate at the tail and returns its handle.
func (l *CandidateList) Insert(vertexID int, isEntrance bool, prevEntrance int) int {
	h := len(l.arena)
	l.arena = append(l.arena, candidate{
		vertexID:     vertexID,
		isEntrance:   isEntrance,
		prevEntrance: prevEntrance,
		next:         None,
		prev:         l.tail,
	})

	if l.tail != None {
		l.arena[l.tail].next = h
	} else {
		l.front = h
	}
	l.tail = h

	return h
}

// Front returns the handle of the candidate at the head of the list, or
// None if the list is empty.
func (l *CandidateList) Front() int { return l.front }

// Tail returns the handle of the candidate at the tail of the list, or
// None if the list is empty.
func (l *CandidateList) Tail() int { return l.tail }

// Empty reports whether the list currently has no live candidates.
func (l *CandidateList) Empty() bool { return l.front == None && l.tail == None }

// PopTail removes the tail candidate from the list (logically — the arena
// entry is retained so existing handles into it stay valid).
func (l *CandidateList) PopTail() {
	if l.tail == None {
		return
	}

	if l.front == l.tail {
		l.front = None
		l.tail = None

		return
	}

	newTail := l.arena[l.tail].prev
	l.arena[newTail].next = None
	l.tail = newTail
}

// VertexID returns the vertex a candidate handle refers to.
func (l *CandidateList) VertexID(h int) int { return l.arena[h].vertexID }

// IsEntrance reports whether a candidate handle is an entrance candidate.
func (l *CandidateList) IsEntrance(h int) bool { return l.arena[h].isEntrance }

// PrevEntrance returns the handle of the previous entrance candidate
// recorded against an exit candidate at insertion time.
func (l *CandidateList) PrevEntrance(h int) int { return l.arena[h].prevEntrance }

// Next returns the handle of the candidate immediately after h in the list,
// or None if h is the tail.
func (l *CandidateList) Next(h int) int { return l.arena[h].next }
