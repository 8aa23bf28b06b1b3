package superbubble

// Result is one reported superbubble, named by the global vertex ids of its
// entrance and exit.
type Result struct {
	Entrance int
	Exit     int
}
