package scheduler

// rotation is the round-robin dispatch queue; it holds process ids and is
// validated against live state only when its head is about to be dispatched.
type rotation struct {
	items []int
	head  int
}

func (q *rotation) push(pid int) {
	q.items = append(q.items, pid)
}

func (q *rotation) peek() (int, bool) {
	if q.len() == 0 {
		return 0, false
	}
	return q.items[q.head], true
}

func (q *rotation) pop() (int, bool) {
	pid, ok := q.peek()
	if !ok {
		return 0, false
	}
	q.head++
	if q.head > len(q.items)/2 {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return pid, true
}

func (q *rotation) len() int {
	return len(q.items) - q.head
}
