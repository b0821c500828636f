package icvm

// Queue is a FIFO endpoint connecting one producer to one consumer.
// It is not safe for concurrent use.
type Queue struct {
	values []int
	pushed int
	last   int
}

func NewQueue(values ...int) *Queue {
	q := new(Queue)
	q.Push(values...)
	return q
}

func (q *Queue) Push(values ...int) {
	for _, v := range values {
		q.values = append(q.values, v)
		q.pushed++
		q.last = v
	}
}

func (q *Queue) Pop() (int, bool) {
	if len(q.values) == 0 {
		return 0, false
	}
	v := q.values[0]
	q.values = q.values[1:]
	if len(q.values) == 0 {
		q.values = nil
	}
	return v, true
}

func (q *Queue) Len() int {
	return len(q.values)
}

// Pushed returns the number of values ever pushed.
func (q *Queue) Pushed() int {
	return q.pushed
}

// Last returns the most recently pushed value, whether or not it was consumed.
func (q *Queue) Last() (int, bool) {
	return q.last, q.pushed > 0
}

// Drain pops all pending values.
func (q *Queue) Drain() []int {
	ret := q.values
	q.values = nil
	return ret
}

func (q *Queue) clone() *Queue {
	ret := *q
	ret.values = append([]int(nil), q.values...)
	return &ret
}
