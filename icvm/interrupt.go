package icvm

type Interrupt struct {
	Input  bool
	Output bool
}

var (
	// InterruptInput is yielded when an input instruction finds the input queue empty.
	InterruptInput = &Interrupt{
		Input: true,
	}
	// InterruptOutput is yielded after a value is pushed to the output queue.
	InterruptOutput = &Interrupt{
		Output: true,
	}
)
