package icvm

import "slices"

// Memory is the flat integer array a program runs in.
type Memory []int

func NewMemory(program []int) Memory {
	return Memory(slices.Clone(program))
}

func (m Memory) Load(addr int) (int, error) {
	if addr < 0 || addr >= len(m) {
		return 0, &OutOfBoundsError{
			Address: addr,
			Size:    len(m),
		}
	}
	return m[addr], nil
}

func (m Memory) Store(addr int, value int) error {
	if addr < 0 || addr >= len(m) {
		return &OutOfBoundsError{
			Address: addr,
			Size:    len(m),
		}
	}
	m[addr] = value
	return nil
}
