package controller

// State is one of Idle, Loading, Success or Failure. The unexported method
// keeps the set closed.
type State interface {
	isState()
}

type Idle struct{}

type Loading[K comparable] struct {
	Key K
}

type Success[K comparable, T any] struct {
	Key  K
	Data T
}

type Failure[K comparable] struct {
	Key     K
	Message string
}

func (Idle) isState() {}
func (Loading[K]) isState() {}
func (Success[K, T]) isState() {}
func (Failure[K]) isState() {}
