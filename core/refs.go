package core

// Ref receives the value a node is bound to.
type Ref[T any] interface {
	SetRef(value T)
}

// RefFunc is a callable ref.
type RefFunc[T any] func(value T)

func (f RefFunc[T]) SetRef(value T) {
	if f != nil {
		f(value)
	}
}

// RefSlot is an object ref exposing a mutable Current slot.
type RefSlot[T any] struct {
	Current T
}

func (r *RefSlot[T]) SetRef(value T) {
	if r != nil {
		r.Current = value
	}
}

// SetRef forwards value to ref. A nil ref is ignored.
func SetRef[T any](ref Ref[T], value T) {
	if isNilRef(ref) {
		return
	}
	ref.SetRef(value)
}

// CallAllRefs returns a setter forwarding its value to every ref, in order.
func CallAllRefs[T any](refs ...Ref[T]) func(T) {
	return func(value T) {
		for _, ref := range refs {
			SetRef(ref, value)
		}
	}
}

func isNilRef[T any](ref Ref[T]) bool {
	switch r := ref.(type) {
	case nil:
		return true
	case RefFunc[T]:
		return r == nil
	case *RefSlot[T]:
		return r == nil
	}
	return false
}
