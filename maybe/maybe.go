/*
Package maybe implements optional values, modelled after Elm's Maybe type.

A Maybe is either Just a value or Nothing. Clients destructure it by matching:

	var v string
	switch m := tree.Min().Match(); m {
	case m.Just(&v):
		fmt.Println("smallest word is", v)
	case m.Nothing():
		fmt.Println("tree is empty")
	}
*/
package maybe

// Maybe represents an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	IsNothing() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns the empty Maybe for T.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to destructure a Maybe.
// A case not matching returns nil.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
