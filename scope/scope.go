// Package scope carries ambient values through a render tree.
//
// A value established by a node is visible to that node's entire subtree
// and invisible everywhere else. Scopes are immutable: With derives a new
// scope and never modifies the one it was given, so sibling branches of a
// render tree cannot observe each other's overrides.
package scope

// Scope is a chain of ambient value overrides. The zero value (a nil
// *Scope) is the empty scope, where every key reads as its default.
type Scope struct {
	parent *Scope
	key    any
	value  any
}

// Key identifies one ambient value. Each key carries the default returned
// when no ancestor has established a value for it. Keys are compared by
// identity, so two keys created with the same name are still distinct.
type Key[T any] struct {
	name string
	def  T
}

// NewKey creates a key with the given debug name and default value.
func NewKey[T any](name string, def T) *Key[T] {
	return &Key[T]{name: name, def: def}
}

// Default returns the value Get yields when no override is in scope.
func (k *Key[T]) Default() T {
	return k.def
}

func (k *Key[T]) String() string {
	return k.name
}

// Get returns the value established for k by the nearest ancestor, or the
// key's default when none is in scope.
func (k *Key[T]) Get(s *Scope) T {
	for ; s != nil; s = s.parent {
		if s.key == k {
			return s.value.(T)
		}
	}
	return k.def
}

// With returns a scope in which k reads as v. The receiver scope is left
// untouched; overrides established here shadow any ancestor value for the
// same key.
func With[T any](s *Scope, k *Key[T], v T) *Scope {
	return &Scope{parent: s, key: k, value: v}
}
