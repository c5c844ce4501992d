// Package rlp implements the recursive length prefix encoding described in
// Ethereum's Yellow Paper, Appendix B: a self-describing serialization for
// byte strings and nested lists, with no support for negative or signed
// integers.
package rlp

// TextTag lets a Go type opt into enum-as-string wire encoding instead of
// the codec's normal reflect-driven dispatch. EnumName returns the variant's
// canonical name for encoding; SetEnumName validates and applies a decoded
// name, returning ErrInvalidEnumTag if it does not match a known variant.
type TextTag interface {
	EnumName() string
	SetEnumName(name string) error
}
