package host

import (
	"fmt"
	"strings"
)

// Kind is the kind of a descriptor type.
type Kind uint8

const (
	KindBoolean Kind = iota
	KindByte
	KindChar
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindVoid
	KindObject
	KindArray
)

var primitiveKinds = map[byte]Kind{
	'Z': KindBoolean,
	'B': KindByte,
	'C': KindChar,
	'S': KindShort,
	'I': KindInt,
	'J': KindLong,
	'F': KindFloat,
	'D': KindDouble,
}

// Type is a parsed field type.
type Type struct {
	Kind  Kind
	Class string // KindObject only
	Elem  *Type  // KindArray only
}

// String returns the descriptor of t.
func (t Type) String() string {
	switch t.Kind {
	case KindObject:
		return "L" + t.Class + ";"
	case KindArray:
		return "[" + t.Elem.String()
	case KindVoid:
		return "V"
	}
	for c, k := range primitiveKinds {
		if k == t.Kind {
			return string(c)
		}
	}
	return "?"
}

// Signature is a parsed method descriptor.
type Signature struct {
	Args []Type
	Ret  Type
}

// String returns the descriptor of s.
func (s Signature) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for _, a := range s.Args {
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	b.WriteString(s.Ret.String())
	return b.String()
}

// ParseSignature parses a method descriptor such as "(JI[B)V".
func ParseSignature(desc string) (Signature, error) {
	if len(desc) < 3 || desc[0] != '(' {
		return Signature{}, fmt.Errorf("%w: %q", ErrBadSignature, desc)
	}
	var sig Signature
	i := 1
	for i < len(desc) && desc[i] != ')' {
		t, n, err := parseType(desc[i:], false)
		if err != nil {
			return Signature{}, fmt.Errorf("%w: %q", err, desc)
		}
		sig.Args = append(sig.Args, t)
		i += n
	}
	if i >= len(desc) {
		return Signature{}, fmt.Errorf("%w: unterminated argument list in %q", ErrBadSignature, desc)
	}
	ret, n, err := parseType(desc[i+1:], true)
	if err != nil {
		return Signature{}, fmt.Errorf("%w: %q", err, desc)
	}
	if i+1+n != len(desc) {
		return Signature{}, fmt.Errorf("%w: trailing characters in %q", ErrBadSignature, desc)
	}
	sig.Ret = ret
	return sig, nil
}

// ParseType parses a single field descriptor.
func ParseType(desc string) (Type, error) {
	t, n, err := parseType(desc, false)
	if err != nil {
		return Type{}, err
	}
	if n != len(desc) {
		return Type{}, fmt.Errorf("%w: trailing characters in %q", ErrBadSignature, desc)
	}
	return t, nil
}

func parseType(s string, allowVoid bool) (Type, int, error) {
	if s == "" {
		return Type{}, 0, ErrBadSignature
	}
	if k, ok := primitiveKinds[s[0]]; ok {
		return Type{Kind: k}, 1, nil
	}
	switch s[0] {
	case 'V':
		if !allowVoid {
			return Type{}, 0, fmt.Errorf("%w: void argument", ErrBadSignature)
		}
		return Type{Kind: KindVoid}, 1, nil
	case 'L':
		end := strings.IndexByte(s, ';')
		if end < 2 {
			return Type{}, 0, fmt.Errorf("%w: bad class reference", ErrBadSignature)
		}
		return Type{Kind: KindObject, Class: s[1:end]}, end + 1, nil
	case '[':
		elem, n, err := parseType(s[1:], false)
		if err != nil {
			return Type{}, 0, err
		}
		return Type{Kind: KindArray, Elem: &elem}, n + 1, nil
	}
	return Type{}, 0, fmt.Errorf("%w: unexpected %q", ErrBadSignature, s[0])
}
