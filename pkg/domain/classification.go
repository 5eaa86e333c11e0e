package domain

// ChomskyType is a level of the Chomsky hierarchy.
// Higher values are more restrictive.
type ChomskyType int

const (
	Type0 ChomskyType = iota // unrestricted
	Type1                    // context-sensitive
	Type2                    // context-free
	Type3                    // regular
)

func (t ChomskyType) String() string {
	switch t {
	case Type3:
		return "Type 3 (Regular Grammar)"
	case Type2:
		return "Type 2 (Context-Free Grammar)"
	case Type1:
		return "Type 1 (Context-Sensitive Grammar)"
	default:
		return "Type 0 (Unrestricted Grammar)"
	}
}

// Short returns the compact form, e.g. "type3".
func (t ChomskyType) Short() string {
	switch t {
	case Type3:
		return "type3"
	case Type2:
		return "type2"
	case Type1:
		return "type1"
	default:
		return "type0"
	}
}

// MarshalText encodes the type in its compact form.
func (t ChomskyType) MarshalText() ([]byte, error) {
	return []byte(t.Short()), nil
}
