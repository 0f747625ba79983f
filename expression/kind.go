package expression

import "fmt"

// Kind is the discriminant of an Expression.
type Kind int

const (
	KindAggregate Kind = iota + 1
	KindApply
	KindConstant
	KindDiscretize
	KindFieldRef
	KindLag
	KindMapValues
	KindNormContinuous
	KindNormDiscrete
	KindTextIndex
)

var kindNames = map[Kind]string{
	KindAggregate:      "Aggregate",
	KindApply:          "Apply",
	KindConstant:       "Constant",
	KindDiscretize:     "Discretize",
	KindFieldRef:       "FieldRef",
	KindLag:            "Lag",
	KindMapValues:      "MapValues",
	KindNormContinuous: "NormContinuous",
	KindNormDiscrete:   "NormDiscrete",
	KindTextIndex:      "TextIndex",
}

// Kinds lists every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindAggregate,
		KindApply,
		KindConstant,
		KindDiscretize,
		KindFieldRef,
		KindLag,
		KindMapValues,
		KindNormContinuous,
		KindNormDiscrete,
		KindTextIndex,
	}
}

// String returns the PMML element name of the kind, e.g. "FieldRef".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind maps a PMML element name onto its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}
