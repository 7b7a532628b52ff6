package typesystem

// TypeUnknown marks an expression whose type could not be determined
// (unresolved identifiers, method calls, member access).
const TypeUnknown = "unknown"

// compatibleTypes is the directed assignment-compatibility matrix: a value
// of type `from` may be assigned to a variable of any type in
// compatibleTypes[from]. It is not symmetric: int fits in a double,
// a double does not fit in an int.
var compatibleTypes = map[string]map[string]bool{
	"byte":    set("byte", "short", "int", "long", "float", "double"),
	"short":   set("short", "int", "long", "float", "double"),
	"int":     set("int", "long", "float", "double"),
	"long":    set("long", "float", "double"),
	"float":   set("float", "double"),
	"double":  set("double"),
	"char":    set("char", "int", "long", "float", "double"),
	"boolean": set("boolean"),
	"String":  set("String"),
}

// wideningOrder is the fixed total order used to pick the result type of
// arithmetic operators. The position of char between short and int is an
// intentional simplification of Java's promotion rules and is relied on
// for output parity; do not reorder.
var wideningOrder = []string{"byte", "short", "char", "int", "long", "float", "double"}

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// IsAssignmentCompatible reports whether a value of fromType may be
// assigned to a variable of toType, either exactly or by implicit
// widening. Unknown or empty types are never compatible with anything.
func IsAssignmentCompatible(fromType, toType string) bool {
	if fromType == "" || toType == "" {
		return false
	}
	if fromType == toType {
		return true
	}
	return compatibleTypes[fromType][toType]
}

// WiderType returns the wider of two types per the fixed widening order,
// or TypeUnknown if either type is absent from the order (e.g. String,
// boolean).
func WiderType(type1, type2 string) string {
	i1, i2 := -1, -1
	for i, name := range wideningOrder {
		if name == type1 {
			i1 = i
		}
		if name == type2 {
			i2 = i
		}
	}
	if i1 == -1 || i2 == -1 {
		return TypeUnknown
	}
	if i1 > i2 {
		return wideningOrder[i1]
	}
	return wideningOrder[i2]
}

// IsNumeric reports whether typ participates in arithmetic and relational
// operations. char counts as numeric.
func IsNumeric(typ string) bool {
	switch typ {
	case "byte", "short", "int", "long", "float", "double", "char":
		return true
	}
	return false
}
