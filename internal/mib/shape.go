package mib

// Shape is the byte layout of a node's value.
type Shape uint8

const (
	ShapeNone          Shape = iota // interior node, no value
	ShapeInt32                      // C int
	ShapeInt64                      // int64_t / quad
	ShapeLong                       // C long, platform width
	ShapeDeviceID                   // dev_t
	ShapeOpaqueRecord               // kernel struct, returned as bytes
	ShapeCString                    // NUL-terminated string
	ShapeByteArray                  // u_int8_t[]
	ShapeU32Array                   // u_int32_t[]
	ShapeU64Array                   // u_int64_t[]
	ShapeU16Array                   // u_int16_t[]
	ShapeSubtreeMarker              // node whose children are not modelled
)

var shapeNames = [...]string{
	ShapeNone:          "none",
	ShapeInt32:         "int32",
	ShapeInt64:         "int64",
	ShapeLong:          "long",
	ShapeDeviceID:      "dev_t",
	ShapeOpaqueRecord:  "struct",
	ShapeCString:       "string",
	ShapeByteArray:     "u8[]",
	ShapeU32Array:      "u32[]",
	ShapeU64Array:      "u64[]",
	ShapeU16Array:      "u16[]",
	ShapeSubtreeMarker: "node",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// Scalar reports whether s has a fixed width known before the call.
func (s Shape) Scalar() bool {
	switch s {
	case ShapeInt32, ShapeInt64, ShapeLong, ShapeDeviceID:
		return true
	default:
		return false
	}
}
