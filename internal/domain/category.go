// Package domain defines the core types, ports, and errors of the SQL
// translation layer.
package domain

// Category is the coarse semantic classification of a column. It is derived
// from the engine type string but independent of it: two different engine
// types may share a category, and the category governs which casts are legal.
type Category string

const (
	CategoryDate      Category = "date"
	CategoryInt       Category = "int"
	CategoryFloat     Category = "float"
	CategoryText      Category = "text"
	CategoryBinary    Category = "binary"
	CategorySpatial   Category = "spatial"
	CategoryUUID      Category = "uuid"
	CategoryVMap      Category = "vmap"
	CategoryUndefined Category = "undefined"
)

func (c Category) String() string { return string(c) }

// TransformEntry is one step in a column's transformation chain. Template is
// a SQL fragment with a "{}" placeholder for the previous step's expression.
// Type and Category describe the value produced by the step.
type TransformEntry struct {
	Template string
	Type     string
	Category Category
}
