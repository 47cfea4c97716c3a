package array

// DoubleFunc returns a new slice with every element of src multiplied by 2.
// Implementations must not mutate src.
type DoubleFunc func(src []int32) []int32

// Variant binds a report name to a doubling strategy.
type Variant struct {
	Name   string     // stable report key, e.g. "ParallelFor"
	Double DoubleFunc // strategy under measurement
}

// Variant names, in report order.
const (
	NameForLoop        = "ForLoop"
	NameForEachLoop    = "ForEachLoop"
	NameSelect         = "Select"
	NameParallelFor    = "ParallelFor"
	NameSliceView      = "SliceView"
	NameParallelSelect = "ParallelSelect"
)

// DefaultLength is the reference input length.
const DefaultLength = 100_000
