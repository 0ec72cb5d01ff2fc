package bench

// Internal hooks for the external test package.
var (
	Aggregate = aggregate
	Deviation = deviation
)
