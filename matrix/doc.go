// Package matrix holds the cost matrices consumed by the littletsp solvers.
//
// A cost matrix is an N×N table of non-negative travel costs where
// m[i][j] is the price of going from city i to city j:
//
//   - the diagonal is always +Inf (no self-loops);
//   - an off-diagonal +Inf means "no edge";
//   - N ≥ 1.
//
// Besides the Dense container itself the package offers the collaborators a
// solver needs around it:
//
//	Random / Uniform        seeded and constant generators
//	Export / Import         plain-text, CSV and binary encodings
//	ExportFile / ImportFile the same, with the format taken from the extension
//
// Errors are package-level sentinels (see errors.go); match them with
// errors.Is. Nothing in this package logs or panics on user input.
package matrix
