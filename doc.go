// Package littletsp solves the Travelling Salesman Problem over cost matrices.
//
// The module is organised as small packages:
//
//	matrix  dense cost matrices, validation, seeded generation, txt/csv/bin I/O
//	tsp     Little's branch-and-bound, nearest neighbor, and the Solve facade
//	render  terminal tables and colored solution reports
//	bench   exact-versus-greedy benchmark with statistics, metrics and plots
//	cmd     the littletsp command line (solve, generate, bench)
//
// Quick start:
//
//	m, _ := matrix.Random(8, 52, false)
//	res, err := tsp.Solve(m, tsp.MethodExact)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Cost, res.Tour)
//
// Or from a shell:
//
//	go install github.com/katalvlaran/littletsp/cmd/littletsp@latest
//	littletsp solve --size 8 --seed 52 --method both --print-matrix
package littletsp
