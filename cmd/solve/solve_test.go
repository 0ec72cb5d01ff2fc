package solve_test

import (
	"bytes"
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/littletsp/cmd/solve"
	"github.com/katalvlaran/littletsp/matrix"
	"github.com/katalvlaran/littletsp/render"
	"github.com/katalvlaran/littletsp/tsp"
)

func TestSolve(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Solve Command Suite")
}

var _ = BeforeSuite(func() {
	color.NoColor = true
})

func writeFixture(name string) string {
	inf := math.Inf(1)
	m, err := matrix.FromRows([][]float64{
		{inf, 10, 15, 20},
		{10, inf, 35, 25},
		{15, 35, inf, 30},
		{20, 25, 30, inf},
	})
	Expect(err).ToNot(HaveOccurred())

	path := filepath.Join(GinkgoT().TempDir(), name)
	Expect(matrix.ExportFile(path, m)).To(Succeed())

	return path
}

var _ = Describe("ParseMethods", func() {
	It("should accept method names and aliases", func() {
		Expect(solve.ParseMethods("exact")).To(Equal([]tsp.Method{tsp.MethodExact}))
		Expect(solve.ParseMethods("Little")).To(Equal([]tsp.Method{tsp.MethodExact}))
		Expect(solve.ParseMethods("nearest")).To(Equal([]tsp.Method{tsp.MethodGreedy}))
		Expect(solve.ParseMethods("both")).To(Equal([]tsp.Method{tsp.MethodExact, tsp.MethodGreedy}))
		Expect(solve.ParseMethods(" GREEDY ")).To(Equal([]tsp.Method{tsp.MethodGreedy}))
	})
	It("should reject unknown methods", func() {
		_, err := solve.ParseMethods("genetic")
		Expect(err).To(MatchError(ContainSubstring("unknown method")))
	})
})

var _ = Describe("Run", func() {
	It("should solve a matrix file exactly", func() {
		var out bytes.Buffer
		err := solve.Run(context.Background(), &out, solve.Config{In: writeFixture("fixture.csv"), Method: "exact"})
		Expect(err).ToNot(HaveOccurred())
		Expect(out.String()).To(ContainSubstring("Method: exact"))
		Expect(out.String()).To(ContainSubstring("Best cost: 80"))
		Expect(out.String()).To(ContainSubstring("Route: A → B → D → C → A"))
		Expect(out.String()).ToNot(ContainSubstring("Method: greedy"))
	})
	It("should read every supported file format", func() {
		for _, name := range []string{"m.txt", "m.csv", "m.bin", "m.npy"} {
			var out bytes.Buffer
			Expect(solve.Run(context.Background(), &out, solve.Config{In: writeFixture(name), Method: "greedy"})).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Best cost: 80"), name)
		}
	})
	It("should fail on a missing file", func() {
		err := solve.Run(context.Background(), &bytes.Buffer{}, solve.Config{In: "does-not-exist.csv", Method: "both"})
		Expect(err).To(MatchError(ContainSubstring("error reading matrix file")))
	})
	It("should fail on an unknown method before reading input", func() {
		err := solve.Run(context.Background(), &bytes.Buffer{}, solve.Config{In: "does-not-exist.csv", Method: "annealing"})
		Expect(err).To(MatchError(ContainSubstring("unknown method")))
	})
	It("should report the exact search as canceled when the context is done", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := solve.Run(ctx, &bytes.Buffer{}, solve.Config{Size: 6, Method: "exact"})
		Expect(err).To(MatchError(tsp.ErrCanceled))
	})
	It("should fall back to the greedy tour when the timeout cuts the exact search", func() {
		var out bytes.Buffer
		cfg := solve.Config{Size: 30, Seed: 52, Symmetric: true, Method: "exact", Timeout: time.Millisecond}
		Expect(solve.Run(context.Background(), &out, cfg)).To(Succeed())

		m, err := matrix.Random(30, 52, true)
		Expect(err).ToNot(HaveOccurred())
		greedy, err := tsp.Solve(m, tsp.MethodGreedy)
		Expect(err).ToNot(HaveOccurred())

		Expect(out.String()).To(ContainSubstring("Timed out: exact search stopped after 1ms"))
		Expect(out.String()).To(ContainSubstring("Method: greedy"))
		Expect(out.String()).To(ContainSubstring("Best cost: " + render.Cost(greedy.Cost)))
		Expect(out.String()).ToNot(ContainSubstring("Method: exact"))
	})
	It("should keep the exact answer when the timeout is not reached", func() {
		var out bytes.Buffer
		cfg := solve.Config{In: writeFixture("fixture.txt"), Method: "exact", Timeout: time.Minute}
		Expect(solve.Run(context.Background(), &out, cfg)).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Method: exact"))
		Expect(out.String()).To(ContainSubstring("Best cost: 80"))
		Expect(out.String()).ToNot(ContainSubstring("Timed out"))
	})
	It("should reject a matrix file with negative costs", func() {
		m, err := matrix.FromRows([][]float64{{math.Inf(1), -1}, {2, math.Inf(1)}})
		Expect(err).ToNot(HaveOccurred())
		path := filepath.Join(GinkgoT().TempDir(), "negative.csv")
		Expect(matrix.ExportFile(path, m)).To(Succeed())

		err = solve.Run(context.Background(), &bytes.Buffer{}, solve.Config{In: path, Method: "greedy"})
		Expect(err).To(MatchError(matrix.ErrNegativeCost))
		Expect(err).To(MatchError(ContainSubstring("invalid matrix file")))
	})
})

var _ = Describe("Command", func() {
	It("should generate, print and solve with both methods", func() {
		var out bytes.Buffer
		cmd := solve.NewSolveCommand()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--size", "6", "--seed", "3", "--symmetric", "--print-matrix"})

		Expect(cmd.Execute()).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Cost matrix:"))
		Expect(out.String()).To(ContainSubstring("Method: exact"))
		Expect(out.String()).To(ContainSubstring("Method: greedy"))
		Expect(out.String()).To(ContainSubstring("Nodes:"))
	})
	It("should reject positional arguments", func() {
		cmd := solve.NewSolveCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"extra"})
		Expect(cmd.Execute()).ToNot(Succeed())
	})
})
