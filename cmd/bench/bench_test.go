package bench_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/littletsp/cmd/bench"
)

func TestBench(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Bench Command Suite")
}

var _ = Describe("Command", func() {
	It("should print the table and write plot and metrics files", func() {
		dir := GinkgoT().TempDir()
		plotPath := filepath.Join(dir, "bench.svg")
		metricsPath := filepath.Join(dir, "bench.prom")

		var out bytes.Buffer
		cmd := bench.NewBenchCommand()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--sizes", "3,4", "--runs", "1", "--workers", "2",
			"--plot", plotPath, "--metrics", metricsPath})

		Expect(cmd.Execute()).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Deviation (%)"))
		Expect(plotPath).To(BeAnExistingFile())
		raw, err := os.ReadFile(metricsPath)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(raw)).To(ContainSubstring("littletsp_bench_solves_total"))
	})
	It("should reject an invalid run count", func() {
		cmd := bench.NewBenchCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"--sizes", "3", "--runs", "0"})
		Expect(cmd.Execute()).ToNot(Succeed())
	})
})
