package main

import (
	"fmt"
	"math/bits"
	"os"
	"os/exec"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-packed")

	cfg, err := newConfig(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 16, 21, 32)
	assertNoError(err)

	assertNoError(bgen.Generate(cfg, "packed", "templates",
		bavard.Entry{
			File:      "../../pkg/packed/single_block_widths.go",
			Templates: []string{"single_block_widths.go.tmpl"},
		},
	))

	// run gofmt on the generated code
	runCmd("gofmt", "-w", "../../pkg/packed")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run())
}

// widthConfig determines the index/shift/mask arithmetic for one supported bit
// width.  Power-of-two widths replace the divide/modulo of the general formula
// with shift/mask equivalents.
type widthConfig struct {
	// Width of each value in bits
	Bits uint
	// Number of values packed into each 64-bit word
	ValuesPerWord uint
	// Number of unused bits at the top of each word
	Padding uint
	// Mask retaining the low Bits bits, as a hex literal
	Mask string
	// Whether Bits is a power of two
	Pow2 bool
	// log2(ValuesPerWord), valid only when Pow2
	WordShift uint
	// ValuesPerWord-1 as a hex literal, valid only when Pow2
	OffsetMask string
	// log2(Bits), valid only when Pow2
	ShiftShift uint
}

type config struct {
	Widths []widthConfig
}

func newConfig(widths ...uint) (config, error) {
	var cfg config
	//
	for _, w := range widths {
		if w == 0 || w > 32 {
			return cfg, fmt.Errorf("invalid bit width %d", w)
		}
		//
		vpw := 64 / w
		//
		c := widthConfig{
			Bits:          w,
			ValuesPerWord: vpw,
			Padding:       64 - vpw*w,
			Mask:          fmt.Sprintf("%#x", (uint64(1)<<w)-1),
		}
		//
		if bits.OnesCount(w) == 1 {
			c.Pow2 = true
			c.WordShift = uint(bits.TrailingZeros(vpw))
			c.OffsetMask = fmt.Sprintf("%#x", vpw-1)
			c.ShiftShift = uint(bits.TrailingZeros(w))
		}
		//
		cfg.Widths = append(cfg.Widths, c)
	}
	//
	return cfg, nil
}

func assertNoError(err error) {
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
