// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/consensys/go-packed/pkg/packed"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// dumpCmd hydrates an array from a file of persisted words and prints its
// values.  The file layout carries no metadata, hence the value count and bit
// width must be supplied out of band.
var dumpCmd = &cobra.Command{
	Use:   "dump [flags] word_file",
	Short: "Dump the values of a persisted packed array.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			count = GetUint(cmd, "count")
			nbits = GetUint(cmd, "bits")
			limit = GetUint(cmd, "limit")
		)
		//
		file, err := os.Open(args[0])
		//
		if err != nil {
			log.Fatal(err)
		}
		//
		defer file.Close()
		//
		arr, err := packed.FromReader(packed.NewWordReader(bufio.NewReader(file)), count, nbits)
		//
		if err != nil {
			log.Fatalf("reading %s: %v", args[0], err)
		}
		//
		log.Debugf("loaded %d x %d bit values (%d bytes estimated)", count, nbits, arr.EstimatedBytes())
		//
		if limit != 0 && limit < count {
			count = limit
		}
		//
		printValues(arr, count)
	},
}

// printValues writes values in rows, sizing each cell for the largest
// representable value and wrapping rows at the terminal width (falling back to
// 80 columns when stdout is not a terminal).
func printValues(arr packed.MutArray, count uint) {
	var (
		cols    = uint(80)
		cell    = len(fmt.Sprintf("%d", maxValue(arr.BitWidth()))) + 1
		buf     = make([]uint64, 256)
		printed uint
	)
	//
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > cell {
		cols = uint(width)
	}
	//
	perLine := max(cols/uint(cell), 1)
	// Chunked transfer: GetBulk can return less than requested, in which case
	// we simply ask again for the remainder.
	for index := uint(0); index < count; {
		n := arr.GetBulk(index, buf[:min(uint(len(buf)), count-index)])
		//
		for _, value := range buf[:n] {
			fmt.Printf("%*d", cell, value)
			printed++
			//
			if printed%perLine == 0 {
				fmt.Println()
			}
		}
		//
		index += n
	}
	//
	if printed%perLine != 0 {
		fmt.Println()
	}
}

// maxValue returns the largest value representable in the given number of
// bits.
func maxValue(nbits uint) uint64 {
	return (uint64(1) << nbits) - 1
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().Uint("count", 0, "number of values in the array")
	dumpCmd.Flags().Uint("bits", 0, "bits per value")
	dumpCmd.Flags().Uint("limit", 0, "print at most this many values (0 for all)")
}
