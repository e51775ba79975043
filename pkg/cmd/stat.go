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
	"fmt"

	"github.com/consensys/go-packed/pkg/packed"
	"github.com/dustin/go-humanize"
	"github.com/pbnjay/memory"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// statCmd reports the storage an array of given dimensions would require,
// without necessarily being able to allocate it.
var statCmd = &cobra.Command{
	Use:   "stat",
	Short: "Report storage requirements for a packed array.",
	Long: `Report the number of storage words, padding overhead and estimated memory
consumption for an array of a given value count and bit width.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			count = GetUint(cmd, "count")
			nbits = GetUint(cmd, "bits")
		)
		//
		if !packed.IsSupported(nbits) {
			log.Fatalf("unsupported bit width %d (must be one of %v)", nbits, packed.SupportedWidths())
		}
		//
		arr, err := packed.New(count, nbits)
		//
		if err != nil {
			log.Fatal(err)
		}
		//
		var (
			valuesPerWord = 64 / nbits
			words         = packed.WordsRequired(count, valuesPerWord)
			padding       = 64 - valuesPerWord*nbits
			bytes         = arr.EstimatedBytes()
		)
		//
		fmt.Printf("values: %d x %d bits\n", count, nbits)
		fmt.Printf("words:  %d (%d values per word, %d padding bits per word)\n", words, valuesPerWord, padding)
		fmt.Printf("memory: %s (estimated)\n", humanize.IBytes(bytes))
		// Relate to the machine we are running on
		if total := memory.TotalMemory(); total > 0 {
			fmt.Printf("system: %.3f%% of %s total memory\n",
				100*float64(bytes)/float64(total), humanize.IBytes(total))
		}
	},
}

func init() {
	rootCmd.AddCommand(statCmd)
	statCmd.Flags().Uint("count", 0, "number of values in the array")
	statCmd.Flags().Uint("bits", 0, "bits per value")
}
