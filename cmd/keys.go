/*
Copyright © 2025 Matt Krueger <mkrueger@rstms.net>
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

 1. Redistributions of source code must retain the above copyright notice,
    this list of conditions and the following disclaimer.

 2. Redistributions in binary form must reproduce the above copyright notice,
    this list of conditions and the following disclaimer in the documentation
    and/or other materials provided with the distribution.

 3. Neither the name of the copyright holder nor the names of its contributors
    may be used to endorse or promote products derived from this software
    without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
POSSIBILITY OF SUCH DAMAGE.
*/
package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"keytype/kb"

	"github.com/spf13/cobra"
)

type keymapEntry struct {
	Char  string `json:"char"`
	Code  uint16 `json:"code"`
	Shift bool   `json:"shift"`
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "print the character to scan code mapping",
	Long: `
Write the full character to scan code mapping.  Shifted characters share
the scan code of their unshifted base key.  The output is JSON by default;
use --text for an aligned table.
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		keymap := kb.Keymap()
		chars := make([]rune, 0, len(keymap))
		for char := range keymap {
			chars = append(chars, char)
		}
		sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
		entries := make([]keymapEntry, 0, len(chars))
		for _, char := range chars {
			key := keymap[char]
			entries = append(entries, keymapEntry{
				Char:  string(char),
				Code:  key.Code,
				Shift: key.Shift,
			})
		}
		if OutputJSON {
			fmt.Println(kb.FormatJSON(entries))
		} else {
			for _, entry := range entries {
				shift := ""
				if entry.Shift {
					shift = " shift"
				}
				fmt.Printf("%-6s 0x%02x%s\n", strconv.Quote(entry.Char), entry.Code, shift)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
