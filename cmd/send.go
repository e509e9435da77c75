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
	"strconv"
	"time"

	"keytype/kb"

	"github.com/eiannone/keyboard"
	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send TEXT [DELAY_MS]",
	Short: "type text as keyboard scan code events",
	Long: `
Translate TEXT into scan code key events and inject them through the
virtual keyboard device, pausing DELAY_MS between characters.  DELAY_MS
defaults to the configured delay (100).

Characters without a scan code mapping are skipped with a warning; typing
continues past them.

Quoting:
In bash, use single quotes around TEXT, backslash-escape double quotes, and
escape any single quotes using backslash-escaped hex (\x27).  Standard
backslash escapes such as \n are decoded.

Examples:
keytype send 'This has a \x27quoted\x27 element\n'
keytype send 'This has a \"double-quoted\" element\n'
keytype send 'echo $PATH\n' 50
`,
	Aliases: []string{"type"},
	Args:    cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		text := kb.DecodeEscapes(args[0])
		delayMs := kb.ViperGetInt("delay")
		if len(args) > 1 {
			ms, err := strconv.Atoi(args[1])
			if err != nil {
				cobra.CheckErr(fmt.Errorf("invalid delay '%s': %v", args[1], err))
			}
			delayMs = ms
		}
		if delayMs < 0 {
			cobra.CheckErr(fmt.Errorf("negative delay: %d", delayMs))
		}
		InitInjector()
		if !kb.ViperGetBool("no_wait") {
			device, err := injector.WaitForKeyboard(WaitTimeout())
			cobra.CheckErr(err)
			if kb.ViperGetBool("verbose") {
				fmt.Printf("keyboard: %s\n", device)
			}
		}
		if kb.ViperGetBool("confirm") {
			fmt.Println("Press any key to begin typing...")
			_, _, err := keyboard.GetSingleKey()
			cobra.CheckErr(err)
		}
		preDelay := kb.ViperGetInt("pre_delay")
		if preDelay > 0 {
			time.Sleep(time.Duration(preDelay) * time.Millisecond)
		}
		typist := kb.NewTypist(injector)
		count, err := typist.Type(text, time.Duration(delayMs)*time.Millisecond)
		fmt.Printf("Typed %d characters\n", count)
		cobra.CheckErr(err)
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
}
