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
	"log"
	"os"
	"time"

	"keytype/kb"

	"github.com/spf13/cobra"
)

var OutputJSON bool
var OutputText bool

var injector kb.Injector

var rootCmd = &cobra.Command{
	Version: kb.Version,
	Use:     "keytype",
	Short:   "type text as hardware keyboard events",
	Long: `
Synthesize keyboard input at the device level: translate text into scan
code key events and inject them through a virtual keyboard device, as if
typed on physical hardware.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		OutputJSON = true
		OutputText = false
		if kb.ViperGetBool("text") {
			OutputText = true
			OutputJSON = false
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if injector != nil {
			err := injector.Close()
			cobra.CheckErr(err)
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)
	OptionString(rootCmd, "config", "c", "", "config file")
	OptionString(rootCmd, "logfile", "", "", "log filename")
	OptionSwitch(rootCmd, "debug", "d", "produce debug output")
	OptionSwitch(rootCmd, "verbose", "v", "produce diagnostic output")
	OptionString(rootCmd, "timeout", "t", "60", "keyboard wait timeout in seconds")
	OptionString(rootCmd, "delay", "", "100", "inter-character delay in milliseconds")
	OptionString(rootCmd, "pre-delay", "", "500", "delay before typing starts in milliseconds")
	OptionString(rootCmd, "device-name", "", "", "name for the virtual keyboard device")
	OptionSwitch(rootCmd, "no-wait", "W", "do not wait for a physical keyboard device")
	OptionSwitch(rootCmd, "confirm", "", "wait for a keypress before typing")
	OptionSwitch(rootCmd, "json", "", "format output as JSON (default)")
	OptionSwitch(rootCmd, "text", "", "format output as text")
}

func InitConfig() {
	kb.Init("keytype", kb.Version, kb.ViperGetString("config"))
}

func InitInjector() {
	i, err := kb.NewInjector()
	cobra.CheckErr(err)
	if kb.ViperGetBool("verbose") {
		log.Printf("injector acquired\n")
	}
	injector = i
}

func WaitTimeout() time.Duration {
	return time.Duration(kb.ViperGetInt("timeout")) * time.Second
}
