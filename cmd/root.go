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
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rstms/memview/dump"
	"github.com/rstms/memview/view"
)

var cfgFile string

var OutputJSON bool
var OutputText bool

var rootCmd = &cobra.Command{
	Version: "0.1.0",
	Use:     "memview",
	Short:   "hex dump and inspect binary data",
	Long: `
Format binary files as rows of offset, hex and ascii cells, search them for
byte sequences or text, extract selections and export the dump.

FILE may be '-' to read standard input.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		InitLogging()
		OutputJSON = true
		OutputText = false
		if ViperGetBool("text") {
			OutputText = true
			OutputJSON = false
		}
		if threshold := view.ViperGetInt64("concurrent_threshold"); threshold > 0 {
			dump.ConcurrentThreshold = int(threshold)
		}
		view.ViperInit()
		log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("run")
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
	OptionString(rootCmd, "log-level", "", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	OptionSwitch(rootCmd, "debug", "d", "produce debug output")
	OptionSwitch(rootCmd, "verbose", "v", "produce diagnostic output")
	OptionSwitch(rootCmd, "json", "", "format output as JSON (default)")
	OptionSwitch(rootCmd, "text", "", "format output as text")
	OptionSwitch(rootCmd, "no-color", "", "disable highlight colors in text output")
	OptionSwitch(rootCmd, "no-humanize", "n", "display sizes in bytes")
	OptionString(rootCmd, "offset", "o", "0", "start of the dump window (1K, 0x400)")
	OptionString(rootCmd, "length", "l", "", "length of the dump window, default to end of input")
	OptionString(rootCmd, "hash-key", "", "", "fingerprint key as 64 hex digits")
	OptionString(rootCmd, "concurrent-threshold", "", "", "input size above which rows are formatted concurrently")
}
