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
	"encoding/json"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rstms/memview/dump"
)

var restoreCmd = &cobra.Command{
	Use:   "restore ROWS OUTPUT",
	Short: "rebuild binary data from JSON dump rows",
	Long: `
Read the JSON rows written by 'dump' from ROWS ('-' for stdin) and write the
bytes they describe to OUTPUT ('-' for stdout).
`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		var in io.Reader = os.Stdin
		if args[0] != "-" {
			file, err := os.Open(args[0])
			cobra.CheckErr(err)
			defer file.Close()
			in = file
		}
		var rows []dump.Row
		err := json.NewDecoder(in).Decode(&rows)
		cobra.CheckErr(err)
		data, err := dump.Bytes(rows)
		cobra.CheckErr(err)
		if args[1] == "-" {
			_, err = os.Stdout.Write(data)
		} else {
			err = os.WriteFile(args[1], data, 0644)
		}
		cobra.CheckErr(err)
		log.Debug().Int("rows", len(rows)).Int("bytes", len(data)).Msg("restored")
	},
}

func init() {
	CobraAddCommand(rootCmd, restoreCmd)
}
