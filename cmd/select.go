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
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rstms/memview/view"
)

var selectCmd = &cobra.Command{
	Use:   "select FILE START END",
	Short: "extract a byte range",
	Long: `
Select the inclusive byte range START..END of FILE and write it as hex cells
separated by spaces (default), as ascii cells with --ascii, or as raw bytes to
the file named by --output.

START and END accept decimal, sized (1K) or 0x prefixed hex values and are
clamped to the input.
`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := ReadInput(args[0])
		cobra.CheckErr(err)
		start, err := view.SizeParse(args[1])
		cobra.CheckErr(err)
		end, err := view.SizeParse(args[2])
		cobra.CheckErr(err)

		v := view.New(data)
		v.Select(view.PositionOf(int(start)))
		v.Extend(view.PositionOf(int(end)))

		output := ViperGetString("output")
		switch {
		case output != "":
			file, err := os.Create(output)
			cobra.CheckErr(err)
			defer file.Close()
			n, err := v.WriteSelection(file)
			cobra.CheckErr(err)
			log.Info().Str("output", output).Int("bytes", n).Msg("wrote selection")
		case OutputText:
			fmt.Print(v.Text())
		case ViperGetBool("ascii"):
			fmt.Println(v.SelectedASCII())
		default:
			fmt.Println(v.SelectedHex())
		}
	},
}

func init() {
	CobraAddCommand(rootCmd, selectCmd)
	OptionSwitch(selectCmd, "ascii", "a", "write the ascii cells of the selection")
	OptionString(selectCmd, "output", "O", "", "write the raw selected bytes to this file")
}
