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

	"github.com/spf13/cobra"

	"github.com/rstms/memview/dump"
	"github.com/rstms/memview/view"
)

type SearchResult struct {
	Query   string        `json:"query"`
	Mode    string        `json:"mode"`
	Count   int           `json:"count"`
	Matches []MatchOutput `json:"matches"`
}

type MatchOutput struct {
	view.Match
	Offset   string        `json:"offset"`
	Position view.Position `json:"position"`
}

var searchCmd = &cobra.Command{
	Use:   "search FILE QUERY",
	Short: "find byte sequences or text",
	Long: `
Search FILE for QUERY and list every occurrence, overlapping ones included.

In hex mode QUERY is a space separated list of byte values ('48 65 6C');
tokens that are not a byte value are ignored. In ascii mode QUERY is matched
literally.

With --text the dump is written with the matches highlighted.
`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		mode, err := view.ParseSearchMode(ViperGetString("mode"))
		cobra.CheckErr(err)
		data, err := ReadInput(args[0])
		cobra.CheckErr(err)
		v := view.New(data)
		matches := v.Search(args[1], mode)
		if OutputText {
			fmt.Print(v.Text())
			return
		}
		result := SearchResult{
			Query:   args[1],
			Mode:    mode.String(),
			Count:   len(matches),
			Matches: []MatchOutput{},
		}
		for _, m := range matches {
			result.Matches = append(result.Matches, MatchOutput{
				Match:    m,
				Offset:   dump.FormatOffset(m.Start),
				Position: view.PositionOf(m.Start),
			})
		}
		fmt.Println(FormatJSON(&result))
	},
}

func init() {
	CobraAddCommand(rootCmd, searchCmd)
	OptionString(searchCmd, "mode", "m", "hex", "search mode (hex, ascii)")
}
