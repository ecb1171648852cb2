package dump

import (
	"strings"

	"github.com/fatih/color"
)

type Style int

const (
	StyleNone Style = iota
	StyleMatch
	StyleSelected
)

var matchColor = color.New(color.FgBlack, color.BgYellow)
var selectedColor = color.New(color.FgBlack, color.BgBlue)

// Text renders rows as a classic hex dump, one line per row. mark may be nil;
// otherwise it is called with each cell's index from the start of rows and
// the returned style is applied to both the hex and the ascii cell.
func Text(rows []Row, mark func(index int) Style) string {
	var output strings.Builder
	width := 0
	for _, row := range rows {
		if len(row.Offset) > width {
			width = len(row.Offset)
		}
	}
	for i, row := range rows {
		output.WriteString(row.Offset)
		output.WriteString(strings.Repeat(" ", width-len(row.Offset)+2))
		var ascii strings.Builder
		for j := 0; j < RowSize; j++ {
			if j < row.Len() {
				style := StyleNone
				if mark != nil {
					style = mark(i*RowSize + j)
				}
				output.WriteString(styled(style, row.Hex[j]))
				output.WriteString(" ")
				ascii.WriteString(styled(style, DisplayChar(row.ASCII[j])))
			} else {
				output.WriteString("   ")
				ascii.WriteString(" ")
			}
			if j == 7 {
				output.WriteString("- ")
			}
		}
		output.WriteString(" |")
		output.WriteString(ascii.String())
		output.WriteString("|\n")
	}
	return output.String()
}

// DisplayChar maps control whitespace cells to "." so lines stay intact.
func DisplayChar(cell string) string {
	if len(cell) == 1 && cell[0] < ' ' {
		return "."
	}
	return cell
}

func styled(style Style, text string) string {
	switch style {
	case StyleMatch:
		return matchColor.Sprint(text)
	case StyleSelected:
		return selectedColor.Sprint(text)
	}
	return text
}
