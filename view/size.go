package view

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var SIZE_PATTERN = regexp.MustCompile(`^\s*([0-9.]+)([KMGTP]B?)?\s*$`)
var HEX_SIZE_PATTERN = regexp.MustCompile(`^\s*0[xX]([0-9a-fA-F]+)\s*$`)

const KB = int64(1024)
const MB = KB * 1024
const GB = MB * 1024
const TB = GB * 1024
const PB = TB * 1024

var sizeUnits = []struct {
	mult   int64
	suffix string
}{
	{PB, "P"},
	{TB, "T"},
	{GB, "G"},
	{MB, "M"},
	{KB, "K"},
}

// SizeParse accepts a decimal size with an optional K/M/G/T/P suffix or a
// 0x prefixed hex offset such as the ones printed in dump rows.
func SizeParse(param string) (int64, error) {
	if match := HEX_SIZE_PATTERN.FindStringSubmatch(param); match != nil {
		size, err := strconv.ParseInt(match[1], 16, 64)
		if err != nil {
			return 0, Fatalf("failed parsing hex size '%s': %v", param, err)
		}
		return size, nil
	}
	match := SIZE_PATTERN.FindStringSubmatch(strings.ToUpper(param))
	if len(match) != 3 {
		return 0, Fatalf("failed parsing size parameter: '%s'", param)
	}
	multiplier := int64(1)
	suffix := strings.TrimSuffix(match[2], "B")
	for _, unit := range sizeUnits {
		if unit.suffix == suffix {
			multiplier = unit.mult
		}
	}
	fsize, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, Fatal(err)
	}
	size := fsize * float64(multiplier)
	if size < 0 || size >= math.MaxInt64 {
		return 0, Fatalf("size parameter out of range: '%s'", param)
	}
	return int64(size), nil
}

func FormatSize(size int64) string {
	if ViperGetBool("no_humanize") {
		return fmt.Sprintf("%d", size)
	}
	for _, unit := range sizeUnits {
		if size < unit.mult {
			continue
		}
		if size%unit.mult == 0 {
			return fmt.Sprintf("%d%s", size/unit.mult, unit.suffix)
		}
		sizeStr := fmt.Sprintf("%.2f", float64(size)/float64(unit.mult))
		sizeStr = strings.TrimRight(sizeStr, "0")
		sizeStr = strings.TrimRight(sizeStr, ".")
		return sizeStr + unit.suffix
	}
	return fmt.Sprintf("%d", size)
}
