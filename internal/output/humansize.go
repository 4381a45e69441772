package output

import "fmt"

var sizeUnits = []string{"B", "K", "M", "G", "T", "P"}

// HumanSize formats a byte count with binary prefixes at 1024 steps and
// one decimal digit. Zero is special-cased as "0B".
func HumanSize(size int64) string {
	if size == 0 {
		return "0B"
	}

	d := float64(size)
	unit := 0
	for d >= 1024 && unit < len(sizeUnits)-1 {
		d /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f%s", d, sizeUnits[unit])
}
