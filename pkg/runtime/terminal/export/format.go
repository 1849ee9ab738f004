package export

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatBytes renders b with binary units.
func FormatBytes(b float64) string {
	if b <= 0 {
		return "0 B"
	}
	return humanize.IBytes(uint64(b))
}

func FormatMoney(currency string, v float64) string {
	return fmt.Sprintf("%s %.2f", currency, v)
}

func FormatPercent(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}
