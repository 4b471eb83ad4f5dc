package usecase

import (
	"fmt"
	"math"
	"strconv"

	"coolseason/internal/domain/entities"
)

// groupThousands formats n with comma separators (70000 -> "70,000").
func groupThousands(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.Itoa(n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return sign + s
}

// FormatTonnage renders a capacity for display: "2 Ton" for whole numbers,
// "2.5 Ton" otherwise.
func FormatTonnage(t float64) string {
	if t == math.Trunc(t) {
		return fmt.Sprintf("%d Ton", int(t))
	}
	return fmt.Sprintf("%.1f Ton", t)
}

// FormatCurrency renders a price as whole dollars with grouped thousands.
func FormatCurrency(v float64) string {
	return "$" + groupThousands(int(math.Round(v)))
}

// FormatCapacity renders a system capacity respecting furnace BTU semantics.
func FormatCapacity(capacity float64, equipment entities.EquipmentType) string {
	if equipment == entities.EquipmentFurnaceOnly {
		return groupThousands(int(math.Round(capacity))) + " BTU"
	}
	return FormatTonnage(capacity)
}
