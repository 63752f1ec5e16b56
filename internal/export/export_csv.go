package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Record is one exported row keyed by field name.
type Record map[string]any

// ToCSV writes a header of field names followed by one row per record.
// String values containing a comma are wrapped in double quotes; embedded
// quotes and newlines are written as-is. Missing and zero values (nil, "",
// 0, false) are written as empty cells. Rows are separated by "\n" with no
// trailing newline.
func ToCSV(records []Record, fields []string) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(fields, ","))

	cells := make([]string, len(fields))
	for _, rec := range records {
		for i, f := range fields {
			cells[i] = formatCell(rec[f])
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n")
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		if strings.Contains(val, ",") {
			return `"` + val + `"`
		}
		return val
	case decimal.Decimal:
		if val.IsZero() {
			return ""
		}
		return val.String()
	case int:
		if val == 0 {
			return ""
		}
		return strconv.Itoa(val)
	case int64:
		if val == 0 {
			return ""
		}
		return strconv.FormatInt(val, 10)
	case float64:
		if val == 0 {
			return ""
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if !val {
			return ""
		}
		return "true"
	default:
		return fmt.Sprint(val)
	}
}
