package shmsplot

import (
	"fmt"
	"strconv"
	"strings"
)

// FloatArrayFlags is a flag.Value collecting floats from repeated flags or
// comma-separated lists. The first Set replaces any default values.
type FloatArrayFlags struct {
	Array   []float64
	beenSet bool
}

func (f *FloatArrayFlags) Set(valueStr string) error {
	var values []float64
	for _, s := range strings.Split(valueStr, ",") {
		value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return err
		}
		values = append(values, value)
	}

	if !f.beenSet {
		f.beenSet = true
		f.Array = nil
	}

	f.Array = append(f.Array, values...)
	return nil
}

func (f *FloatArrayFlags) String() string {
	if f == nil {
		return ""
	}
	return fmt.Sprint(f.Array)
}
