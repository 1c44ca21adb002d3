package fields

import "github.com/tagscan/tagscan/internal/model"

// Counter decodes PCNT: a big-endian unsigned integer of arbitrary
// byte length, clamped to 64 bits with a warning when it overflows.
func Counter(payload []byte) (values []model.Value, subtitle string, warnings []string) {
	n, overflowed := parseClampedBE64(payload)
	if overflowed {
		warnings = append(warnings, "counter value exceeds 64 bits; clamped")
	}
	return []model.Value{model.IntegerValue(int64(n))}, "", warnings
}

// parseClampedBE64 combines big-endian bytes into a uint64, clamping to
// math.MaxUint64 (reported as overflowed) once more than 8 significant
// bytes are present.
func parseClampedBE64(data []byte) (n uint64, overflowed bool) {
	// Skip leading zero bytes so a long, mostly-empty counter isn't
	// flagged as overflowing.
	start := 0
	for start < len(data) && data[start] == 0 {
		start++
	}
	significant := data[start:]

	if len(significant) > 8 {
		return ^uint64(0), true
	}
	for _, b := range significant {
		n = n<<8 | uint64(b)
	}
	return n, false
}
