package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex ID from its zero-based index. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn renders idx in decimal: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixIDFn returns an IDFn rendering prefix followed by the decimal index,
// e.g. PrefixIDFn("v")(3) → "v3".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// ExcelColumnIDFn renders idx like a spreadsheet column: 0→"A", 25→"Z",
// 26→"AA". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+i%26))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
