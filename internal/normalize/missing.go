package normalize

import "strings"

// na values seen in real exports; matched case-insensitively after trimming.
var naValues = map[string]struct{}{
	"":     {},
	"none": {},
	"nan":  {},
	"n/a":  {},
	"null": {},
}

// IsMissing reports whether a raw field holds no usable value.
func IsMissing(raw string) bool {
	_, ok := naValues[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}
