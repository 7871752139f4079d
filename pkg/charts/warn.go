package charts

import (
	"log"
	"sort"
	"strings"
)

// warnf reports soft warnings, e.g. unrecognized option keys. Package
// variable so tests can capture output.
var warnf = log.Printf

// warnUnknownKeys names every unrecognized key in one warning. Unknown keys
// never fail construction; the provider's schema grows over time and
// callers may pass forward-compatible extras.
func warnUnknownKeys(model string, unknown []string) {
	if len(unknown) == 0 {
		return
	}
	sort.Strings(unknown)
	warnf("charts: %s: ignoring unrecognized fields: %s", model, strings.Join(unknown, ", "))
}
