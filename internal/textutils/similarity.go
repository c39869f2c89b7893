package textutils

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Similarity scores how close two strings are on a 0-100 scale,
// case-insensitively. It tolerates OCR noise and minor name variation; exact
// equality scores 100.
func Similarity(a, b string) float64 {
	return strutil.Similarity(strings.ToLower(a), strings.ToLower(b), metrics.NewLevenshtein()) * 100
}
