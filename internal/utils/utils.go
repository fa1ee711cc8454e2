package utils

import (
	"fmt"
	"math"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders a byte count the way it appears in merged artifacts,
// e.g. "512.0B", "1.5KB", "2.0MB". The rendering is part of the artifact
// format and must stay stable for recreate round-trips.
func FormatBytes(size int64) string {
	if size == 0 {
		return "0B"
	}

	i := int(math.Floor(math.Log(float64(size)) / math.Log(1024)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	p := math.Pow(1024, float64(i))

	return fmt.Sprintf("%.1f%s", float64(size)/p, sizeUnits[i])
}
