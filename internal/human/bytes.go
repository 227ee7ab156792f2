package human

import (
	"fmt"
	"math"
)

// Bytes formats b using decimal (SI) units, e.g. "83 MB".
func Bytes(b int64) string {
	if b < 1000 {
		return fmt.Sprintf("%d B", b)
	}

	sizes := []string{"B", "kB", "MB", "GB", "TB"}
	e := math.Floor(math.Log(float64(b)) / math.Log(1000))
	e = math.Min(e, float64(len(sizes)-1))
	val := float64(b) / math.Pow(1000, e)
	return fmt.Sprintf("%.0f %s", val, sizes[int(e)])
}
