// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"slndigest/pkg/fspath"
)

// sizeUnits are the scaling steps for humanSize, each 1024x the previous.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// binarySummary builds the metadata payload for a binary record. The file's
// bytes are never loaded; everything here comes from the directory entry.
func binarySummary(name string, info fs.FileInfo) string {
	return fmt.Sprintf("Name: %s\nSize: %s\nModified: %s\nType: %s",
		name,
		humanSize(info.Size()),
		info.ModTime().Format(time.DateTime),
		typeLabel(name))
}

// humanSize renders a byte count in the largest unit that keeps the value
// sensible, dividing by 1024 per step and rounding to two decimal places with
// trailing zeros trimmed: 1536 becomes "1.5 KB", 1073741824 becomes "1 GB",
// 512 stays "512 B".
func humanSize(n int64) string {
	value := float64(n)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	s := strconv.FormatFloat(value, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s + " " + sizeUnits[unit]
}

// typeLabel derives a short description from the file's extension:
// "logo.png" yields "PNG file". Extensionless names fall back to a generic
// label.
func typeLabel(name string) string {
	ext := strings.TrimPrefix(fspath.ExtLower(name), ".")
	if ext == "" {
		return "binary file"
	}
	return strings.ToUpper(ext) + " file"
}
