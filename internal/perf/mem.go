package perf

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// PeakMemory returns the peak virtual memory of the process in bytes, or 0
// when /proc is unavailable.
func PeakMemory() int {
	return readStatus("VmPeak") * 1024
}

// readStatus returns the kB value of key in /proc/self/status.
func readStatus(key string) int {
	fo, err := os.Open("/proc/self/status")
	if err != nil {
		slog.Debug("Failed to read /proc/self/status.", "err", err)
		return 0
	}
	defer fo.Close() //nolint:errcheck

	prefix := key + ":"
	scanner := bufio.NewScanner(fo)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, prefix) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			break
		}
		value, err := strconv.Atoi(fields[1])
		if err != nil {
			slog.Debug("Failed to parse process status.", "key", key, "err", err)
			return 0
		}
		return value
	}

	if err := scanner.Err(); err != nil {
		slog.Debug("Failed to read from file.", "err", err)
	}

	return 0
}

func FormatBytes(value int) string {
	const divisor = 1024.
	const step = 512.
	units := []string{"B", "KiB", "MiB", "GiB", "TiB"}

	unitIndex := 0
	var f float64
	for f = float64(value); f > step && unitIndex < len(units)-1; f /= divisor {
		unitIndex++
	}
	return strings.Replace(fmt.Sprintf("%.1f%s", f, units[unitIndex]), ".0", "", 1)
}
