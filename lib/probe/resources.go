// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"bufio"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// Resources holds best-effort machine resource figures. A zero value
// means the figure could not be determined; callers report that as
// "unknown — recommend manual check", never as an error.
type Resources struct {
	MemTotalBytes uint64 `json:"mem_total_bytes"`
	CPUCount      int    `json:"cpu_count"`
	DiskFreeBytes uint64 `json:"disk_free_bytes"`
}

// probeResources reads RAM from <procRoot>/meminfo, the CPU count from
// the runtime, and free disk space for the project root via statfs.
func probeResources(procRoot, root string) Resources {
	return Resources{
		MemTotalBytes: memTotalBytes(filepath.Join(procRoot, "meminfo")),
		CPUCount:      runtime.NumCPU(),
		DiskFreeBytes: diskFreeBytes(root),
	}
}

// memTotalBytes extracts the MemTotal line from /proc/meminfo.
// Returns 0 when the file is missing or malformed.
func memTotalBytes(path string) uint64 {
	file, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		// MemTotal:       16316420 kB
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0
		}
		return kb * 1024
	}
	return 0
}

// diskFreeBytes returns the bytes available to unprivileged users on
// the filesystem holding path. Returns 0 when statfs fails.
func diskFreeBytes(path string) uint64 {
	if path == "" {
		path = "."
	}
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0
	}
	return stat.Bavail * uint64(stat.Bsize)
}
