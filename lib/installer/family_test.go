// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package installer

import (
	"os"
	"path/filepath"
	"testing"
)

func writeOSRelease(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "os-release")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDetectFamily(t *testing.T) {
	tests := []struct {
		name      string
		goos      string
		osRelease string
		want      Family
	}{
		{
			name: "darwin needs no os-release",
			goos: "darwin",
			want: FamilyDarwin,
		},
		{
			name:      "ubuntu via ID_LIKE",
			goos:      "linux",
			osRelease: "NAME=\"Ubuntu\"\nID=ubuntu\nID_LIKE=debian\n",
			want:      FamilyDebian,
		},
		{
			name:      "debian direct",
			goos:      "linux",
			osRelease: "ID=debian\n",
			want:      FamilyDebian,
		},
		{
			name:      "rocky via quoted ID_LIKE list",
			goos:      "linux",
			osRelease: "ID=\"rocky\"\nID_LIKE=\"rhel centos fedora\"\n",
			want:      FamilyFedora,
		},
		{
			name:      "arch",
			goos:      "linux",
			osRelease: "ID=arch\n",
			want:      FamilyArch,
		},
		{
			name:      "unrecognized distro",
			goos:      "linux",
			osRelease: "ID=nixos\n",
			want:      FamilyUnknown,
		},
		{
			name: "windows",
			goos: "windows",
			want: FamilyUnknown,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing")
			if test.osRelease != "" {
				path = writeOSRelease(t, test.osRelease)
			}
			if got := detectFamily(test.goos, path); got != test.want {
				t.Errorf("detectFamily(%s) = %q, want %q", test.goos, got, test.want)
			}
		})
	}
}

func TestDetectFamilyMissingOSRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")
	if got := detectFamily("linux", path); got != FamilyUnknown {
		t.Errorf("detectFamily = %q, want unknown", got)
	}
}
