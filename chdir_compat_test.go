package passarg

import (
	"os"
	"testing"
)

// chdirForTest changes the working directory to dir and restores it when
// the test finishes, mirroring testing.T.Chdir (Go 1.24+) on older toolchains.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("chdir: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("chdir: %v", err)
		}
	})
}
