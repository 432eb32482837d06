//go:build unix

package fsutil_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/giantswarm/fsutil"
)

// tempNameRE matches the <prefix>.<6 hex chars> shape of TempFile names.
var tempNameRE = regexp.MustCompile(`^tool\.[0-9a-f]{6}$`)

func TestTempFile(t *testing.T) {
	t.Run("creates owner-only file with prefix", func(t *testing.T) {
		dir := t.TempDir()

		f, err := fsutil.TempFile(dir, "tool")
		if err != nil {
			t.Fatalf("TempFile() error: %v", err)
		}
		defer f.Close()

		if got := filepath.Dir(f.Name()); got != dir {
			t.Errorf("file created in %s, want %s", got, dir)
		}
		if base := filepath.Base(f.Name()); !tempNameRE.MatchString(base) {
			t.Errorf("file name %q does not match <prefix>.<6 hex>", base)
		}

		info, err := os.Stat(f.Name())
		if err != nil {
			t.Fatalf("stat temp file: %v", err)
		}
		if got := info.Mode().Perm(); got != 0o600 {
			t.Errorf("permission bits = %o, want 600", got)
		}
	})

	t.Run("close-on-exec is set", func(t *testing.T) {
		f, err := fsutil.TempFile(t.TempDir(), "tool")
		if err != nil {
			t.Fatalf("TempFile() error: %v", err)
		}
		defer f.Close()

		flags, err := unix.FcntlInt(f.Fd(), unix.F_GETFD, 0)
		if err != nil {
			t.Fatalf("fcntl(F_GETFD): %v", err)
		}
		if flags&unix.FD_CLOEXEC == 0 {
			t.Error("FD_CLOEXEC not set on temp file descriptor")
		}
	})

	t.Run("repeated calls produce distinct writable files", func(t *testing.T) {
		dir := t.TempDir()

		a, err := fsutil.TempFile(dir, "tool")
		if err != nil {
			t.Fatalf("first TempFile() error: %v", err)
		}
		defer a.Close()
		b, err := fsutil.TempFile(dir, "tool")
		if err != nil {
			t.Fatalf("second TempFile() error: %v", err)
		}
		defer b.Close()

		if a.Name() == b.Name() {
			t.Fatalf("both calls returned %s", a.Name())
		}
		if _, err := a.WriteString("first"); err != nil {
			t.Errorf("write to first file: %v", err)
		}
		if _, err := b.WriteString("second"); err != nil {
			t.Errorf("write to second file: %v", err)
		}
	})

	t.Run("explicit directory wins over TMPDIR", func(t *testing.T) {
		explicit := t.TempDir()
		t.Setenv("TMPDIR", t.TempDir())

		f, err := fsutil.TempFile(explicit, "tool")
		if err != nil {
			t.Fatalf("TempFile() error: %v", err)
		}
		defer f.Close()

		if got := filepath.Dir(f.Name()); got != explicit {
			t.Errorf("file created in %s, want explicit dir %s", got, explicit)
		}
	})

	t.Run("TMPDIR used when no directory given", func(t *testing.T) {
		envDir := t.TempDir()
		t.Setenv("TMPDIR", envDir)

		f, err := fsutil.TempFile("", "tool")
		if err != nil {
			t.Fatalf("TempFile() error: %v", err)
		}
		defer f.Close()
		defer os.Remove(f.Name())

		if got := filepath.Dir(f.Name()); got != envDir {
			t.Errorf("file created in %s, want $TMPDIR %s", got, envDir)
		}
	})

	t.Run("default directory when TMPDIR unset", func(t *testing.T) {
		t.Setenv("TMPDIR", "")

		f, err := fsutil.TempFile("", "tool")
		if err != nil {
			t.Fatalf("TempFile() error: %v", err)
		}
		defer f.Close()
		defer os.Remove(f.Name())

		if got := filepath.Dir(f.Name()); got != fsutil.DefaultTempDir {
			t.Errorf("file created in %s, want %s", got, fsutil.DefaultTempDir)
		}
	})

	t.Run("nonexistent directory", func(t *testing.T) {
		_, err := fsutil.TempFile(filepath.Join(t.TempDir(), "missing"), "tool")
		if err == nil {
			t.Fatal("TempFile() in nonexistent directory succeeded, want error")
		}
	})
}

// TestTempFileUmaskGuard runs sequentially (no t.Parallel): it mutates the
// process-wide umask and must not overlap tests that create files.
func TestTempFileUmaskGuard(t *testing.T) {
	dir := t.TempDir() // before the mask change so cleanup can list it

	// A hostile mask that would strip owner bits without the scoped guard.
	old := unix.Umask(0o477)
	defer unix.Umask(old)

	f, err := fsutil.TempFile(dir, "tool")
	if err != nil {
		t.Fatalf("TempFile() error: %v", err)
	}
	defer f.Close()

	info, err := os.Stat(f.Name())
	if err != nil {
		t.Fatalf("stat temp file: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o600 {
		t.Errorf("permission bits = %o under umask 0477, want 600", got)
	}

	// The ambient mask must be restored after the call.
	if cur := unix.Umask(0o477); cur != 0o477 {
		t.Errorf("umask after TempFile = %o, want 477 restored", cur)
	}
}

func TestTempFileConcurrentUniqueness(t *testing.T) {
	const n = 32
	dir := t.TempDir()
	names := make([]string, n)

	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			f, err := fsutil.TempFile(dir, "race")
			if err != nil {
				return err
			}
			names[i] = f.Name()
			return f.Close()
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent TempFile: %v", err)
	}

	seen := make(map[string]struct{}, n)
	for _, name := range names {
		if !strings.HasPrefix(filepath.Base(name), "race.") {
			t.Errorf("unexpected name %q", name)
		}
		if _, dup := seen[name]; dup {
			t.Errorf("duplicate temp file name %q", name)
		}
		seen[name] = struct{}{}
	}
}
