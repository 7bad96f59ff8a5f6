package shell_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/typeget/internal/adapters/shell"
	"go.trai.ch/typeget/internal/core/domain"
)

// writeFakeManager writes an executable script that behaves like a package
// manager: it records its arguments and exits with the given status.
func writeFakeManager(t *testing.T, body string) (manager, record string) {
	t.Helper()
	dir := t.TempDir()
	record = filepath.Join(dir, "calls.log")
	manager = filepath.Join(dir, "fakepm")

	script := "#!/bin/sh\necho \"$@\" >> " + record + "\n" + body + "\n"
	require.NoError(t, os.WriteFile(manager, []byte(script), 0o700)) //nolint:gosec // test script must be executable
	return manager, record
}

func newQuietInstaller() *shell.Installer {
	return &shell.Installer{Stdin: strings.NewReader(""), Stdout: io.Discard, Stderr: io.Discard}
}

func TestInstaller_Install_PassesArguments(t *testing.T) {
	manager, record := writeFakeManager(t, "echo installed")

	var stdout bytes.Buffer
	installer := &shell.Installer{Stdout: &stdout, Stderr: io.Discard}

	err := installer.Install(context.Background(), domain.InstallJob{Manager: manager, Package: "@types/lodash"})
	require.NoError(t, err)

	calls, err := os.ReadFile(record) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, "install @types/lodash --save-dev\n", string(calls))
	assert.Equal(t, "installed\n", stdout.String())
}

func TestInstaller_Install_IgnoresExitStatus(t *testing.T) {
	manager, record := writeFakeManager(t, "exit 3")

	err := newQuietInstaller().Install(context.Background(), domain.InstallJob{Manager: manager, Package: "@types/missing"})
	require.NoError(t, err)

	_, err = os.Stat(record)
	assert.NoError(t, err, "package manager should have run")
}

func TestInstaller_Install_SpawnFailure(t *testing.T) {
	job := domain.InstallJob{Manager: "typeget-nonexistent-pm-xyz123", Package: "@types/react"}

	err := newQuietInstaller().Install(context.Background(), job)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProcessSpawnFailed)
}

func TestInstaller_Install_CancelledContext(t *testing.T) {
	manager, _ := writeFakeManager(t, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newQuietInstaller().Install(ctx, domain.InstallJob{Manager: manager, Package: "@types/node"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInstallInterrupted)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInstaller_Install_Timeout(t *testing.T) {
	manager, _ := writeFakeManager(t, "exec sleep 5")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := newQuietInstaller().Install(ctx, domain.InstallJob{Manager: manager, Package: "@types/slow"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInstallInterrupted)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestNewInstaller_InheritsStreams(t *testing.T) {
	installer := shell.NewInstaller()
	assert.Equal(t, os.Stdin, installer.Stdin)
	assert.Equal(t, os.Stdout, installer.Stdout)
	assert.Equal(t, os.Stderr, installer.Stderr)
}
