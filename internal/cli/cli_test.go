package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/concepts/internal/cli"
)

// execute runs the root command with args and a dotenv path that does not
// exist unless the test passes its own --env-file.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCommand(&out, &errOut)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// ── Selection ────────────────────────────────────────────────────────────────

func TestSelectAll(t *testing.T) {
	for _, names := range [][]string{nil, {}, {"", "  "}} {
		got, err := cli.Select(names)
		require.NoError(t, err)
		assert.Equal(t, cli.Names(), namesOf(got))
	}
}

func TestSelectKeepsTourOrder(t *testing.T) {
	got, err := cli.Select([]string{"functions", "Types", "functions"})
	require.NoError(t, err)
	assert.Equal(t, []string{"types", "functions"}, namesOf(got))
}

func TestSelectUnknown(t *testing.T) {
	_, err := cli.Select([]string{"generics"})
	require.ErrorIs(t, err, cli.ErrUnknownSection)
	assert.Contains(t, err.Error(), `"generics"`)
}

func namesOf(ss []cli.Section) []string {
	var out []string
	for _, s := range ss {
		out = append(out, s.Name)
	}
	return out
}

// ── Command ──────────────────────────────────────────────────────────────────

func TestRunAllSections(t *testing.T) {
	out, _, err := execute(t)
	require.NoError(t, err)

	// One marker per section, in tour order.
	markers := []string{"3, 2, 1, Nil", "mutable integer: 3", "sum: 15", "functional style: 5456"}
	last := -1
	for _, m := range markers {
		i := strings.Index(out, m)
		require.GreaterOrEqual(t, i, 0, "missing %q", m)
		assert.Greater(t, i, last, "%q out of order", m)
		last = i
	}
}

func TestRunOneSection(t *testing.T) {
	out, _, err := execute(t, "--section", "conversion")
	require.NoError(t, err)
	assert.Contains(t, out, "sum: 15")
	assert.NotContains(t, out, "3, 2, 1, Nil")
}

func TestRunUnknownSection(t *testing.T) {
	_, stderr, err := execute(t, "-s", "nope")
	require.ErrorIs(t, err, cli.ErrUnknownSection)
	assert.Contains(t, stderr, "section selection failed")
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "-s", "binding", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "section start")
	assert.Contains(t, stderr, "name=binding")
}

func TestBadLogLevel(t *testing.T) {
	_, _, err := execute(t, "--log-level", "loud")
	require.ErrorIs(t, err, cli.ErrBadLogLevel)
}

func TestListCommand(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	for _, name := range cli.Names() {
		assert.Contains(t, out, name)
	}
}

// ── Environment defaults ─────────────────────────────────────────────────────

func TestEnvFileSuppliesDefaults(t *testing.T) {
	t.Setenv("CONCEPTS_SECTIONS", "")
	os.Unsetenv("CONCEPTS_SECTIONS")

	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("CONCEPTS_SECTIONS=binding\n"), 0o600))

	var out bytes.Buffer
	cmd := cli.NewRootCommand(&out, &bytes.Buffer{})
	cmd.SetArgs([]string{"--env-file", envFile})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "mutable integer: 3")
	assert.NotContains(t, out.String(), "sum: 15")
}

func TestFlagBeatsEnv(t *testing.T) {
	t.Setenv("CONCEPTS_SECTIONS", "binding")

	out, _, err := execute(t, "-s", "conversion")
	require.NoError(t, err)
	assert.Contains(t, out, "sum: 15")
	assert.NotContains(t, out, "mutable integer: 3")
}
