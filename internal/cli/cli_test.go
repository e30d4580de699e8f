package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRegistry = `version = 1

[[icons]]
name = "heart"
component = "Heart"
category = "social"
motion = "pulse"
keywords = ["love", "like"]

[[icons]]
name = "heart-pulse"
component = "HeartPulse"
category = "social"
motion = "pulse"

[[icons]]
name = "home"
component = "Home"
category = "navigation"
motion = "bounce"

[[icons]]
name = "hotdog"
component = "Hotdog"
category = "food"
motion = "shake"

[[icons]]
name = "check"
component = "Check"
category = "status"
motion = "draw"
`

type testApp struct {
	*App
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	copied []string
	paged  string
	dir    string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	t.Setenv("LIVELY_ICONS_DIR", "")
	t.Setenv("LIVELY_SEARCH_LIMIT", "")
	t.Setenv("LIVELY_REDUCED_MOTION", "")
	t.Setenv("LIVELY_ANIMATIONS_ENABLED", "")
	t.Setenv("LIVELY_DEFAULT_MOTION", "")
	t.Setenv("LIVELY_DEFAULT_TRIGGER", "")

	dir := t.TempDir()
	registry := filepath.Join(dir, "icons.toml")
	require.NoError(t, os.WriteFile(registry, []byte(testRegistry), 0o644))

	ta := &testApp{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}, dir: dir}
	ta.App = New(ta.stdout, ta.stderr, "1.2.3")
	ta.Copy = func(s string) error {
		ta.copied = append(ta.copied, s)
		return nil
	}
	ta.Pager = func(r io.Reader) error {
		b, err := io.ReadAll(r)
		ta.paged = string(b)
		return err
	}
	return ta
}

// run executes a command against the test registry and an absent config file
func (ta *testApp) run(args ...string) int {
	ta.stdout.Reset()
	ta.stderr.Reset()
	full := append([]string{}, args...)
	full = append(full, "--config", filepath.Join(ta.dir, "missing", "config.toml"))
	if len(args) > 0 && args[0] != "version" && args[0] != "help" {
		if !containsFlag(args, "--dir") {
			full = append(full, "--dir", filepath.Join(ta.dir, "icons.toml"))
		}
	}
	return ta.Run(context.Background(), full)
}

func containsFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestVersionAndHelp(t *testing.T) {
	ta := newTestApp(t)

	assert.Equal(t, ExitOK, ta.Run(context.Background(), []string{"version"}))
	assert.Equal(t, "lively 1.2.3\n", ta.stdout.String())

	ta.stdout.Reset()
	assert.Equal(t, ExitOK, ta.Run(context.Background(), []string{"help"}))
	assert.Contains(t, ta.stdout.String(), "lively search <query...>")
}

func TestUnknownCommandIsUsageError(t *testing.T) {
	ta := newTestApp(t)
	assert.Equal(t, ExitUsage, ta.Run(context.Background(), []string{"frobnicate"}))
	assert.Contains(t, ta.stderr.String(), `unknown command "frobnicate"`)
	assert.Contains(t, ta.stderr.String(), "Usage:")
}

func TestSearchRanksNames(t *testing.T) {
	ta := newTestApp(t)

	require.Equal(t, ExitOK, ta.run("search", "he"))
	assert.Equal(t, []string{"heart", "heart-pulse", "check", "home"}, lines(ta.stdout.String()))

	require.Equal(t, ExitOK, ta.run("search", "-n", "1", "he"))
	assert.Equal(t, []string{"heart"}, lines(ta.stdout.String()))
}

func TestSearchMultiWordQuery(t *testing.T) {
	ta := newTestApp(t)

	require.Equal(t, ExitOK, ta.run("search", "heart", "pulse"))
	assert.Equal(t, "heart-pulse", lines(ta.stdout.String())[0])
}

func TestSearchKeywordsAndScores(t *testing.T) {
	ta := newTestApp(t)

	require.Equal(t, ExitOK, ta.run("search", "--scores", "love"))
	out := lines(ta.stdout.String())
	require.Len(t, out, 1)
	assert.Regexp(t, `^heart\t\d+\.\d\t\(love\)$`, out[0])

	assert.Equal(t, ExitError, ta.run("search", "--keywords=false", "love"))
	assert.Contains(t, ta.stderr.String(), "no icons match")
	assert.Empty(t, ta.stdout.String())
}

func TestSearchFilters(t *testing.T) {
	ta := newTestApp(t)

	require.Equal(t, ExitOK, ta.run("search", "motion:pulse"))
	assert.Equal(t, []string{"heart", "heart-pulse"}, lines(ta.stdout.String()))

	require.Equal(t, ExitOK, ta.run("search", "h", "category:nav"))
	assert.Equal(t, []string{"home"}, lines(ta.stdout.String()))

	assert.Equal(t, ExitUsage, ta.run("search", "motion:wobble"))
	assert.Contains(t, ta.stderr.String(), "motion:wobble")
}

func TestSearchNeedsQuery(t *testing.T) {
	ta := newTestApp(t)
	assert.Equal(t, ExitUsage, ta.run("search"))
	assert.Equal(t, ExitUsage, ta.run("search", "  "))
	assert.Equal(t, ExitUsage, ta.run("search", "--nope", "heart"))
}

func TestSearchCopiesTopHit(t *testing.T) {
	ta := newTestApp(t)

	require.Equal(t, ExitOK, ta.run("search", "--copy", "heart"))
	assert.Equal(t, []string{"<Heart />"}, ta.copied)
	assert.Contains(t, ta.stderr.String(), "copied <Heart />")

	ta.Copy = func(string) error { return errors.New("no display") }
	assert.Equal(t, ExitError, ta.run("search", "--copy", "heart"))
	assert.Contains(t, ta.stderr.String(), "no display")
}

func TestSearchScansSourceDirectory(t *testing.T) {
	ta := newTestApp(t)
	src := filepath.Join(ta.dir, "src")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "node_modules"), 0o755))
	for _, f := range []string{"Heart.tsx", "HeartPulse.tsx", "Home.tsx", "Hotdog.tsx", "index.ts", "node_modules/Hexagon.tsx"} {
		require.NoError(t, os.WriteFile(filepath.Join(src, f), []byte("export {}\n"), 0o644))
	}

	require.Equal(t, ExitOK, ta.run("search", "--dir", src, "he"))
	assert.Equal(t, []string{"heart", "heart-pulse", "home"}, lines(ta.stdout.String()))

	assert.Equal(t, ExitError, ta.run("search", "--dir", filepath.Join(ta.dir, "nowhere"), "he"))
}

func TestList(t *testing.T) {
	ta := newTestApp(t)

	require.Equal(t, ExitOK, ta.run("list"))
	out := lines(ta.stdout.String())
	require.Len(t, out, 5)
	assert.Equal(t, []string{"heart", "social", "pulse"}, strings.Fields(out[0]))

	require.Equal(t, ExitOK, ta.run("list", "--category", "social"))
	assert.Len(t, lines(ta.stdout.String()), 2)

	require.Equal(t, ExitOK, ta.run("list", "--motion", "Draw"))
	assert.Equal(t, []string{"check", "status", "draw"}, strings.Fields(ta.stdout.String()))

	assert.Equal(t, ExitUsage, ta.run("list", "--motion", "wobble"))
	assert.Equal(t, ExitUsage, ta.run("list", "extra"))
}

func TestListInPager(t *testing.T) {
	ta := newTestApp(t)

	require.Equal(t, ExitOK, ta.run("list", "--pager"))
	assert.Empty(t, ta.stdout.String())
	assert.Contains(t, ta.paged, "hotdog")
}

func TestCategories(t *testing.T) {
	ta := newTestApp(t)

	require.Equal(t, ExitOK, ta.run("categories"))
	out := lines(ta.stdout.String())
	require.Len(t, out, 4)
	assert.Equal(t, []string{"food", "1"}, strings.Fields(out[0]))
	assert.Equal(t, []string{"social", "2"}, strings.Fields(out[2]))
}

func resolveJSON(t *testing.T, ta *testApp, args ...string) map[string]any {
	t.Helper()
	require.Equal(t, ExitOK, ta.run(append([]string{"resolve"}, args...)...), ta.stderr.String())
	var out map[string]any
	require.NoError(t, json.Unmarshal(ta.stdout.Bytes(), &out))
	return out
}

func TestResolveDefaults(t *testing.T) {
	ta := newTestApp(t)

	out := resolveJSON(t, ta)
	assert.Equal(t, true, out["animated"])
	assert.Equal(t, "scale", out["motion"])
	assert.Equal(t, "hover", out["trigger"])
}

func TestResolveIconAndFlags(t *testing.T) {
	ta := newTestApp(t)

	out := resolveJSON(t, ta, "heart")
	assert.Equal(t, "pulse", out["motion"])

	out = resolveJSON(t, ta, "check", "--trigger", "in-view")
	assert.Equal(t, "draw", out["motion"])
	assert.Equal(t, "inView", out["trigger"])
	wrapper, ok := out["wrapper"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, wrapper)

	out = resolveJSON(t, ta, "heart", "--motion", "spin")
	assert.Equal(t, "spin", out["motion"])

	assert.Equal(t, ExitError, ta.run("resolve", "unicorn"))
	assert.Equal(t, ExitUsage, ta.run("resolve", "heart", "home"))
}

func TestResolvePrecedence(t *testing.T) {
	ta := newTestApp(t)

	out := resolveJSON(t, ta, "--reduced-motion")
	assert.Equal(t, false, out["animated"])

	out = resolveJSON(t, ta, "--disabled")
	assert.Equal(t, false, out["animated"])

	out = resolveJSON(t, ta, "--reduced-motion", "--disabled", "--animated", "true")
	assert.Equal(t, true, out["animated"])

	out = resolveJSON(t, ta, "--animated", "false")
	assert.Equal(t, false, out["animated"])

	assert.Equal(t, ExitUsage, ta.run("resolve", "--animated", "maybe"))
}

func TestResolveUnknownValuesFallBack(t *testing.T) {
	ta := newTestApp(t)

	out := resolveJSON(t, ta, "--motion", "wobble", "--trigger", "doubletap")
	assert.Equal(t, "scale", out["motion"])
	assert.Equal(t, "hover", out["trigger"])
	assert.Contains(t, ta.stderr.String(), `unknown motion type "wobble"`)
	assert.Contains(t, ta.stderr.String(), `unknown trigger type "doubletap"`)
}

func TestResolveReadsConfig(t *testing.T) {
	ta := newTestApp(t)
	cfgPath := filepath.Join(ta.dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[animation]\nreduced_motion = true\ndefault_trigger = \"loop\"\n"), 0o644))

	require.Equal(t, ExitOK, ta.Run(context.Background(), []string{"resolve", "--config", cfgPath}))
	var out map[string]any
	require.NoError(t, json.Unmarshal(ta.stdout.Bytes(), &out))
	assert.Equal(t, false, out["animated"])
	assert.Equal(t, "loop", out["trigger"])

	ta.stdout.Reset()
	require.Equal(t, ExitOK, ta.Run(context.Background(), []string{"resolve", "--config", cfgPath, "--reduced-motion=false"}))
	require.NoError(t, json.Unmarshal(ta.stdout.Bytes(), &out))
	assert.Equal(t, true, out["animated"])
}

func TestBrokenConfigFails(t *testing.T) {
	ta := newTestApp(t)
	cfgPath := filepath.Join(ta.dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("version = \n"), 0o644))

	assert.Equal(t, ExitError, ta.Run(context.Background(), []string{"categories", "--config", cfgPath}))
	assert.Contains(t, ta.stderr.String(), "failed to load config")
}

func TestPickRejectsWatchWithoutDir(t *testing.T) {
	ta := newTestApp(t)
	assert.Equal(t, ExitUsage, ta.run("pick", "--watch"))
	assert.Equal(t, ExitUsage, ta.run("pick", "stray"))
}

func TestLoadIconsBuiltin(t *testing.T) {
	icons, err := loadIcons(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, icons)
}
