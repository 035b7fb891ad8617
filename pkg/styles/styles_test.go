package styles

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/respath/pkg/anchor"
	"github.com/arthur-debert/respath/pkg/errors"
	"github.com/arthur-debert/respath/pkg/testutil"
	"github.com/arthur-debert/respath/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

var literal = anchor.Matcher{Mode: anchor.MatchLiteral}

func TestForAndAll(t *testing.T) {
	for _, s := range types.AllStyles() {
		h, err := For(s)
		require.NoError(t, err)
		assert.Equal(t, s, h.Style())
	}

	_, err := For(types.StyleUnknown)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	var order []types.Style
	for _, h := range All() {
		order = append(order, h.Style())
	}
	assert.Equal(t, types.AllStyles(), order)
}

func TestGrammarRecognition(t *testing.T) {
	// a catch-all config: one entry per style with a one-token anchor equal to
	// the first segment each test input produces
	cfg := testutil.Config("any",
		testutil.Entry("r", map[types.Style][]string{
			types.StyleDriveLetter: {"C:"},
			types.StyleUNC:         {"host"},
			types.StylePosix:       {"root"},
			types.StyleRFS:         {"root"},
			types.StyleURI:         {"res"},
		}),
	)

	tests := []struct {
		raw    string
		claims []types.Style
	}{
		{`C:\dir\file`, []types.Style{types.StyleDriveLetter}},
		{`c:/dir/file`, []types.Style{types.StyleDriveLetter}},
		{`\\host\share\dir`, []types.Style{types.StyleUNC}},
		{`//host/share/dir`, []types.Style{types.StyleUNC}},
		{`\\host-1\share`, nil},
		{"/root/dir", []types.Style{types.StylePosix, types.StyleRFS}},
		{"//root/dir", nil},
		{`/root\dir`, nil},
		{"/", nil},
		{"res://a/b", []types.Style{types.StyleURI}},
		{"res://a://b", nil},
		{"relative/path", nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var claimed []types.Style
			for _, h := range All() {
				if _, ok := h.Detect(tt.raw, cfg, literal); ok {
					claimed = append(claimed, h.Style())
				}
			}
			assert.Equal(t, tt.claims, claimed)
		})
	}
}

func TestUNCHyphenatedHost(t *testing.T) {
	cfg := testutil.Config("net",
		testutil.Entry("share", map[types.Style][]string{types.StyleUNC: {"host-1", "share"}}),
	)

	id, ok := NewUNC().Detect(`\\host-1\share`, cfg, literal)
	require.True(t, ok)
	assert.Equal(t, "share", id.ResourceName())
	assert.Empty(t, id.Segments())
}

func TestDriveLetterDetect(t *testing.T) {
	cfg := testutil.Config("network",
		testutil.Entry("proj", map[types.Style][]string{types.StyleDriveLetter: {"R:", "proj"}}),
	)

	id, ok := NewDriveLetter().Detect(`r:\proj\show\shot`, cfg, literal)
	require.True(t, ok)
	assert.Equal(t, types.StyleDriveLetter, id.Style())
	assert.Equal(t, "proj", id.ResourceName())
	assert.Equal(t, []string{"show", "shot"}, id.Segments())
	assert.Equal(t, "network", id.ConfigName())
}

func TestDriveLetterRender(t *testing.T) {
	cfg := testutil.Config("network",
		testutil.Entry("proj", map[types.Style][]string{types.StyleDriveLetter: {"R:", "$RLP_SITE", "proj"}}),
		testutil.Entry("home", map[types.Style][]string{types.StyleDriveLetter: {"$HOMEDRIVE", "$HOMEPATH"}}),
	)
	h := NewDriveLetter()

	proj := types.NewIdentity(types.StyleURI, []string{"show", "shot"}, nil, "proj", nil, "")
	out, err := h.Render(proj, cfg, testutil.WindowsEnv(), RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, `R:\siteA\proj\show\shot`, out)

	out, err = h.Render(proj, cfg, testutil.WindowsEnv(), RenderOptions{Separator: "/"})
	require.NoError(t, err)
	assert.Equal(t, "R:/siteA/proj/show/shot", out)

	// HOMEPATH carries its own leading backslash; the doubled separator collapses
	home := types.NewIdentity(types.StyleURI, []string{"docs"}, nil, "home", nil, "")
	out, err = h.Render(home, cfg, testutil.WindowsEnv(), RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, `C:\Users\alice\docs`, out)
}

func TestUNCRender(t *testing.T) {
	cfg := testutil.Config("network",
		testutil.Entry("proj", map[types.Style][]string{types.StyleUNC: {"rlp", "$RLP_SITE", "proj"}}),
		testutil.Entry("mapped", map[types.Style][]string{types.StyleUNC: {"R:", "proj"}}),
		testutil.Entry("prefixed", map[types.Style][]string{types.StyleUNC: {`\\rlp`, "proj"}}),
	)
	h := NewUNC()

	tests := []struct {
		resource string
		opts     RenderOptions
		expected string
	}{
		{"proj", RenderOptions{}, `\\rlp\siteA\proj\show`},
		{"proj", RenderOptions{Separator: "/"}, "//rlp/siteA/proj/show"},
		{"mapped", RenderOptions{}, `R:\proj\show`},
		{"prefixed", RenderOptions{}, `\\rlp\proj\show`},
	}

	for _, tt := range tests {
		t.Run(tt.resource+tt.opts.Separator, func(t *testing.T) {
			id := types.NewIdentity(types.StyleURI, []string{"show"}, nil, tt.resource, nil, "")
			out, err := h.Render(id, cfg, testutil.AliceEnv(), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestPosixRender(t *testing.T) {
	cfg := testutil.ScenarioConfig()
	id := types.NewIdentity(types.StyleURI, []string{"FFMpeg", "4.4.1"}, nil, "thirdbase", nil, "local")

	out, err := NewPosix().Render(id, cfg, testutil.AliceEnv(), RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, testutil.ScenarioPosixRoot+"/FFMpeg/4.4.1", out)

	relative := testutil.Config("rel",
		testutil.Entry("thirdbase", map[types.Style][]string{types.StyleRFS: {"$RLP_SITE", "thirdbase"}}),
	)
	out, err = NewRFS().Render(id, relative, testutil.AliceEnv(), RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, "/siteA/thirdbase/FFMpeg/4.4.1", out)
}

func TestRenderErrors(t *testing.T) {
	cfg := testutil.Config("local",
		testutil.Entry("thirdbase", map[types.Style][]string{
			types.StylePosix: {"$HOME", "tb"},
			types.StyleUNC:   {},
		}),
	)
	id := types.NewIdentity(types.StyleURI, nil, nil, "thirdbase", nil, "local")

	_, err := NewPosix().Render(id, cfg, nil, RenderOptions{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrPlaceholderUnresolved))

	_, err = NewUNC().Render(id, cfg, testutil.AliceEnv(), RenderOptions{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrRenderUnsupported), "empty anchor")

	_, err = NewDriveLetter().Render(id, cfg, testutil.AliceEnv(), RenderOptions{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrRenderUnsupported), "no mapping")

	_, err = NewPosix().Render(types.NewIdentity(types.StylePosix, nil, nil, "", nil, ""), cfg, testutil.AliceEnv(), RenderOptions{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrRenderUnsupported), "no resource")
}

func TestURIDetect(t *testing.T) {
	cfg := testutil.ScenarioConfig()
	h := NewURI()

	id, ok := h.Detect("thirdbase://FFMpeg/4.4.1", cfg, literal)
	require.True(t, ok)
	assert.Equal(t, "thirdbase", id.ResourceName())
	assert.Equal(t, []string{"FFMpeg", "4.4.1"}, id.Segments())
	assert.Empty(t, id.Metadata())

	id, ok = h.Detect("thirdbase@hostname=h1&site=b://FFMpeg", cfg, literal)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"hostname": "h1", "site": "b"}, id.Metadata())

	id, ok = h.Detect("thirdbase@garbage://FFMpeg", cfg, literal)
	require.True(t, ok, "malformed metadata is ignored")
	assert.Empty(t, id.Metadata())

	id, ok = h.Detect("thirdbase@hostname=h1&bad&site=b://FFMpeg", cfg, literal)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"hostname": "h1"}, id.Metadata(), "pairs before a malformed entry are kept")

	id, ok = h.Detect("thirdbase@=v://FFMpeg", cfg, literal)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"": "v"}, id.Metadata())

	_, ok = h.Detect("dist://x", cfg, literal)
	assert.False(t, ok)
}

func TestURIRender(t *testing.T) {
	cfg := testutil.Config("local",
		testutil.Entry("thirdbase", map[types.Style][]string{types.StyleURI: {"thirdbase"}}),
		testutil.Entry("tools", map[types.Style][]string{types.StyleURI: {"apps", "tools"}}),
	)
	h := NewURI()

	id := types.NewIdentity(types.StyleURI, []string{"a"}, nil, "thirdbase", map[string]string{"site": "b", "hostname": "h1"}, "")
	out, err := h.Render(id, cfg, nil, RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, "thirdbase@hostname=h1&site=b://a", out)

	// multi-token anchors detect and render symmetrically
	tools, ok := h.Detect("apps://tools/bin/x", cfg, literal)
	require.True(t, ok)
	assert.Equal(t, "tools", tools.ResourceName())
	out, err = h.Render(tools, cfg, nil, RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, "apps://tools/bin/x", out)
}

func TestDetectOrderWithinConfig(t *testing.T) {
	// a Posix path under a config mapping both Posix and RFS goes to Posix
	cfg := testutil.Config("both",
		testutil.Entry("r", map[types.Style][]string{
			types.StylePosix: {"mnt"},
			types.StyleRFS:   {"mnt"},
		}),
	)
	for _, h := range All() {
		if id, ok := h.Detect("/mnt/x", cfg, literal); ok {
			assert.Equal(t, types.StylePosix, id.Style())
			return
		}
	}
	t.Fatal("no handler claimed the path")
}

func TestDetectLogsCandidates(t *testing.T) {
	var buf bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	cfg := testutil.Config("any")
	NewDriveLetter().Detect(`C:\x`, cfg, literal)
	NewUNC().Detect(`\\host\share`, cfg, literal)
	NewPosix().Detect("/root/x", cfg, literal)
	NewURI().Detect("r@broken://x", cfg, literal)

	out := buf.String()
	for _, component := range []string{"styles.drive_letter", "styles.unc", "styles.posix", "styles.uri"} {
		assert.Contains(t, out, `"component":"`+component+`"`)
	}
	assert.Contains(t, out, "Could not parse URI metadata")
}
