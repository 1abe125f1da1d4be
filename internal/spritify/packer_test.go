package spritify

import (
	"bytes"
	"io"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/spritify/internal/css"
)

// fakeImages maps slash paths to width/height
type fakeImages map[string][2]int

func (f fakeImages) Dimensions(path string) (int, int, error) {
	size, ok := f[filepath.ToSlash(path)]
	if !ok {
		return 0, 0, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return size[0], size[1], nil
}

var testPackConfig = PackConfig{MaxWidth: 32, MaxHeight: 32, Padding: 200}

func packCSS(t *testing.T, content string, images fakeImages) (*css.Stylesheet, *PackResult, error) {
	t.Helper()

	sheet, err := css.Parse(content)
	require.NoError(t, err)

	result, err := Pack(sheet, PackOptions{
		PackConfig: testPackConfig,
		Images:     images,
		Logger:     log.New(io.Discard),
	})
	return sheet, result, err
}

func TestPackScenarios(t *testing.T) {
	small := [2]int{10, 10}

	tests := []struct {
		name      string
		css       string
		images    fakeImages
		want      string
		slots     []string
		selectors []string
	}{
		{
			name:      "single rule",
			css:       ".a{background:url('x.png');}",
			images:    fakeImages{"x.png": small},
			want:      ".a{background-position:0 0;}\n",
			slots:     []string{"x.png"},
			selectors: []string{".a"},
		},
		{
			name:      "explicit offset only added where given",
			css:       ".a{background:url('x.png');} .b{background:url('x.png') 5px 5px;}",
			images:    fakeImages{"x.png": small},
			want:      ".a{background-position:0 0;}\n.b{background-position:5px 5px;}\n",
			slots:     []string{"x.png"},
			selectors: []string{".a", ".b"},
		},
		{
			name:      "color literal extracted",
			css:       ".c{background:#123 url('y.png');}",
			images:    fakeImages{"y.png": small},
			want:      ".c{background-position:0 0;background-color:#123;}\n",
			slots:     []string{"y.png"},
			selectors: []string{".c"},
		},
		{
			name:      "named color extracted",
			css:       `.c{background:transparent url("y.png") no-repeat;}`,
			images:    fakeImages{"y.png": small},
			want:      ".c{background-position:0 0;background-color:transparent;}\n",
			slots:     []string{"y.png"},
			selectors: []string{".c"},
		},
		{
			name:      "media block preserved",
			css:       "@media (max-width:600px){.d{background:url('z.png');}}",
			images:    fakeImages{"z.png": small},
			want:      "@media (max-width:600px){\n.d{background-position:0 0;}\n}\n",
			slots:     []string{"z.png"},
			selectors: []string{".d"},
		},
		{
			name: "slots follow first occurrence",
			css: `.a{background:url('a.png');}
			      .b{background:url('b.png');}
			      .c{background:url('c.png');}
			      .a2{background:url('a.png');}`,
			images: fakeImages{"a.png": small, "b.png": small, "c.png": small},
			want: ".a{background-position:0 0;}\n" +
				".b{background-position:0 -232px;}\n" +
				".c{background-position:0 -464px;}\n" +
				".a2{background-position:0 0;}\n",
			slots:     []string{"a.png", "b.png", "c.png"},
			selectors: []string{".a", ".b", ".c", ".a2"},
		},
		{
			name:      "explicit offset adds to slot offset",
			css:       ".a{background:url('a.png');} .b{background:url('b.png') 10px -5px;}",
			images:    fakeImages{"a.png": small, "b.png": small},
			want:      ".a{background-position:0 0;}\n.b{background-position:10px -237px;}\n",
			slots:     []string{"a.png", "b.png"},
			selectors: []string{".a", ".b"},
		},
		{
			name:      "top left keywords are zero",
			css:       ".a{background:url('a.png');} .b{background:url('b.png') top left;}",
			images:    fakeImages{"a.png": small, "b.png": small},
			want:      ".a{background-position:0 0;}\n.b{background-position:0 -232px;}\n",
			slots:     []string{"a.png", "b.png"},
			selectors: []string{".a", ".b"},
		},
		{
			name:      "two backgrounds in one rule",
			css:       ".m{background:url('a.png');background:url('b.png');}",
			images:    fakeImages{"a.png": small, "b.png": small},
			want:      ".m{background-position:0 0;background-position:0 -232px;}\n",
			slots:     []string{"a.png", "b.png"},
			selectors: []string{".m", ".m"},
		},
		{
			name:      "upper case extension",
			css:       ".a{background:url('icons/A.PNG');}",
			images:    fakeImages{"icons/A.PNG": small},
			want:      ".a{background-position:0 0;}\n",
			slots:     []string{"icons/A.PNG"},
			selectors: []string{".a"},
		},
		{
			name:      "max size is inclusive",
			css:       ".a{background:url('edge.png');}",
			images:    fakeImages{"edge.png": {32, 32}},
			want:      ".a{background-position:0 0;}\n",
			slots:     []string{"edge.png"},
			selectors: []string{".a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, result, err := packCSS(t, tt.css, tt.images)
			require.NoError(t, err)

			assert.Equal(t, tt.want, sheet.String())
			assert.Equal(t, tt.slots, result.Layout.Images)
			assert.Equal(t, tt.selectors, result.SpritedSelectors)
			assert.Equal(t, len(tt.selectors), result.PropertiesRewritten)
		})
	}
}

func TestPackLeavesIneligibleUntouched(t *testing.T) {
	tests := []struct {
		name   string
		css    string
		images fakeImages
	}{
		{
			name:   "too wide",
			css:    ".a{background:url('big.png');}",
			images: fakeImages{"big.png": {33, 10}},
		},
		{
			name:   "too tall",
			css:    ".a{background:url('big.png');}",
			images: fakeImages{"big.png": {10, 33}},
		},
		{
			name:   "center center",
			css:    ".a{background:url('x.png') Center   CENTER;}",
			images: fakeImages{"x.png": {10, 10}},
		},
		{
			name:   "opted out",
			css:    ".a{background:url('x.png');x-background-sprite:false;}",
			images: fakeImages{"x.png": {10, 10}},
		},
		{
			name:   "not a png",
			css:    ".a{background:url('x.gif');}",
			images: fakeImages{},
		},
		{
			name:   "no url",
			css:    ".a{background:#fff;}",
			images: fakeImages{},
		},
		{
			name:   "unquoted url",
			css:    ".a{background:url(x.png);}",
			images: fakeImages{},
		},
		{
			name:   "background-image is not rewritten",
			css:    ".a{background-image:url('x.png');}",
			images: fakeImages{"x.png": {10, 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, err := css.Parse(tt.css)
			require.NoError(t, err)

			sheet, result, err := packCSS(t, tt.css, tt.images)
			require.NoError(t, err)

			assert.Equal(t, before.String(), sheet.String())
			assert.Empty(t, result.Layout.Images)
			assert.Empty(t, result.SpritedSelectors)
		})
	}
}

func TestPackIneligibleReferenceDoesNotConsumeSlot(t *testing.T) {
	content := `.big{background:url('big.png');}
		.off{background:url('a.png');x-background-sprite:false;}
		.mid{background:url('a.png') center center;}
		.s{background:url('s.png');}
		.a{background:url('a.png');}`
	images := fakeImages{"big.png": {64, 64}, "a.png": {8, 8}, "s.png": {8, 8}}

	sheet, result, err := packCSS(t, content, images)
	require.NoError(t, err)

	assert.Equal(t, []string{"s.png", "a.png"}, result.Layout.Images)
	assert.Equal(t, []string{".s", ".a"}, result.SpritedSelectors)

	rules := sheet.Rules()
	assert.Equal(t, "background", rules[0].Properties[0].Key)
	assert.Equal(t, "background", rules[1].Properties[0].Key)
	assert.Equal(t, "url('a.png') center center", rules[2].Properties[0].Value)
	assert.Equal(t, css.Property{Key: "background-position", Value: "0 0"}, rules[3].Properties[0])
	assert.Equal(t, css.Property{Key: "background-position", Value: "0 -232px"}, rules[4].Properties[0])
}

func TestPackMissingImage(t *testing.T) {
	_, _, err := packCSS(t, ".e{background:url('img/missing.png');}", fakeImages{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingImage)
	assert.Contains(t, err.Error(), ".e")
	assert.Contains(t, err.Error(), "img/missing.png")
}

func TestPackMissingImageFailsEvenWhenOptedOut(t *testing.T) {
	_, _, err := packCSS(t, ".e{background:url('gone.png');x-background-sprite:false;}", fakeImages{})
	assert.ErrorIs(t, err, ErrMissingImage)
}

func TestPackSubstitutedKeywordsWarn(t *testing.T) {
	sheet, err := css.Parse(".w{background:url('x.png') bottom right;}")
	require.NoError(t, err)

	var logs bytes.Buffer
	result, err := Pack(sheet, PackOptions{
		PackConfig: testPackConfig,
		Images:     fakeImages{"x.png": {4, 4}},
		Logger:     log.New(&logs),
	})
	require.NoError(t, err)

	assert.Equal(t, ".w{background-position:0 0;}\n", sheet.String())
	require.Len(t, result.Warnings, 2)
	assert.Contains(t, result.Warnings[0], "'.w'")
	assert.Contains(t, result.Warnings[0], "'bottom'")
	assert.Contains(t, result.Warnings[0], "assuming 'top'")
	assert.Contains(t, result.Warnings[1], "'right'")
	assert.Contains(t, result.Warnings[1], "assuming 'left'")
	assert.NotContains(t, logs.String(), "Unsupported background position keyword")
}

func TestPackExplicitOffsets(t *testing.T) {
	images := fakeImages{"x.png": {4, 4}}
	tests := []struct {
		css  string
		want string
	}{
		{".a{background:url('x.png') +5px 7px;}", ".a{background-position:5px 7px;}\n"},
		{".a{background:url('x.png') 5px 7px!important;}", ".a{background-position:5px 7px;}\n"},
		{".a{background:url('x.png') 5px 7px no-repeat;}", ".a{background-position:5px 7px;}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.css, func(t *testing.T) {
			sheet, result, err := packCSS(t, tt.css, images)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sheet.String())
			assert.Empty(t, result.Warnings)
		})
	}
}

func TestPackOffsetOutOfRange(t *testing.T) {
	_, _, err := packCSS(t, ".a{background:url('x.png') 99999999999999999999px 7px;}", fakeImages{"x.png": {4, 4}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPosition)
	assert.Contains(t, err.Error(), ".a")
}

func TestPackExcluded(t *testing.T) {
	exclude, err := NewExcluder([]string{"icons/large/**"}, "")
	require.NoError(t, err)

	sheet, err := css.Parse(".a{background:url('icons/large/a.png');} .b{background:url('icons/b.png');}")
	require.NoError(t, err)

	result, err := Pack(sheet, PackOptions{
		PackConfig: testPackConfig,
		Images:     fakeImages{"icons/large/a.png": {8, 8}, "icons/b.png": {8, 8}},
		Exclude:    exclude,
		Logger:     log.New(io.Discard),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"icons/b.png"}, result.Layout.Images)
	assert.Equal(t, ".a{background:url('icons/large/a.png');}\n.b{background-position:0 0;}\n", sheet.String())
}

func TestPackResolvesAgainstBaseDir(t *testing.T) {
	sheet, err := css.Parse(".a{background:url('../img/a.png');}")
	require.NoError(t, err)

	result, err := Pack(sheet, PackOptions{
		PackConfig: testPackConfig,
		BaseDir:    "web/css",
		Images:     fakeImages{"web/img/a.png": {8, 8}},
		Logger:     log.New(io.Discard),
	})
	require.NoError(t, err)

	// Layout keeps URLs as written
	assert.Equal(t, []string{"../img/a.png"}, result.Layout.Images)
}

func TestPackDeterministic(t *testing.T) {
	content := ".a{background:url('a.png') 1px 2px;} @media print{.b{background:red url('b.png');}} .c{background:url('a.png');}"
	images := fakeImages{"a.png": {8, 8}, "b.png": {8, 8}}

	first, r1, err := packCSS(t, content, images)
	require.NoError(t, err)
	second, r2, err := packCSS(t, content, images)
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, r1.Layout, r2.Layout)
}

func TestSynthesize(t *testing.T) {
	sheet, result, err := packCSS(t, ".a{background:url('x.png');} .b{color:red;}", fakeImages{"x.png": {10, 10}})
	require.NoError(t, err)

	Synthesize(sheet, result.SpritedSelectors, "../img/sprites.png?v=1")

	assert.Equal(t,
		".a{background:url('../img/sprites.png?v=1') top left no-repeat;}\n"+
			".a{background-position:0 0;}\n"+
			".b{color:red;}\n",
		sheet.String())
}

func TestSynthesizeKeepsDuplicateSelectors(t *testing.T) {
	sheet := &css.Stylesheet{}
	Synthesize(sheet, []string{".m", ".n", ".m"}, "s.png")

	require.Len(t, sheet.Blocks, 1)
	assert.Equal(t, ".m,.n,.m", sheet.Blocks[0].(*css.Rule).Selector)
}

func TestSynthesizeNothingSprited(t *testing.T) {
	sheet := &css.Stylesheet{Blocks: []css.Block{&css.Rule{Selector: ".a", Properties: []css.Property{{Key: "color", Value: "red"}}}}}
	Synthesize(sheet, nil, "s.png")

	assert.Len(t, sheet.Blocks, 1)
}

func TestWriteStylesheetDropsDirective(t *testing.T) {
	sheet, err := css.Parse(".a{background:url('x.png');x-background-sprite:false;}")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteStylesheet(&buf, sheet, false))
	assert.Equal(t, ".a{background:url('x.png');}\n", buf.String())
}
