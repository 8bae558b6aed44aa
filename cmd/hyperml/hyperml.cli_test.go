package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/krizzdewizz/hyperml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test data constants
const (
	testDocument = `element: html
attrs:
  lang: en
children:
  - element: h1
    text: Hi & bye
  - element: br
  - text: x<y
  - raw: "<!-- c -->"
`
	testExpectedHTML = `<html lang="en"><h1>Hi &amp; bye</h1><br>x&lt;y<!-- c --></html>` + "\n"

	testXMLDocument = `element: a
children:
  - element: b
`
	testInvalidDocument = `text: hello
raw: world
`
	testUnbalancedHTMLDocument = `element: img
children:
  - text: inside
`
)

// setupTestData creates test files in a temp directory
func setupTestData(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "page.yaml"), []byte(testDocument), FilePermissions))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "invalid.yaml"), []byte(testInvalidDocument), FilePermissions))

	return tmpDir
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := run(args, strings.NewReader(stdin), stdout, stderr)
	return code, stdout.String(), stderr.String()
}

// ==================== run() dispatch tests ====================

func TestRun_NoArgs_ShowsHelp(t *testing.T) {
	code, stdout, _ := runCLI(t, "")

	assert.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stdout, CmdNameRoot)
	assert.Contains(t, stdout, CmdNameRender)
}

func TestRun_UnknownCommand(t *testing.T) {
	code, _, stderr := runCLI(t, "", "unknown")

	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stderr, ErrMsgUsage)
}

// ==================== render tests ====================

func TestRender_File(t *testing.T) {
	dir := setupTestData(t)

	code, stdout, stderr := runCLI(t, "", CmdNameRender, "-i", filepath.Join(dir, "page.yaml"))

	require.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Equal(t, testExpectedHTML, stdout)
}

func TestRender_Stdin(t *testing.T) {
	code, stdout, stderr := runCLI(t, testDocument, CmdNameRender, "--input", InputSourceStdin)

	require.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Equal(t, testExpectedHTML, stdout)
}

func TestRender_OutputFile(t *testing.T) {
	dir := setupTestData(t)
	outPath := filepath.Join(dir, "page.html")

	code, stdout, stderr := runCLI(t, "", CmdNameRender,
		"-i", filepath.Join(dir, "page.yaml"),
		"-o", outPath,
	)

	require.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Empty(t, stdout)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, testExpectedHTML, string(content))
}

func TestRender_Flavors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "xml",
			args:     []string{"-F", hyperml.FlavorNameXML},
			expected: "<a><b></b></a>\n",
		},
		{
			name:     "xml self-closing",
			args:     []string{"--flavor", hyperml.FlavorNameXML, "--" + FlagSelfClosing},
			expected: "<a><b/></a>\n",
		},
		{
			name:     "html default",
			args:     nil,
			expected: "<a><b></b></a>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{CmdNameRender, "-i", InputSourceStdin}, tt.args...)
			code, stdout, stderr := runCLI(t, testXMLDocument, args...)

			require.Equal(t, ExitCodeSuccess, code, stderr)
			assert.Equal(t, tt.expected, stdout)
		})
	}
}

func TestRender_Errors(t *testing.T) {
	dir := setupTestData(t)

	tests := []struct {
		name     string
		stdin    string
		args     []string
		code     int
		contains string
	}{
		{
			name:     "missing input",
			args:     []string{CmdNameRender},
			code:     ExitCodeUsageError,
			contains: ErrMsgMissingInput,
		},
		{
			name:     "unknown flavor",
			args:     []string{CmdNameRender, "-i", "-", "-F", "svg"},
			code:     ExitCodeUsageError,
			contains: ErrMsgUnknownFlavor,
		},
		{
			name:     "unknown flag",
			args:     []string{CmdNameRender, "--nope"},
			code:     ExitCodeUsageError,
			contains: ErrMsgUsage,
		},
		{
			name:     "file not found",
			args:     []string{CmdNameRender, "-i", filepath.Join(dir, "missing.yaml")},
			code:     ExitCodeInputError,
			contains: ErrMsgReadFileFailed,
		},
		{
			name:     "invalid document",
			args:     []string{CmdNameRender, "-i", filepath.Join(dir, "invalid.yaml")},
			code:     ExitCodeDocumentFail,
			contains: hyperml.ErrMsgDocumentMixedContent,
		},
		{
			name:     "structural error",
			stdin:    testUnbalancedHTMLDocument,
			args:     []string{CmdNameRender, "-i", "-"},
			code:     ExitCodeError,
			contains: ErrMsgRenderFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.stdin, tt.args...)

			assert.Equal(t, tt.code, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.contains)
		})
	}
}

func TestRender_Verbose(t *testing.T) {
	code, _, stderr := runCLI(t, testXMLDocument, CmdNameRender, "-i", "-", "-v")

	require.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stderr, hyperml.LogMsgDocumentLoaded)
	assert.Contains(t, stderr, hyperml.LogMsgRenderEnd)
}

// ==================== version tests ====================

func TestVersion_Text(t *testing.T) {
	code, stdout, _ := runCLI(t, "", CmdNameVersion)

	assert.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stdout, hyperml.Version)
}

func TestVersion_JSON(t *testing.T) {
	code, stdout, _ := runCLI(t, "", CmdNameVersion, "--format", OutputFormatJSON)
	require.Equal(t, ExitCodeSuccess, code)

	var out versionOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, hyperml.Version, out.Version)
	assert.NotEmpty(t, out.GoVersion)
}

func TestVersion_InvalidFormat(t *testing.T) {
	code, _, stderr := runCLI(t, "", CmdNameVersion, "--format", "yaml")

	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stderr, ErrMsgInvalidFormat)
}

// ==================== document source tests ====================

func TestReadDocumentSource(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		dir := setupTestData(t)
		data, err := readDocumentSource(filepath.Join(dir, "page.yaml"), strings.NewReader("ignored"))
		require.NoError(t, err)
		assert.Equal(t, testDocument, string(data))
	})

	t.Run("stdin", func(t *testing.T) {
		data, err := readDocumentSource(InputSourceStdin, strings.NewReader(testXMLDocument))
		require.NoError(t, err)
		assert.Equal(t, testXMLDocument, string(data))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readDocumentSource(filepath.Join(t.TempDir(), "none.yaml"), nil)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
