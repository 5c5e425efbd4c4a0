package parser_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/brimdata/bform/compiler/parser"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Golden cases live in testdata/*.yaml.  Each case names a source text
// and the expected parse: the module's AST as JSON, the rendered
// diagnostics, or both.
type goldenCase struct {
	Name   string   `yaml:"name"`
	Source string   `yaml:"source"`
	AST    string   `yaml:"ast,omitempty"`
	Errors []string `yaml:"errors,omitempty"`
}

type goldenFile struct {
	Cases []goldenCase `yaml:"cases"`
}

func TestGolden(t *testing.T) {
	paths, err := filepath.Glob("testdata/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, path := range paths {
		bb, err := os.ReadFile(path)
		require.NoError(t, err)
		var file goldenFile
		require.NoError(t, yaml.Unmarshal(bb, &file))
		for _, c := range file.Cases {
			t.Run(c.Name, func(t *testing.T) {
				a := parser.ParseModule(c.Source)
				var errs []string
				for _, m := range a.Messages() {
					errs = append(errs, m.String())
				}
				assert.Equal(t, c.Errors, errs)
				if c.AST == "" {
					return
				}
				actual, err := json.Marshal(a.Module())
				require.NoError(t, err)
				if !assert.JSONEq(t, c.AST, string(actual)) {
					t.Log(diffJSON(t, []byte(c.AST), actual))
				}
			})
		}
	}
}

func diffJSON(t *testing.T, expected, actual []byte) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(indentJSON(t, expected)),
		B:        difflib.SplitLines(indentJSON(t, actual)),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	require.NoError(t, err)
	return diff
}

func indentJSON(t *testing.T, b []byte) string {
	var buf bytes.Buffer
	require.NoError(t, json.Indent(&buf, b, "", "  "))
	return buf.String()
}
