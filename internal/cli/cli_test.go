package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leofalp/agentplan/core/plan"
	"github.com/leofalp/agentplan/core/script"
	"github.com/leofalp/agentplan/core/validate"
	"github.com/leofalp/agentplan/internal/config"
	"github.com/leofalp/agentplan/providers/observability/slogobs"
	"github.com/leofalp/agentplan/providers/observability/zapobs"
)

const headingPlan = "## Unit 1: Cost Analyzer\nPurpose: Analyze spend\n- check budgets\n" +
	"## Unit Suite (2 Units)\n...\n" +
	"## Unit 2: Forecast Bot\nPurpose: Predict trends"

const delimitedUnits = "--- UNIT 1 ---\nName: Risk Tracker\n## Instructions\nTrack risks\n" +
	"## Demo Script\nOpen the dashboard\n## Business Value\nFewer surprises\n"

// run executes the command tree with args and stdin, returning stdout and
// the command error.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestPlan_Stdin(t *testing.T) {
	out, err := run(t, headingPlan, "plan")
	require.NoError(t, err)

	var got plan.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, plan.StageHeadings, got.Strategy)
	require.Len(t, got.Units, 2)
	assert.Equal(t, "Cost Analyzer", got.Units[0].Name)
	assert.Equal(t, "Forecast Bot", got.Units[1].Name)
}

func TestPlan_FileYAML(t *testing.T) {
	path := writeFile(t, "plan.md", headingPlan)

	out, err := run(t, "", "plan", path, "-o", "yaml")
	require.NoError(t, err)

	var got plan.Plan
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got.Units, 2)
	assert.Equal(t, 2, got.Units[1].Number)
}

func TestPlan_KeywordAndSentinel(t *testing.T) {
	text := "## Agent 1: Alpha Unit\nPurpose: A\nSTOP\n## Agent 2: Beta Unit\nPurpose: B"

	out, err := run(t, text, "plan", "--keyword", "Agent", "--sentinel", "STOP")
	require.NoError(t, err)

	var got plan.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Units, 1)
	assert.Equal(t, "Alpha Unit", got.Units[0].Name)
}

func TestPlan_Envelope(t *testing.T) {
	body, err := json.Marshal(map[string]any{
		"choices": []any{map[string]any{"message": map[string]any{"content": headingPlan}}},
	})
	require.NoError(t, err)

	out, err := run(t, string(body), "plan", "--envelope")
	require.NoError(t, err)

	var got plan.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Units, 2)
}

func TestPlan_EnvelopeWithoutChoices(t *testing.T) {
	_, err := run(t, `{"choices": []}`, "plan", "--envelope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unwrap envelope")
}

func TestPlan_MissingFile(t *testing.T) {
	_, err := run(t, "", "plan", filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)
}

func TestUnits_Valid(t *testing.T) {
	out, err := run(t, delimitedUnits, "units")
	require.NoError(t, err)

	var got unitsReport
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Validation.Valid)
	require.Len(t, got.Units, 1)
	assert.Equal(t, "unit-1", got.Units[0].ID)
	assert.Equal(t, "Risk Tracker", got.Units[0].Name)
}

func TestUnits_EmptyResponseFails(t *testing.T) {
	out, err := run(t, "   ", "units")
	require.Error(t, err)
	assert.Contains(t, err.Error(), validate.ErrEmptyResponse)

	// The report is still printed.
	var got unitsReport
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.Validation.Valid)
}

func TestCheckDocs(t *testing.T) {
	clean := writeFile(t, "guide.md", "How to run the demo.")
	dirty := writeFile(t, "brief.html", "<p>Replace with actual customer name</p>")

	t.Run("clean", func(t *testing.T) {
		out, err := run(t, "", "check-docs", "--library", clean)
		require.NoError(t, err)

		var got validate.PlaceholderResult
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.True(t, got.Valid)
	})

	t.Run("placeholder in reference", func(t *testing.T) {
		_, err := run(t, "", "check-docs", "--library", clean, "--reference", dirty)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"brief.html"`)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "", "check-docs", "--library", filepath.Join(t.TempDir(), "nope.md"))
		assert.Error(t, err)
	})
}

func TestScript(t *testing.T) {
	t.Run("sections", func(t *testing.T) {
		out, err := run(t, delimitedUnits, "script", "--company", "Acme Corp")
		require.NoError(t, err)

		var got script.Script
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got.Sections, 4)
		assert.Equal(t, "Open the dashboard", got.Sections[1].Content)
		assert.Equal(t, "Fewer surprises", got.Sections[2].Content)
	})

	t.Run("markdown", func(t *testing.T) {
		out, err := run(t, delimitedUnits, "script", "--markdown")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "# Demo script"))
		assert.Contains(t, out, "## Unit 1: Risk Tracker")
	})
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := run(t, headingPlan, "plan", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output must be")
}

func TestNewObserver(t *testing.T) {
	obs, sync, err := newObserver(config.Log{Backend: config.BackendZap, Level: "debug", Format: "json"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &zapobs.Observer{}, obs)
	assert.NoError(t, sync())

	var buf bytes.Buffer
	obs, sync, err = newObserver(config.Log{Backend: config.BackendSlog, Level: "info"}, &buf)
	require.NoError(t, err)
	assert.IsType(t, &slogobs.Observer{}, obs)
	assert.Nil(t, sync)
}
