package domain

import (
	"encoding/json"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "github.com/moofone/kitchensink-testing/internal/model"
)

func reportSnapshot() *m.RunSnapshot {
	snapshot := m.NewRunSnapshot()
	snapshot.RunID = "run-5-1-0"
	snapshot.Completed = true
	snapshot.Info.Metadata = &m.RunMetadata{OS: "linux", Arch: "amd64", GitCommit: "deadbeef", RustcVersion: "rustc 1.80.0"}

	add := func(s m.MutantSpec, status m.MutationStatus) *m.MutantState {
		snapshot.AddMutant(s)
		snapshot.Mutants[s.ID].Status = status

		return snapshot.Mutants[s.ID]
	}

	add(m.MutantSpec{
		ID: "m1", Label: "replace + with -", SourceFile: "src/lib.rs", SourceLine: 3,
		MutationType: m.MutationArithmetic, OriginalCode: "a + b", MutatedCode: "a - b",
	}, m.StatusKilled).DurationMs = ptr(uint64(1500))
	add(m.MutantSpec{ID: "m2", Label: "replace true with false", SourceFile: "src/lib.rs", SourceLine: 9}, m.StatusSurvived)
	add(m.MutantSpec{ID: "m3", Label: "loop forever"}, m.StatusTimeout)
	add(m.MutantSpec{ID: "m4", Label: "broken"}, m.StatusError).LastError = ptr("cargo exploded")

	return snapshot
}

func TestParseReportFormat(t *testing.T) {
	for name, want := range map[string]ReportFormat{
		"md": ReportMarkdown, "Markdown": ReportMarkdown, "json": ReportJSON,
		"sarif": ReportSARIF, "junit": ReportJUnit, "xml": ReportJUnit, "yml": ReportYAML,
	} {
		got, err := ParseReportFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseReportFormat("pdf")
	require.ErrorIs(t, err, ErrUnknownReportFormat)

	_, err = Render(reportSnapshot(), ReportFormat("pdf"))
	require.ErrorIs(t, err, ErrUnknownReportFormat)
}

func TestRender_Markdown(t *testing.T) {
	out, err := Render(reportSnapshot(), ReportMarkdown)
	require.NoError(t, err)

	assert.Contains(t, out, "# Mutation Run run-5-1-0")
	assert.Contains(t, out, "- completed: true")
	assert.Contains(t, out, "- git commit: deadbeef")
	assert.Contains(t, out, "- rustc: rustc 1.80.0")
	assert.Contains(t, out, "| total | 4 |")
	assert.Contains(t, out, "| mutation score | 25.00% |")
	assert.Contains(t, out, "### m1")
	assert.Contains(t, out, "- **location**: src/lib.rs:3")
	assert.Contains(t, out, "- **duration**: 1500ms")
	assert.Contains(t, out, "- **error**: cargo exploded")
	assert.Contains(t, out, "```diff\n--- a/src/lib.rs\n+++ b/src/lib.rs\n")
	assert.Contains(t, out, "-a + b\n+a - b")
}

func TestRender_JSON(t *testing.T) {
	out, err := Render(reportSnapshot(), ReportJSON)
	require.NoError(t, err)

	var report RunReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, "run-5-1-0", report.RunID)
	assert.Equal(t, 4, report.Summary.Total)
	require.Len(t, report.Mutants, 4)
	assert.Equal(t, "m1", report.Mutants[0].ID)
	assert.Equal(t, "arithmetic", report.Mutants[0].MutationType)
	assert.Equal(t, "killed", report.Mutants[0].Status)
	assert.Equal(t, "unknown", report.Mutants[2].MutationType)
}

func TestRender_YAML(t *testing.T) {
	out, err := Render(reportSnapshot(), ReportYAML)
	require.NoError(t, err)

	var report RunReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))

	assert.Equal(t, "run-5-1-0", report.RunID)
	assert.Equal(t, 1, report.Summary.Survived)
	assert.Equal(t, "deadbeef", report.Metadata.GitCommit)
}

func TestRender_SARIF(t *testing.T) {
	out, err := Render(reportSnapshot(), ReportSARIF)
	require.NoError(t, err)

	var doc sarifLog
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "2.1.0", doc.Version)
	require.Len(t, doc.Runs, 1)

	run := doc.Runs[0]
	assert.Equal(t, "kitchensink-testing", run.Tool.Driver.Name)
	require.Len(t, run.Results, 1)
	assert.Equal(t, "survived-mutant", run.Results[0].RuleID)
	assert.Equal(t, "warning", run.Results[0].Level)
	assert.Equal(t, "Mutant survived: replace true with false in src/lib.rs at line 9", run.Results[0].Message.Text)
	assert.Equal(t, uint32(9), run.Results[0].Locations[0].PhysicalLocation.Region.StartLine)
	assert.Equal(t, "run-5-1-0", run.Properties.RunID)
	assert.InDelta(t, 25.0, run.Properties.MutationScore, 0.001)
}

func TestRender_JUnit(t *testing.T) {
	out, err := Render(reportSnapshot(), ReportJUnit)
	require.NoError(t, err)

	assert.True(t, len(out) > len(xml.Header))
	assert.Equal(t, xml.Header, out[:len(xml.Header)])

	var doc junitTestSuites
	require.NoError(t, xml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Suites, 1)

	suite := doc.Suites[0]
	assert.Equal(t, "mutation-run-5-1-0", suite.Name)
	assert.Equal(t, 4, suite.Tests)
	assert.Equal(t, 1, suite.Failures)
	assert.Equal(t, 2, suite.Skipped)

	require.Len(t, suite.Cases, 4)
	assert.Equal(t, "src.lib.rs", suite.Cases[0].ClassName)
	assert.Equal(t, "1.500", suite.Cases[0].Time)
	assert.Nil(t, suite.Cases[0].Failure)
	require.NotNil(t, suite.Cases[1].Failure)
	assert.Equal(t, "Mutant survived", suite.Cases[1].Failure.Message)
	assert.Equal(t, "replace true with false", suite.Cases[1].Failure.Body)
	assert.Equal(t, "Timeout", suite.Cases[2].Skipped.Message)
	assert.Equal(t, "mutation", suite.Cases[2].ClassName)
	assert.Equal(t, "error", suite.Cases[3].Skipped.Message)
}

func TestMutationDiff(t *testing.T) {
	assert.Equal(t, "", MutationDiff(m.MutantSpec{ID: "m"}))

	diff := MutationDiff(m.MutantSpec{OriginalCode: "x > 0", MutatedCode: "x >= 0"})
	assert.Contains(t, diff, "--- a/original")
	assert.Contains(t, diff, "-x > 0")
	assert.Contains(t, diff, "+x >= 0")
}
