package domain

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	m "github.com/moofone/kitchensink-testing/internal/model"
)

// ReportFormat selects a report rendering.
type ReportFormat string

// Supported report formats.
const (
	ReportMarkdown ReportFormat = "md"
	ReportJSON     ReportFormat = "json"
	ReportSARIF    ReportFormat = "sarif"
	ReportJUnit    ReportFormat = "junit"
	ReportYAML     ReportFormat = "yaml"
)

// ErrUnknownReportFormat is returned for unsupported format names.
var ErrUnknownReportFormat = errors.New("unknown report format")

const (
	toolName           = "kitchensink-testing"
	toolInformationURI = "https://github.com/moofone/kitchensink-testing"
	sarifSchema        = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
	survivedRuleID     = "survived-mutant"
)

// ParseReportFormat accepts the format names used on the command line.
func ParseReportFormat(name string) (ReportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "md", "markdown":
		return ReportMarkdown, nil
	case "json":
		return ReportJSON, nil
	case "sarif":
		return ReportSARIF, nil
	case "junit", "xml":
		return ReportJUnit, nil
	case "yaml", "yml":
		return ReportYAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownReportFormat, name)
}

// MutantReport is the per-mutant entry of JSON and YAML reports.
type MutantReport struct {
	ID            string  `json:"id" yaml:"id"`
	Label         string  `json:"label" yaml:"label"`
	SourceFile    string  `json:"source_file" yaml:"source_file"`
	SourceLine    uint32  `json:"source_line" yaml:"source_line"`
	MutationType  string  `json:"mutation_type" yaml:"mutation_type"`
	OriginalCode  string  `json:"original_code" yaml:"original_code"`
	MutatedCode   string  `json:"mutated_code" yaml:"mutated_code"`
	Status        string  `json:"status" yaml:"status"`
	DurationMs    *uint64 `json:"duration_ms" yaml:"duration_ms"`
	LastError     *string `json:"last_error,omitempty" yaml:"last_error,omitempty"`
	StdoutPreview *string `json:"stdout_preview" yaml:"stdout_preview"`
	StderrPreview *string `json:"stderr_preview" yaml:"stderr_preview"`
}

// RunReport is the document rendered by the JSON and YAML formats.
type RunReport struct {
	RunID          string               `json:"run_id" yaml:"run_id"`
	Completed      bool                 `json:"completed" yaml:"completed"`
	Interrupted    bool                 `json:"interrupted" yaml:"interrupted"`
	MalformedLines int                  `json:"malformed_lines" yaml:"malformed_lines"`
	Config         *m.RunConfigSnapshot `json:"config" yaml:"config"`
	Metadata       *m.RunMetadata       `json:"metadata" yaml:"metadata"`
	Summary        m.RunSummary         `json:"summary" yaml:"summary"`
	Mutants        []MutantReport       `json:"mutants" yaml:"mutants"`
}

// BuildRunReport flattens a snapshot into a report document. Mutants are
// ordered by id.
func BuildRunReport(snapshot *m.RunSnapshot) RunReport {
	states := snapshot.SortedStates()
	mutants := make([]MutantReport, 0, len(states))

	for _, st := range states {
		mutants = append(mutants, MutantReport{
			ID:            st.Spec.ID,
			Label:         st.Spec.Label,
			SourceFile:    st.Spec.SourceFile,
			SourceLine:    st.Spec.SourceLine,
			MutationType:  string(st.Spec.Type()),
			OriginalCode:  st.Spec.OriginalCode,
			MutatedCode:   st.Spec.MutatedCode,
			Status:        st.Status.String(),
			DurationMs:    st.DurationMs,
			LastError:     st.LastError,
			StdoutPreview: st.StdoutPreview,
			StderrPreview: st.StderrPreview,
		})
	}

	return RunReport{
		RunID:          snapshot.RunID,
		Completed:      snapshot.Completed,
		Interrupted:    snapshot.Interrupted,
		MalformedLines: snapshot.MalformedLines,
		Config:         snapshot.Info.Config,
		Metadata:       snapshot.Info.Metadata,
		Summary:        m.Summarize(snapshot),
		Mutants:        mutants,
	}
}

// Render renders a snapshot in the requested format.
func Render(snapshot *m.RunSnapshot, format ReportFormat) (string, error) {
	report := BuildRunReport(snapshot)

	switch format {
	case ReportMarkdown:
		return renderMarkdown(report), nil
	case ReportJSON:
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode json report: %w", err)
		}

		return string(out) + "\n", nil
	case ReportYAML:
		out, err := yaml.Marshal(report)
		if err != nil {
			return "", fmt.Errorf("failed to encode yaml report: %w", err)
		}

		return string(out), nil
	case ReportSARIF:
		return renderSARIF(report)
	case ReportJUnit:
		return renderJUnit(report)
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownReportFormat, format)
}

// MutationDiff returns a unified diff of the original and mutated snippets,
// or "" when the engine did not provide them.
func MutationDiff(spec m.MutantSpec) string {
	if spec.OriginalCode == "" && spec.MutatedCode == "" {
		return ""
	}

	from := spec.SourceFile
	if from == "" {
		from = "original"
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(ensureNewline(spec.OriginalCode)),
		B:        difflib.SplitLines(ensureNewline(spec.MutatedCode)),
		FromFile: "a/" + from,
		ToFile:   "b/" + from,
		Context:  3,
	}

	out, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}

	return strings.TrimRight(out, "\n")
}

func ensureNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}

	return s + "\n"
}

//nolint:cyclop // one section per report part
func renderMarkdown(r RunReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Mutation Run %s\n\n", r.RunID)
	fmt.Fprintf(&b, "- completed: %t\n- interrupted: %t\n- malformed lines: %d\n\n", r.Completed, r.Interrupted, r.MalformedLines)

	if meta := r.Metadata; meta != nil {
		b.WriteString("## Environment\n\n")

		if meta.GitCommit != "" {
			fmt.Fprintf(&b, "- git commit: %s\n", meta.GitCommit)
		}

		if meta.GitBranch != "" {
			fmt.Fprintf(&b, "- git branch: %s\n", meta.GitBranch)
		}

		if meta.RustcVersion != "" {
			fmt.Fprintf(&b, "- rustc: %s\n", meta.RustcVersion)
		}

		if meta.CargoMutantsVersion != "" {
			fmt.Fprintf(&b, "- cargo-mutants: %s\n", meta.CargoMutantsVersion)
		}

		b.WriteString("\n")
	}

	s := r.Summary
	b.WriteString("## Summary\n\n| metric | count |\n|---|---:|\n")
	fmt.Fprintf(&b, "| total | %d |\n", s.Total)
	fmt.Fprintf(&b, "| killed | %d |\n", s.Killed)
	fmt.Fprintf(&b, "| survived | %d |\n", s.Survived)
	fmt.Fprintf(&b, "| timeout | %d |\n", s.Timeout)
	fmt.Fprintf(&b, "| unviable | %d |\n", s.Unviable)
	fmt.Fprintf(&b, "| skipped | %d |\n", s.Skipped)
	fmt.Fprintf(&b, "| error | %d |\n", s.Error)
	fmt.Fprintf(&b, "| incomplete | %d |\n", s.Incomplete)
	fmt.Fprintf(&b, "| mutation score | %.2f%% |\n", s.MutationScore)

	if len(r.Mutants) == 0 {
		return b.String()
	}

	b.WriteString("\n## Mutants\n\n")

	for _, mr := range r.Mutants {
		fmt.Fprintf(&b, "### %s\n\n", mr.ID)
		fmt.Fprintf(&b, "- **label**: %s\n", mr.Label)

		if mr.SourceFile != "" {
			fmt.Fprintf(&b, "- **location**: %s:%d\n", mr.SourceFile, mr.SourceLine)
		}

		fmt.Fprintf(&b, "- **type**: %s\n", mr.MutationType)
		fmt.Fprintf(&b, "- **status**: %s\n", mr.Status)

		if mr.DurationMs != nil {
			fmt.Fprintf(&b, "- **duration**: %dms\n", *mr.DurationMs)
		}

		if mr.LastError != nil {
			fmt.Fprintf(&b, "- **error**: %s\n", *mr.LastError)
		}

		diff := MutationDiff(m.MutantSpec{
			SourceFile:   mr.SourceFile,
			OriginalCode: mr.OriginalCode,
			MutatedCode:  mr.MutatedCode,
		})
		if diff != "" {
			fmt.Fprintf(&b, "\n```diff\n%s\n```\n", diff)
		}

		b.WriteString("\n")
	}

	return b.String()
}

type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool       sarifTool       `json:"tool"`
	Results    []sarifResult   `json:"results"`
	Properties sarifProperties `json:"properties"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifText struct {
	Text string `json:"text"`
}

type sarifRule struct {
	ID                   string            `json:"id"`
	ShortDescription     sarifText         `json:"shortDescription"`
	FullDescription      sarifText         `json:"fullDescription"`
	DefaultConfiguration map[string]string `json:"defaultConfiguration"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifText       `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifLocation struct {
	PhysicalLocation struct {
		ArtifactLocation struct {
			URI string `json:"uri"`
		} `json:"artifactLocation"`
		Region struct {
			StartLine uint32 `json:"startLine"`
		} `json:"region"`
	} `json:"physicalLocation"`
}

type sarifProperties struct {
	RunID         string  `json:"runId"`
	MutationScore float64 `json:"mutationScore"`
	TotalMutants  int     `json:"totalMutants"`
	Killed        int     `json:"killed"`
	Survived      int     `json:"survived"`
}

func renderSARIF(r RunReport) (string, error) {
	results := make([]sarifResult, 0)

	for _, mr := range r.Mutants {
		if mr.Status != m.StatusSurvived.String() {
			continue
		}

		var loc sarifLocation
		loc.PhysicalLocation.ArtifactLocation.URI = mr.SourceFile
		loc.PhysicalLocation.Region.StartLine = mr.SourceLine

		results = append(results, sarifResult{
			RuleID:    survivedRuleID,
			Level:     "warning",
			Message:   sarifText{Text: fmt.Sprintf("Mutant survived: %s in %s at line %d", mr.Label, mr.SourceFile, mr.SourceLine)},
			Locations: []sarifLocation{loc},
		})
	}

	doc := sarifLog{
		Schema:  sarifSchema,
		Version: "2.1.0",
		Runs: []sarifRun{{
			Tool: sarifTool{Driver: sarifDriver{
				Name:           toolName,
				Version:        toolVersion(),
				InformationURI: toolInformationURI,
				Rules: []sarifRule{{
					ID:               survivedRuleID,
					ShortDescription: sarifText{Text: "Survived Mutant"},
					FullDescription: sarifText{
						Text: "A mutation that was not caught by any test, indicating a potential gap in test coverage.",
					},
					DefaultConfiguration: map[string]string{"level": "warning"},
				}},
			}},
			Results: results,
			Properties: sarifProperties{
				RunID:         r.RunID,
				MutationScore: r.Summary.MutationScore,
				TotalMutants:  r.Summary.Total,
				Killed:        r.Summary.Killed,
				Survived:      r.Summary.Survived,
			},
		}},
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode sarif report: %w", err)
	}

	return string(out) + "\n", nil
}

type junitTestSuites struct {
	XMLName xml.Name     `xml:"testsuites"`
	Suites  []junitSuite `xml:"testsuite"`
}

type junitSuite struct {
	Name     string          `xml:"name,attr"`
	Tests    int             `xml:"tests,attr"`
	Failures int             `xml:"failures,attr"`
	Skipped  int             `xml:"skipped,attr"`
	Cases    []junitTestCase `xml:"testcase"`
}

type junitTestCase struct {
	ClassName string        `xml:"classname,attr"`
	Name      string        `xml:"name,attr"`
	Time      string        `xml:"time,attr,omitempty"`
	Failure   *junitMessage `xml:"failure,omitempty"`
	Skipped   *junitMessage `xml:"skipped,omitempty"`
}

type junitMessage struct {
	Message string `xml:"message,attr"`
	Body    string `xml:",chardata"`
}

func renderJUnit(r RunReport) (string, error) {
	suite := junitSuite{Name: "mutation-" + r.RunID, Tests: len(r.Mutants)}

	for _, mr := range r.Mutants {
		tc := junitTestCase{ClassName: "mutation", Name: mr.ID}
		if mr.SourceFile != "" {
			tc.ClassName = strings.ReplaceAll(mr.SourceFile, "/", ".")
		}

		if mr.DurationMs != nil {
			tc.Time = fmt.Sprintf("%.3f", float64(*mr.DurationMs)/1000)
		}

		switch mr.Status {
		case m.StatusKilled.String():
		case m.StatusSurvived.String():
			tc.Failure = &junitMessage{Message: "Mutant survived", Body: mr.Label}
			suite.Failures++
		case m.StatusTimeout.String():
			tc.Skipped = &junitMessage{Message: "Timeout"}
			suite.Skipped++
		default:
			tc.Skipped = &junitMessage{Message: mr.Status}
			suite.Skipped++
		}

		suite.Cases = append(suite.Cases, tc)
	}

	out, err := xml.MarshalIndent(junitTestSuites{Suites: []junitSuite{suite}}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode junit report: %w", err)
	}

	return xml.Header + string(out) + "\n", nil
}

func toolVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "unknown"
	}

	return info.Main.Version
}
