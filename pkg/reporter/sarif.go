package reporter

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/goslang/pkg/analysis"
	"github.com/yaklabco/goslang/pkg/config"
)

// SARIF version used by this renderer.
const sarifVersion = "2.1.0"

// SARIF schema URI.
const sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

// SARIFOutput represents the root SARIF document.
type SARIFOutput struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run.
type SARIFRun struct {
	Tool        SARIFTool         `json:"tool"`
	Results     []SARIFResult     `json:"results"`
	Invocations []SARIFInvocation `json:"invocations,omitempty"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver contains tool metadata and rules.
type SARIFDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []SARIFRule `json:"rules"`
}

// SARIFRule describes a check.
type SARIFRule struct {
	ID               string               `json:"id"`
	Name             string               `json:"name,omitempty"`
	ShortDescription SARIFMultiformatText `json:"shortDescription"`
	DefaultConfig    *SARIFRuleConfig     `json:"defaultConfiguration,omitempty"`
	Properties       map[string]any       `json:"properties,omitempty"`
}

// SARIFMultiformatText contains text in multiple formats.
type SARIFMultiformatText struct {
	Text string `json:"text"`
}

// SARIFRuleConfig contains rule configuration.
type SARIFRuleConfig struct {
	Level string `json:"level"`
}

// SARIFResult represents a single issue.
type SARIFResult struct {
	RuleID           string          `json:"ruleId"`
	Level            string          `json:"level"`
	Message          SARIFMessage    `json:"message"`
	Locations        []SARIFLocation `json:"locations"`
	RelatedLocations []SARIFLocation `json:"relatedLocations,omitempty"`
	Properties       map[string]any  `json:"properties,omitempty"`
}

// SARIFMessage contains a message.
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFLocation describes a code location.
type SARIFLocation struct {
	ID               *int                  `json:"id,omitempty"`
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
	Message          *SARIFMessage         `json:"message,omitempty"`
}

// SARIFPhysicalLocation contains file path and region.
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           *SARIFRegion          `json:"region,omitempty"`
}

// SARIFArtifactLocation contains the file URI.
type SARIFArtifactLocation struct {
	URI string `json:"uri"`
}

// SARIFRegion describes the affected text region.
type SARIFRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
	EndLine     int `json:"endLine,omitempty"`
	EndColumn   int `json:"endColumn,omitempty"`
}

// SARIFInvocation records the analysis failures of the run.
type SARIFInvocation struct {
	ExecutionSuccessful        bool                `json:"executionSuccessful"`
	ToolExecutionNotifications []SARIFNotification `json:"toolExecutionNotifications,omitempty"`
}

// SARIFNotification is an analysis failure.
type SARIFNotification struct {
	Level     string          `json:"level"`
	Message   SARIFMessage    `json:"message"`
	Locations []SARIFLocation `json:"locations,omitempty"`
}

// SARIFRenderer writes the report as SARIF.
type SARIFRenderer struct {
	opts Options
}

// NewSARIFRenderer creates a new SARIF renderer.
func NewSARIFRenderer(opts Options) *SARIFRenderer {
	return &SARIFRenderer{opts: opts}
}

// Render implements Renderer.
func (r *SARIFRenderer) Render(_ context.Context, report *analysis.Report) error {
	encoder := json.NewEncoder(r.opts.Writer)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(r.buildOutput(report)); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

func (r *SARIFRenderer) buildOutput(report *analysis.Report) *SARIFOutput {
	version := r.opts.ToolVersion
	if version == "" {
		version = "dev"
	}

	run := SARIFRun{
		Tool: SARIFTool{
			Driver: SARIFDriver{
				Name:           "goslang",
				Version:        version,
				InformationURI: "https://github.com/yaklabco/goslang",
				Rules:          make([]SARIFRule, 0),
			},
		},
		Results: make([]SARIFResult, 0),
	}

	if report == nil {
		return &SARIFOutput{Schema: sarifSchemaURI, Version: sarifVersion, Runs: []SARIFRun{run}}
	}

	rulesSeen := make(map[string]bool)
	for i := range report.Issues {
		issue := &report.Issues[i]
		level := severityToSARIFLevel(config.Severity(issue.Severity))

		if !rulesSeen[issue.CheckID] {
			rulesSeen[issue.CheckID] = true
			run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, r.rule(issue, level))
		}

		run.Results = append(run.Results, sarifResult(issue, level))
	}

	if len(report.Failures) > 0 || len(report.FileErrors) > 0 {
		invocation := SARIFInvocation{}
		for _, failure := range report.Failures {
			location := SARIFLocation{PhysicalLocation: SARIFPhysicalLocation{
				ArtifactLocation: artifact(failure.FilePath),
			}}
			if failure.Line > 0 {
				location.PhysicalLocation.Region = &SARIFRegion{StartLine: failure.Line, StartColumn: failure.Column}
			}
			invocation.ToolExecutionNotifications = append(invocation.ToolExecutionNotifications, SARIFNotification{
				Level:     "error",
				Message:   SARIFMessage{Text: failure.Message},
				Locations: []SARIFLocation{location},
			})
		}
		for _, fileError := range report.FileErrors {
			invocation.ToolExecutionNotifications = append(invocation.ToolExecutionNotifications, SARIFNotification{
				Level:   "error",
				Message: SARIFMessage{Text: fileError.Error},
				Locations: []SARIFLocation{{PhysicalLocation: SARIFPhysicalLocation{
					ArtifactLocation: artifact(fileError.FilePath),
				}}},
			})
		}
		run.Invocations = []SARIFInvocation{invocation}
	} else {
		run.Invocations = []SARIFInvocation{{ExecutionSuccessful: true}}
	}

	return &SARIFOutput{Schema: sarifSchemaURI, Version: sarifVersion, Runs: []SARIFRun{run}}
}

// rule describes a check, using the registry when one is configured.
func (r *SARIFRenderer) rule(issue *analysis.IssueEntry, level string) SARIFRule {
	rule := SARIFRule{
		ID:               issue.CheckID,
		Name:             issue.CheckName,
		ShortDescription: SARIFMultiformatText{Text: issue.CheckName},
		DefaultConfig:    &SARIFRuleConfig{Level: level},
	}
	if r.opts.Registry == nil {
		return rule
	}
	if check, ok := r.opts.Registry.GetByID(issue.CheckID); ok {
		rule.ShortDescription.Text = check.Description()
		rule.DefaultConfig.Level = severityToSARIFLevel(check.DefaultSeverity())
		if tags := check.Tags(); len(tags) > 0 {
			rule.Properties = map[string]any{"tags": tags}
		}
	}
	return rule
}

func sarifResult(issue *analysis.IssueEntry, level string) SARIFResult {
	result := SARIFResult{
		RuleID:  issue.CheckID,
		Level:   level,
		Message: SARIFMessage{Text: issue.Message},
		Locations: []SARIFLocation{{
			PhysicalLocation: physicalLocation(issue.FilePath, issue.Location),
		}},
	}

	for i, secondary := range issue.Secondary {
		id := i + 1
		related := SARIFLocation{
			ID:               &id,
			PhysicalLocation: physicalLocation(issue.FilePath, secondary.Location),
		}
		if secondary.Message != "" {
			related.Message = &SARIFMessage{Text: secondary.Message}
		}
		result.RelatedLocations = append(result.RelatedLocations, related)
	}

	if issue.Gap != nil {
		result.Properties = map[string]any{"gap": *issue.Gap}
	}
	return result
}

func physicalLocation(path string, location analysis.Location) SARIFPhysicalLocation {
	physical := SARIFPhysicalLocation{ArtifactLocation: artifact(path)}
	if !location.IsFile() {
		physical.Region = &SARIFRegion{
			StartLine:   location.StartLine,
			StartColumn: location.StartColumn,
			EndLine:     location.EndLine,
			EndColumn:   location.EndColumn,
		}
	}
	return physical
}

func artifact(path string) SARIFArtifactLocation {
	return SARIFArtifactLocation{URI: filepath.ToSlash(path)}
}

// severityToSARIFLevel converts a severity to a SARIF level.
func severityToSARIFLevel(severity config.Severity) string {
	switch severity {
	case config.SeverityError:
		return "error"
	case config.SeverityInfo:
		return "note"
	default:
		return "warning"
	}
}
