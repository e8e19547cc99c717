package main

import (
	"sort"

	"github.com/google/uuid"
	"publist-hq/bibcheck/pkg/bibtex/diag"
	"publist-hq/bibcheck/pkg/bibtex/validator"
	"publist-hq/bibcheck/pkg/config"
)

const sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

// SARIF 2.1.0 subset emitted by bibcheck. Field names follow the published
// schema.
type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool              sarifTool               `json:"tool"`
	AutomationDetails *sarifAutomationDetails `json:"automationDetails,omitempty"`
	Results           []sarifResult           `json:"results"`
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

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifAutomationDetails struct {
	ID   string `json:"id,omitempty"`
	GUID string `json:"guid"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
}

// buildSARIF converts file reports into a single-run SARIF document with
// the full rule catalog and a fresh run GUID.
func buildSARIF(reports []FileReport, cfg *config.Config) *sarifLog {
	run := sarifRun{
		Tool: sarifTool{Driver: sarifDriver{
			Name:           "bibcheck",
			Version:        Version,
			InformationURI: "https://github.com/publist-hq/bibcheck",
			Rules:          sarifRules(),
		}},
		AutomationDetails: &sarifAutomationDetails{
			ID:   "bibcheck/lint",
			GUID: uuid.New().String(),
		},
		Results: []sarifResult{},
	}

	for _, report := range reports {
		for _, msg := range report.Messages {
			if cfg.Output.NoWarnings && msg.Severity == string(diag.SeverityWarning) {
				continue
			}
			region := sarifRegion{StartLine: msg.Line}
			if msg.Column > 0 {
				region.StartColumn = msg.Column
			}
			run.Results = append(run.Results, sarifResult{
				RuleID:  msg.Code,
				Level:   sarifLevel(msg.Severity),
				Message: sarifMessage{Text: msg.Text},
				Locations: []sarifLocation{{
					PhysicalLocation: sarifPhysicalLocation{
						ArtifactLocation: sarifArtifactLocation{URI: report.File},
						Region:           region,
					},
				}},
			})
		}
	}

	return &sarifLog{
		Schema:  sarifSchemaURI,
		Version: "2.1.0",
		Runs:    []sarifRun{run},
	}
}

func sarifLevel(severity string) string {
	if severity == string(diag.SeverityError) {
		return "error"
	}
	return "warning"
}

// sarifRules lists the full diagnostic catalog, sorted by code.
func sarifRules() []sarifRule {
	rules := make([]sarifRule, 0, len(validator.WarningTexts)+len(validator.ErrorTexts))
	for code, text := range validator.WarningTexts {
		rules = append(rules, sarifRule{ID: code, ShortDescription: sarifMessage{Text: text}})
	}
	for code, text := range validator.ErrorTexts {
		rules = append(rules, sarifRule{ID: code, ShortDescription: sarifMessage{Text: text}})
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })
	return rules
}
