// Package report prints the summary of a finished render.
//
// Formats are looked up in a registry ("text", "json"); the JSON form is the
// stable pkg/api RenderReportV1 schema.
package report
