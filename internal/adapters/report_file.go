package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rookery-deps/internal/ports"
)

// ReportFileAdapter persists the diff report text between the check and
// fix phases.
type ReportFileAdapter struct{}

func NewReportFileAdapter() ReportFileAdapter {
	return ReportFileAdapter{}
}

func (a ReportFileAdapter) Write(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write report file").
			WithCause(err)
	}
	return nil
}

func (a ReportFileAdapter) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("report file not found").
			WithCause(err)
	}
	return string(data), nil
}

var _ ports.ReportStorePort = ReportFileAdapter{}
