package ports

// ReportStorePort persists the diff report between the check and fix
// phases.
type ReportStorePort interface {
	Write(path string, content string) error
	Read(path string) (string, error)
}
