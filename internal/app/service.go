package app

import (
	"rookery-deps/internal/adapters"
	"rookery-deps/internal/ports"
)

type Service struct {
	Catalog  ports.ArchCatalogPort
	Specs    ports.SpecReaderPort
	SpecText ports.SpecTextPort
	Mapping  ports.MappingSourcePort
	Reports  ports.ReportStorePort
}

// ServiceOptions carries the endpoint and timeout knobs the CLI
// resolves from flags, environment and config.
type ServiceOptions struct {
	ArchEndpoint   string
	AUREndpoint    string
	HTTPTimeoutSec int
	MappingPath    string
}

func NewService(opts ServiceOptions) Service {
	spec := adapters.NewSpecFileAdapter()
	return Service{
		Catalog:  adapters.NewArchWebAdapter(opts.ArchEndpoint, opts.AUREndpoint, opts.HTTPTimeoutSec),
		Specs:    spec,
		SpecText: spec,
		Mapping:  adapters.NewMappingAdapter(opts.MappingPath),
		Reports:  adapters.NewReportFileAdapter(),
	}
}
