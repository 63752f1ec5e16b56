package export

import (
	"context"
	"slices"

	exporterrors "salary-portal/internal/export/errors"
	"salary-portal/internal/portal"
	"salary-portal/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Source interface {
	Snapshot() portal.Snapshot
}

// File is a rendered artifact ready to be downloaded or written to disk.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

type artifact struct {
	filename    string
	contentType string
	render      func(portal.Snapshot) ([]byte, error)
}

func csvArtifact(filename string, fn func(portal.Snapshot) string) artifact {
	return artifact{
		filename:    filename,
		contentType: "text/csv",
		render: func(s portal.Snapshot) ([]byte, error) {
			return []byte(fn(s)), nil
		},
	}
}

const (
	ArtifactEmployees    = "employees"
	ArtifactIncrements   = "increments"
	ArtifactSalaryReport = "salary-report"
	ArtifactAll          = "all"
)

var artifacts = map[string]artifact{
	ArtifactEmployees:    csvArtifact("employees.csv", EmployeesCSV),
	ArtifactIncrements:   csvArtifact("increments.csv", IncrementsCSV),
	ArtifactSalaryReport: csvArtifact("salary_report.csv", SalaryReportCSV),
	ArtifactAll: {
		filename:    "salary_portal_data.json",
		contentType: "application/json",
		render:      FullData,
	},
}

// Artifacts lists the names accepted by Service.Render.
func Artifacts() []string {
	names := make([]string, 0, len(artifacts))
	for name := range artifacts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ArtifactForFile maps a download filename such as "employees.csv" back to
// its artifact name.
func ArtifactForFile(filename string) (string, bool) {
	for name, a := range artifacts {
		if a.filename == filename {
			return name, true
		}
	}
	return "", false
}

type Service interface {
	Render(ctx context.Context, name string) (File, error)
}

type service struct {
	source Source
	logger *zap.Logger
}

func NewService(source Source, logger ...*zap.Logger) Service {
	l := zap.L().Named("export.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("export.service")
	}
	return &service{source: source, logger: l}
}

func (s *service) Render(ctx context.Context, name string) (File, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	a, ok := artifacts[name]
	if !ok {
		log.Warn("unknown export requested", zap.String("artifact", name))
		return File{}, exporterrors.ErrUnknownArtifact
	}

	body, err := a.render(s.source.Snapshot())
	if err != nil {
		log.Error("render export failed", zap.String("artifact", name), zap.Error(err))
		return File{}, exporterrors.ErrRenderFailed(err)
	}

	log.Info("export rendered",
		zap.String("artifact", name),
		zap.String("filename", a.filename),
		zap.Int("bytes", len(body)),
	)
	return File{Name: a.filename, ContentType: a.contentType, Body: body}, nil
}
