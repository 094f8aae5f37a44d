package services

import (
	"context"
	"fmt"

	"github.com/benventuring/backend/internal/models"
	"go.uber.org/zap"
)

const (
	maxReportedCollections = 10
	maxReportedErrorLength = 50
)

// StoreProbe is the interface that wraps the introspection methods of the document store.
type StoreProbe interface {
	// Method Available reports whether a live connection exists.
	Available() bool
	// Method Reason describes why the store is unavailable.
	Reason() string
	// Method Name returns the database name.
	Name() string
	// Method ListCollections returns the collection names of the database.
	ListCollections(ctx context.Context) ([]string, error)
}

type diagnosticsService struct {
	probe           StoreProbe
	databaseURLSet  bool
	databaseNameSet bool
	logger          *zap.Logger
}

// NewDiagnosticsService creates a new diagnostics service.
// The two flags report whether DATABASE_URL and DATABASE_NAME were configured.
func NewDiagnosticsService(probe StoreProbe, databaseURLSet, databaseNameSet bool, logger *zap.Logger) *diagnosticsService {
	return &diagnosticsService{
		probe:           probe,
		databaseURLSet:  databaseURLSet,
		databaseNameSet: databaseNameSet,
		logger:          logger,
	}
}

// Report probes the store. It never fails: every problem is described in the report.
func (s *diagnosticsService) Report(ctx context.Context) models.DiagnosticReport {
	report := models.DiagnosticReport{
		Backend:          "✅ Running",
		State:            models.DatabaseUnavailable,
		Database:         "❌ Not Available",
		DatabaseURL:      setLabel(s.databaseURLSet),
		DatabaseName:     setLabel(s.databaseNameSet),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if s.probe == nil || !s.probe.Available() {
		if s.probe != nil && s.probe.Reason() != "" {
			report.Database = "❌ Not Available: " + truncate(s.probe.Reason(), maxReportedErrorLength)
		}
		return report
	}

	report.ConnectionStatus = "Connected"
	names, err := s.listCollections(ctx)
	if err != nil {
		s.logger.Warn("diagnostics could not list collections", zap.Error(err))
		report.State = models.DatabaseListingFailed
		report.Database = "⚠️  Connected but Error: " + truncate(err.Error(), maxReportedErrorLength)
		return report
	}

	if len(names) > maxReportedCollections {
		names = names[:maxReportedCollections]
	}
	report.State = models.DatabaseOperational
	report.Database = "✅ Connected & Working"
	report.Collections = names
	return report
}

// listCollections turns a panic inside the driver into an error
func (s *diagnosticsService) listCollections(ctx context.Context) (names []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			names, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	names, err = s.probe.ListCollections(ctx)
	if names == nil && err == nil {
		names = []string{}
	}
	return names, err
}

func setLabel(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// truncate cuts s to at most max runes
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
