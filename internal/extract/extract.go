// Package extract implements the metadata aggregation pipeline: it walks the
// service, database, schema, and table hierarchy of an OpenMetadata server
// sequentially and assembles a single consolidated document.
//
// Only the root service fetch is fatal. Listing failures below the service
// level are logged and produce empty child lists; the rest of the tree is
// still returned.
package extract

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"omd-facade/internal/domain"
	"omd-facade/internal/normalize"
)

// CatalogClient is the upstream surface the pipeline needs. Listing methods
// return the decoded entries of the {"data": [...]} envelope.
type CatalogClient interface {
	GetServiceByName(ctx context.Context, name, include, fields string) (map[string]any, error)
	ListDatabases(ctx context.Context, service, include, fields string) ([]map[string]any, error)
	ListDatabaseSchemas(ctx context.Context, databaseFQN, include, fields string) ([]map[string]any, error)
	ListTables(ctx context.Context, filterKey, filterValue, include, fields string) ([]map[string]any, error)
	GetTableByID(ctx context.Context, id, include, fields string) (map[string]any, error)
	CreateDatabaseService(ctx context.Context, req map[string]any) (map[string]any, error)
	SystemVersion(ctx context.Context) (map[string]any, error)
}

// Upstream parameter sets per hierarchy level.
const (
	serviceInclude = "all,tags,owners,followers,domain,dataProducts"
	serviceFields  = "owners,tags,connection,version,ingestionSchedule,sourceUrl,domains,dataProducts,lifeCycle,certification,votes,followers,sourceHash"

	databaseInclude = "all,tags,owners,domain,dataProducts"
	databaseFields  = "owners,tags,location,version,usageSummary,retentionPeriod,sourceUrl,domains,dataProducts,votes,lifeCycle,certification,followers,sourceHash,default"

	schemaInclude = "all,tags,owners"
	schemaFields  = "owners,tags,retentionPeriod"

	tableListInclude = "all,tags,owners"
	tableListFields  = "columns,owners,tags,tableType,description,displayName,tableConstraints,tablePartition,usageSummary"

	tableDetailFields = "columns,tableConstraints,tablePartition,owners,tags,followers,usageSummary,profile,sampleData,joins,lineage,testSuite,dataModel,location,extension,domain,dataProducts,votes,lifeCycle,certification,sourceUrl,schemaDefinition,retentionPeriod,sourceHash,queries,customMetrics"
)

// Service runs the aggregation operations against an OpenMetadata server.
type Service struct {
	client CatalogClient
	logger *slog.Logger
}

func NewService(client CatalogClient, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		logger: logger.With("component", "extract"),
	}
}

// Extract fetches the full metadata tree for a service. A missing service
// surfaces as *domain.NotFoundError; any other service fetch failure as
// *domain.UpstreamError. Failures below the service level degrade to empty
// child lists.
func (s *Service) Extract(ctx context.Context, serviceName string, opts domain.ExtractOptions) (*domain.ServiceMetadata, error) {
	s.logger.Info("metadata extraction requested", "service", serviceName)

	raw, err := s.client.GetServiceByName(ctx, serviceName, serviceInclude, serviceFields)
	if err != nil {
		var ue *domain.UpstreamError
		if errors.As(err, &ue) && ue.StatusCode == http.StatusNotFound {
			return nil, domain.ErrNotFound("service %q not found", serviceName)
		}
		return nil, err
	}
	svc := normalize.Service(raw)

	var stats domain.ExtractStats
	databases := s.walkDatabases(ctx, serviceName, opts, &stats)

	summary := Summarize(svc, databases, stats)

	s.logger.Info("metadata extraction completed",
		"service", serviceName,
		"databases", stats.Databases,
		"schemas", stats.Schemas,
		"tables", stats.Tables,
		"columns", stats.Columns)

	return &domain.ServiceMetadata{
		Service:   svc,
		Databases: databases,
		Summary:   summary,
	}, nil
}

func (s *Service) walkDatabases(ctx context.Context, serviceName string, opts domain.ExtractOptions, stats *domain.ExtractStats) []domain.Database {
	items, err := s.client.ListDatabases(ctx, serviceName, databaseInclude, databaseFields)
	if err != nil {
		s.logger.Warn("could not list databases", "service", serviceName, "error", err)
		return []domain.Database{}
	}

	databases := make([]domain.Database, 0, len(items))
	for _, raw := range items {
		db := normalize.Database(raw)
		db.Schemas = s.walkSchemas(ctx, db.FullyQualifiedName, db.Name, opts, stats)
		db.SchemaCount = len(db.Schemas)
		for _, sc := range db.Schemas {
			db.TableCount += sc.TableCount
		}
		databases = append(databases, db)
	}
	stats.Databases = len(databases)
	return databases
}

func (s *Service) walkSchemas(ctx context.Context, databaseFQN, databaseName string, opts domain.ExtractOptions, stats *domain.ExtractStats) []domain.Schema {
	items, err := s.client.ListDatabaseSchemas(ctx, databaseFQN, schemaInclude, schemaFields)
	if err != nil {
		s.logger.Warn("could not list schemas", "database", databaseName, "error", err)
		return []domain.Schema{}
	}

	schemas := make([]domain.Schema, 0, len(items))
	for _, raw := range items {
		sc := normalize.Schema(raw)
		sc.Tables = s.walkTables(ctx, sc.FullyQualifiedName, sc.Name, opts, stats)
		sc.TableCount = len(sc.Tables)
		schemas = append(schemas, sc)
	}
	stats.Schemas += len(schemas)
	return schemas
}

func (s *Service) walkTables(ctx context.Context, schemaFQN, schemaName string, opts domain.ExtractOptions, stats *domain.ExtractStats) []domain.Table {
	items, err := s.client.ListTables(ctx, "databaseSchema", schemaFQN, tableListInclude, tableListFields)
	if err != nil {
		s.logger.Warn("could not list tables", "schema", schemaName, "error", err)
		return []domain.Table{}
	}

	tables := make([]domain.Table, 0, len(items))
	for _, raw := range items {
		tbl := normalize.Table(s.enrich(ctx, raw, opts), opts)
		stats.Columns += tbl.ColumnCount
		tables = append(tables, tbl)
	}
	stats.Tables += len(tables)
	return tables
}

// enrich replaces a listing entry with the full per-table record when the
// detail fetch succeeds; otherwise the listing entry is used as-is.
func (s *Service) enrich(ctx context.Context, raw map[string]any, opts domain.ExtractOptions) map[string]any {
	id, _ := raw["id"].(string)
	if id == "" {
		return raw
	}
	detailed, err := s.client.GetTableByID(ctx, id, detailInclude(opts), tableDetailFields)
	if err != nil {
		s.logger.Warn("could not fetch table detail", "table", raw["name"], "error", err)
		return raw
	}
	if len(detailed) == 0 {
		s.logger.Warn("empty table detail response", "table", raw["name"])
		return raw
	}
	s.logger.Debug("fetched table detail", "table", raw["name"])
	return detailed
}

// detailInclude builds the include parameter for the per-table detail fetch,
// widened by the requested options.
func detailInclude(opts domain.ExtractOptions) string {
	parts := []string{
		"all", "joins", "tags", "owner", "followers", "extension", "domain",
		"dataProducts", "votes", "lifeCycle", "certification", "sourceHash",
	}
	if opts.IncludeSampleData {
		parts = append(parts, "sampleData")
	}
	if opts.IncludeTableProfiles {
		parts = append(parts, "tableProfile", "profile")
	}
	if opts.IncludeLineage {
		parts = append(parts, "lineage", "dataProducts", "upstream", "downstream")
	}
	return strings.Join(parts, ",")
}
