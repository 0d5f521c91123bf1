package extract

import (
	"context"
	"fmt"

	"omd-facade/internal/domain"
	"omd-facade/internal/normalize"
)

// ListTables returns a flat table listing for a service, narrowed by the
// optional database and schema filters. The most specific filter wins:
// schema (with database) over database over service.
func (s *Service) ListTables(ctx context.Context, serviceName string, filter domain.TableFilter) (*domain.TablesResult, error) {
	s.logger.Info("table listing requested",
		"service", serviceName,
		"database", derefOr(filter.DatabaseName, ""),
		"schema", derefOr(filter.SchemaName, ""))

	filterKey, filterValue := tableScope(serviceName, filter)
	items, err := s.client.ListTables(ctx, filterKey, filterValue, "", "")
	if err != nil {
		return nil, err
	}

	tables := make([]domain.Table, 0, len(items))
	for _, raw := range items {
		tbl := normalize.Table(raw, domain.ExtractOptions{})
		if !filter.IncludeColumns {
			tbl.Columns = []domain.Column{}
		}
		tables = append(tables, tbl)
	}

	s.logger.Info("table listing completed", "service", serviceName, "tables", len(tables))

	return &domain.TablesResult{
		ServiceName: serviceName,
		Filter:      filter,
		Tables:      tables,
		Count:       len(tables),
	}, nil
}

func tableScope(serviceName string, filter domain.TableFilter) (key, value string) {
	switch {
	case filter.DatabaseName != nil && filter.SchemaName != nil:
		return "databaseSchema", fmt.Sprintf("%s.%s.%s", serviceName, *filter.DatabaseName, *filter.SchemaName)
	case filter.DatabaseName != nil:
		return "database", fmt.Sprintf("%s.%s", serviceName, *filter.DatabaseName)
	default:
		return "service", serviceName
	}
}

func derefOr(s *string, def string) string {
	if s != nil {
		return *s
	}
	return def
}
