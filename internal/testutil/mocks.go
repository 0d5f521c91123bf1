// Package testutil provides shared mock implementations of domain interfaces
// for use in tests across the codebase. This follows the Go convention of a
// shared test utility package (like net/http/httptest).
package testutil

import "context"

// MockCatalogClient implements extract.CatalogClient for testing. Each call
// delegates to the matching Fn field; calls without one panic so tests fail
// loudly on unexpected upstream traffic. Calls records every method invoked,
// in order, for traversal assertions.
type MockCatalogClient struct {
	GetServiceByNameFn      func(ctx context.Context, name, include, fields string) (map[string]any, error)
	ListDatabasesFn         func(ctx context.Context, service, include, fields string) ([]map[string]any, error)
	ListDatabaseSchemasFn   func(ctx context.Context, databaseFQN, include, fields string) ([]map[string]any, error)
	ListTablesFn            func(ctx context.Context, filterKey, filterValue, include, fields string) ([]map[string]any, error)
	GetTableByIDFn          func(ctx context.Context, id, include, fields string) (map[string]any, error)
	CreateDatabaseServiceFn func(ctx context.Context, req map[string]any) (map[string]any, error)
	SystemVersionFn         func(ctx context.Context) (map[string]any, error)

	Calls []string
}

func (m *MockCatalogClient) record(call string) {
	m.Calls = append(m.Calls, call)
}

func (m *MockCatalogClient) GetServiceByName(ctx context.Context, name, include, fields string) (map[string]any, error) {
	m.record("GetServiceByName:" + name)
	if m.GetServiceByNameFn != nil {
		return m.GetServiceByNameFn(ctx, name, include, fields)
	}
	panic("unexpected call to MockCatalogClient.GetServiceByName")
}

func (m *MockCatalogClient) ListDatabases(ctx context.Context, service, include, fields string) ([]map[string]any, error) {
	m.record("ListDatabases:" + service)
	if m.ListDatabasesFn != nil {
		return m.ListDatabasesFn(ctx, service, include, fields)
	}
	panic("unexpected call to MockCatalogClient.ListDatabases")
}

func (m *MockCatalogClient) ListDatabaseSchemas(ctx context.Context, databaseFQN, include, fields string) ([]map[string]any, error) {
	m.record("ListDatabaseSchemas:" + databaseFQN)
	if m.ListDatabaseSchemasFn != nil {
		return m.ListDatabaseSchemasFn(ctx, databaseFQN, include, fields)
	}
	panic("unexpected call to MockCatalogClient.ListDatabaseSchemas")
}

func (m *MockCatalogClient) ListTables(ctx context.Context, filterKey, filterValue, include, fields string) ([]map[string]any, error) {
	m.record("ListTables:" + filterKey + "=" + filterValue)
	if m.ListTablesFn != nil {
		return m.ListTablesFn(ctx, filterKey, filterValue, include, fields)
	}
	panic("unexpected call to MockCatalogClient.ListTables")
}

func (m *MockCatalogClient) GetTableByID(ctx context.Context, id, include, fields string) (map[string]any, error) {
	m.record("GetTableByID:" + id)
	if m.GetTableByIDFn != nil {
		return m.GetTableByIDFn(ctx, id, include, fields)
	}
	panic("unexpected call to MockCatalogClient.GetTableByID")
}

func (m *MockCatalogClient) CreateDatabaseService(ctx context.Context, req map[string]any) (map[string]any, error) {
	name, _ := req["name"].(string)
	m.record("CreateDatabaseService:" + name)
	if m.CreateDatabaseServiceFn != nil {
		return m.CreateDatabaseServiceFn(ctx, req)
	}
	panic("unexpected call to MockCatalogClient.CreateDatabaseService")
}

func (m *MockCatalogClient) SystemVersion(ctx context.Context) (map[string]any, error) {
	m.record("SystemVersion")
	if m.SystemVersionFn != nil {
		return m.SystemVersionFn(ctx)
	}
	panic("unexpected call to MockCatalogClient.SystemVersion")
}
