package domain

// Owner is an entity reference to a user or team that owns a catalog asset.
// A missing upstream name maps to an empty string; entries are never dropped.
type Owner struct {
	ID                 string `json:"id,omitempty"`
	Name               string `json:"name"`
	Type               string `json:"type"`
	FullyQualifiedName string `json:"fullyQualifiedName,omitempty"`
}

// Tag is a classification label attached to a catalog asset.
type Tag struct {
	TagFQN      string  `json:"tagFQN"`
	Description *string `json:"description,omitempty"`
	Source      *string `json:"source,omitempty"`
}

// Column is a normalized table column. Children mirrors the upstream nested
// column structure for struct/array types; depth follows the source payload.
type Column struct {
	Name               string   `json:"name"`
	DataType           *string  `json:"dataType"`
	DataTypeDisplay    *string  `json:"dataTypeDisplay,omitempty"`
	Description        *string  `json:"description,omitempty"`
	OrdinalPosition    *int     `json:"ordinalPosition,omitempty"`
	Constraint         *string  `json:"constraint,omitempty"`
	Tags               []Tag    `json:"tags"`
	Nullable           *bool    `json:"nullable,omitempty"`
	DefaultValue       any      `json:"defaultValue,omitempty"`
	Precision          *int     `json:"precision,omitempty"`
	Scale              *int     `json:"scale,omitempty"`
	MaxLength          *int     `json:"maxLength,omitempty"`
	ArrayDataType      *string  `json:"arrayDataType,omitempty"`
	DataLength         *int     `json:"dataLength,omitempty"`
	JSONSchema         *string  `json:"jsonSchema,omitempty"`
	FullyQualifiedName *string  `json:"fullyQualifiedName,omitempty"`
	Children           []Column `json:"children"`
	CustomMetrics      any      `json:"customMetrics,omitempty"`
}

// Table is a normalized table or view. Heavy optional fields (TableProfile,
// SampleData, Lineage) are populated only when the corresponding extract
// option was requested.
type Table struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	FullyQualifiedName string   `json:"fullyQualifiedName"`
	TableType          *string  `json:"tableType,omitempty"`
	Description        *string  `json:"description,omitempty"`
	DisplayName        *string  `json:"displayName,omitempty"`
	Owners             []Owner  `json:"owners"`
	Tags               []Tag    `json:"tags"`
	Columns            []Column `json:"columns"`
	ColumnCount        int      `json:"column_count"`
	TableConstraints   any      `json:"tableConstraints,omitempty"`
	PartitionKeys      any      `json:"partitionKeys,omitempty"`
	DistributionKeys   any      `json:"distributionKeys,omitempty"`
	SortKeys           any      `json:"sortKeys,omitempty"`
	TableProfile       any      `json:"tableProfile,omitempty"`
	SampleData         any      `json:"sampleData,omitempty"`
	UsageSummary       any      `json:"usageSummary,omitempty"`
	Lineage            any      `json:"lineage,omitempty"`
	SchemaDefinition   *string  `json:"schemaDefinition,omitempty"`
	Location           *string  `json:"location,omitempty"`
	LocationPath       *string  `json:"locationPath,omitempty"`
	FileFormat         *string  `json:"fileFormat,omitempty"`
	RetentionPeriod    *string  `json:"retentionPeriod,omitempty"`
	SourceURL          *string  `json:"sourceUrl,omitempty"`
	Domains            []string `json:"domains"`
	DataProducts       []string `json:"dataProducts"`
	LifeCycle          any      `json:"lifeCycle,omitempty"`
	Certification      any      `json:"certification,omitempty"`
	Votes              any      `json:"votes,omitempty"`
	TestSuite          *string  `json:"testSuite,omitempty"`
	Queries            any      `json:"queries,omitempty"`
	CustomMetrics      any      `json:"customMetrics,omitempty"`
	SourceHash         *string  `json:"sourceHash,omitempty"`
	ProcessedLineage   any      `json:"processedLineage,omitempty"`
	Joins              any      `json:"joins,omitempty"`
	Followers          []string `json:"followers"`
}

// Schema is a normalized database schema. TableCount always equals
// len(Tables) as materialized, including after partial listing failures.
type Schema struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	FullyQualifiedName string  `json:"fullyQualifiedName"`
	Description        *string `json:"description,omitempty"`
	Tables             []Table `json:"tables"`
	TableCount         int     `json:"table_count"`
	Owners             []Owner `json:"owners"`
	Tags               []Tag   `json:"tags"`
	RetentionPeriod    *string `json:"retentionPeriod,omitempty"`
}

// Database is a normalized database. SchemaCount and TableCount are derived
// from the materialized child lists, never from upstream counters.
type Database struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	FullyQualifiedName string   `json:"fullyQualifiedName"`
	Description        *string  `json:"description,omitempty"`
	Owners             []Owner  `json:"owners"`
	Schemas            []Schema `json:"schemas"`
	SchemaCount        int      `json:"schema_count"`
	TableCount         int      `json:"table_count"`
	Tags               []Tag    `json:"tags"`
	Location           *string  `json:"location,omitempty"`
	DatabaseVersion    any      `json:"databaseVersion,omitempty"`
	DataProducts       []string `json:"dataProducts"`
	UsageSummary       any      `json:"usageSummary,omitempty"`
	RetentionPeriod    *string  `json:"retentionPeriod,omitempty"`
	SourceURL          *string  `json:"sourceUrl,omitempty"`
	Domains            []string `json:"domains"`
	Votes              any      `json:"votes,omitempty"`
	LifeCycle          any      `json:"lifeCycle,omitempty"`
	Certification      any      `json:"certification,omitempty"`
	Followers          []string `json:"followers"`
	SourceHash         *string  `json:"sourceHash,omitempty"`
	Default            *bool    `json:"default,omitempty"`
}

// Service is a normalized database service, the root of the hierarchy.
type Service struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	ServiceType        string   `json:"serviceType"`
	Description        *string  `json:"description,omitempty"`
	DisplayName        *string  `json:"displayName,omitempty"`
	FullyQualifiedName string   `json:"fullyQualifiedName"`
	Owners             []Owner  `json:"owners"`
	Tags               []Tag    `json:"tags"`
	Connection         any      `json:"connection,omitempty"`
	Version            any      `json:"version,omitempty"`
	IngestionSchedule  any      `json:"ingestionSchedule,omitempty"`
	SourceURL          *string  `json:"sourceUrl,omitempty"`
	Domains            []string `json:"domains"`
	DataProducts       []string `json:"dataProducts"`
	LifeCycle          any      `json:"lifeCycle,omitempty"`
	Certification      any      `json:"certification,omitempty"`
	Votes              any      `json:"votes,omitempty"`
	Followers          []string `json:"followers"`
	SourceHash         *string  `json:"sourceHash,omitempty"`
}

// MetadataSummary holds aggregate statistics over a fully extracted tree.
type MetadataSummary struct {
	TotalDatabases          int    `json:"total_databases"`
	TotalSchemas            int    `json:"total_schemas"`
	TotalTables             int    `json:"total_tables"`
	TotalColumns            int    `json:"total_columns"`
	TotalViews              int    `json:"total_views"`
	TotalOwners             int    `json:"total_owners"`
	TotalTags               int    `json:"total_tags"`
	DataExtractionTimestamp string `json:"data_extraction_timestamp"`
}

// ServiceMetadata is the consolidated extraction document.
type ServiceMetadata struct {
	Service   Service         `json:"service"`
	Databases []Database      `json:"databases"`
	Summary   MetadataSummary `json:"summary"`
}

// ExtractOptions gates the heavy optional fields on the detail fetch.
type ExtractOptions struct {
	IncludeSampleData    bool
	IncludeTableProfiles bool
	IncludeLineage       bool
}

// ExtractStats accumulates counts during the hierarchy walk. The summary is
// built from these rather than recounting, so totals reflect what was
// actually retrieved when partial failures occurred.
type ExtractStats struct {
	Databases int
	Schemas   int
	Tables    int
	Columns   int
}

// TableFilter is the filter applied to a flat table listing, echoed back in
// the response.
type TableFilter struct {
	DatabaseName   *string `json:"database_name"`
	SchemaName     *string `json:"schema_name"`
	IncludeColumns bool    `json:"include_columns"`
}

// TablesResult is the response document for a flat table listing.
type TablesResult struct {
	ServiceName string      `json:"service_name"`
	Filter      TableFilter `json:"filter"`
	Tables      []Table     `json:"tables"`
	Count       int         `json:"count"`
}

// OwnerRef identifies an owner by name and principal type on service creation.
type OwnerRef struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// CreateServiceRequest is the inbound payload for database service creation.
type CreateServiceRequest struct {
	Name        string         `json:"name"`
	ServiceType string         `json:"serviceType"`
	Description string         `json:"description,omitempty"`
	DisplayName string         `json:"displayName,omitempty"`
	Connection  map[string]any `json:"connection,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Owners      []OwnerRef     `json:"owners,omitempty"`
}

// HealthStatus reports upstream connectivity. It is always delivered with
// HTTP 200; the health state lives in the payload.
type HealthStatus struct {
	OpenMetadataHealthy bool              `json:"openmetadata_healthy"`
	APILoaded           bool              `json:"api_loaded"`
	ServerInfo          map[string]any    `json:"server_info,omitempty"`
	Error               string            `json:"error,omitempty"`
	Message             string            `json:"message"`
	Troubleshooting     map[string]string `json:"troubleshooting,omitempty"`
}
