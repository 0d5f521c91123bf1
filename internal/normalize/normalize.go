// Package normalize converts raw OpenMetadata payloads into the domain model.
//
// Every function here is total: malformed or missing fields map to zero
// values or nil pointers, never to an error. The upstream payloads are
// decoded JSON (map[string]any), so numbers arrive as float64 and nested
// objects as maps.
package normalize

import "omd-facade/internal/domain"

// Service normalizes a database service record.
func Service(raw map[string]any) domain.Service {
	return domain.Service{
		ID:                 str(raw, "id"),
		Name:               str(raw, "name"),
		ServiceType:        str(raw, "serviceType"),
		Description:        strPtr(raw, "description"),
		DisplayName:        strPtr(raw, "displayName"),
		FullyQualifiedName: str(raw, "fullyQualifiedName"),
		Owners:             Owners(raw["owners"]),
		Tags:               Tags(raw["tags"]),
		Connection:         raw["connection"],
		Version:            raw["version"],
		IngestionSchedule:  raw["ingestionSchedule"],
		SourceURL:          strPtr(raw, "sourceUrl"),
		Domains:            nameList(raw["domains"]),
		DataProducts:       nameList(raw["dataProducts"]),
		LifeCycle:          raw["lifeCycle"],
		Certification:      raw["certification"],
		Votes:              raw["votes"],
		Followers:          nameList(raw["followers"]),
		SourceHash:         strPtr(raw, "sourceHash"),
	}
}

// Database normalizes a database record. Schemas and the derived counts are
// filled in by the caller once the children have been fetched.
func Database(raw map[string]any) domain.Database {
	return domain.Database{
		ID:                 str(raw, "id"),
		Name:               str(raw, "name"),
		FullyQualifiedName: str(raw, "fullyQualifiedName"),
		Description:        strPtr(raw, "description"),
		Owners:             Owners(raw["owners"]),
		Schemas:            []domain.Schema{},
		Tags:               Tags(raw["tags"]),
		Location:           nestedName(raw["location"]),
		DatabaseVersion:    raw["version"],
		DataProducts:       nameList(raw["dataProducts"]),
		UsageSummary:       raw["usageSummary"],
		RetentionPeriod:    strPtr(raw, "retentionPeriod"),
		SourceURL:          strPtr(raw, "sourceUrl"),
		Domains:            nameList(raw["domains"]),
		Votes:              raw["votes"],
		LifeCycle:          raw["lifeCycle"],
		Certification:      raw["certification"],
		Followers:          nameList(raw["followers"]),
		SourceHash:         strPtr(raw, "sourceHash"),
		Default:            boolPtr(raw, "default"),
	}
}

// Schema normalizes a database schema record. Tables and the derived count
// are filled in by the caller.
func Schema(raw map[string]any) domain.Schema {
	return domain.Schema{
		ID:                 str(raw, "id"),
		Name:               str(raw, "name"),
		FullyQualifiedName: str(raw, "fullyQualifiedName"),
		Description:        strPtr(raw, "description"),
		Tables:             []domain.Table{},
		Owners:             Owners(raw["owners"]),
		Tags:               Tags(raw["tags"]),
		RetentionPeriod:    strPtr(raw, "retentionPeriod"),
	}
}

// Table normalizes a table record. The heavy optional fields are carried
// over only when the matching extract option was requested, regardless of
// whether upstream returned them.
func Table(raw map[string]any, opts domain.ExtractOptions) domain.Table {
	cols := Columns(raw["columns"])

	t := domain.Table{
		ID:                 str(raw, "id"),
		Name:               str(raw, "name"),
		FullyQualifiedName: str(raw, "fullyQualifiedName"),
		TableType:          strPtr(raw, "tableType"),
		Description:        strPtr(raw, "description"),
		DisplayName:        strPtr(raw, "displayName"),
		Owners:             Owners(raw["owners"]),
		Tags:               Tags(raw["tags"]),
		Columns:            cols,
		ColumnCount:        len(cols),
		TableConstraints:   raw["tableConstraints"],
		DistributionKeys:   raw["distributionKey"],
		SortKeys:           raw["sortKey"],
		UsageSummary:       raw["usageSummary"],
		SchemaDefinition:   strPtr(raw, "schemaDefinition"),
		Location:           nestedName(raw["location"]),
		LocationPath:       strPtr(raw, "locationPath"),
		FileFormat:         strPtr(raw, "fileFormat"),
		RetentionPeriod:    strPtr(raw, "retentionPeriod"),
		SourceURL:          strPtr(raw, "sourceUrl"),
		Domains:            nameList(raw["domains"]),
		DataProducts:       nameList(raw["dataProducts"]),
		LifeCycle:          raw["lifeCycle"],
		Certification:      raw["certification"],
		Votes:              raw["votes"],
		TestSuite:          nestedName(raw["testSuite"]),
		Queries:            raw["queries"],
		CustomMetrics:      raw["customMetrics"],
		SourceHash:         strPtr(raw, "sourceHash"),
		ProcessedLineage:   raw["processedLineage"],
		Joins:              raw["joins"],
		Followers:          nameList(raw["followers"]),
	}

	if part, ok := raw["tablePartition"].(map[string]any); ok {
		t.PartitionKeys = part["columns"]
	}
	if opts.IncludeTableProfiles {
		t.TableProfile = raw["tableProfile"]
	}
	if opts.IncludeSampleData {
		t.SampleData = raw["sampleData"]
	}
	if opts.IncludeLineage {
		t.Lineage = raw["lineage"]
	}
	return t
}

// Columns normalizes a raw column list. Non-map entries are skipped.
func Columns(v any) []domain.Column {
	raw, _ := v.([]any)
	cols := make([]domain.Column, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			cols = append(cols, Column(m))
		}
	}
	return cols
}

// Column normalizes a single column. The dataType field arrives either as a
// structured descriptor object or a flat string; the descriptor wins for
// dataType, and only the descriptor can supply precision, scale, and
// maxLength. A flat dataTypeDisplay wins over the descriptor's displayName.
func Column(raw map[string]any) domain.Column {
	c := domain.Column{
		Name:               str(raw, "name"),
		Description:        strPtr(raw, "description"),
		OrdinalPosition:    intPtr(raw, "ordinalPosition"),
		Tags:               Tags(raw["tags"]),
		Nullable:           boolPtr(raw, "nullable"),
		DefaultValue:       raw["defaultValue"],
		ArrayDataType:      strPtr(raw, "arrayDataType"),
		DataLength:         intPtr(raw, "dataLength"),
		JSONSchema:         strPtr(raw, "jsonSchema"),
		FullyQualifiedName: strPtr(raw, "fullyQualifiedName"),
		Children:           Columns(raw["children"]),
		CustomMetrics:      raw["customMetrics"],
	}

	c.DataTypeDisplay = strPtr(raw, "dataTypeDisplay")
	switch dt := raw["dataType"].(type) {
	case map[string]any:
		c.DataType = strPtr(dt, "name")
		if c.DataTypeDisplay == nil {
			c.DataTypeDisplay = strPtr(dt, "displayName")
		}
		c.Precision = intPtr(dt, "precision")
		c.Scale = intPtr(dt, "scale")
		c.MaxLength = intPtr(dt, "length")
	case string:
		if dt != "" {
			c.DataType = &dt
		}
	}

	switch con := raw["constraint"].(type) {
	case map[string]any:
		c.Constraint = strPtr(con, "name")
	case string:
		if con != "" {
			c.Constraint = &con
		}
	}

	return c
}

// Owners normalizes a raw owner reference list.
func Owners(v any) []domain.Owner {
	raw, _ := v.([]any)
	owners := make([]domain.Owner, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		owners = append(owners, domain.Owner{
			ID:                 str(m, "id"),
			Name:               str(m, "name"),
			Type:               str(m, "type"),
			FullyQualifiedName: str(m, "fullyQualifiedName"),
		})
	}
	return owners
}

// Tags normalizes a raw tag label list.
func Tags(v any) []domain.Tag {
	raw, _ := v.([]any)
	tags := make([]domain.Tag, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		tags = append(tags, domain.Tag{
			TagFQN:      str(m, "tagFQN"),
			Description: strPtr(m, "description"),
			Source:      strPtr(m, "source"),
		})
	}
	return tags
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func strPtr(m map[string]any, key string) *string {
	if s, ok := m[key].(string); ok && s != "" {
		return &s
	}
	return nil
}

func intPtr(m map[string]any, key string) *int {
	switch n := m[key].(type) {
	case float64:
		i := int(n)
		return &i
	case int:
		return &n
	}
	return nil
}

func boolPtr(m map[string]any, key string) *bool {
	if b, ok := m[key].(bool); ok {
		return &b
	}
	return nil
}

// nestedName extracts the name of an entity reference object.
func nestedName(v any) *string {
	if m, ok := v.(map[string]any); ok {
		return strPtr(m, "name")
	}
	return nil
}

// nameList flattens a list of entity references to their names. References
// without a name contribute an empty string, preserving list length.
func nameList(v any) []string {
	raw, _ := v.([]any)
	names := make([]string, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			names = append(names, str(m, "name"))
		}
	}
	return names
}
