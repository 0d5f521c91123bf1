package domain

// ValidServiceTypes enumerates the database engine types accepted for
// service creation. Ordering matters only for error messages.
var ValidServiceTypes = []string{
	"MySQL", "PostgreSQL", "BigQuery", "Snowflake", "Redshift",
	"Oracle", "MSSQL", "MongoDB", "Cassandra", "Clickhouse",
	"Databricks", "Athena", "Hive", "Presto", "Trino",
}

// IsValidServiceType reports whether serviceType is an accepted engine type.
// Matching is case-sensitive, mirroring the upstream enumeration.
func IsValidServiceType(serviceType string) bool {
	for _, t := range ValidServiceTypes {
		if t == serviceType {
			return true
		}
	}
	return false
}
