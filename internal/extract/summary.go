package extract

import (
	"strings"
	"time"

	"omd-facade/internal/domain"
)

// Summarize computes aggregate statistics over an extracted tree. The level
// totals come from the walk's accumulated stats so they reflect what was
// actually retrieved; views, owners, and tags are recounted from the tree.
func Summarize(svc domain.Service, databases []domain.Database, stats domain.ExtractStats) domain.MetadataSummary {
	views := 0
	owners := map[string]struct{}{}
	tags := map[string]struct{}{}

	addOwners := func(list []domain.Owner) {
		for _, o := range list {
			if o.Name != "" {
				owners[o.Name] = struct{}{}
			}
		}
	}
	addTags := func(list []domain.Tag) {
		for _, t := range list {
			if t.TagFQN != "" {
				tags[t.TagFQN] = struct{}{}
			}
		}
	}

	addOwners(svc.Owners)
	addTags(svc.Tags)

	for _, db := range databases {
		addOwners(db.Owners)
		addTags(db.Tags)
		for _, sc := range db.Schemas {
			addOwners(sc.Owners)
			addTags(sc.Tags)
			for _, tbl := range sc.Tables {
				addOwners(tbl.Owners)
				addTags(tbl.Tags)
				if tbl.TableType != nil && strings.Contains(strings.ToLower(*tbl.TableType), "view") {
					views++
				}
				for _, col := range tbl.Columns {
					addTags(col.Tags)
				}
			}
		}
	}

	return domain.MetadataSummary{
		TotalDatabases:          stats.Databases,
		TotalSchemas:            stats.Schemas,
		TotalTables:             stats.Tables,
		TotalColumns:            stats.Columns,
		TotalViews:              views,
		TotalOwners:             len(owners),
		TotalTags:               len(tags),
		DataExtractionTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
