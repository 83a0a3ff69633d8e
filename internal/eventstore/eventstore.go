// Package eventstore persists event records in a SQL backend so repeated
// chart runs can skip re-reading large input files.
package eventstore

import (
	"fmt"

	"github.com/trafficlens/trafficlens/schema"
)

// eventsTable is the table holding imported event records.
const eventsTable = "trafficlens_events"

// quoteTableName quotes a table name per backend dialect.
func quoteTableName(name string, backend schema.StoreBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`"%s"`, name)
	default:
		return name
	}
}
