package orm

import (
	"strings"

	"gorm.io/gorm/schema"
)

// NamingStrategy drops the "sql" prefix of the row types from the table names.
type NamingStrategy struct {
	schema.NamingStrategy
}

func (n *NamingStrategy) TableName(table string) string {
	return n.NamingStrategy.TableName(strings.TrimPrefix(table, "sql"))
}
