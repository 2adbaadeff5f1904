package orm

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func WithSqlite(file string) gorm.Dialector {
	return sqlite.Open(fmt.Sprintf("file:%v?mode=ro", file))
}
