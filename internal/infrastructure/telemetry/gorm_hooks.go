package telemetry

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type queryStartKey string

// registerAround installs before/after callbacks named "<prefix>:before_*" and
// "<prefix>:after_*" around every gorm operation. after receives the SQL verb.
func registerAround(db *gorm.DB, prefix string, after func(db *gorm.DB, operation string)) error {
	key := queryStartKey(prefix)
	before := func(db *gorm.DB) {
		ctx := db.Statement.Context
		if ctx == nil {
			ctx = context.Background()
		}
		db.Statement.Context = context.WithValue(ctx, key, time.Now())
	}
	afterOp := func(operation string) func(*gorm.DB) {
		return func(db *gorm.DB) { after(db, operation) }
	}
	afterRaw := func(db *gorm.DB) {
		after(db, detectOperation(db.Statement.SQL.String()))
	}

	cb := db.Callback()
	return errors.Join(
		cb.Create().Before("gorm:create").Register(prefix+":before_create", before),
		cb.Query().Before("gorm:query").Register(prefix+":before_query", before),
		cb.Update().Before("gorm:update").Register(prefix+":before_update", before),
		cb.Delete().Before("gorm:delete").Register(prefix+":before_delete", before),
		cb.Row().Before("gorm:row").Register(prefix+":before_row", before),
		cb.Raw().Before("gorm:raw").Register(prefix+":before_raw", before),

		cb.Create().After("gorm:create").Register(prefix+":after_create", afterOp("INSERT")),
		cb.Query().After("gorm:query").Register(prefix+":after_query", afterOp("SELECT")),
		cb.Update().After("gorm:update").Register(prefix+":after_update", afterOp("UPDATE")),
		cb.Delete().After("gorm:delete").Register(prefix+":after_delete", afterOp("DELETE")),
		cb.Row().After("gorm:row").Register(prefix+":after_row", afterRaw),
		cb.Raw().After("gorm:raw").Register(prefix+":after_raw", afterRaw),
	)
}

// elapsed returns the time since the matching before callback, or false if it never ran
func elapsed(db *gorm.DB, prefix string) (time.Duration, bool) {
	if db.Statement.Context == nil {
		return 0, false
	}
	start, ok := db.Statement.Context.Value(queryStartKey(prefix)).(time.Time)
	if !ok {
		return 0, false
	}
	return time.Since(start), true
}

func detectOperation(sql string) string {
	sql = strings.ToUpper(strings.TrimSpace(sql))
	for _, verb := range []string{"SELECT", "INSERT", "UPDATE", "DELETE"} {
		if strings.HasPrefix(sql, verb) {
			return verb
		}
	}
	return "OTHER"
}
