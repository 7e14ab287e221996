// Package picopg is a minimal mapping layer between Go structs and
// PostgreSQL tables.
//
// # Overview
//
// picopg derives table metadata from struct declarations, generates
// parameterized SQL for insert, select, update, delete, count and
// paginated select, executes it through a pooled connection gateway and
// scans result rows back into structs. It deliberately stops there: no
// joins, no query language beyond equality filters, no transactions
// spanning calls, no migrations.
//
// # Basic Usage
//
// Declare a struct and create a model with a gateway:
//
//	type User struct {
//		Id        int
//		Name      string
//		Email     string
//		CreatedAt time.Time
//	}
//
//	gw, _ := pgxgateway.Open(ctx, os.Getenv("DBCONNSTR"))
//	users := picopg.MustNewModel(User{}, gw)
//
//	// Insert a record; Id and CreatedAt come back from RETURNING *
//	u := User{Name: "Alice", Email: "alice@example.com"}
//	err := users.Insert(ctx, &u)
//
//	// Select by example
//	var found User
//	ok, err := users.SelectOne(ctx, &found, users.Filter("Email", "alice@example.com"))
//
//	// Full-record update and delete by primary key
//	u.Name = "Bob"
//	ok, err = users.Update(ctx, &u)
//	ok, err = users.Delete(ctx, &u)
//
//	// One page plus the total matching count
//	var page []User
//	total, err := users.Paginate(ctx, &page, 2, 10, nil)
//
// # Table and Column Naming
//
// Table names are derived from the struct name in snake_case (MyUser
// becomes my_user) and quoted once when the model is created. Customize
// with:
//   - a TableName() string method (used verbatim if it contains quoting)
//   - a SchemaName() string method for "schema"."table" qualification
//   - setting DefaultTableNamer to a custom function
//
// Column names are derived from struct field names in snake_case;
// customize per field with the "column" tag, or globally with
// DefaultColumnNamer. The primary key column is "id" unless the struct
// has a PrimaryKey() string method naming another declared column.
//
// # Filters
//
// Read operations take a Filter, an ordered set of equality conditions.
// Build one from name/value pairs or from a partial record whose pointer
// fields mark which values are present:
//
//	users.Filter("Name", "Alice", "Email", "alice@example.com")
//	users.Filter("DeletedAt", nil) // deleted_at IS NULL
//	users.FilterFrom(UserPatch{Name: &name})
//
// A nil filter matches all rows. Filter values are always bound as
// positional parameters, never interpolated into SQL text.
//
// # Raw Statements
//
// NewSQL is the escape hatch for statements picopg does not generate:
//
//	var names []string
//	users.NewSQL("SELECT name FROM \"user\" WHERE id > $1", 10).Query(ctx, &names)
//
//	affected, err := users.NewSQL("UPDATE \"user\" SET views = views + 1").Execute(ctx)
//
// # Gateway
//
// Statements execute through the Gateway interface; each operation
// acquires one connection for its own duration and releases it on every
// exit path. The default implementation in the pgxgateway package wraps
// a jackc/pgx connection pool. Construct one gateway at process startup
// and pass it to every model. Driver errors are returned unmodified;
// picopg never retries and never logs unless a logger is set with
// SetLogger.
package picopg
