package picopg

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unsafe"

	"github.com/gopsql/logger"
)

type (
	// Model is a database table and it is created from a struct. Table
	// name is inferred from the name of the struct or its TableName()
	// receiver, column names from struct field names or their "column"
	// tags. Both table and column names are in snake_case by default. The
	// per-type metadata (table identity, column list, primary key) is
	// computed once per struct type and cached for the process lifetime.
	Model struct {
		gateway    Gateway
		logger     logger.Logger
		structType reflect.Type
		*modelInfo
	}

	modelInfo struct {
		tableName   string // quoted, possibly schema-qualified
		primaryKey  string // primary key column name
		modelFields []Field
	}

	// ModelWithTableName overrides the derived table name. If the
	// returned string contains a double quote it is used verbatim,
	// otherwise it is quoted.
	ModelWithTableName interface {
		TableName() string
	}

	// ModelWithSchemaName places the table in a schema; the qualified
	// name becomes "<schema>"."<table>".
	ModelWithSchemaName interface {
		SchemaName() string
	}

	// ModelWithPrimaryKey overrides the primary key column name. The
	// default is "id". The named column must be among the declared
	// columns.
	ModelWithPrimaryKey interface {
		PrimaryKey() string
	}

	Field struct {
		Name       string // struct field name
		ColumnName string // column name in database
		Exported   bool   // false if field name is lower case (unexported)
	}
)

const defaultPrimaryKey = "id"

// modelInfoCache holds one immutable modelInfo per struct type. Concurrent
// first resolutions of the same type are idempotent; LoadOrStore keeps a
// single winner.
var modelInfoCache sync.Map // reflect.Type -> *modelInfo

// NewModel initializes a Model from a struct. Metadata for the struct type
// is resolved once and cached. A configuration problem (not a struct,
// primary key column not declared) is reported here, never at statement
// time. For available options, see SetOptions().
func NewModel(object interface{}, options ...interface{}) (*Model, error) {
	rt := reflect.TypeOf(object)
	if rt != nil && rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil, ErrMustBeStruct
	}
	mi, err := resolveModelInfo(rt, object)
	if err != nil {
		return nil, err
	}
	m := &Model{
		structType: rt,
		modelInfo:  mi,
	}
	m.SetOptions(options...)
	return m, nil
}

// MustNewModel is like NewModel but panics on configuration errors.
func MustNewModel(object interface{}, options ...interface{}) *Model {
	m, err := NewModel(object, options...)
	if err != nil {
		panic(err)
	}
	return m
}

func resolveModelInfo(rt reflect.Type, object interface{}) (*modelInfo, error) {
	if cached, ok := modelInfoCache.Load(rt); ok {
		return cached.(*modelInfo), nil
	}
	mi, err := newModelInfo(rt, object)
	if err != nil {
		return nil, err
	}
	actual, _ := modelInfoCache.LoadOrStore(rt, mi)
	return actual.(*modelInfo), nil
}

func newModelInfo(rt reflect.Type, object interface{}) (*modelInfo, error) {
	mi := &modelInfo{
		tableName:   toTableName(rt, object),
		primaryKey:  defaultPrimaryKey,
		modelFields: parseStruct(rt),
	}
	if o, ok := object.(ModelWithPrimaryKey); ok {
		if name := o.PrimaryKey(); name != "" {
			mi.primaryKey = name
		}
	}
	if mi.fieldByColumn(mi.primaryKey) == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoPrimaryKey, mi.primaryKey)
	}
	return mi, nil
}

// toTableName derives the quoted, possibly schema-qualified table
// identifier of a struct. A TableName() override that already contains a
// double quote is used verbatim.
func toTableName(rt reflect.Type, object interface{}) string {
	var name string
	if o, ok := object.(ModelWithTableName); ok {
		name = o.TableName()
	}
	if name == "" {
		name = rt.Name()
		if DefaultTableNamer != nil {
			name = DefaultTableNamer(name)
		}
	}
	if !strings.Contains(name, `"`) {
		name = quoteIdentifier(name)
	}
	if o, ok := object.(ModelWithSchemaName); ok {
		if schema := o.SchemaName(); schema != "" {
			name = quoteIdentifier(schema) + "." + name
		}
	}
	return name
}

// parseStruct collects column names of a struct type in declaration order.
func parseStruct(rt reflect.Type) (fields []Field) {
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.Anonymous {
			fields = append(fields, parseStruct(f.Type)...)
			continue
		}

		columnName := f.Tag.Get("column")
		if columnName == "-" {
			continue
		}
		if idx := strings.Index(columnName, ","); idx != -1 {
			columnName = columnName[:idx]
		}
		if columnName == "" {
			if f.PkgPath != "" {
				continue // ignore unexported field if no column specified
			}
			columnName = f.Name
			if DefaultColumnNamer != nil {
				columnName = DefaultColumnNamer(columnName)
			}
		}

		fields = append(fields, Field{
			Name:       f.Name,
			ColumnName: columnName,
			Exported:   f.PkgPath == "",
		})
	}
	return
}

func (m Model) String() string {
	return `model (table: ` + m.tableName + `) has ` +
		strconv.Itoa(len(m.modelFields)) + " modelFields"
}

// Table name of the Model, quoted and schema-qualified.
func (m Model) TableName() string {
	return m.tableName
}

// Primary key column name of the Model.
func (m Model) PrimaryKey() string {
	return m.primaryKey
}

// Type name of the Model.
func (m Model) TypeName() string {
	if m.structType != nil {
		return m.structType.Name()
	}
	return ""
}

// Columns returns the declared column names in declaration order.
func (m Model) Columns() (out []string) {
	for _, f := range m.modelFields {
		out = append(out, f.ColumnName)
	}
	return
}

// Get field by struct field name, nil will be returned if no such field.
func (m Model) FieldByName(name string) *Field {
	for _, f := range m.modelFields {
		if f.Name == name {
			return &f
		}
	}
	return nil
}

func (mi modelInfo) fieldByColumn(column string) *Field {
	for _, f := range mi.modelFields {
		if f.ColumnName == column {
			return &f
		}
	}
	return nil
}

func (mi modelInfo) primaryKeyField() *Field {
	return mi.fieldByColumn(mi.primaryKey)
}

// SetOptions sets the database gateway (see SetGateway()) and/or logger
// (see SetLogger()).
func (m *Model) SetOptions(options ...interface{}) *Model {
	for _, option := range options {
		switch o := option.(type) {
		case Gateway:
			m.SetGateway(o)
		case logger.Logger:
			m.SetLogger(o)
		}
	}
	return m
}

// Return the database gateway of the Model.
func (m *Model) Gateway() Gateway {
	return m.gateway
}

// Set the database gateway for the Model. ErrNoGateway is returned by
// operations if no gateway is set.
func (m *Model) SetGateway(gateway Gateway) *Model {
	m.gateway = gateway
	return m
}

// Set the logger for the Model. Use logger.StandardLogger if you want to
// use Go's built-in standard logging package. By default, no logger is
// used, so the SQL statements are not printed to the console.
func (m *Model) SetLogger(logger logger.Logger) *Model {
	m.logger = logger
	return m
}

// Clone returns a copy of the model sharing the cached metadata.
func (m *Model) Clone() *Model {
	return &Model{
		gateway:    m.gateway,
		logger:     m.logger,
		structType: m.structType,
		modelInfo:  m.modelInfo,
	}
}

// Quiet returns a copy of the model without logger.
func (m *Model) Quiet() *Model {
	return m.Clone().SetLogger(nil)
}

func (m *Model) log(sql string, args []interface{}) {
	if m.logger == nil {
		return
	}
	if len(args) == 0 {
		m.logger.Debug(sql)
		return
	}
	m.logger.Debug(sql, args)
}

// structValue returns the struct value of a record, dereferencing a
// pointer if necessary. The record must be an instance of the Model's
// struct type.
func (m *Model) structValue(record interface{}) (reflect.Value, error) {
	rv := reflect.ValueOf(record)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if !rv.IsValid() || rv.Type() != m.structType {
		return reflect.Value{}, fmt.Errorf("%w: want %s", ErrTypeMismatch, m.structType)
	}
	return rv, nil
}

// structPointer is like structValue but requires the record to be an
// addressable pointer, for operations that scan returned rows back into
// the record.
func (m *Model) structPointer(record interface{}) (reflect.Value, error) {
	rv := reflect.ValueOf(record)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return reflect.Value{}, ErrMustBePointer
	}
	rv = rv.Elem()
	if rv.Type() != m.structType {
		return reflect.Value{}, fmt.Errorf("%w: want %s", ErrTypeMismatch, m.structType)
	}
	return rv, nil
}

func (f Field) getFieldValueAddrFromStruct(structValue reflect.Value) interface{} {
	value := structValue.FieldByName(f.Name)
	if f.Exported {
		return value.Addr().Interface()
	}
	return reflect.NewAt(value.Type(), unsafe.Pointer(value.UnsafeAddr())).Interface()
}
