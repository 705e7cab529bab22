package oradb

import (
	"github.com/connerohnesorge/oradb-go/internal/odpi"
)

// ObjectType is a shared descriptor for an Oracle object or collection
// type. Instances share the underlying native handle through its
// reference count: Clone increments it, Close decrements it, and the
// native layer frees the descriptor when the last holder releases it.
// The pointee is never mutated after construction, so clones are safe to
// read from multiple owners.
type ObjectType struct {
	api      *odpi.ODPI
	handle   odpi.ObjectType
	schema   string
	name     string
	elemType *OracleType
	closed   bool
}

// NewObjectType wraps a native object type handle. Ownership of one
// reference transfers to the returned descriptor. elemType is non-nil for
// collection types and describes the element type.
func NewObjectType(api *odpi.ODPI, handle odpi.ObjectType, schema, name string, elemType *OracleType) *ObjectType {
	return &ObjectType{
		api:      api,
		handle:   handle,
		schema:   schema,
		name:     name,
		elemType: elemType,
	}
}

// Clone returns a new descriptor sharing the same native handle, with the
// reference count incremented.
func (t *ObjectType) Clone() (*ObjectType, error) {
	if t.closed {
		return nil, newInternal("object type %s used after Close", t.Name())
	}
	if err := t.api.AddObjectTypeRef(t.handle); err != nil {
		return nil, wrapNative(err)
	}
	c := *t
	return &c, nil
}

// Close releases this holder's reference. The descriptor must not be used
// afterwards.
func (t *ObjectType) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	return wrapNative(t.api.ReleaseObjectType(t.handle))
}

// Name returns the schema-qualified type name.
func (t *ObjectType) Name() string {
	if t.schema == "" {
		return t.name
	}
	return t.schema + "." + t.name
}

// IsCollection reports whether the type is a collection type.
func (t *ObjectType) IsCollection() bool {
	return t.elemType != nil
}

// ElementType returns the element type of a collection type.
func (t *ObjectType) ElementType() (OracleType, bool) {
	if t.elemType == nil {
		return OracleType{}, false
	}
	return *t.elemType, true
}

// Equal reports whether two descriptors refer to the same native type
// handle. Equality is by handle identity, not structural content.
func (t *ObjectType) Equal(other *ObjectType) bool {
	return other != nil && t.handle == other.handle
}
