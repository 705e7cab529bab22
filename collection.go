package oradb

import (
	"github.com/connerohnesorge/oradb-go/internal/odpi"
)

// Collection is an Oracle VARRAY or nested table instance. Indices are
// sparse: deleting an element leaves a hole, so positions are traversed
// through the native first/next/prev/last index queries rather than by
// counting.
//
// A Collection is owned by the context that fetched or created it and is
// not safe for concurrent mutation.
type Collection struct {
	api        *odpi.ODPI
	handle     odpi.Object
	objType    *ObjectType
	elemType   OracleType
	elemNative nativeType
	elem       *Value
}

// NewCollection wraps a native collection handle of the given type.
// Ownership of one object reference transfers to the returned Collection.
func NewCollection(api *odpi.ODPI, handle odpi.Object, objType *ObjectType) (*Collection, error) {
	elemType, ok := objType.ElementType()
	if !ok {
		return nil, newInternal("%s is not a collection type", objType.Name())
	}
	elemNative, err := elemType.nativeType()
	if err != nil {
		return nil, err
	}
	return &Collection{
		api:        api,
		handle:     handle,
		objType:    objType,
		elemType:   elemType,
		elemNative: elemNative,
		elem: &Value{
			oratype: elemType,
			native:  elemNative,
			data:    &odpi.Data{},
		},
	}, nil
}

// Close releases the collection's object reference.
func (c *Collection) Close() error {
	return wrapNative(c.api.ReleaseObject(c.handle))
}

// ObjectType returns the collection's type descriptor.
func (c *Collection) ObjectType() *ObjectType {
	return c.objType
}

// Size returns the number of elements including deleted holes.
func (c *Collection) Size() (int, error) {
	n, err := c.api.CollectionSize(c.handle)
	if err != nil {
		return 0, wrapNative(err)
	}
	return int(n), nil
}

// FirstIndex returns the first occupied index. ok is false when the
// collection is empty.
func (c *Collection) FirstIndex() (index int, ok bool, err error) {
	i, ok, err := c.api.FirstIndex(c.handle)
	return int(i), ok, wrapNative(err)
}

// LastIndex returns the last occupied index. ok is false when the
// collection is empty.
func (c *Collection) LastIndex() (index int, ok bool, err error) {
	i, ok, err := c.api.LastIndex(c.handle)
	return int(i), ok, wrapNative(err)
}

// NextIndex returns the next occupied index after index. ok is false when
// there is none.
func (c *Collection) NextIndex(index int) (next int, ok bool, err error) {
	i, ok, err := c.api.NextIndex(c.handle, int32(index))
	return int(i), ok, wrapNative(err)
}

// PrevIndex returns the previous occupied index before index. ok is false
// when there is none.
func (c *Collection) PrevIndex(index int) (prev int, ok bool, err error) {
	i, ok, err := c.api.PrevIndex(c.handle, int32(index))
	return int(i), ok, wrapNative(err)
}

// Exists reports whether an element occupies index.
func (c *Collection) Exists(index int) (bool, error) {
	ok, err := c.api.ElementExists(c.handle, int32(index))
	return ok, wrapNative(err)
}

// Get decodes the element at index into the collection's element slot and
// returns it. The slot is reused by subsequent Get and iterator calls.
func (c *Collection) Get(index int) (*Value, error) {
	if err := c.api.ElementValue(c.handle, int32(index), c.elemNative.num(), c.elem.data); err != nil {
		return nil, wrapNative(err)
	}
	return c.elem, nil
}

// Set encodes val into the element at index.
func (c *Collection) Set(index int, val any) error {
	if err := c.elem.Set(val); err != nil {
		return err
	}
	return wrapNative(c.api.SetElementValue(c.handle, int32(index), c.elemNative.num(), c.elem.data))
}

// Append encodes val as a new element at the end of the collection.
func (c *Collection) Append(val any) error {
	if err := c.elem.Set(val); err != nil {
		return err
	}
	return wrapNative(c.api.AppendElement(c.handle, c.elemNative.num(), c.elem.data))
}

// Delete removes the element at index, leaving a hole in the index space.
func (c *Collection) Delete(index int) error {
	return wrapNative(c.api.DeleteElement(c.handle, int32(index)))
}

// collState is the iterator position: before the first occupied index, at
// a concrete one, or after the last.
type collState int

const (
	collBeforeFirst collState = iota
	collAt
	collAfterLast
)

// Iter returns an iterator positioned before the first occupied index.
// The same iterator can also be driven from the other end with NextBack
// before any forward step, since the backward step from the initial
// after-last position of a fresh backward traversal starts at LastIndex.
func (c *Collection) Iter() *CollIter {
	return &CollIter{coll: c, state: collBeforeFirst}
}

// IterBack returns an iterator positioned after the last occupied index,
// for backward traversal with NextBack.
func (c *Collection) IterBack() *CollIter {
	return &CollIter{coll: c, state: collAfterLast}
}

// CollIter traverses a collection's occupied indices lazily in either
// direction, decoding each element it lands on. It allocates nothing per
// step. Once a terminal position is reached, further steps in that
// direction return false without querying the native layer again. A
// native or decode error is terminal: Err reports it and every further
// step returns false.
type CollIter struct {
	coll  *Collection
	state collState
	index int
	err   error
}

// Next advances to the next occupied index and decodes its element.
// It returns false when the iterator is exhausted forward or an error
// occurred.
func (it *CollIter) Next() bool {
	if it.err != nil {
		return false
	}
	var index int
	var ok bool
	var err error
	switch it.state {
	case collBeforeFirst:
		index, ok, err = it.coll.FirstIndex()
	case collAt:
		index, ok, err = it.coll.NextIndex(it.index)
	case collAfterLast:
		return false
	}
	return it.land(index, ok, err, collAfterLast)
}

// NextBack advances to the previous occupied index and decodes its
// element. It returns false when the iterator is exhausted backward or an
// error occurred.
func (it *CollIter) NextBack() bool {
	if it.err != nil {
		return false
	}
	var index int
	var ok bool
	var err error
	switch it.state {
	case collBeforeFirst:
		return false
	case collAt:
		index, ok, err = it.coll.PrevIndex(it.index)
	case collAfterLast:
		index, ok, err = it.coll.LastIndex()
	}
	return it.land(index, ok, err, collBeforeFirst)
}

// land commits a step: an absent index moves to the terminal state for
// the direction, a decode failure is recorded without moving, and a
// concrete index becomes the current position.
func (it *CollIter) land(index int, ok bool, err error, terminal collState) bool {
	if err != nil {
		it.err = err
		return false
	}
	if !ok {
		it.state = terminal
		return false
	}
	if _, err := it.coll.Get(index); err != nil {
		it.err = err
		return false
	}
	it.state = collAt
	it.index = index
	return true
}

// Index returns the index the iterator is positioned at.
func (it *CollIter) Index() int {
	return it.index
}

// Value returns the decoded element at the current index. The underlying
// slot is shared with the collection and overwritten by the next step.
func (it *CollIter) Value() *Value {
	return it.coll.elem
}

// Err returns the first native or decode error the iterator hit, if any.
func (it *CollIter) Err() error {
	return it.err
}
