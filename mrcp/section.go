package mrcp

import (
	"iter"
	"log/slog"
	"slices"
)

// HeaderField is a single property of a [HeaderSection].
type HeaderField struct {
	// ID is the flat index of the field in the section presence table.
	// Resource-specific ids are offset by [GenericHeaderCount].
	// Fields with an id outside the table (e.g. unknown headers) are kept in the
	// field list but never reported as present.
	ID int
	// Name is the header name as it appears on the wire.
	Name string
	// Value is the raw header value.
	Value Span
}

func (f *HeaderField) Clone() *HeaderField {
	if f == nil {
		return nil
	}
	f2 := *f
	f2.Value = SpanOf(f.Value)
	return &f2
}

func (f *HeaderField) LogValue() slog.Value {
	if f == nil {
		return zeroSlogValue
	}
	return slog.GroupValue(
		slog.Int("id", f.ID),
		slog.String("name", f.Name),
		slog.Any("value", f.Value),
	)
}

// HeaderSection is a sparse set of header fields with O(1) presence test.
//
// The presence table is indexed by field id. Generic fields occupy
// ids [0, GenericHeaderCount), resource-specific fields follow.
// The zero value is an empty section with no slots, see [HeaderSection.Init].
type HeaderSection struct {
	arr    []*HeaderField
	fields []*HeaderField
}

// Init resets the section and allocates size presence slots.
func (hs *HeaderSection) Init(size int) {
	hs.arr = make([]*HeaderField, max(size, 0))
	hs.fields = nil
}

// Size returns the number of presence slots.
func (hs *HeaderSection) Size() int {
	if hs == nil {
		return 0
	}
	return len(hs.arr)
}

// Len returns the number of fields added to the section.
func (hs *HeaderSection) Len() int {
	if hs == nil {
		return 0
	}
	return len(hs.fields)
}

// FieldCheck reports whether the field with the given id is set.
// Any id outside the presence table is reported as absent.
func (hs *HeaderSection) FieldCheck(id int) bool {
	return hs.FieldGet(id) != nil
}

// FieldGet returns the field with the given id or nil.
func (hs *HeaderSection) FieldGet(id int) *HeaderField {
	if hs == nil || id < 0 || id >= len(hs.arr) {
		return nil
	}
	return hs.arr[id]
}

// FieldAdd appends f to the section.
// It returns false if f is nil or a field with the same id is already set.
func (hs *HeaderSection) FieldAdd(f *HeaderField) bool {
	if hs == nil || f == nil {
		return false
	}
	if f.ID >= 0 && f.ID < len(hs.arr) {
		if hs.arr[f.ID] != nil {
			return false
		}
		hs.arr[f.ID] = f
	}
	hs.fields = append(hs.fields, f)
	return true
}

// FieldSet adds f to the section replacing the field with the same id.
func (hs *HeaderSection) FieldSet(f *HeaderField) bool {
	if hs == nil || f == nil {
		return false
	}
	hs.FieldRemove(f.ID)
	return hs.FieldAdd(f)
}

// FieldRemove removes the field with the given id.
// It reports whether a field was removed.
func (hs *HeaderSection) FieldRemove(id int) bool {
	f := hs.FieldGet(id)
	if f == nil {
		return false
	}
	hs.arr[id] = nil
	hs.fields = slices.DeleteFunc(hs.fields, func(f2 *HeaderField) bool { return f2 == f })
	return true
}

// Fields iterates over the added fields in insertion order.
func (hs *HeaderSection) Fields() iter.Seq[*HeaderField] {
	return func(yield func(*HeaderField) bool) {
		if hs == nil {
			return
		}
		for _, f := range hs.fields {
			if !yield(f) {
				return
			}
		}
	}
}
