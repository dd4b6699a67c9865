package mrcp

import (
	"log/slog"
)

// MessageHeader is the header part of an MRCP message.
type MessageHeader struct {
	// Section tracks which fields are set.
	Section HeaderSection
	// Generic holds the [*GenericHeader] block.
	Generic HeaderAccessor
	// Resource holds the resource-specific block: [*RecogHeader] or [*SynthHeader].
	Resource HeaderAccessor
}

// Message is an MRCP message as seen by the header model.
//
// Read methods are nil-safe and report absence instead of failing.
// Write methods allocate header blocks from the message [Pool] on first use.
// Message is not safe for concurrent use.
type Message struct {
	Resource ResourceType
	Header   MessageHeader
	// Body is the message body. There is no presence flag for the body,
	// an empty span means there is no body.
	Body Span
	Pool *Pool
}

// NewMessage creates an empty message for the given resource.
// The presence table is sized for the generic fields plus the fields of the resource.
// If pool is nil, a new pool is created.
func NewMessage(resource ResourceType, pool *Pool) *Message {
	if pool == nil {
		pool = NewPool()
	}
	msg := &Message{Resource: resource, Pool: pool}
	msg.Header.Section.Init(GenericHeaderCount + resource.FieldCount())
	msg.Header.Generic.Allocator = genericAllocator
	msg.Header.Resource.Allocator = resource.info().allocator
	return msg
}

// GenericFieldPresent reports whether the generic field is set.
func (msg *Message) GenericFieldPresent(id GenericHeaderID) bool {
	if msg == nil {
		return false
	}
	return msg.Header.Section.FieldCheck(int(id))
}

// ResourceFieldPresent reports whether the resource-specific field is set.
// The id is interpreted in the id space of the message resource and
// offset by [GenericHeaderCount] in the presence table.
func (msg *Message) ResourceFieldPresent(id int) bool {
	if msg == nil || id < 0 {
		return false
	}
	return msg.Header.Section.FieldCheck(id + GenericHeaderCount)
}

// RecogFieldPresent reports whether the recognizer field is set.
// It is always false for messages of other resources.
func (msg *Message) RecogFieldPresent(id RecogHeaderID) bool {
	return msg.isResource(ResourceRecognizer) && msg.ResourceFieldPresent(int(id))
}

// SynthFieldPresent reports whether the synthesizer field is set.
// It is always false for messages of other resources.
func (msg *Message) SynthFieldPresent(id SynthHeaderID) bool {
	return msg.isResource(ResourceSynthesizer) && msg.ResourceFieldPresent(int(id))
}

func (msg *Message) isResource(rt ResourceType) bool { return msg != nil && msg.Resource == rt }

// GenericHeader returns the generic header block or nil if it was never allocated.
func (msg *Message) GenericHeader() *GenericHeader {
	if msg == nil {
		return nil
	}
	hdr, _ := msg.Header.Generic.Data.(*GenericHeader)
	return hdr
}

// ResourceHeader returns the resource-specific header block or nil if it was never allocated.
// The caller interprets the block according to the message resource.
func (msg *Message) ResourceHeader() any {
	if msg == nil {
		return nil
	}
	return msg.Header.Resource.Data
}

// RecogHeader returns the recognizer header block or nil.
func (msg *Message) RecogHeader() *RecogHeader {
	hdr, _ := msg.ResourceHeader().(*RecogHeader)
	return hdr
}

// SynthHeader returns the synthesizer header block or nil.
func (msg *Message) SynthHeader() *SynthHeader {
	hdr, _ := msg.ResourceHeader().(*SynthHeader)
	return hdr
}

// PrepareGenericHeader returns the generic header block allocating it if needed.
func (msg *Message) PrepareGenericHeader() *GenericHeader {
	if msg == nil {
		return nil
	}
	hdr, _ := msg.Header.Generic.Allocate(msg.Pool).(*GenericHeader)
	return hdr
}

// PrepareResourceHeader returns the resource-specific header block allocating it if needed.
// It returns nil for messages of unknown resource.
func (msg *Message) PrepareResourceHeader() any {
	if msg == nil {
		return nil
	}
	return msg.Header.Resource.Allocate(msg.Pool)
}

// PrepareRecogHeader returns the recognizer header block allocating it if needed.
func (msg *Message) PrepareRecogHeader() *RecogHeader {
	if !msg.isResource(ResourceRecognizer) {
		return nil
	}
	hdr, _ := msg.PrepareResourceHeader().(*RecogHeader)
	return hdr
}

// PrepareSynthHeader returns the synthesizer header block allocating it if needed.
func (msg *Message) PrepareSynthHeader() *SynthHeader {
	if !msg.isResource(ResourceSynthesizer) {
		return nil
	}
	hdr, _ := msg.PrepareResourceHeader().(*SynthHeader)
	return hdr
}

// AddGenericProperty marks the generic field as set.
// The generic block is allocated if needed.
// It reports false for an invalid id or an already set field.
func (msg *Message) AddGenericProperty(id GenericHeaderID) bool {
	if msg == nil || !id.IsValid() || msg.PrepareGenericHeader() == nil {
		return false
	}
	return msg.Header.Section.FieldAdd(&HeaderField{ID: int(id), Name: id.String()})
}

// RemoveGenericProperty marks the generic field as not set.
func (msg *Message) RemoveGenericProperty(id GenericHeaderID) bool {
	if msg == nil {
		return false
	}
	return msg.Header.Section.FieldRemove(int(id))
}

// AddResourceProperty marks the resource-specific field as set.
// The resource block is allocated if needed.
// It reports false for an id outside the message resource, an already set field
// or a message of unknown resource.
func (msg *Message) AddResourceProperty(id int) bool {
	if msg == nil || id < 0 || id >= msg.Resource.FieldCount() || msg.PrepareResourceHeader() == nil {
		return false
	}
	return msg.Header.Section.FieldAdd(&HeaderField{
		ID:   id + GenericHeaderCount,
		Name: msg.resourceFieldName(id),
	})
}

func (msg *Message) resourceFieldName(id int) string {
	switch msg.Resource {
	case ResourceRecognizer:
		return RecogHeaderID(id).String()
	case ResourceSynthesizer:
		return SynthHeaderID(id).String()
	default:
		return ""
	}
}

// RemoveResourceProperty marks the resource-specific field as not set.
func (msg *Message) RemoveResourceProperty(id int) bool {
	if msg == nil || id < 0 {
		return false
	}
	return msg.Header.Section.FieldRemove(id + GenericHeaderCount)
}

// AddRecogProperty marks the recognizer field as set.
func (msg *Message) AddRecogProperty(id RecogHeaderID) bool {
	return msg.isResource(ResourceRecognizer) && msg.AddResourceProperty(int(id))
}

// AddSynthProperty marks the synthesizer field as set.
func (msg *Message) AddSynthProperty(id SynthHeaderID) bool {
	return msg.isResource(ResourceSynthesizer) && msg.AddResourceProperty(int(id))
}

// SetBody copies s into the message pool and sets it as the body.
func (msg *Message) SetBody(s string) {
	if msg == nil {
		return
	}
	msg.Body = msg.Pool.DupString(s)
}

func (msg *Message) LogValue() slog.Value {
	if msg == nil {
		return zeroSlogValue
	}
	names := make([]string, 0, msg.Header.Section.Len())
	for f := range msg.Header.Section.Fields() {
		names = append(names, f.Name)
	}
	return slog.GroupValue(
		slog.String("resource", msg.Resource.String()),
		slog.Any("headers", names),
		slog.Int("body_len", msg.Body.Len()),
	)
}
