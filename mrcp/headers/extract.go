package headers

import (
	"log/slog"

	"github.com/ghettovoice/gomrcp/internal/errorutil"
	"github.com/ghettovoice/gomrcp/mrcp"
)

// optional is a raw value extracted from a message.
type optional[T any] struct {
	val T
	ok  bool
}

func some[T any](v T) optional[T] { return optional[T]{val: v, ok: true} }

func (o optional[T]) or(def T) T {
	if o.ok {
		return o.val
	}
	return def
}

func (o optional[T]) get() (T, bool) { return o.val, o.ok }

type extractor struct {
	msg      *mrcp.Message
	resource mrcp.ResourceType
	log      *slog.Logger
	metrics  *Metrics
}

func newExtractor(msg *mrcp.Message, resource mrcp.ResourceType, opts *ViewOptions) *extractor {
	return &extractor{
		msg:      msg,
		resource: resource,
		log:      opts.log(),
		metrics:  opts.metrics(),
	}
}

// text decodes span reporting malformed values. Both absent and malformed spans read as absent.
func (x *extractor) text(field string, span mrcp.Span) optional[string] {
	s, err := span.Decode()
	if err == nil {
		return some(s)
	}
	if errorutil.IsMalformedErr(err) {
		x.log.Warn("drop malformed header value",
			slog.String("resource", x.resource.String()),
			slog.String("field", field),
			slog.Any("value", span),
			slog.Any("error", err),
		)
		x.metrics.malformedField(x.resource, field)
	}
	return optional[string]{}
}

func genericField[T any](x *extractor, id mrcp.GenericHeaderID, get func(hdr *mrcp.GenericHeader) T) optional[T] {
	if !x.msg.GenericFieldPresent(id) {
		return optional[T]{}
	}
	hdr := x.msg.GenericHeader()
	if hdr == nil {
		return optional[T]{}
	}
	return some(get(hdr))
}

// resourceField reads a resource-specific field from the block of type *H.
// A block of another resource reads as absent.
func resourceField[H, T any](x *extractor, id int, get func(hdr *H) T) optional[T] {
	if !x.msg.ResourceFieldPresent(id) {
		return optional[T]{}
	}
	hdr, _ := x.msg.ResourceHeader().(*H)
	if hdr == nil {
		return optional[T]{}
	}
	return some(get(hdr))
}

func resourceText[H any](x *extractor, id int, field string, get func(hdr *H) mrcp.Span) optional[string] {
	span, ok := resourceField(x, id, get).get()
	if !ok {
		return optional[string]{}
	}
	return x.text(field, span)
}
