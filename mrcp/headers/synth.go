package headers

import (
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gomrcp/internal/jsonutil"
	"github.com/ghettovoice/gomrcp/internal/log"
	"github.com/ghettovoice/gomrcp/mrcp"
)

// SynthField is a field of [SynthHeaders].
type SynthField int

const (
	SynthContentLength SynthField = iota
	SynthVoiceName
	SynthBody
)

// SynthHeaders is an immutable view of synthesizer request headers and body.
type SynthHeaders struct {
	contentLength optional[uint]
	voiceName     optional[string]
	body          optional[string]

	// VendorSpecific holds the Vendor-Specific-Parameters of the message.
	// It must not be modified.
	VendorSpecific map[string]string
}

// NewSynthHeaders builds a synthesizer view of msg.
// A nil msg yields a view with all defaults and no body. opts may be nil.
func NewSynthHeaders(msg *mrcp.Message, opts *ViewOptions) SynthHeaders {
	x := newExtractor(msg, mrcp.ResourceSynthesizer, opts)
	hdrs := SynthHeaders{
		contentLength: genericField(x, mrcp.GenericHeaderContentLength, func(hdr *mrcp.GenericHeader) uint {
			return hdr.ContentLength
		}),
		voiceName: resourceText(x, int(mrcp.SynthHeaderVoiceName), mrcp.SynthHeaderVoiceName.String(),
			func(hdr *mrcp.SynthHeader) mrcp.Span { return hdr.VoiceParam.Name },
		),
		body:           x.body(),
		VendorSpecific: x.vendorParams(),
	}
	x.metrics.viewBuilt(x.resource)
	return hdrs
}

// body reads the message body. The body has no presence flag, an empty span is no body.
func (x *extractor) body() optional[string] {
	if x.msg == nil {
		return optional[string]{}
	}
	return x.text("body", x.msg.Body)
}

// ContentLength returns the Content-Length or 0.
func (h SynthHeaders) ContentLength() uint { return h.contentLength.or(0) }

// VoiceName returns the Voice-Name or an empty string.
func (h SynthHeaders) VoiceName() string { return h.voiceName.or("") }

// Body returns the message body.
// It reports false if the message has no body or the body is not valid text.
func (h SynthHeaders) Body() (string, bool) { return h.body.get() }

// IsSet reports whether the field was present on the message.
func (h SynthHeaders) IsSet(f SynthField) bool {
	switch f {
	case SynthContentLength:
		return h.contentLength.ok
	case SynthVoiceName:
		return h.voiceName.ok
	case SynthBody:
		return h.body.ok
	default:
		return false
	}
}

type synthHeadersData struct {
	ContentLength  uint              `json:"content_length"`
	VoiceName      string            `json:"voice_name"`
	Body           *string           `json:"body,omitempty"`
	VendorSpecific map[string]string `json:"vendor_specific,omitempty"`
}

// MarshalJSON renders the defaulted view. The body is omitted if absent.
func (h SynthHeaders) MarshalJSON() ([]byte, error) {
	d := synthHeadersData{
		ContentLength:  h.ContentLength(),
		VoiceName:      h.VoiceName(),
		VendorSpecific: h.VendorSpecific,
	}
	if body, ok := h.Body(); ok {
		d.Body = &body
	}
	return errtrace.Wrap2(jsonutil.Marshal(d))
}

func (h SynthHeaders) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Uint64("content_length", uint64(h.ContentLength())),
		slog.String("voice_name", h.VoiceName()),
	}
	if body, ok := h.Body(); ok {
		attrs = append(attrs, slog.Any("body", log.StringValue(body)))
	}
	attrs = append(attrs, slog.Any("vendor_specific", h.VendorSpecific))
	return slog.GroupValue(attrs...)
}
