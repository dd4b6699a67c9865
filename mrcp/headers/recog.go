package headers

import (
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gomrcp/internal/jsonutil"
	"github.com/ghettovoice/gomrcp/mrcp"
)

// Recognizer defaults.
const (
	DefaultSensitivity             = 0.32
	DefaultNoInputTimeout     uint = 5000
	DefaultRecognitionTimeout uint = 20000
	DefaultStartInputTimers        = true
	DefaultSilenceTimeout     uint = 1000
)

// RecogField is a field of [RecogHeaders].
type RecogField int

const (
	RecogSensitivity RecogField = iota
	RecogNoInputTimeout
	RecogRecognitionTimeout
	RecogStartInputTimers
	RecogSilenceTimeout
)

// RecogHeaders is an immutable view of recognizer request headers.
// Timeouts are in milliseconds.
type RecogHeaders struct {
	sensitivity        optional[float64]
	noInputTimeout     optional[uint]
	recognitionTimeout optional[uint]
	startInputTimers   optional[bool]
	silenceTimeout     optional[uint]

	// VendorSpecific holds the Vendor-Specific-Parameters of the message.
	// It must not be modified.
	VendorSpecific map[string]string
}

// NewRecogHeaders builds a recognizer view of msg.
// A nil msg yields a view with all defaults. opts may be nil.
func NewRecogHeaders(msg *mrcp.Message, opts *ViewOptions) RecogHeaders {
	x := newExtractor(msg, mrcp.ResourceRecognizer, opts)
	hdrs := RecogHeaders{
		sensitivity: recogField(x, mrcp.RecogHeaderSensitivityLevel, func(hdr *mrcp.RecogHeader) float64 {
			return float64(hdr.SensitivityLevel)
		}),
		noInputTimeout: recogField(x, mrcp.RecogHeaderNoInputTimeout, func(hdr *mrcp.RecogHeader) uint {
			return hdr.NoInputTimeout
		}),
		recognitionTimeout: recogField(x, mrcp.RecogHeaderRecognitionTimeout, func(hdr *mrcp.RecogHeader) uint {
			return hdr.RecognitionTimeout
		}),
		startInputTimers: recogField(x, mrcp.RecogHeaderStartInputTimers, func(hdr *mrcp.RecogHeader) bool {
			return hdr.StartInputTimers
		}),
		silenceTimeout: recogField(x, mrcp.RecogHeaderSpeechCompleteTimeout, func(hdr *mrcp.RecogHeader) uint {
			return NormalizeSilenceTimeout(hdr.SpeechCompleteTimeout)
		}),
		VendorSpecific: x.vendorParams(),
	}
	x.metrics.viewBuilt(x.resource)
	return hdrs
}

func recogField[T any](x *extractor, id mrcp.RecogHeaderID, get func(hdr *mrcp.RecogHeader) T) optional[T] {
	return resourceField(x, int(id), get)
}

// Sensitivity returns the Sensitivity-Level or [DefaultSensitivity].
func (h RecogHeaders) Sensitivity() float64 { return h.sensitivity.or(DefaultSensitivity) }

// NoInputTimeout returns the No-Input-Timeout or [DefaultNoInputTimeout].
func (h RecogHeaders) NoInputTimeout() uint { return h.noInputTimeout.or(DefaultNoInputTimeout) }

// RecognitionTimeout returns the Recognition-Timeout or [DefaultRecognitionTimeout].
func (h RecogHeaders) RecognitionTimeout() uint {
	return h.recognitionTimeout.or(DefaultRecognitionTimeout)
}

// StartInputTimers returns the Start-Input-Timers flag or [DefaultStartInputTimers].
func (h RecogHeaders) StartInputTimers() bool { return h.startInputTimers.or(DefaultStartInputTimers) }

// SilenceTimeout returns the Speech-Complete-Timeout normalized with
// [NormalizeSilenceTimeout] or [DefaultSilenceTimeout].
func (h RecogHeaders) SilenceTimeout() uint { return h.silenceTimeout.or(DefaultSilenceTimeout) }

// IsSet reports whether the field was present on the message.
func (h RecogHeaders) IsSet(f RecogField) bool {
	switch f {
	case RecogSensitivity:
		return h.sensitivity.ok
	case RecogNoInputTimeout:
		return h.noInputTimeout.ok
	case RecogRecognitionTimeout:
		return h.recognitionTimeout.ok
	case RecogStartInputTimers:
		return h.startInputTimers.ok
	case RecogSilenceTimeout:
		return h.silenceTimeout.ok
	default:
		return false
	}
}

type recogHeadersData struct {
	Sensitivity        float64           `json:"sensitivity"`
	NoInputTimeout     uint              `json:"no_input_timeout"`
	RecognitionTimeout uint              `json:"recognition_timeout"`
	StartInputTimers   bool              `json:"start_input_timers"`
	SilenceTimeout     uint              `json:"silence_timeout"`
	VendorSpecific     map[string]string `json:"vendor_specific,omitempty"`
}

// MarshalJSON renders the defaulted view.
func (h RecogHeaders) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(jsonutil.Marshal(recogHeadersData{
		Sensitivity:        h.Sensitivity(),
		NoInputTimeout:     h.NoInputTimeout(),
		RecognitionTimeout: h.RecognitionTimeout(),
		StartInputTimers:   h.StartInputTimers(),
		SilenceTimeout:     h.SilenceTimeout(),
		VendorSpecific:     h.VendorSpecific,
	}))
}

func (h RecogHeaders) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("sensitivity", h.Sensitivity()),
		slog.Uint64("no_input_timeout", uint64(h.NoInputTimeout())),
		slog.Uint64("recognition_timeout", uint64(h.RecognitionTimeout())),
		slog.Bool("start_input_timers", h.StartInputTimers()),
		slog.Uint64("silence_timeout", uint64(h.SilenceTimeout())),
		slog.Any("vendor_specific", h.VendorSpecific),
	)
}
