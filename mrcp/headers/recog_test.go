package headers_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/gomrcp/mrcp"
	"github.com/ghettovoice/gomrcp/mrcp/headers"
)

type recogValues struct {
	Sensitivity        float64
	NoInputTimeout     uint
	RecognitionTimeout uint
	StartInputTimers   bool
	SilenceTimeout     uint
	VendorSpecific     map[string]string
}

func recogValuesOf(h headers.RecogHeaders) recogValues {
	return recogValues{
		Sensitivity:        h.Sensitivity(),
		NoInputTimeout:     h.NoInputTimeout(),
		RecognitionTimeout: h.RecognitionTimeout(),
		StartInputTimers:   h.StartInputTimers(),
		SilenceTimeout:     h.SilenceTimeout(),
		VendorSpecific:     h.VendorSpecific,
	}
}

var recogDefaults = recogValues{
	Sensitivity:        0.32,
	NoInputTimeout:     5000,
	RecognitionTimeout: 20000,
	StartInputTimers:   true,
	SilenceTimeout:     1000,
	VendorSpecific:     map[string]string{},
}

var allRecogFields = []headers.RecogField{
	headers.RecogSensitivity,
	headers.RecogNoInputTimeout,
	headers.RecogRecognitionTimeout,
	headers.RecogStartInputTimers,
	headers.RecogSilenceTimeout,
}

func TestNewRecogHeaders_Defaults(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		msg  func(t *testing.T) *mrcp.Message
	}{
		{"nil message", func(*testing.T) *mrcp.Message { return nil }},
		{"empty message", func(*testing.T) *mrcp.Message { return mrcp.NewMessage(mrcp.ResourceRecognizer, nil) }},
		{
			"block without presence",
			func(t *testing.T) *mrcp.Message {
				return newRecogMessage(t, func(hdr *mrcp.RecogHeader) {
					hdr.SensitivityLevel = 0.9
					hdr.NoInputTimeout = 1
					hdr.RecognitionTimeout = 1
					hdr.StartInputTimers = false
					hdr.SpeechCompleteTimeout = 3
				})
			},
		},
		{
			"presence without block",
			func(*testing.T) *mrcp.Message {
				msg := mrcp.NewMessage(mrcp.ResourceRecognizer, nil)
				for _, id := range []mrcp.RecogHeaderID{
					mrcp.RecogHeaderSensitivityLevel,
					mrcp.RecogHeaderNoInputTimeout,
					mrcp.RecogHeaderRecognitionTimeout,
					mrcp.RecogHeaderStartInputTimers,
					mrcp.RecogHeaderSpeechCompleteTimeout,
				} {
					msg.Header.Section.FieldAdd(&mrcp.HeaderField{ID: mrcp.GenericHeaderCount + int(id)})
				}
				return msg
			},
		},
		{
			"synthesizer block",
			func(t *testing.T) *mrcp.Message {
				// Kill-On-Barge-In shares the resource id of Sensitivity-Level
				return newSynthMessage(t, func(hdr *mrcp.SynthHeader) {
					hdr.KillOnBargeIn = true
				}, mrcp.SynthHeaderKillOnBargeIn)
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			hdrs := headers.NewRecogHeaders(c.msg(t), nil)
			if diff := cmp.Diff(recogDefaults, recogValuesOf(hdrs)); diff != "" {
				t.Errorf("headers.NewRecogHeaders() mismatch (-want +got):\n%s", diff)
			}
			for _, f := range allRecogFields {
				if hdrs.IsSet(f) {
					t.Errorf("hdrs.IsSet(%v) = true, want false", f)
				}
			}
		})
	}
}

func TestNewRecogHeaders(t *testing.T) {
	t.Parallel()

	msg := newRecogMessage(t, func(hdr *mrcp.RecogHeader) {
		hdr.SensitivityLevel = 0.75
		hdr.NoInputTimeout = 3000
		hdr.RecognitionTimeout = 15000
		hdr.StartInputTimers = false
		hdr.SpeechCompleteTimeout = 3
		hdr.ConfidenceThreshold = 0.1
	},
		mrcp.RecogHeaderSensitivityLevel,
		mrcp.RecogHeaderNoInputTimeout,
		mrcp.RecogHeaderRecognitionTimeout,
		mrcp.RecogHeaderStartInputTimers,
		mrcp.RecogHeaderSpeechCompleteTimeout,
		mrcp.RecogHeaderConfidenceThreshold,
	)
	addVendorParams(t, msg, mrcp.NewPair("com.example.grammar", "digits"))

	hdrs := headers.NewRecogHeaders(msg, nil)
	want := recogValues{
		Sensitivity:        0.75,
		NoInputTimeout:     3000,
		RecognitionTimeout: 15000,
		StartInputTimers:   false,
		SilenceTimeout:     3000,
		VendorSpecific:     map[string]string{"com.example.grammar": "digits"},
	}
	if diff := cmp.Diff(want, recogValuesOf(hdrs)); diff != "" {
		t.Errorf("headers.NewRecogHeaders() mismatch (-want +got):\n%s", diff)
	}
	for _, f := range allRecogFields {
		if !hdrs.IsSet(f) {
			t.Errorf("hdrs.IsSet(%v) = false, want true", f)
		}
	}
	if hdrs.IsSet(headers.RecogField(99)) {
		t.Error("hdrs.IsSet(99) = true, want false")
	}
}

func TestNewRecogHeaders_Partial(t *testing.T) {
	t.Parallel()

	msg := newRecogMessage(t, func(hdr *mrcp.RecogHeader) {
		hdr.NoInputTimeout = 0
		hdr.RecognitionTimeout = 7000
	}, mrcp.RecogHeaderNoInputTimeout)

	hdrs := headers.NewRecogHeaders(msg, nil)
	want := recogDefaults
	// present zero is kept, not replaced by the default
	want.NoInputTimeout = 0
	if diff := cmp.Diff(want, recogValuesOf(hdrs)); diff != "" {
		t.Errorf("headers.NewRecogHeaders() mismatch (-want +got):\n%s", diff)
	}
	if !hdrs.IsSet(headers.RecogNoInputTimeout) || hdrs.IsSet(headers.RecogRecognitionTimeout) {
		t.Error("unexpected presence of No-Input-Timeout/Recognition-Timeout")
	}
}

func TestNewRecogHeaders_SilenceTimeout(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw, want uint
	}{
		{0, 1000},
		{1, 1000},
		{2, 2000},
		{4, 4000},
		{5, 1200},
		{20, 1200},
		{21, 21},
		{1000, 1000},
		{1500, 1500},
	}

	for _, c := range cases {
		msg := newRecogMessage(t, func(hdr *mrcp.RecogHeader) {
			hdr.SpeechCompleteTimeout = c.raw
		}, mrcp.RecogHeaderSpeechCompleteTimeout)

		if got := headers.NewRecogHeaders(msg, nil).SilenceTimeout(); got != c.want {
			t.Errorf("SilenceTimeout() for raw %d = %d, want %d", c.raw, got, c.want)
		}
	}
}

func TestNewRecogHeaders_Detached(t *testing.T) {
	t.Parallel()

	msg := newRecogMessage(t, func(hdr *mrcp.RecogHeader) {
		hdr.NoInputTimeout = 2500
	}, mrcp.RecogHeaderNoInputTimeout)
	addVendorParams(t, msg, mrcp.NewPair("k", "v"))

	hdrs := headers.NewRecogHeaders(msg, nil)
	msg.RecogHeader().NoInputTimeout = 1
	msg.Pool.Destroy()

	if got, want := hdrs.NoInputTimeout(), uint(2500); got != want {
		t.Errorf("hdrs.NoInputTimeout() = %d, want %d", got, want)
	}
	if diff := cmp.Diff(map[string]string{"k": "v"}, hdrs.VendorSpecific); diff != "" {
		t.Errorf("hdrs.VendorSpecific mismatch (-want +got):\n%s", diff)
	}
}

func TestRecogHeaders_MarshalJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdrs headers.RecogHeaders
		want map[string]any
	}{
		{
			"defaults",
			headers.NewRecogHeaders(nil, nil),
			map[string]any{
				"sensitivity":         0.32,
				"no_input_timeout":    5000.0,
				"recognition_timeout": 20000.0,
				"start_input_timers":  true,
				"silence_timeout":     1000.0,
			},
		},
		{
			"values",
			func() headers.RecogHeaders {
				msg := newRecogMessage(t, func(hdr *mrcp.RecogHeader) {
					hdr.SensitivityLevel = 0.5
					hdr.SpeechCompleteTimeout = 10
				}, mrcp.RecogHeaderSensitivityLevel, mrcp.RecogHeaderSpeechCompleteTimeout)
				addVendorParams(t, msg, mrcp.NewPair("a", "b"))
				return headers.NewRecogHeaders(msg, nil)
			}(),
			map[string]any{
				"sensitivity":         0.5,
				"no_input_timeout":    5000.0,
				"recognition_timeout": 20000.0,
				"start_input_timers":  true,
				"silence_timeout":     1200.0,
				"vendor_specific":     map[string]any{"a": "b"},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			data, err := json.Marshal(c.hdrs)
			if err != nil {
				t.Fatalf("json.Marshal(hdrs) error = %v, want nil", err)
			}
			var got map[string]any
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("json.Unmarshal(%s) error = %v, want nil", data, err)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("json.Marshal(hdrs) mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecogHeaders_LogValue(t *testing.T) {
	t.Parallel()

	got := map[string]string{}
	for _, a := range headers.NewRecogHeaders(nil, nil).LogValue().Group() {
		got[a.Key] = a.Value.String()
	}
	want := map[string]string{
		"sensitivity":         "0.32",
		"no_input_timeout":    "5000",
		"recognition_timeout": "20000",
		"start_input_timers":  "true",
		"silence_timeout":     "1000",
		"vendor_specific":     "map[]",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("hdrs.LogValue() mismatch (-want +got):\n%s", diff)
	}
}
