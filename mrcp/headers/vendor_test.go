package headers_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/gomrcp/mrcp"
	"github.com/ghettovoice/gomrcp/mrcp/headers"
)

func TestVendorParams(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		msg  func(t *testing.T) *mrcp.Message
		want map[string]string
	}{
		{
			"nil message",
			func(*testing.T) *mrcp.Message { return nil },
			map[string]string{},
		},
		{
			"header absent",
			func(*testing.T) *mrcp.Message {
				msg := mrcp.NewMessage(mrcp.ResourceRecognizer, nil)
				msg.PrepareGenericHeader().AddVendorParam(mrcp.SpanOf("k"), mrcp.SpanOf("v"))
				return msg
			},
			map[string]string{},
		},
		{
			"present without block",
			func(*testing.T) *mrcp.Message {
				msg := mrcp.NewMessage(mrcp.ResourceRecognizer, nil)
				msg.Header.Section.FieldAdd(&mrcp.HeaderField{ID: int(mrcp.GenericHeaderVendorSpecificParams)})
				return msg
			},
			map[string]string{},
		},
		{
			"present and empty",
			func(t *testing.T) *mrcp.Message {
				msg := mrcp.NewMessage(mrcp.ResourceSynthesizer, nil)
				addVendorParams(t, msg)
				return msg
			},
			map[string]string{},
		},
		{
			"pairs",
			func(t *testing.T) *mrcp.Message {
				msg := mrcp.NewMessage(mrcp.ResourceRecognizer, nil)
				addVendorParams(t, msg,
					mrcp.NewPair("com.example.model", "phone"),
					mrcp.NewPair("com.example.lang", "ru-RU"),
				)
				return msg
			},
			map[string]string{
				"com.example.model": "phone",
				"com.example.lang":  "ru-RU",
			},
		},
		{
			"drop and overwrite",
			func(t *testing.T) *mrcp.Message {
				msg := mrcp.NewMessage(mrcp.ResourceRecognizer, nil)
				addVendorParams(t, msg,
					mrcp.NewPair("dup", "first"),
					mrcp.NewPair("", "no-name"),
					mrcp.NewPair("no-value", ""),
					mrcp.Pair{Name: mrcp.Span{0xff}, Value: mrcp.SpanOf("bad-name")},
					mrcp.Pair{Name: mrcp.SpanOf("bad-value"), Value: mrcp.Span{0xc3, 0x28}},
					mrcp.NewPair("dup", "second"),
					mrcp.NewPair("keep", "ok"),
				)
				return msg
			},
			map[string]string{
				"dup":  "second",
				"keep": "ok",
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := headers.VendorParams(c.msg(t), nil)
			if got == nil {
				t.Fatal("headers.VendorParams() = nil, want non-nil map")
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("headers.VendorParams() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVendorParams_Owned(t *testing.T) {
	t.Parallel()

	msg := mrcp.NewMessage(mrcp.ResourceRecognizer, nil)
	name, value := []byte("key"), []byte("value")
	addVendorParams(t, msg, mrcp.Pair{Name: mrcp.BorrowSpan(name), Value: mrcp.BorrowSpan(value)})

	got := headers.VendorParams(msg, nil)
	name[0], value[0] = 'K', 'V'
	msg.Pool.Destroy()

	if diff := cmp.Diff(map[string]string{"key": "value"}, got); diff != "" {
		t.Errorf("headers.VendorParams() mismatch after source change (-want +got):\n%s", diff)
	}
}
