package headers

import (
	"log/slog"

	"github.com/ghettovoice/gomrcp/mrcp"
)

// VendorParams collects the Vendor-Specific-Parameters of msg into a map.
//
// A pair is kept only if both its name and value are valid non-empty text,
// other pairs are dropped silently. Later duplicates overwrite earlier ones.
// The result is never nil; it is empty for a nil message or if the header is absent.
func VendorParams(msg *mrcp.Message, opts *ViewOptions) map[string]string {
	resource := mrcp.ResourceUnknown
	if msg != nil {
		resource = msg.Resource
	}
	return newExtractor(msg, resource, opts).vendorParams()
}

func (x *extractor) vendorParams() map[string]string {
	params := make(map[string]string)
	pairs, ok := genericField(x, mrcp.GenericHeaderVendorSpecificParams, func(hdr *mrcp.GenericHeader) []mrcp.Pair {
		return hdr.VendorParams
	}).get()
	if !ok {
		return params
	}

	field := mrcp.GenericHeaderVendorSpecificParams.String()
	var dropped int
	for i, p := range pairs {
		name, nameOk := x.text(field, p.Name).get()
		value, valueOk := x.text(field, p.Value).get()
		if !nameOk || !valueOk {
			dropped++
			x.log.Debug("skip vendor-specific parameter",
				slog.Int("index", i),
				slog.Any("name", p.Name),
				slog.Any("value", p.Value),
			)
			continue
		}
		params[name] = value
	}
	x.metrics.vendorParamsDropped(x.resource, dropped)
	return params
}
