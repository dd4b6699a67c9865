// Package fixture loads MRCP messages from TOML documents.
//
// A fixture names the resource, optional body and the header fields to set:
//
//	resource = "speechrecog"
//	body = "..."
//
//	[generic]
//	Content-Length = 12
//
//	[[generic.Vendor-Specific-Parameters]]
//	name = "com.example.key"
//	value = "val"
//
//	[specific]
//	Sensitivity-Level = 0.5
//
// Only the fields defined in the document are marked present on the message.
// Header names are case-insensitive.
package fixture

//go:generate errtrace -w .

import (
	"fmt"
	"maps"
	"slices"

	"braces.dev/errtrace"
	"github.com/BurntSushi/toml"

	"github.com/ghettovoice/gomrcp/internal/errorutil"
	"github.com/ghettovoice/gomrcp/mrcp"
)

type document struct {
	Resource string                    `toml:"resource"`
	Body     string                    `toml:"body"`
	Generic  map[string]toml.Primitive `toml:"generic"`
	Specific map[string]toml.Primitive `toml:"specific"`
}

// Load reads the fixture file at path and builds a message from it.
func Load(path string) (*mrcp.Message, error) {
	var doc document
	md, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	msg, err := build(md, &doc)
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("fixture %s: %w", path, err))
	}
	return msg, nil
}

// Parse builds a message from the fixture text.
func Parse(text string) (*mrcp.Message, error) {
	var doc document
	md, err := toml.Decode(text, &doc)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	return errtrace.Wrap2(build(md, &doc))
}

func build(md toml.MetaData, doc *document) (*mrcp.Message, error) {
	if !md.IsDefined("resource") {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("missing resource"))
	}
	rt, err := mrcp.ParseResourceType(doc.Resource)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	msg := mrcp.NewMessage(rt, nil)
	d := &decoder{md: md, pool: msg.Pool}

	var errs []error
	for _, name := range slices.Sorted(maps.Keys(doc.Generic)) {
		errs = append(errs, d.setGeneric(msg, name, doc.Generic[name]))
	}
	for _, name := range slices.Sorted(maps.Keys(doc.Specific)) {
		errs = append(errs, d.setSpecific(msg, name, doc.Specific[name]))
	}
	if err := errorutil.JoinPrefix("invalid header fields", errs...); err != nil {
		msg.Pool.Destroy()
		return nil, errtrace.Wrap(err)
	}

	if keys := md.Undecoded(); len(keys) > 0 {
		msg.Pool.Destroy()
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown keys %q", keys))
	}

	if md.IsDefined("body") {
		msg.SetBody(doc.Body)
	}
	return msg, nil
}
