package mrcp

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gomrcp/internal/errorutil"
	"github.com/ghettovoice/gomrcp/internal/util"
)

// ResourceType is the MRCP resource a message is addressed to.
// It selects the shape of the resource-specific header block.
type ResourceType int

const (
	ResourceUnknown ResourceType = iota
	ResourceSynthesizer
	ResourceRecognizer
)

type resourceInfo struct {
	name       string
	aliases    []string
	fieldCount int
	allocator  Allocator
}

var resources = []resourceInfo{
	ResourceUnknown:     {name: "unknown"},
	ResourceSynthesizer: {"speechsynth", []string{"synthesizer", "synth"}, SynthHeaderCount, synthAllocator},
	ResourceRecognizer:  {"speechrecog", []string{"recognizer", "recog"}, RecogHeaderCount, recogAllocator},
}

func (rt ResourceType) info() resourceInfo {
	if rt < 0 || int(rt) >= len(resources) {
		return resources[ResourceUnknown]
	}
	return resources[rt]
}

// String returns the MRCPv2 resource name.
func (rt ResourceType) String() string { return rt.info().name }

// FieldCount returns the number of resource-specific fields.
func (rt ResourceType) FieldCount() int { return rt.info().fieldCount }

func (rt ResourceType) IsValid() bool { return rt != ResourceUnknown && rt.info().allocator != nil }

// ParseResourceType parses an MRCPv2 resource name ("speechsynth", "speechrecog")
// or one of its short aliases ("synthesizer", "recognizer").
func ParseResourceType(s string) (ResourceType, error) {
	s = util.TrimSP(s)
	for i, ri := range resources {
		if ResourceType(i) == ResourceUnknown {
			continue
		}
		if strings.EqualFold(ri.name, s) {
			return ResourceType(i), nil
		}
		for _, a := range ri.aliases {
			if strings.EqualFold(a, s) {
				return ResourceType(i), nil
			}
		}
	}
	return ResourceUnknown, errtrace.Wrap(errorutil.NewWrapperError(ErrUnsupportedResource, "%q", s))
}

func (rt ResourceType) MarshalText() ([]byte, error) { return []byte(rt.String()), nil }

func (rt *ResourceType) UnmarshalText(b []byte) error {
	v, err := ParseResourceType(string(b))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*rt = v
	return nil
}
