package mrcp

import (
	"strings"

	"github.com/ghettovoice/gomrcp/internal/util"
)

// SynthHeaderID identifies a synthesizer header field.
// It is a resource-specific id, see [Message.ResourceFieldPresent].
type SynthHeaderID int

// Synthesizer header fields, MRCPv2 (RFC 6787 section 8.4).
const (
	SynthHeaderJumpSize SynthHeaderID = iota
	SynthHeaderKillOnBargeIn
	SynthHeaderSpeakerProfile
	SynthHeaderCompletionCause
	SynthHeaderCompletionReason
	SynthHeaderVoiceGender
	SynthHeaderVoiceAge
	SynthHeaderVoiceVariant
	SynthHeaderVoiceName
	SynthHeaderProsodyVolume
	SynthHeaderProsodyRate
	SynthHeaderSpeechMarker
	SynthHeaderSpeechLanguage
	SynthHeaderFetchHint
	SynthHeaderAudioFetchHint
	SynthHeaderFailedURI
	SynthHeaderFailedURICause
	SynthHeaderSpeakRestart
	SynthHeaderSpeakLength
	SynthHeaderLoadLexicon
	SynthHeaderLexiconSearchOrder

	// SynthHeaderCount is the number of synthesizer fields.
	SynthHeaderCount int = iota
)

var synthHeaderNames = []string{
	SynthHeaderJumpSize:           "Jump-Size",
	SynthHeaderKillOnBargeIn:      "Kill-On-Barge-In",
	SynthHeaderSpeakerProfile:     "Speaker-Profile",
	SynthHeaderCompletionCause:    "Completion-Cause",
	SynthHeaderCompletionReason:   "Completion-Reason",
	SynthHeaderVoiceGender:        "Voice-Gender",
	SynthHeaderVoiceAge:           "Voice-Age",
	SynthHeaderVoiceVariant:       "Voice-Variant",
	SynthHeaderVoiceName:          "Voice-Name",
	SynthHeaderProsodyVolume:      "Prosody-Volume",
	SynthHeaderProsodyRate:        "Prosody-Rate",
	SynthHeaderSpeechMarker:       "Speech-Marker",
	SynthHeaderSpeechLanguage:     "Speech-Language",
	SynthHeaderFetchHint:          "Fetch-Hint",
	SynthHeaderAudioFetchHint:     "Audio-Fetch-Hint",
	SynthHeaderFailedURI:          "Failed-Uri",
	SynthHeaderFailedURICause:     "Failed-Uri-Cause",
	SynthHeaderSpeakRestart:       "Speak-Restart",
	SynthHeaderSpeakLength:        "Speak-Length",
	SynthHeaderLoadLexicon:        "Load-Lexicon",
	SynthHeaderLexiconSearchOrder: "Lexicon-Search-Order",
}

// String returns the header name.
func (id SynthHeaderID) String() string { return headerName(synthHeaderNames, id) }

func (id SynthHeaderID) IsValid() bool { return id >= 0 && int(id) < SynthHeaderCount }

// SynthHeaderIDByName looks up a synthesizer field by its case-insensitive header name.
func SynthHeaderIDByName(name string) (SynthHeaderID, bool) {
	return headerIDByName[SynthHeaderID](synthHeaderNames, name)
}

// VoiceGender is the value of the Voice-Gender header.
type VoiceGender int

const (
	VoiceGenderUnknown VoiceGender = iota
	VoiceGenderMale
	VoiceGenderFemale
	VoiceGenderNeutral
)

var voiceGenderNames = []string{
	VoiceGenderUnknown: "unknown",
	VoiceGenderMale:    "male",
	VoiceGenderFemale:  "female",
	VoiceGenderNeutral: "neutral",
}

func (g VoiceGender) String() string {
	if g < 0 || int(g) >= len(voiceGenderNames) {
		return voiceGenderNames[VoiceGenderUnknown]
	}
	return voiceGenderNames[g]
}

// ParseVoiceGender parses a case-insensitive gender name.
// Unrecognized names yield [VoiceGenderUnknown].
func ParseVoiceGender(s string) VoiceGender {
	s = util.TrimSP(s)
	for i, n := range voiceGenderNames {
		if strings.EqualFold(n, s) {
			return VoiceGender(i)
		}
	}
	return VoiceGenderUnknown
}

// VoiceParam groups the Voice-* headers.
type VoiceParam struct {
	Gender  VoiceGender
	Age     uint
	Variant uint
	Name    Span
}

// ProsodyParam groups the Prosody-* headers.
type ProsodyParam struct {
	Volume Span
	Rate   Span
}

// SynthHeader is the resource-specific header block of the synthesizer resource.
type SynthHeader struct {
	JumpSize           Span
	KillOnBargeIn      bool
	SpeakerProfile     Span
	CompletionCause    uint
	CompletionReason   Span
	VoiceParam         VoiceParam
	ProsodyParam       ProsodyParam
	SpeechMarker       Span
	SpeechLanguage     Span
	FetchHint          Span
	AudioFetchHint     Span
	FailedURI          Span
	FailedURICause     Span
	SpeakRestart       bool
	SpeakLength        Span
	LoadLexicon        bool
	LexiconSearchOrder Span
}

var synthAllocator = BlockAllocator[SynthHeader](nil)
