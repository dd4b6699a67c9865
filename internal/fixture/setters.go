package fixture

import (
	"fmt"
	"math"

	"braces.dev/errtrace"
	"github.com/BurntSushi/toml"

	"github.com/ghettovoice/gomrcp/internal/errorutil"
	"github.com/ghettovoice/gomrcp/mrcp"
)

type decoder struct {
	md   toml.MetaData
	pool *mrcp.Pool
}

func (d *decoder) decode(prim toml.Primitive, v any) error {
	return errtrace.Wrap(d.md.PrimitiveDecode(prim, v))
}

func (d *decoder) setGeneric(msg *mrcp.Message, name string, prim toml.Primitive) error {
	return errtrace.Wrap(set(d, name, prim,
		mrcp.GenericHeaderIDByName, genericSetters, msg.PrepareGenericHeader(), msg.AddGenericProperty,
	))
}

func (d *decoder) setSpecific(msg *mrcp.Message, name string, prim toml.Primitive) error {
	switch msg.Resource {
	case mrcp.ResourceRecognizer:
		return errtrace.Wrap(set(d, name, prim,
			mrcp.RecogHeaderIDByName, recogSetters, msg.PrepareRecogHeader(), msg.AddRecogProperty,
		))
	case mrcp.ResourceSynthesizer:
		return errtrace.Wrap(set(d, name, prim,
			mrcp.SynthHeaderIDByName, synthSetters, msg.PrepareSynthHeader(), msg.AddSynthProperty,
		))
	default:
		return errtrace.Wrap(errorutil.NewWrapperError(mrcp.ErrUnsupportedResource, "%q", msg.Resource))
	}
}

type headerID interface {
	~int
	fmt.Stringer
}

// setter decodes a fixture value into the header block.
type setter[H any] func(d *decoder, prim toml.Primitive, hdr *H) error

func set[ID headerID, H any](
	d *decoder,
	name string,
	prim toml.Primitive,
	byName func(name string) (ID, bool),
	setters map[ID]setter[H],
	hdr *H,
	add func(id ID) bool,
) error {
	id, ok := byName(name)
	if !ok {
		return errtrace.Wrap(errorutil.NewWrapperError(mrcp.ErrUnknownHeader, "%q", name))
	}
	fn, ok := setters[id]
	if !ok {
		return errtrace.Wrap(errorutil.NewWrapperError(mrcp.ErrUnknownHeader, "%q", name))
	}
	if hdr == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("%s: header block is not allocated", id))
	}
	if err := fn(d, prim, hdr); err != nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError(fmt.Errorf("%s: %w", id, err)))
	}
	add(id)
	return nil
}

// value decodes the TOML value as is: floats into float32, booleans into bool.
func value[H, T any](field func(hdr *H) *T) setter[H] {
	return func(d *decoder, prim toml.Primitive, hdr *H) error {
		return errtrace.Wrap(d.decode(prim, field(hdr)))
	}
}

// unsigned decodes a non-negative TOML integer.
func unsigned[H any](field func(hdr *H) *uint) setter[H] {
	return func(d *decoder, prim toml.Primitive, hdr *H) error {
		var n int64
		if err := d.decode(prim, &n); err != nil {
			return errtrace.Wrap(err)
		}
		if n < 0 {
			return errtrace.Wrap(errorutil.NewInvalidArgumentError("want a non-negative integer, got %d", n))
		}
		*field(hdr) = uint(n)
		return nil
	}
}

func requestIDs(d *decoder, prim toml.Primitive, hdr *mrcp.GenericHeader) error {
	var ns []int64
	if err := d.decode(prim, &ns); err != nil {
		return errtrace.Wrap(err)
	}
	ids := make([]uint32, 0, len(ns))
	for _, n := range ns {
		if n < 0 || n > math.MaxUint32 {
			return errtrace.Wrap(errorutil.NewInvalidArgumentError("request id %d is out of range", n))
		}
		ids = append(ids, uint32(n))
	}
	hdr.ActiveRequestIDList = ids
	return nil
}

// text copies a TOML string into the message pool.
func text[H any](field func(hdr *H) *mrcp.Span) setter[H] {
	return func(d *decoder, prim toml.Primitive, hdr *H) error {
		var s string
		if err := d.decode(prim, &s); err != nil {
			return errtrace.Wrap(err)
		}
		*field(hdr) = d.pool.DupString(s)
		return nil
	}
}

func char[H any](field func(hdr *H) *byte) setter[H] {
	return func(d *decoder, prim toml.Primitive, hdr *H) error {
		var s string
		if err := d.decode(prim, &s); err != nil {
			return errtrace.Wrap(err)
		}
		if len(s) != 1 {
			return errtrace.Wrap(errorutil.NewInvalidArgumentError("want a single character, got %q", s))
		}
		*field(hdr) = s[0]
		return nil
	}
}

type vendorParam struct {
	Name  string `toml:"name"`
	Value string `toml:"value"`
}

func vendorParams(d *decoder, prim toml.Primitive, hdr *mrcp.GenericHeader) error {
	var params []vendorParam
	if err := d.decode(prim, &params); err != nil {
		return errtrace.Wrap(err)
	}
	for _, p := range params {
		hdr.AddVendorParam(d.pool.DupString(p.Name), d.pool.DupString(p.Value))
	}
	return nil
}

func voiceGender(d *decoder, prim toml.Primitive, hdr *mrcp.SynthHeader) error {
	var s string
	if err := d.decode(prim, &s); err != nil {
		return errtrace.Wrap(err)
	}
	hdr.VoiceParam.Gender = mrcp.ParseVoiceGender(s)
	return nil
}

type genericHeader = mrcp.GenericHeader

var genericSetters = map[mrcp.GenericHeaderID]setter[genericHeader]{
	mrcp.GenericHeaderActiveRequestIDList:  requestIDs,
	mrcp.GenericHeaderProxySyncID:          text(func(h *genericHeader) *mrcp.Span { return &h.ProxySyncID }),
	mrcp.GenericHeaderAcceptCharset:        text(func(h *genericHeader) *mrcp.Span { return &h.AcceptCharset }),
	mrcp.GenericHeaderContentType:          text(func(h *genericHeader) *mrcp.Span { return &h.ContentType }),
	mrcp.GenericHeaderContentID:            text(func(h *genericHeader) *mrcp.Span { return &h.ContentID }),
	mrcp.GenericHeaderContentBase:          text(func(h *genericHeader) *mrcp.Span { return &h.ContentBase }),
	mrcp.GenericHeaderContentEncoding:      text(func(h *genericHeader) *mrcp.Span { return &h.ContentEncoding }),
	mrcp.GenericHeaderContentLocation:      text(func(h *genericHeader) *mrcp.Span { return &h.ContentLocation }),
	mrcp.GenericHeaderContentLength:        unsigned(func(h *genericHeader) *uint { return &h.ContentLength }),
	mrcp.GenericHeaderCacheControl:         text(func(h *genericHeader) *mrcp.Span { return &h.CacheControl }),
	mrcp.GenericHeaderLoggingTag:           text(func(h *genericHeader) *mrcp.Span { return &h.LoggingTag }),
	mrcp.GenericHeaderVendorSpecificParams: vendorParams,
	mrcp.GenericHeaderAccept:               text(func(h *genericHeader) *mrcp.Span { return &h.Accept }),
	mrcp.GenericHeaderFetchTimeout:         unsigned(func(h *genericHeader) *uint { return &h.FetchTimeout }),
	mrcp.GenericHeaderSetCookie:            text(func(h *genericHeader) *mrcp.Span { return &h.SetCookie }),
	mrcp.GenericHeaderSetCookie2:           text(func(h *genericHeader) *mrcp.Span { return &h.SetCookie2 }),
}

type recogHeader = mrcp.RecogHeader

var recogSetters = map[mrcp.RecogHeaderID]setter[recogHeader]{
	mrcp.RecogHeaderConfidenceThreshold:            value(func(h *recogHeader) *float32 { return &h.ConfidenceThreshold }),
	mrcp.RecogHeaderSensitivityLevel:               value(func(h *recogHeader) *float32 { return &h.SensitivityLevel }),
	mrcp.RecogHeaderSpeedVsAccuracy:                value(func(h *recogHeader) *float32 { return &h.SpeedVsAccuracy }),
	mrcp.RecogHeaderNBestListLength:                unsigned(func(h *recogHeader) *uint { return &h.NBestListLength }),
	mrcp.RecogHeaderNoInputTimeout:                 unsigned(func(h *recogHeader) *uint { return &h.NoInputTimeout }),
	mrcp.RecogHeaderRecognitionTimeout:             unsigned(func(h *recogHeader) *uint { return &h.RecognitionTimeout }),
	mrcp.RecogHeaderWaveformURI:                    text(func(h *recogHeader) *mrcp.Span { return &h.WaveformURI }),
	mrcp.RecogHeaderCompletionCause:                unsigned(func(h *recogHeader) *uint { return &h.CompletionCause }),
	mrcp.RecogHeaderRecognizerContextBlock:         text(func(h *recogHeader) *mrcp.Span { return &h.RecognizerContextBlock }),
	mrcp.RecogHeaderStartInputTimers:               value(func(h *recogHeader) *bool { return &h.StartInputTimers }),
	mrcp.RecogHeaderSpeechCompleteTimeout:          unsigned(func(h *recogHeader) *uint { return &h.SpeechCompleteTimeout }),
	mrcp.RecogHeaderSpeechIncompleteTimeout:        unsigned(func(h *recogHeader) *uint { return &h.SpeechIncompleteTimeout }),
	mrcp.RecogHeaderDTMFInterdigitTimeout:          unsigned(func(h *recogHeader) *uint { return &h.DTMFInterdigitTimeout }),
	mrcp.RecogHeaderDTMFTermTimeout:                unsigned(func(h *recogHeader) *uint { return &h.DTMFTermTimeout }),
	mrcp.RecogHeaderDTMFTermChar:                   char(func(h *recogHeader) *byte { return &h.DTMFTermChar }),
	mrcp.RecogHeaderFailedURI:                      text(func(h *recogHeader) *mrcp.Span { return &h.FailedURI }),
	mrcp.RecogHeaderFailedURICause:                 text(func(h *recogHeader) *mrcp.Span { return &h.FailedURICause }),
	mrcp.RecogHeaderSaveWaveform:                   value(func(h *recogHeader) *bool { return &h.SaveWaveform }),
	mrcp.RecogHeaderNewAudioChannel:                value(func(h *recogHeader) *bool { return &h.NewAudioChannel }),
	mrcp.RecogHeaderSpeechLanguage:                 text(func(h *recogHeader) *mrcp.Span { return &h.SpeechLanguage }),
	mrcp.RecogHeaderInputType:                      text(func(h *recogHeader) *mrcp.Span { return &h.InputType }),
	mrcp.RecogHeaderInputWaveformURI:               text(func(h *recogHeader) *mrcp.Span { return &h.InputWaveformURI }),
	mrcp.RecogHeaderCompletionReason:               text(func(h *recogHeader) *mrcp.Span { return &h.CompletionReason }),
	mrcp.RecogHeaderMediaType:                      text(func(h *recogHeader) *mrcp.Span { return &h.MediaType }),
	mrcp.RecogHeaderVerBufferUtterance:             value(func(h *recogHeader) *bool { return &h.VerBufferUtterance }),
	mrcp.RecogHeaderRecognitionMode:                text(func(h *recogHeader) *mrcp.Span { return &h.RecognitionMode }),
	mrcp.RecogHeaderCancelIfQueue:                  value(func(h *recogHeader) *bool { return &h.CancelIfQueue }),
	mrcp.RecogHeaderHotwordMaxDuration:             unsigned(func(h *recogHeader) *uint { return &h.HotwordMaxDuration }),
	mrcp.RecogHeaderHotwordMinDuration:             unsigned(func(h *recogHeader) *uint { return &h.HotwordMinDuration }),
	mrcp.RecogHeaderInterpretText:                  text(func(h *recogHeader) *mrcp.Span { return &h.InterpretText }),
	mrcp.RecogHeaderDTMFBufferTime:                 unsigned(func(h *recogHeader) *uint { return &h.DTMFBufferTime }),
	mrcp.RecogHeaderClearDTMFBuffer:                value(func(h *recogHeader) *bool { return &h.ClearDTMFBuffer }),
	mrcp.RecogHeaderEarlyNoMatch:                   value(func(h *recogHeader) *bool { return &h.EarlyNoMatch }),
	mrcp.RecogHeaderNumMinConsistentPronunciations: unsigned(func(h *recogHeader) *uint { return &h.NumMinConsistentPronunciations }),
	mrcp.RecogHeaderConsistencyThreshold:           value(func(h *recogHeader) *float32 { return &h.ConsistencyThreshold }),
	mrcp.RecogHeaderClashThreshold:                 value(func(h *recogHeader) *float32 { return &h.ClashThreshold }),
	mrcp.RecogHeaderPersonalGrammarURI:             text(func(h *recogHeader) *mrcp.Span { return &h.PersonalGrammarURI }),
	mrcp.RecogHeaderEnrollUtterance:                value(func(h *recogHeader) *bool { return &h.EnrollUtterance }),
	mrcp.RecogHeaderPhraseID:                       text(func(h *recogHeader) *mrcp.Span { return &h.PhraseID }),
	mrcp.RecogHeaderPhraseNL:                       text(func(h *recogHeader) *mrcp.Span { return &h.PhraseNL }),
	mrcp.RecogHeaderWeight:                         value(func(h *recogHeader) *float32 { return &h.Weight }),
	mrcp.RecogHeaderSaveBestWaveform:               value(func(h *recogHeader) *bool { return &h.SaveBestWaveform }),
	mrcp.RecogHeaderNewPhraseID:                    text(func(h *recogHeader) *mrcp.Span { return &h.NewPhraseID }),
	mrcp.RecogHeaderConfusablePhrasesURI:           text(func(h *recogHeader) *mrcp.Span { return &h.ConfusablePhrasesURI }),
	mrcp.RecogHeaderAbortPhraseEnrollment:          value(func(h *recogHeader) *bool { return &h.AbortPhraseEnrollment }),
}

type synthHeader = mrcp.SynthHeader

var synthSetters = map[mrcp.SynthHeaderID]setter[synthHeader]{
	mrcp.SynthHeaderJumpSize:           text(func(h *synthHeader) *mrcp.Span { return &h.JumpSize }),
	mrcp.SynthHeaderKillOnBargeIn:      value(func(h *synthHeader) *bool { return &h.KillOnBargeIn }),
	mrcp.SynthHeaderSpeakerProfile:     text(func(h *synthHeader) *mrcp.Span { return &h.SpeakerProfile }),
	mrcp.SynthHeaderCompletionCause:    unsigned(func(h *synthHeader) *uint { return &h.CompletionCause }),
	mrcp.SynthHeaderCompletionReason:   text(func(h *synthHeader) *mrcp.Span { return &h.CompletionReason }),
	mrcp.SynthHeaderVoiceGender:        voiceGender,
	mrcp.SynthHeaderVoiceAge:           unsigned(func(h *synthHeader) *uint { return &h.VoiceParam.Age }),
	mrcp.SynthHeaderVoiceVariant:       unsigned(func(h *synthHeader) *uint { return &h.VoiceParam.Variant }),
	mrcp.SynthHeaderVoiceName:          text(func(h *synthHeader) *mrcp.Span { return &h.VoiceParam.Name }),
	mrcp.SynthHeaderProsodyVolume:      text(func(h *synthHeader) *mrcp.Span { return &h.ProsodyParam.Volume }),
	mrcp.SynthHeaderProsodyRate:        text(func(h *synthHeader) *mrcp.Span { return &h.ProsodyParam.Rate }),
	mrcp.SynthHeaderSpeechMarker:       text(func(h *synthHeader) *mrcp.Span { return &h.SpeechMarker }),
	mrcp.SynthHeaderSpeechLanguage:     text(func(h *synthHeader) *mrcp.Span { return &h.SpeechLanguage }),
	mrcp.SynthHeaderFetchHint:          text(func(h *synthHeader) *mrcp.Span { return &h.FetchHint }),
	mrcp.SynthHeaderAudioFetchHint:     text(func(h *synthHeader) *mrcp.Span { return &h.AudioFetchHint }),
	mrcp.SynthHeaderFailedURI:          text(func(h *synthHeader) *mrcp.Span { return &h.FailedURI }),
	mrcp.SynthHeaderFailedURICause:     text(func(h *synthHeader) *mrcp.Span { return &h.FailedURICause }),
	mrcp.SynthHeaderSpeakRestart:       value(func(h *synthHeader) *bool { return &h.SpeakRestart }),
	mrcp.SynthHeaderSpeakLength:        text(func(h *synthHeader) *mrcp.Span { return &h.SpeakLength }),
	mrcp.SynthHeaderLoadLexicon:        value(func(h *synthHeader) *bool { return &h.LoadLexicon }),
	mrcp.SynthHeaderLexiconSearchOrder: text(func(h *synthHeader) *mrcp.Span { return &h.LexiconSearchOrder }),
}
