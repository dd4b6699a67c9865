package mrcp

// RecogHeaderID identifies a recognizer header field.
// It is a resource-specific id, see [Message.ResourceFieldPresent].
type RecogHeaderID int

// Recognizer header fields, MRCPv2 (RFC 6787 section 9.4).
const (
	RecogHeaderConfidenceThreshold RecogHeaderID = iota
	RecogHeaderSensitivityLevel
	RecogHeaderSpeedVsAccuracy
	RecogHeaderNBestListLength
	RecogHeaderNoInputTimeout
	RecogHeaderRecognitionTimeout
	RecogHeaderWaveformURI
	RecogHeaderCompletionCause
	RecogHeaderRecognizerContextBlock
	RecogHeaderStartInputTimers
	RecogHeaderSpeechCompleteTimeout
	RecogHeaderSpeechIncompleteTimeout
	RecogHeaderDTMFInterdigitTimeout
	RecogHeaderDTMFTermTimeout
	RecogHeaderDTMFTermChar
	RecogHeaderFailedURI
	RecogHeaderFailedURICause
	RecogHeaderSaveWaveform
	RecogHeaderNewAudioChannel
	RecogHeaderSpeechLanguage
	RecogHeaderInputType
	RecogHeaderInputWaveformURI
	RecogHeaderCompletionReason
	RecogHeaderMediaType
	RecogHeaderVerBufferUtterance
	RecogHeaderRecognitionMode
	RecogHeaderCancelIfQueue
	RecogHeaderHotwordMaxDuration
	RecogHeaderHotwordMinDuration
	RecogHeaderInterpretText
	RecogHeaderDTMFBufferTime
	RecogHeaderClearDTMFBuffer
	RecogHeaderEarlyNoMatch
	RecogHeaderNumMinConsistentPronunciations
	RecogHeaderConsistencyThreshold
	RecogHeaderClashThreshold
	RecogHeaderPersonalGrammarURI
	RecogHeaderEnrollUtterance
	RecogHeaderPhraseID
	RecogHeaderPhraseNL
	RecogHeaderWeight
	RecogHeaderSaveBestWaveform
	RecogHeaderNewPhraseID
	RecogHeaderConfusablePhrasesURI
	RecogHeaderAbortPhraseEnrollment

	// RecogHeaderCount is the number of recognizer fields.
	RecogHeaderCount int = iota
)

var recogHeaderNames = []string{
	RecogHeaderConfidenceThreshold:            "Confidence-Threshold",
	RecogHeaderSensitivityLevel:               "Sensitivity-Level",
	RecogHeaderSpeedVsAccuracy:                "Speed-Vs-Accuracy",
	RecogHeaderNBestListLength:                "N-Best-List-Length",
	RecogHeaderNoInputTimeout:                 "No-Input-Timeout",
	RecogHeaderRecognitionTimeout:             "Recognition-Timeout",
	RecogHeaderWaveformURI:                    "Waveform-Uri",
	RecogHeaderCompletionCause:                "Completion-Cause",
	RecogHeaderRecognizerContextBlock:         "Recognizer-Context-Block",
	RecogHeaderStartInputTimers:               "Start-Input-Timers",
	RecogHeaderSpeechCompleteTimeout:          "Speech-Complete-Timeout",
	RecogHeaderSpeechIncompleteTimeout:        "Speech-Incomplete-Timeout",
	RecogHeaderDTMFInterdigitTimeout:          "Dtmf-Interdigit-Timeout",
	RecogHeaderDTMFTermTimeout:                "Dtmf-Term-Timeout",
	RecogHeaderDTMFTermChar:                   "Dtmf-Term-Char",
	RecogHeaderFailedURI:                      "Failed-Uri",
	RecogHeaderFailedURICause:                 "Failed-Uri-Cause",
	RecogHeaderSaveWaveform:                   "Save-Waveform",
	RecogHeaderNewAudioChannel:                "New-Audio-Channel",
	RecogHeaderSpeechLanguage:                 "Speech-Language",
	RecogHeaderInputType:                      "Input-Type",
	RecogHeaderInputWaveformURI:               "Input-Waveform-Uri",
	RecogHeaderCompletionReason:               "Completion-Reason",
	RecogHeaderMediaType:                      "Media-Type",
	RecogHeaderVerBufferUtterance:             "Ver-Buffer-Utterance",
	RecogHeaderRecognitionMode:                "Recognition-Mode",
	RecogHeaderCancelIfQueue:                  "Cancel-If-Queue",
	RecogHeaderHotwordMaxDuration:             "Hotword-Max-Duration",
	RecogHeaderHotwordMinDuration:             "Hotword-Min-Duration",
	RecogHeaderInterpretText:                  "Interpret-Text",
	RecogHeaderDTMFBufferTime:                 "Dtmf-Buffer-Time",
	RecogHeaderClearDTMFBuffer:                "Clear-Dtmf-Buffer",
	RecogHeaderEarlyNoMatch:                   "Early-No-Match",
	RecogHeaderNumMinConsistentPronunciations: "Num-Min-Consistent-Pronunciations",
	RecogHeaderConsistencyThreshold:           "Consistency-Threshold",
	RecogHeaderClashThreshold:                 "Clash-Threshold",
	RecogHeaderPersonalGrammarURI:             "Personal-Grammar-Uri",
	RecogHeaderEnrollUtterance:                "Enroll-Utterance",
	RecogHeaderPhraseID:                       "Phrase-Id",
	RecogHeaderPhraseNL:                       "Phrase-Nl",
	RecogHeaderWeight:                         "Weight",
	RecogHeaderSaveBestWaveform:               "Save-Best-Waveform",
	RecogHeaderNewPhraseID:                    "New-Phrase-Id",
	RecogHeaderConfusablePhrasesURI:           "Confusable-Phrases-Uri",
	RecogHeaderAbortPhraseEnrollment:          "Abort-Phrase-Enrollment",
}

// String returns the header name.
func (id RecogHeaderID) String() string { return headerName(recogHeaderNames, id) }

func (id RecogHeaderID) IsValid() bool { return id >= 0 && int(id) < RecogHeaderCount }

// RecogHeaderIDByName looks up a recognizer field by its case-insensitive header name.
func RecogHeaderIDByName(name string) (RecogHeaderID, bool) {
	return headerIDByName[RecogHeaderID](recogHeaderNames, name)
}

// RecogHeader is the resource-specific header block of the recognizer resource.
// Timeouts are in milliseconds.
type RecogHeader struct {
	ConfidenceThreshold            float32
	SensitivityLevel               float32
	SpeedVsAccuracy                float32
	NBestListLength                uint
	NoInputTimeout                 uint
	RecognitionTimeout             uint
	WaveformURI                    Span
	CompletionCause                uint
	RecognizerContextBlock         Span
	StartInputTimers               bool
	SpeechCompleteTimeout          uint
	SpeechIncompleteTimeout        uint
	DTMFInterdigitTimeout          uint
	DTMFTermTimeout                uint
	DTMFTermChar                   byte
	FailedURI                      Span
	FailedURICause                 Span
	SaveWaveform                   bool
	NewAudioChannel                bool
	SpeechLanguage                 Span
	InputType                      Span
	InputWaveformURI               Span
	CompletionReason               Span
	MediaType                      Span
	VerBufferUtterance             bool
	RecognitionMode                Span
	CancelIfQueue                  bool
	HotwordMaxDuration             uint
	HotwordMinDuration             uint
	InterpretText                  Span
	DTMFBufferTime                 uint
	ClearDTMFBuffer                bool
	EarlyNoMatch                   bool
	NumMinConsistentPronunciations uint
	ConsistencyThreshold           float32
	ClashThreshold                 float32
	PersonalGrammarURI             Span
	EnrollUtterance                bool
	PhraseID                       Span
	PhraseNL                       Span
	Weight                         float32
	SaveBestWaveform               bool
	NewPhraseID                    Span
	ConfusablePhrasesURI           Span
	AbortPhraseEnrollment          bool
}

var recogAllocator = BlockAllocator[RecogHeader](nil)
