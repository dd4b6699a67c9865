// Package mrcp models MRCP message headers as a sparse property bag.
//
// A [Message] carries a [HeaderSection] that answers whether a header field was set,
// two lazily allocated header blocks (generic and resource-specific) reached through
// [HeaderAccessor], and a body [Span]. The presence table is flat: generic field ids
// come first, resource-specific ids follow and are offset by [GenericHeaderCount].
//
// Every read operation degrades to "absent" on a nil message, a missing block or an
// out-of-range field id. Interpretation and defaulting of the values live in the
// [github.com/ghettovoice/gomrcp/mrcp/headers] package.
package mrcp

//go:generate errtrace -w .
