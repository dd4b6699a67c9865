package mrcp

// GenericHeaderID identifies a generic header field.
type GenericHeaderID int

// Generic header fields, MRCPv2 (RFC 6787 section 6.2).
const (
	GenericHeaderActiveRequestIDList GenericHeaderID = iota
	GenericHeaderProxySyncID
	GenericHeaderAcceptCharset
	GenericHeaderContentType
	GenericHeaderContentID
	GenericHeaderContentBase
	GenericHeaderContentEncoding
	GenericHeaderContentLocation
	GenericHeaderContentLength
	GenericHeaderCacheControl
	GenericHeaderLoggingTag
	GenericHeaderVendorSpecificParams
	GenericHeaderAccept
	GenericHeaderFetchTimeout
	GenericHeaderSetCookie
	GenericHeaderSetCookie2

	// GenericHeaderCount is the number of generic fields.
	// It is also the offset of resource-specific ids in the presence table.
	GenericHeaderCount int = iota
)

var genericHeaderNames = []string{
	GenericHeaderActiveRequestIDList:  "Active-Request-Id-List",
	GenericHeaderProxySyncID:          "Proxy-Sync-Id",
	GenericHeaderAcceptCharset:        "Accept-Charset",
	GenericHeaderContentType:          "Content-Type",
	GenericHeaderContentID:            "Content-Id",
	GenericHeaderContentBase:          "Content-Base",
	GenericHeaderContentEncoding:      "Content-Encoding",
	GenericHeaderContentLocation:      "Content-Location",
	GenericHeaderContentLength:        "Content-Length",
	GenericHeaderCacheControl:         "Cache-Control",
	GenericHeaderLoggingTag:           "Logging-Tag",
	GenericHeaderVendorSpecificParams: "Vendor-Specific-Parameters",
	GenericHeaderAccept:               "Accept",
	GenericHeaderFetchTimeout:         "Fetch-Timeout",
	GenericHeaderSetCookie:            "Set-Cookie",
	GenericHeaderSetCookie2:           "Set-Cookie2",
}

// String returns the header name.
func (id GenericHeaderID) String() string { return headerName(genericHeaderNames, id) }

func (id GenericHeaderID) IsValid() bool { return id >= 0 && int(id) < GenericHeaderCount }

// GenericHeaderIDByName looks up a generic field by its case-insensitive header name.
func GenericHeaderIDByName(name string) (GenericHeaderID, bool) {
	return headerIDByName[GenericHeaderID](genericHeaderNames, name)
}

// GenericHeader is the block of header fields common to all resources.
type GenericHeader struct {
	ActiveRequestIDList []uint32
	ProxySyncID         Span
	AcceptCharset       Span
	ContentType         Span
	ContentID           Span
	ContentBase         Span
	ContentEncoding     Span
	ContentLocation     Span
	ContentLength       uint
	CacheControl        Span
	LoggingTag          Span
	// VendorParams keeps vendor-specific parameters in wire order.
	// Names are not guaranteed to be unique.
	VendorParams []Pair
	Accept       Span
	FetchTimeout uint
	SetCookie    Span
	SetCookie2   Span
}

// AddVendorParam appends a vendor-specific parameter.
func (hdr *GenericHeader) AddVendorParam(name, value Span) {
	if hdr == nil {
		return
	}
	hdr.VendorParams = append(hdr.VendorParams, Pair{Name: name, Value: value})
}

var genericAllocator = BlockAllocator[GenericHeader](nil)
