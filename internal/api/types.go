package api

// Response bodies for the read-only container API.

type HeaderInfo struct {
	Version      uint8  `json:"version"`
	LittleEndian bool   `json:"little_endian"`
	VoidPtrSize  uint8  `json:"void_ptr_size"`
	IntSize      uint8  `json:"int_size"`
	LongSize     uint8  `json:"long_size"`
	FloatSize    uint8  `json:"float_size"`
	DoubleSize   uint8  `json:"double_size"`
	AppVersion   uint32 `json:"app_version"`
	HasChecksums bool   `json:"has_checksums"`
}

type HeaderResponse struct {
	ScanID string     `json:"scan_id"`
	File   string     `json:"file"`
	Header HeaderInfo `json:"header"`
}

type RecordInfo struct {
	Offset      int64  `json:"offset"`
	Group       uint8  `json:"group"`
	Tag         uint8  `json:"tag"`
	UserIndex   uint32 `json:"user_index"`
	Type        string `json:"type"`
	Complex     bool   `json:"complex"`
	Matrix      bool   `json:"matrix"`
	PayloadSize uint64 `json:"payload_size"`
	CRC         bool   `json:"crc"`
	Value       any    `json:"value"`
}

type RecordsResponse struct {
	ScanID string       `json:"scan_id"`
	File   string       `json:"file"`
	Count  int          `json:"count"`
	// More reports that the limit cut the listing short.
	More    bool         `json:"more"`
	Records []RecordInfo `json:"records"`
}

type VerifyResponse struct {
	ScanID  string `json:"scan_id"`
	File    string `json:"file"`
	Records int    `json:"records"`
	// Checked counts records that carried a CRC32C trailer.
	Checked int    `json:"checked"`
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
}

type ErrorBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}
