package booking

import "time"

// SignatureSlot is one party's signature: the raster image, the vector path
// it was validated from, and who submitted it from where.
type SignatureSlot struct {
	Image     string
	SVG       string
	SignedAt  time.Time
	IP        string
	UserAgent string
}
