package domain

import "time"

// Clip code space. Codes are four decimal digits.
const (
	MinClipCode = 0
	MaxClipCode = 9999
	ClipCodes   = MaxClipCode + 1
)

// Clip is a short piece of shared text addressed by a code. When Protected
// is set, Content holds vault ciphertext rather than text.
type Clip struct {
	Code      int
	Content   []byte
	Protected bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidClipCode reports whether code is inside the code space.
func ValidClipCode(code int) bool {
	return code >= MinClipCode && code <= MaxClipCode
}
