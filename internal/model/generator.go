package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length           int   `json:"length"`
	Uppercase        *bool `json:"uppercase"`
	Lowercase        *bool `json:"lowercase"`
	Numbers          *bool `json:"numbers"`
	Symbols          *bool `json:"symbols"`
	ExcludeSimilar   bool  `json:"exclude_similar"`
	PreventRepeating bool  `json:"prevent_repeating"`
}

// StrengthInfo represents a strength measurement in API responses.
type StrengthInfo struct {
	Score   int     `json:"score"`
	Label   string  `json:"label"`
	Entropy float64 `json:"entropy"`
}

// GenerateResponse represents a password generation response, including the
// strength of the password that was produced.
type GenerateResponse struct {
	Password string       `json:"password"`
	Length   int          `json:"length"`
	Strength StrengthInfo `json:"strength"`
}

// StrengthRequest represents a standalone strength evaluation request. The
// password may be any string, including empty.
type StrengthRequest struct {
	Password string `json:"password"`
}

// CharsetResponse represents the effective alphabet for a set of class flags.
type CharsetResponse struct {
	Charset string `json:"charset"`
	Size    int    `json:"size"`
}
