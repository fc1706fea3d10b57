package dto

type SynthesizeRequest struct {
	Text    string `json:"text" binding:"required"`
	Speaker string `json:"speaker"`
}

type SynthesizeResponse struct {
	SynthesisID  string `json:"synthesis_id"`
	AudioURL     string `json:"audio_url"`
	SegmentCount int    `json:"segment_count"`
	AudioBytes   int    `json:"audio_bytes"`
}

type DescribeRequestResponse struct {
	Request string `json:"request"`
}
