package models

// CaptchaPayload is the repData of the captcha-get endpoint.
//
// Point is serialized as a two element array [x, y].
type CaptchaPayload struct {
	CaptchaType         string    `json:"captchaType"`
	Token               string    `json:"token"`
	CaptchaID           string    `json:"captchaId"`
	OriginalImageBase64 string    `json:"originalImageBase64"`
	JigsawImageBase64   string    `json:"jigsawImageBase64"`
	Point               [2]uint16 `json:"point"`
}

// CaptchaCheckResult is the repData of the captcha-check endpoint.
type CaptchaCheckResult struct {
	Result bool `json:"result"`
}
