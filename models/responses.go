// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CaptchaSuccessCode is the repCode carried by every successful captcha
// response.
const CaptchaSuccessCode = "0000"

// CommonResult is the generic envelope every business handler responds with.
//
// A successful result has Code == 0 and an empty Msg. Failures carry a
// non-zero Code (the HTTP status of the response) and an explanatory Msg.
type CommonResult[T any] struct {
	// Code is 0 on success, otherwise the failure code.
	Code int32 `json:"code"`

	// Msg is empty on success, otherwise a human readable reason.
	Msg string `json:"msg"`

	// Data is the business payload. It is the zero value of T on failure.
	Data T `json:"data"`
}

// Success wraps data into a successful [CommonResult].
func Success[T any](data T) CommonResult[T] {
	return CommonResult[T]{Data: data}
}

// Failure builds a failed [CommonResult] without payload.
func Failure(code int32, msg string) CommonResult[any] {
	return CommonResult[any]{Code: code, Msg: msg}
}

// IsSuccess reports whether the envelope satisfies the success invariant.
func (r CommonResult[T]) IsSuccess() bool {
	return r.Code == 0 && r.Msg == ""
}

// CaptchaResult is the envelope used by the captcha endpoints, which follow a
// different wire contract than the rest of the admin API.
type CaptchaResult[T any] struct {
	RepCode string `json:"repCode"`
	RepMsg  string `json:"repMsg"`
	RepData T      `json:"repData"`
}

// CaptchaSuccess wraps data into a successful [CaptchaResult].
func CaptchaSuccess[T any](data T) CaptchaResult[T] {
	return CaptchaResult[T]{
		RepCode: CaptchaSuccessCode,
		RepMsg:  "mock success",
		RepData: data,
	}
}

// IsSuccess reports whether the envelope satisfies the success invariant.
func (r CaptchaResult[T]) IsSuccess() bool {
	return r.RepCode == CaptchaSuccessCode
}

// NotFoundResult is the body of the gateway catch-all 404 response.
type NotFoundResult struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// MockPayload is the data of every route whose real implementation does not
// exist yet. It echoes what the gateway matched.
type MockPayload struct {
	Mock   bool   `json:"mock"`
	Path   string `json:"path"`
	Method string `json:"method"`
}
