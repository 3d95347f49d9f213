// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// web front handlers, services and the API client.
//
// All Msg* constants are user-facing (Korean) strings shown in rendered
// pages or returned to the CLI. Keeping them in one place ensures
// consistent wording throughout the application.
package app

// Messages produced by the error normalizer.
const (
	// MsgBadRequest is shown for HTTP 400 responses without a body message.
	MsgBadRequest = "입력 데이터가 올바르지 않습니다."

	// MsgUnauthorized is shown for HTTP 401 responses.
	MsgUnauthorized = "인증이 필요합니다."

	// MsgForbidden is shown for HTTP 403 responses.
	MsgForbidden = "접근 권한이 없습니다."

	// MsgNotFound is shown for HTTP 404 responses.
	MsgNotFound = "요청한 리소스를 찾을 수 없습니다."

	// MsgConflict is shown for HTTP 409 responses.
	MsgConflict = "이미 존재하는 데이터입니다."

	// MsgTooManyRequests is shown for HTTP 429 responses.
	MsgTooManyRequests = "너무 많은 요청입니다. 잠시 후 다시 시도해주세요."

	// MsgServerError is shown for HTTP 500, 502, 503 and 504 responses.
	MsgServerError = "서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요."

	// MsgTimeout is shown when a request did not complete in time.
	MsgTimeout = "요청 시간이 초과되었습니다. 다시 시도해주세요."

	// MsgNetworkError is shown when the API could not be reached at all.
	MsgNetworkError = "네트워크 오류가 발생했습니다. 인터넷 연결을 확인해주세요."

	// MsgUnknownError is the last-resort message.
	MsgUnknownError = "알 수 없는 오류가 발생했습니다."
)

// Webhook registration overrides, applied after normalization.
const (
	MsgWebhookAlreadyRegistered = "이미 등록된 웹훅 URL입니다."
	MsgTooManyWebhooks          = "너무 많은 웹훅이 등록되어 있습니다."
	MsgWebhookRegistered        = "웹훅이 등록되었습니다."
)

// Webhook URL validation messages, one per check.
const (
	MsgWebhookURLRequired     = "웹훅 URL을 입력해주세요."
	MsgWebhookURLTooLong      = "URL이 너무 깁니다. (500자 이내)"
	MsgWebhookURLMalformed    = "올바르지 않은 URL 형식입니다."
	MsgWebhookURLNotHTTPS     = "HTTPS URL만 지원됩니다."
	MsgWebhookURLNotDiscord   = "Discord 웹훅 URL만 지원됩니다."
	MsgWebhookURLBadPath      = "올바른 Discord 웹훅 URL 형식이 아닙니다."
	MsgWebhookURLMissingParts = "웹훅 URL에 필요한 정보가 누락되었습니다."
	MsgWebhookURLBadID        = "올바르지 않은 웹훅 ID 형식입니다."
	MsgWebhookURLBadToken     = "올바르지 않은 웹훅 토큰 형식입니다."
	MsgRecaptchaTokenRequired = "reCAPTCHA 인증을 완료해주세요."
)

// Page-level degradation messages used by data loaders.
const (
	// MsgInitialDataLoadFailed is rendered on the home page when notices or
	// stats could not be loaded.
	MsgInitialDataLoadFailed = "초기 데이터 로딩에 실패했습니다. 페이지를 새로고침해주세요."

	// MsgNoticesLoadFailed is rendered on the notices page.
	MsgNoticesLoadFailed = "입법예고 데이터를 불러오는데 실패했습니다."
)

// Date formatting placeholders.
const (
	MsgNoDate      = "없음"
	MsgInvalidDate = "날짜 오류"
)
