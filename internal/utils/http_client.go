// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. Embedding exposes the whole resty API while
// letting the adapter attach client-wide defaults in one place.
//
// Example usage:
//
//	client := utils.NewHTTPClient(map[string]string{"X-Key": "v"})
//	resp, err := client.R().Get("/api/health")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client that sends headers with every
// request and reports JSON as the accepted content type.
func NewHTTPClient(headers map[string]string) *HTTPClient {
	c := resty.New().SetHeader("Accept", "application/json")
	if len(headers) > 0 {
		c.SetHeaders(headers)
	}

	return &HTTPClient{Client: c}
}
