// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-clip-sync/models"
)

const maxJSONBody = 64 << 20

// decodeJSON reads the request body into v. An empty body leaves v as is
// when optional is set.
func decodeJSON(r *http.Request, v any, optional bool) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	if err := dec.Decode(v); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSONBody, err)
	}
	return nil
}

func intParam(q url.Values, name string) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidQuery, name, raw)
	}
	return n, nil
}

func listQuery(q url.Values) (models.ListQuery, error) {
	page, err := intParam(q, "page")
	if err != nil {
		return models.ListQuery{}, err
	}
	limit, err := intParam(q, "limit")
	if err != nil {
		return models.ListQuery{}, err
	}

	return models.ListQuery{
		Page:     page,
		Limit:    limit,
		Type:     models.ItemType(q.Get("type")),
		Search:   q.Get("search"),
		Filter:   models.ListFilter(q.Get("filter")),
		DeviceID: q.Get("deviceId"),
	}, nil
}
