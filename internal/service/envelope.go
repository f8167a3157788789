// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-clip-sync/internal/adapter"
	"github.com/MKhiriev/go-clip-sync/models"
)

// fold turns an adapter answer into an envelope. okMessage is used when the
// service sent no message of its own.
func fold[T any](reply adapter.Reply[T], err error, okMessage string) models.Envelope[T] {
	if err != nil {
		env := failure[T](err)
		if env.StatusCode == 0 {
			env.StatusCode = reply.StatusCode
		}
		return env
	}

	msg := reply.Message
	if msg == "" {
		msg = okMessage
	}
	return models.OK(reply.Data, msg, reply.StatusCode)
}

// failure folds err into a failed envelope. The message of a
// [*adapter.StatusError] is preferred over its full error text.
func failure[T any](err error) models.Envelope[T] {
	return models.Fail[T](errorMessage(err), adapter.StatusCode(err))
}

func errorMessage(err error) string {
	if err == nil {
		return ""
	}

	var se *adapter.StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return err.Error()
}

// relabel keeps the outcome of env and replaces the data.
func relabel[T, U any](env models.Envelope[T], data U, message string) models.Envelope[U] {
	out := models.Envelope[U]{
		Success:    env.Success,
		Message:    env.Message,
		Data:       data,
		StatusCode: env.StatusCode,
	}
	if env.Success && message != "" {
		out.Message = message
	}
	return out
}
