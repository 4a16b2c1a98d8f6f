// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrListen is returned by [Server.Run] when the listen address cannot be
	// bound.
	ErrListen = errors.New("cannot listen on address")

	// ErrUnhealthy is returned by [Probe] when the health endpoint answers
	// anything but 200 "ok".
	ErrUnhealthy = errors.New("health check failed")
)
