// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrModuleRouter is returned by [Handler.Init] when a module fails to
// compile its routes. The gateway refuses to start with a partial table.
var ErrModuleRouter = errors.New("module router failed")
