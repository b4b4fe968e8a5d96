// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrUsage is returned when a command gets the wrong number of arguments.
var ErrUsage = errors.New("invalid usage")
