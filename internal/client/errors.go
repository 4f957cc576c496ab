// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrUsage             = errors.New("usage error")
	ErrKeyExists         = errors.New("key file already exists, use -force to replace it")
	ErrAborted           = errors.New("aborted")
	ErrMissingDependency = errors.New("client dependency is not set")
)
