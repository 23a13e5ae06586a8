// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidMultipart is returned by the upload handler when the request is
// not a multipart body or a part of it cannot be read.
var ErrInvalidMultipart = errors.New("invalid multipart body")
