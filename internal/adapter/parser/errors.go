// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package parser

import "errors"

var (
	// ErrSyntax is returned when the grammar could not parse the source cleanly.
	ErrSyntax = errors.New("syntax error")
	// ErrUnsupported is returned for file extensions no grammar handles.
	ErrUnsupported = errors.New("unsupported file type")
)
