// SPDX-License-Identifier: EPL-2.0

package fixture

import "errors"

var (
	ErrMissing       = errors.New("fixture file is missing")
	ErrNotAFile      = errors.New("fixture path is not a regular file")
	ErrNoProjectRoot = errors.New("no go.mod found in any parent directory")
)
