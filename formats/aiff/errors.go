// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input is not a valid AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth indicates a sample size the decoder cannot normalize
	ErrUnsupportedBitDepth = errors.New("only 16, 24 and 32-bit AIFF supported")

	// ErrUnsupportedAiffLayout indicates the COMM chunk could not be read
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
