// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrUnsupportedFormat is returned when no decoder accepts the input.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrTooLong is returned when a decoded stream reaches the maximum duration.
	ErrTooLong = errors.New("audio exceeds maximum duration")

	ErrNoChannels        = errors.New("source has no channels")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
