/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package bvans

import "fmt"

// ParameterError reports an invalid fidelity/radix/frame-size parameter or a
// raw symbol outside [0, MaxRawSymbol]. It is unrecoverable: the caller chose
// a parameter combination that cannot represent the data.
type ParameterError struct {
	Msg string
}

func (e *ParameterError) Error() string { return "bvans: parameter error: " + e.Msg }

// NewParameterError builds a ParameterError with a formatted message.
func NewParameterError(format string, args ...interface{}) error {
	return &ParameterError{Msg: fmt.Sprintf(format, args...)}
}

// FrameTooSmallError reports that the requested frame size ℓ cannot host
// every observed symbol with frequency >= 1 once frequencies are quantized.
// The caller may retry the quantization with a larger ℓ.
type FrameTooSmallError struct {
	Component string
	Log2Frame int
}

func (e *FrameTooSmallError) Error() string {
	return fmt.Sprintf("bvans: frame too small for component %s at log2 frame size %d", e.Component, e.Log2Frame)
}

// CorruptedStreamError reports a decoder cursor underflow or an invariant
// violation discovered while reading the normalized_bits or folded_bits
// streams. It is never recovered; the caller must treat the stream as
// unusable.
type CorruptedStreamError struct {
	Msg string
}

func (e *CorruptedStreamError) Error() string { return "bvans: corrupted stream: " + e.Msg }

// NewCorruptedStreamError builds a CorruptedStreamError with a formatted message.
func NewCorruptedStreamError(format string, args ...interface{}) error {
	return &CorruptedStreamError{Msg: fmt.Sprintf(format, args...)}
}
