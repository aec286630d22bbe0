// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package telnumber

import "telnumber/internal/aytf"

// AsYouTypeFormatter reformats after every digit typed, degrading to a
// verbatim echo once the accrued input stops looking like a number. Not
// safe for concurrent use; one instance per logical caller (spec §5).
type AsYouTypeFormatter = aytf.Formatter

// NewAsYouTypeFormatter constructs a formatter that builds numbers against
// region's metadata until a leading '+' switches it to international mode.
func NewAsYouTypeFormatter(region string) *AsYouTypeFormatter {
	return aytf.New(region)
}
