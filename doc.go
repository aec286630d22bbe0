// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package telnumber parses, validates, formats, and locates international
// telephone numbers.
//
// The package wraps five independent subsystems: a parser that turns messy
// user input into a structured Number, a classifier that decides whether a
// Number is possible/valid and what type of line it reaches, a formatter
// that renders a Number in E164/International/National/RFC3966 style, an
// AsYouTypeFormatter that reformats after every keystroke, and a
// PhoneNumberMatcher that scans free-form text for embedded numbers. All
// five are driven by a compiled-in metadata bundle (internal/metadata) and
// share the regex backends in internal/regexengine.
//
// Parser, classifier, and formatter calls are stateless and safe to call
// concurrently. AsYouTypeFormatter and PhoneNumberMatcher hold mutable
// per-instance state and must each be owned by a single logical caller, as
// with the teacher's per-request validator instances.
package telnumber
