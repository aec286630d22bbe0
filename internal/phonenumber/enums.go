// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phonenumber

// PhoneNumberType is the classification a Number is assigned by the
// validator/classifier, per spec §4.6. Precedence order when more than one
// descriptor matches is fixed and documented on GetNumberType, not here.
type PhoneNumberType int

const (
	FixedLine PhoneNumberType = iota
	Mobile
	FixedLineOrMobile
	TollFree
	PremiumRate
	SharedCost
	VoIP
	PersonalNumber
	Pager
	UAN
	Voicemail
	UnknownType
)

func (t PhoneNumberType) String() string {
	switch t {
	case FixedLine:
		return "FIXED_LINE"
	case Mobile:
		return "MOBILE"
	case FixedLineOrMobile:
		return "FIXED_LINE_OR_MOBILE"
	case TollFree:
		return "TOLL_FREE"
	case PremiumRate:
		return "PREMIUM_RATE"
	case SharedCost:
		return "SHARED_COST"
	case VoIP:
		return "VOIP"
	case PersonalNumber:
		return "PERSONAL_NUMBER"
	case Pager:
		return "PAGER"
	case UAN:
		return "UAN"
	case Voicemail:
		return "VOICEMAIL"
	default:
		return "UNKNOWN"
	}
}

// NumberFormatStyle selects a formatter output style, per spec §4.7.
type NumberFormatStyle int

const (
	E164 NumberFormatStyle = iota
	International
	National
	RFC3966
)

func (s NumberFormatStyle) String() string {
	switch s {
	case E164:
		return "E164"
	case International:
		return "INTERNATIONAL"
	case National:
		return "NATIONAL"
	case RFC3966:
		return "RFC3966"
	default:
		return "UNKNOWN"
	}
}

// Leniency is the matcher's strictness axis, per spec §4.9/GLOSSARY. Higher
// values reject candidates that pass lower ones.
type Leniency int

const (
	Possible Leniency = iota
	Valid
	StrictGrouping
	ExactGrouping
)

func (l Leniency) String() string {
	switch l {
	case Possible:
		return "POSSIBLE"
	case Valid:
		return "VALID"
	case StrictGrouping:
		return "STRICT_GROUPING"
	case ExactGrouping:
		return "EXACT_GROUPING"
	default:
		return "UNKNOWN"
	}
}

// ParsingOptions is the builder-style configuration object spec §9 asks to
// be represented as a plain options record constructed once and passed by
// value, rather than a fluent mutable builder.
type ParsingOptions struct {
	DefaultRegion string
	KeepRawInput  bool
}

// DefaultParsingOptions returns the spec-mandated defaults: default_region
// = "ZZ", keep_raw_input = false.
func DefaultParsingOptions() ParsingOptions {
	return ParsingOptions{DefaultRegion: "ZZ", KeepRawInput: false}
}

// RegionUnknown is the "ZZ" sentinel region code (GLOSSARY).
const RegionUnknown = "ZZ"

// RegionNonGeographical is the "001" sentinel region code (GLOSSARY).
const RegionNonGeographical = "001"
