// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"encoding/gob"
	"io"
)

// bundleRecord is the gob wire shape for one region record. It mirrors
// PhoneMetadata field for field; kept as a distinct type so the wire
// format doesn't silently change if PhoneMetadata ever grows
// non-serializable fields (methods, unexported state).
type bundleRecord struct {
	ID                          string
	CountryCode                 int
	InternationalPrefix         string
	PreferredInternationalPrefix string
	NationalPrefix              string
	PreferredExtnPrefix         string
	NationalPrefixForParsing    string
	NationalPrefixTransformRule string

	GeneralDesc             Descriptor
	FixedLine               Descriptor
	Mobile                  Descriptor
	TollFree                Descriptor
	PremiumRate             Descriptor
	SharedCost              Descriptor
	PersonalNumber          Descriptor
	Voip                    Descriptor
	Pager                   Descriptor
	Uan                     Descriptor
	Emergency               Descriptor
	Voicemail               Descriptor
	ShortCode               Descriptor
	StandardRate            Descriptor
	CarrierSpecific         Descriptor
	SmsServices             Descriptor
	NoInternationalDialling Descriptor

	NumberFormat     []Format
	IntlNumberFormat []Format

	MainCountryForCode         bool
	LeadingDigits              string
	MobileNumberPortableRegion bool
}

func toBundleRecord(m *PhoneMetadata) bundleRecord {
	return bundleRecord(*m)
}

func fromBundleRecord(b bundleRecord) *PhoneMetadata {
	m := PhoneMetadata(b)
	return &m
}

// EncodeBundle writes records to w as a length-prefixed gob stream (spec
// §6: "a length-prefixed serialized record set, one record per region").
// gob's own framing already delimits each Encode call, so the length
// prefix here is the count of records, not a byte length per record.
func EncodeBundle(w io.Writer, records []*PhoneMetadata) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(len(records)); err != nil {
		return err
	}
	for _, m := range records {
		if err := enc.Encode(toBundleRecord(m)); err != nil {
			return err
		}
	}
	return nil
}

// DecodeBundle reads a stream written by EncodeBundle back into a slice
// of PhoneMetadata records.
func DecodeBundle(r io.Reader) ([]*PhoneMetadata, error) {
	dec := gob.NewDecoder(r)
	var n int
	if err := dec.Decode(&n); err != nil {
		return nil, err
	}
	records := make([]*PhoneMetadata, 0, n)
	for i := 0; i < n; i++ {
		var b bundleRecord
		if err := dec.Decode(&b); err != nil {
			return nil, err
		}
		records = append(records, fromBundleRecord(b))
	}
	return records, nil
}
