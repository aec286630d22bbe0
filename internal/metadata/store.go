// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"fmt"
	"io"
	"sync"

	"telnumber/internal/phonenumber"
)

// Store is the immutable, process-wide region index from spec §4.3: a
// region_id -> PhoneMetadata map and a country_calling_code -> ordered
// region_id list, main region first. Once built it is never mutated;
// concurrent reads never block.
type Store struct {
	byRegion map[string]*PhoneMetadata
	byCode   map[int][]string
}

// newStore builds a Store's two indexes from a flat list of records,
// placing each calling code's main_country_for_code region first in its
// region list (spec §4.3's "main first").
func newStore(records []*PhoneMetadata) *Store {
	s := &Store{
		byRegion: make(map[string]*PhoneMetadata, len(records)),
		byCode:   make(map[int][]string),
	}
	for _, r := range records {
		s.byRegion[r.ID] = r
		if r.MainCountryForCode {
			s.byCode[r.CountryCode] = append([]string{r.ID}, s.byCode[r.CountryCode]...)
		} else {
			s.byCode[r.CountryCode] = append(s.byCode[r.CountryCode], r.ID)
		}
	}
	return s
}

// ForRegion returns the metadata for region, or (nil, false) if unknown.
func (s *Store) ForRegion(region string) (*PhoneMetadata, bool) {
	m, ok := s.byRegion[region]
	return m, ok
}

// RegionsForCode returns the regions sharing countryCode, main region
// first, or nil if no region is registered for that code.
func (s *Store) RegionsForCode(countryCode int) []string {
	return s.byCode[countryCode]
}

// MainRegionForCode returns the main region for countryCode, or
// phonenumber.RegionUnknown if none is registered.
func (s *Store) MainRegionForCode(countryCode int) string {
	regions := s.byCode[countryCode]
	if len(regions) == 0 {
		return phonenumber.RegionUnknown
	}
	return regions[0]
}

// IsNonGeographical reports whether region is the distinguished
// non-geographical entity id (spec §4.3).
func IsNonGeographical(region string) bool {
	return region == phonenumber.RegionNonGeographical
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns the process-wide Store built from the compiled-in
// default bundle, building it exactly once (spec §5's once-latch pattern
// for shared, lazily-initialized state).
func Default() *Store {
	defaultOnce.Do(func() {
		defaultStore = newStore(defaultBundleRecords())
	})
	return defaultStore
}

// Load builds a fresh, independent Store from a gob-encoded bundle read
// from r, bypassing the process-wide default. Spec §9 calls for tests to
// "instantiate a fresh singleton by passing an alternative metadata blob
// to a constructor variant" — Load is that variant.
func Load(r io.Reader) (*Store, error) {
	records, err := DecodeBundle(r)
	if err != nil {
		return nil, fmt.Errorf("metadata: load: %w", err)
	}
	return newStore(records), nil
}
