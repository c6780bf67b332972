// Copyright Emerald Youth Foundation, 2026. All rights reserved.

package match

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/pkg/types"
)

// KeyFunc extracts the candidate student identifier from a waiver filename.
// It returns ok=false for filenames that do not follow the convention;
// those files are reported as ignored rather than treated as errors.
//
// The two conventions seen in the field differ enough that the rule is a
// strategy, not a hard-coded parse:
//
//	{id}_{last}-{first}-{timestamp}.pdf
//	{id}_{name}_KCS Records Consent_{original name}_{date}.pdf
type KeyFunc func(filename string) (id string, ok bool)

// consentFormPattern validates the records-office convention. The id is
// numeric and the marker segment is literal.
var consentFormPattern = regexp.MustCompile(`^([0-9]+)_[A-Za-z ]+_KCS Records Consent_.*\.pdf$`)

// UnderscoreKey returns the token before the first underscore. Filenames
// without an underscore-delimited prefix are ignored.
func UnderscoreKey(filename string) (string, bool) {
	id, _, found := strings.Cut(filename, "_")
	if !found || id == "" {
		return "", false
	}
	return id, true
}

// ConsentFormKey accepts only filenames matching the full records-office
// convention and returns the leading numeric identifier.
func ConsentFormKey(filename string) (string, bool) {
	m := consentFormPattern.FindStringSubmatch(filename)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// KeyFuncFor resolves a configured naming scheme to its strategy.
// An empty scheme defaults to underscore.
func KeyFuncFor(scheme types.NamingScheme) (KeyFunc, error) {
	switch scheme {
	case types.NamingUnderscore, "":
		return UnderscoreKey, nil
	case types.NamingConsentForm:
		return ConsentFormKey, nil
	default:
		return nil, fmt.Errorf("unknown naming scheme %q", scheme)
	}
}
