// SPDX-License-Identifier: MIT

package units_test

import (
	"reflect"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/katalvlaran/luminol/internal/typecheck"
	"github.com/stretchr/testify/require"
)

// qualifier matches an import path prefix such as "github.com/x/units.".
var qualifier = regexp.MustCompile(`[A-Za-z0-9_./-]+\.`)

func typeName(s string) string {
	return strings.ReplaceAll(qualifier.ReplaceAllString(s, ""), " ", "")
}

// TestCatalogue_CoversEveryUnit fails when the package declares a unit type
// that the catalogue omits, so every unit goes through TestValidate_ShippedUnits
// and TestRoundTrip_AllPairs.
func TestCatalogue_CoversEveryUnit(t *testing.T) {
	typecheck.SkipUnlessToolchain(t)

	declared, err := typecheck.Implementers(".", "Descriptor")
	require.NoError(t, err)
	for i, name := range declared {
		declared[i] = typeName(name)
	}
	sort.Strings(declared)

	var listed []string
	for _, list := range catalogue {
		for _, d := range list {
			listed = append(listed, typeName(reflect.TypeOf(d).Name()))
		}
	}
	sort.Strings(listed)

	require.Equal(t, declared, listed)
}
