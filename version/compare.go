// Package version checks for newer releases of twshades.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Compare compares two semantic versions. A leading "v" and any
// pre-release or build suffix are ignored, and missing components count as 0.
// It returns 1 if a > b, -1 if a < b and 0 if they are equal.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for i := range av {
		switch {
		case av[i] > bv[i]:
			return 1, nil
		case av[i] < bv[i]:
			return -1, nil
		}
	}

	return 0, nil
}

func parse(s string) ([3]int, error) {
	var v [3]int

	core, _, _ := strings.Cut(strings.TrimPrefix(strings.TrimSpace(s), "v"), "-")
	core, _, _ = strings.Cut(core, "+")

	parts := strings.Split(core, ".")
	if len(parts) > len(v) {
		return v, fmt.Errorf("malformed version %q", s)
	}

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return v, fmt.Errorf("malformed version %q", s)
		}
		v[i] = n
	}

	return v, nil
}

// Newer reports whether latest is strictly newer than current. Malformed
// versions are never newer.
func Newer(latest, current string) bool {
	cmp, err := Compare(latest, current)
	return err == nil && cmp > 0
}
