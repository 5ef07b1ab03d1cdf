package api

import (
	"strconv"
	"strings"
)

// parseIDList turns a comma separated ID string ("1, 2,5") into ints.
// Tokens that don't parse as integers are dropped rather than erroring,
// an all-garbage input behaves like no filter at all
func parseIDList(s string) []int {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))

	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			continue
		}

		out = append(out, id)
	}

	if len(out) == 0 {
		return nil
	}

	return out
}

// parseBoolFlag reads query flags like assigned_only=1. Anything that
// isn't a non-zero integer counts as off
func parseBoolFlag(s string) bool {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil && v != 0
}
