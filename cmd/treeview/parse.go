package main

import (
	"strconv"
	"strings"

	"github.com/g-m-twostay/treekit/Trees"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// absentTokens mark a missing node in level order input.
var absentTokens = []string{"-", "none", "null", "nil"}

func isAbsent(tok string) bool {
	return lo.Contains(absentTokens, strings.ToLower(tok))
}

func parseInt(tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	return v, errors.WithMessagef(err, "value %q", tok)
}

// parseValues turns every token into a value, none of them may be absent.
func parseValues[T any](toks []string, conv func(string) (T, error)) ([]T, error) {
	vs := make([]T, 0, len(toks))
	for _, tok := range toks {
		if isAbsent(tok) {
			return nil, errors.Errorf("%q marks an absent node, which only level order input takes", tok)
		}
		v, err := conv(tok)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

func parseSlots[T any](toks []string, conv func(string) (T, error)) ([]Trees.Slot[T], error) {
	s := make([]Trees.Slot[T], 0, len(toks))
	for _, tok := range toks {
		if isAbsent(tok) {
			s = append(s, Trees.None[T]())
			continue
		}
		v, err := conv(tok)
		if err != nil {
			return nil, err
		}
		s = append(s, Trees.Some(v))
	}
	return s, nil
}

func keepString(tok string) (string, error) {
	return tok, nil
}
