/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package database

import (
	"golang.org/x/exp/slices"

	"github.com/ndllang/ndl/pkg/ndl"
)

// Computes the C3 linearization of an object:
//
//	L(o) = [o] ++ merge(L(p1), …, L(pn), [p1..pn])
//
// parentsOf supplies the declared parent list of any object reached; the
// caller decides which state the parents come from. Ancestor linearizations
// are memoized per call.
func linearize(obj ndl.FQON, parentsOf func(ndl.FQON) ([]ndl.FQON, error)) ([]ndl.FQON, error) {
	memo := make(map[ndl.FQON][]ndl.FQON)
	visiting := make(map[ndl.FQON]bool)

	var visit func(f ndl.FQON) ([]ndl.FQON, error)
	visit = func(f ndl.FQON) ([]ndl.FQON, error) {
		if lin, ok := memo[f]; ok {
			return lin, nil
		}
		if visiting[f] {
			return nil, ndl.ErrLinearization("inheritance cycle through «%v»", f)
		}
		visiting[f] = true
		defer delete(visiting, f)

		parents, err := parentsOf(f)
		if err != nil {
			return nil, err
		}

		lin := []ndl.FQON{f}
		if len(parents) > 0 {
			seqs := make([][]ndl.FQON, 0, len(parents)+1)
			for _, p := range parents {
				pl, err := visit(p)
				if err != nil {
					return nil, err
				}
				seqs = append(seqs, slices.Clone(pl))
			}
			seqs = append(seqs, slices.Clone(parents))

			merged, err := c3Merge(f, seqs)
			if err != nil {
				return nil, err
			}
			lin = append(lin, merged...)
		}
		memo[f] = lin
		return lin, nil
	}

	return visit(obj)
}

// Repeatedly takes the head of the first sequence whose head appears in no
// other sequence's tail. Ties break by declared parent order because the
// parents' linearizations are scanned in that order; the parent list, as the
// last sequence, keeps the parents themselves in declared order.
func c3Merge(obj ndl.FQON, seqs [][]ndl.FQON) ([]ndl.FQON, error) {
	result := make([]ndl.FQON, 0, len(seqs))
	for {
		remaining := false
		picked := false
		var head ndl.FQON

	candidates:
		for _, s := range seqs {
			if len(s) == 0 {
				continue
			}
			remaining = true
			cand := s[0]
			for _, other := range seqs {
				if len(other) > 1 && slices.Contains(other[1:], cand) {
					continue candidates
				}
			}
			head = cand
			picked = true
			break
		}

		if !remaining {
			return result, nil
		}
		if !picked {
			heads := make([]ndl.FQON, 0, len(seqs))
			for _, s := range seqs {
				if len(s) > 0 && !slices.Contains(heads, s[0]) {
					heads = append(heads, s[0])
				}
			}
			return nil, ndl.ErrLinearization("no consistent hierarchy for «%v», conflicting heads: %v", obj, heads)
		}

		result = append(result, head)
		for i := range seqs {
			if len(seqs[i]) > 0 && seqs[i][0] == head {
				seqs[i] = seqs[i][1:]
			}
		}
	}
}
