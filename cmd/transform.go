package cmd

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/darthshadow/exactjoin/fs"
	"golang.org/x/text/unicode/norm"
)

var normalForms = map[string]norm.Form{
	"nfc":  norm.NFC,
	"nfd":  norm.NFD,
	"nfkc": norm.NFKC,
	"nfkd": norm.NFKD,
}

// transform applies --normalize, --skip-empty and --sort to elems, in that
// order. elems may be modified in place.
func transform(ctx context.Context, elems []string) ([]string, error) {
	ci := fs.GetConfig(ctx)

	switch name := strings.ToLower(ci.Normalize); name {
	case "", "none":
	default:
		form, ok := normalForms[name]
		if !ok {
			return nil, fmt.Errorf("unknown normalization %q: must be none, nfc, nfd, nfkc or nfkd", ci.Normalize)
		}
		for i, elem := range elems {
			elems[i] = form.String(elem)
		}
	}

	if ci.SkipEmpty {
		elems = slices.DeleteFunc(elems, func(elem string) bool {
			return elem == ""
		})
	}

	if ci.Sort {
		sortElements(elems)
	}
	return elems, nil
}

func sortElements(elems []string) {
	/**
	  References:
	    - https://aead.dev/news/sort-strings/
	    - https://github.com/golang/go/issues/61725
	    - https://go101.org/blog/2022-10-01-three-way-string-comparison.html
	*/
	slices.SortFunc(elems, strings.Compare)
}
