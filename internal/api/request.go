package api

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/namegen/pkg/namegen"
)

const maxPatternLength = 4096

type patternRequest struct {
	pattern    string
	preset     string
	collapse   bool
	capitalize bool
}

func (p patternRequest) key() compileKey {
	return compileKey{pattern: p.pattern, collapse: p.collapse, capitalize: p.capitalize}
}

type generateRequest struct {
	patternRequest
	count  int
	seed   uint64
	seeded bool
	unique bool
}

// parsePattern reads pattern or preset plus the transform switches. Patterns
// are NFC-normalized so that composed and decomposed input compile alike.
func parsePattern(q url.Values) (patternRequest, error) {
	req := patternRequest{
		pattern: q.Get("pattern"),
		preset:  strings.TrimSpace(q.Get("preset")),
	}

	switch {
	case req.pattern != "" && req.preset != "":
		return req, badRequest("pattern", "pattern and preset are mutually exclusive")
	case req.preset != "":
		p, err := namegen.Preset(req.preset)
		if err != nil {
			return req, err
		}
		req.pattern = p
	case !q.Has("pattern"):
		return req, badRequest("pattern", "pattern or preset is required")
	}

	if len(req.pattern) > maxPatternLength {
		return req, badRequest("pattern", "pattern is longer than "+strconv.Itoa(maxPatternLength)+" bytes")
	}
	req.pattern = norm.NFC.String(req.pattern)

	var err error
	if req.collapse, err = boolParam(q, "collapse", true); err != nil {
		return req, err
	}
	if req.capitalize, err = boolParam(q, "capitalize", true); err != nil {
		return req, err
	}
	return req, nil
}

func parseGenerate(q url.Values, maxCount int) (generateRequest, error) {
	pr, err := parsePattern(q)
	if err != nil {
		return generateRequest{}, err
	}
	req := generateRequest{patternRequest: pr, count: 1}

	if v := q.Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return req, badRequest("count", "must be a positive integer")
		}
		if n > maxCount {
			return req, badRequest("count", "must not exceed "+strconv.Itoa(maxCount))
		}
		req.count = n
	}

	if v := q.Get("seed"); v != "" {
		s, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return req, badRequest("seed", "must be an unsigned 64-bit integer")
		}
		req.seed, req.seeded = s, true
	}

	if req.unique, err = boolParam(q, "unique", false); err != nil {
		return req, err
	}
	return req, nil
}

func boolParam(q url.Values, name string, def bool) (bool, error) {
	v := q.Get(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, badRequest(name, "must be a boolean")
	}
	return b, nil
}
