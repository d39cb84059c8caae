package mcplibrary

import (
	"net/url"
	"regexp"
	"strings"
)

// Normalize resolves rawHref against base and canonicalizes the result:
// the fragment is stripped, scheme and host are lowercased, and an empty
// path becomes "/". The canonical URL is the page's identity within a crawl.
//
// Returns false when the href cannot be parsed, is not http(s), or points
// outside the crawl's host (same-origin boundary, exact host match).
func Normalize(base *url.URL, rawHref string) (string, bool) {
	ref, err := url.Parse(strings.TrimSpace(rawHref))
	if err != nil {
		return "", false
	}

	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	resolved.Scheme = strings.ToLower(resolved.Scheme)
	resolved.Host = strings.ToLower(resolved.Host)
	if resolved.Path == "" {
		// A bare host link and a link to "/" are the same resource.
		resolved.Path = "/"
	}

	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", false
	}
	if resolved.Host != strings.ToLower(base.Host) {
		return "", false
	}
	return resolved.String(), true
}

// URLFilter specifies regular expression patterns for including and
// excluding URLs, matched against the full canonical URL string.
type URLFilter struct {
	// Include patterns - if set, only URLs matching at least one pattern
	// are in scope.
	Include []*regexp.Regexp

	// Exclude patterns - URLs matching any pattern are out of scope.
	// Exclude is authoritative: an include match never overrides it.
	Exclude []*regexp.Regexp
}

// CompileFilter builds a URLFilter from raw pattern strings, validating
// each as a regular expression.
func CompileFilter(include, exclude []string) (*URLFilter, error) {
	f := &URLFilter{}
	for _, pattern := range include {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid include pattern %q: %v", pattern, err)
		}
		f.Include = append(f.Include, re)
	}
	for _, pattern := range exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid exclude pattern %q: %v", pattern, err)
		}
		f.Exclude = append(f.Exclude, re)
	}
	return f, nil
}

// Match returns true if the URL passes the filter. A nil filter passes
// everything.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	// Exclude is checked first and wins.
	for _, re := range f.Exclude {
		if re.MatchString(url) {
			return false
		}
	}

	if len(f.Include) > 0 {
		for _, re := range f.Include {
			if re.MatchString(url) {
				return true
			}
		}
		return false
	}

	return true
}
