// Package dnsname provides domain-name helpers: the suffix tree used
// for DNS search-path fallback and small normalization utilities.
package dnsname

import "strings"

// Tree decomposes a domain into every right-truncated suffix, most
// specific first, terminating at the bare two-label root:
//
//	a.b.c.example.com -> [a.b.c.example.com b.c.example.com c.example.com example.com]
//
// A single-label name is already minimal and yields itself alone. The
// implicit DNS root is never emitted.
func Tree(domain string) []string {
	domain = Normalize(domain)
	if domain == "" {
		return nil
	}
	labels := strings.Split(domain, ".")
	if len(labels) == 1 {
		return []string{domain}
	}
	out := make([]string, 0, len(labels)-1)
	for i := 0; i <= len(labels)-2; i++ {
		out = append(out, strings.Join(labels[i:], "."))
	}
	return out
}

// Normalize lowercases a name and strips the trailing root dot
func Normalize(domain string) string {
	return strings.ToLower(strings.TrimSuffix(strings.TrimSpace(domain), "."))
}
