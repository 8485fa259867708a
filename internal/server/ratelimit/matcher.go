package ratelimit

import (
	"strings"
)

// unlimited is returned for endpoints that are never throttled.
var unlimited = &EndpointConfig{}

// MatchEndpoint finds the rule for a request. Exact paths win over prefix
// rules (paths ending in "/"); among prefixes the longest wins. It returns
// nil when no rule applies and the global default should be used.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return unlimited
	}

	var best *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if c.Path == path {
			return c
		}
		if strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			if best == nil || len(c.Path) > len(best.Path) {
				best = c
			}
		}
	}
	return best
}

// key identifies the bucket a request falls into under this rule.
func (c *EndpointConfig) key(path, method string) string {
	if c.Path == "" {
		return method + " " + path
	}
	return c.Method + " " + c.Path
}
