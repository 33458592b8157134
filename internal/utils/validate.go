package utils

import (
	"net/url"
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w{2,4}\b`)

// IsEmail reports whether s looks like local@domain.tld after trimming.
func IsEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// IsPhone requires exactly 10 characters after trimming.
func IsPhone(s string) bool {
	return len(strings.TrimSpace(s)) == 10
}

// IsPassword requires a trimmed length between 8 and 16 inclusive.
func IsPassword(s string) bool {
	n := len(strings.TrimSpace(s))
	return n >= 8 && n <= 16
}

// IsAccountStatus accepts the two employer account types.
func IsAccountStatus(s string) bool {
	return s == "company" || s == "individual"
}

// IsURL requires an absolute http(s) URL with a host.
func IsURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
