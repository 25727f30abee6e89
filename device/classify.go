// Package device classifies visitors by user agent and drives the download
// page's auto-redirect countdown. Classification is a best-effort hint for a
// convenience feature, never a security boundary.
package device

import "regexp"

type Class string

const (
	IOS     Class = "ios"
	Android Class = "android"
	Desktop Class = "desktop"
)

var (
	iosPattern     = regexp.MustCompile(`iPad|iPhone|iPod`)
	androidPattern = regexp.MustCompile(`Android`)
)

// Classify matches case-sensitively; the first matching rule wins.
func Classify(userAgent string) Class {
	switch {
	case iosPattern.MatchString(userAgent):
		return IOS
	case androidPattern.MatchString(userAgent):
		return Android
	default:
		return Desktop
	}
}

// IsMobile reports whether the class gets an automatic store redirect.
func (c Class) IsMobile() bool {
	return c == IOS || c == Android
}

// StoreURLs holds the platform store links.
type StoreURLs struct {
	IOS     string
	Android string
}

// For returns the store link of a class, or "" for desktop.
func (u StoreURLs) For(c Class) string {
	switch c {
	case IOS:
		return u.IOS
	case Android:
		return u.Android
	}
	return ""
}
