package app

import (
	"errors"
	"fmt"
)

// ErrNoSelection is returned when the user triggers an analysis without
// choosing a visualization. It is guidance, not a failure of the cycle.
var ErrNoSelection = errors.New("choose a visualization before fetching")

// ErrNoURL is returned when the URL field is empty.
var ErrNoURL = errors.New("enter a URL to analyze")

// NetworkError wraps any failure to retrieve the page or an image:
// unreachable host, timeout, or a non-success status.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError wraps a markup parsing failure. There is no distinct recovery
// from it, so the boundary treats it like a network failure.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UserMessage converts any cycle error into the single human-readable
// message shown in place of output. Nothing here is fatal: every failure
// ends with "try again".
func UserMessage(err error) string {
	var ne *NetworkError
	var pe *ParseError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoSelection):
		return "Please choose a visualization, then fetch again."
	case errors.Is(err, ErrNoURL):
		return "Please enter a URL, then fetch again."
	case errors.As(err, &ne):
		return fmt.Sprintf("Could not fetch %s: %v. Check the URL and try again.", ne.URL, ne.Err)
	case errors.As(err, &pe):
		return fmt.Sprintf("Could not read the page at %s: %v. Try another URL.", pe.URL, pe.Err)
	default:
		return fmt.Sprintf("Something went wrong: %v. Try again.", err)
	}
}
