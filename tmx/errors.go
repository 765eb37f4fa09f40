package tmx

import "fmt"

// ParseError reports markup that is not a usable TMX document.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tmx: parse error: %s: %v", e.Msg, e.Err)
	}
	return "tmx: parse error: " + e.Msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
