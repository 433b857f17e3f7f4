package strsub

import (
	"log"
	"strings"
)

// DebugEnabled turns on the output of Debugf.
var DebugEnabled bool

// Debugf logs a STRSUB DEBUG line through the standard logger when
// DebugEnabled is set. s is used as a format only if it contains a %.
func Debugf(s string, v ...any) {
	if !DebugEnabled {
		return
	}
	if strings.Contains(s, "%") {
		log.Printf("STRSUB DEBUG: "+s, v...)
	} else {
		log.Print(append([]any{"STRSUB DEBUG: " + s}, v...)...)
	}
}
