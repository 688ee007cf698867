// SPDX-License-Identifier: MIT

package internal

import "log"

var enableLog = false

// SetLog enables or disables logging.
func SetLog(enable bool) {
	enableLog = enable
}

// Log logs the given message if logging is enabled.
func Log(f string, args ...interface{}) {
	if enableLog {
		log.Printf(f, args...)
	}
}

// Chk exits the program if err is not nil.
func Chk(err error) {
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}
