// This file is part of GLKit.
//
// GLKit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GLKit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GLKit.  If not, see <https://www.gnu.org/licenses/>.

package shader

import (
	"fmt"
	"io"
	"os"
	"runtime"
)

// indirections for testing of CheckError.
var checkOutput io.Writer = os.Stderr
var exit = os.Exit

// errorKind gives the diagnostic name for a recognised error code. ok is
// false for NoError and for any code outside the recognised set.
func errorKind(code ErrorCode) (string, bool) {
	switch code {
	case InvalidEnum:
		return "Invalid Enum", true
	case InvalidValue:
		return "Invalid Value", true
	case InvalidOperation:
		return "Invalid Operation", true
	case OutOfMemory:
		return "Out of Memory", true
	}
	return "", false
}

// CheckError queries the driver's last error code. If the code is one of the
// recognised error values a one-line diagnostic naming the error kind and
// the calling source location is printed to the error stream and the process
// is terminated immediately.
//
// Errors of this kind indicate API misuse rather than recoverable runtime
// conditions and rendering cannot proceed safely past them.
func CheckError(drv Driver) {
	kind, ok := errorKind(drv.GetError())
	if !ok {
		return
	}

	_, file, line, _ := runtime.Caller(1)
	fmt.Fprintf(checkOutput, "%s:%d: %s\n", file, line, kind)
	exit(1)
}
