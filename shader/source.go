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
)

// ReadSource loads the named shader source file into a nul-terminated
// buffer. The file is read as raw bytes with no preprocessing.
//
// A file that cannot be read or that is empty yields a nil buffer with a
// diagnostic printed to output. The two cases are only distinguished by the
// printed message.
func ReadSource(output io.Writer, filename string) []byte {
	source, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(output, "Failed to open '%s'.\n", filename)
		return nil
	}
	if len(source) == 0 {
		fmt.Fprintf(output, "Empty shader source file '%s'.\n", filename)
		return nil
	}
	return append(source, 0)
}

// nulTerminated returns source with a terminating nul byte, appending one
// only when it is missing.
func nulTerminated(source []byte) []byte {
	if len(source) > 0 && source[len(source)-1] == 0 {
		return source
	}
	return append(source, 0)
}
