// This file is part of Regsim.
//
// Regsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Regsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Regsim.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a formatting
// pattern and placeholder values, exactly like fmt.Errorf(). The pattern is
// remembered and is what distinguishes one curated error from another:
//
//	e := curated.Errorf("frontend: timeout after %d ticks", 100)
//
//	if curated.Is(e, "frontend: timeout after %d ticks") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain:
//
//	f := curated.Errorf("host: %v", e)
//
//	if curated.Has(f, "frontend: timeout after %d ticks") {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of curated errors as being 'expected' and
// uncurated errors as being 'unexpected'.
//
// The Error() implementation normalises the error chain such that adjacent
// duplicate parts are removed. For the purposes of this package a chain is
// composed of parts separated by the sub-string ': '. So the following:
//
//	curated.Errorf("host: %v", curated.Errorf("host: poll timeout"))
//
// prints as "host: poll timeout" and not "host: host: poll timeout".
//
// Sentinel patterns should be stored as exported const strings, suitably
// named and commented, next to the code that returns them.
package curated
