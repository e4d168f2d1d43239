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

// Package paths contains functions to prepare paths to regsim resources.
//
// The ResourcePath() function prepends the supplied sub-path and filename
// with the base resource path. For development builds the base path is the
// .regsim directory in the current working directory. For builds with the
// "release" build tag the base path is in the user's configuration
// directory. On a modern Linux system:
//
//	/home/user/.config/regsim/
//
// Directories are not created by ResourcePath(). It is the responsibility of
// the code writing the file to create any missing directories.
package paths
