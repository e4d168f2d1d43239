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

package logger

// Permission decides whether a log request is acted upon. The
// environment.Environment type is the most common implementation.
type Permission interface {
	AllowLogging() bool
}

// PermissionFunc allows an ordinary function to be used as a Permission.
type PermissionFunc func() bool

// AllowLogging implements the Permission interface.
func (f PermissionFunc) AllowLogging() bool {
	return f()
}

type constPermission bool

func (p constPermission) AllowLogging() bool {
	return bool(p)
}

// Allow and Deny are permissions that always or never allow logging.
var (
	Allow Permission = constPermission(true)
	Deny  Permission = constPermission(false)
)
