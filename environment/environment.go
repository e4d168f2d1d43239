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

// Package environment provides the context for a peripheral. More than one
// peripheral can exist at once, for example during a soak test, and the
// environment is how each peripheral knows whether it is the main instance.
package environment

import (
	"github.com/jetsetilly/regsim/hardware/preferences"
)

// Label is used to name the environment.
type Label string

// MainPeripheral is the label for the main peripheral in the system.
const MainPeripheral Label = ""

// Environment is used to provide context for a peripheral.
type Environment struct {
	Label Label

	// the hardware preferences. can be shared between environments
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the Environment
// type.
//
// The prefs argument can be nil, in which case a new Preferences instance
// will be created. Providing a non-nil value allows the preferences of more
// than one peripheral to be synchronised.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	return &Environment{
		Label: label,
		Prefs: prefs,
	}, nil
}

// Normalise ensures the environment is in a known default state.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
}

// IsMainPeripheral returns true if the environment is for the main
// peripheral in the system.
func (env *Environment) IsMainPeripheral() bool {
	return env.Label == MainPeripheral
}

// AllowLogging implements the logger.Permission interface. Only the main
// peripheral is allowed to create log entries.
func (env *Environment) AllowLogging() bool {
	return env.IsMainPeripheral()
}
