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

package preferences

import (
	"fmt"

	"github.com/jetsetilly/regsim/curated"
	"github.com/jetsetilly/regsim/paths"
	"github.com/jetsetilly/regsim/prefs"
)

// Default preference values.
const (
	DefaultLatency  = 4
	DefaultSentinel = true
	DefaultTimeout  = 1000
)

// Preferences defines and collates the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// number of ticks a compute run takes between the start flag being
	// observed and the done flag being set. the value is sampled when a run
	// begins
	Latency prefs.Int

	// if true reads of unmapped addresses return the sentinel value.
	// otherwise unmapped reads return zero
	Sentinel prefs.Bool

	// the number of ticks a front-end transaction phase may wait for a
	// handshake before giving up
	Timeout prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	atLeastOne := func(name string) func(prefs.Value) error {
		return func(v prefs.Value) error {
			if v.(int) < 1 {
				return fmt.Errorf("%s must be at least 1", name)
			}
			return nil
		}
	}
	p.Latency.SetHookPre(atLeastOne("latency"))
	p.Timeout.SetHookPre(atLeastOne("timeout"))

	p.SetDefaults()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	err = p.dsk.Add("hardware.latency", &p.Latency)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("hardware.sentinel", &p.Sentinel)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("hardware.timeout", &p.Timeout)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	err = p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, curated.Errorf("preferences: %v", err)
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Latency.Set(DefaultLatency)
	_ = p.Sentinel.Set(DefaultSentinel)
	_ = p.Timeout.Set(DefaultTimeout)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
