// SPDX-License-Identifier: EPL-2.0

// Package hardware describes target devices for tone playback.
//
// A Profile captures everything the conversion pipeline needs to know about
// a device: which PWM frequencies its timer can generate, the highest usable
// duty-cycle value, and the rate at which it steps through tone windows.
//
// # Using a Profile
//
// Profiles are plain values, constructed once and passed into the pipeline:
//
//	profile := hardware.ATmega328P()
//	if err := profile.Validate(); err != nil {
//	    // Handle invalid configuration
//	}
//
// Supporting a new device means writing a new constructor; nothing in the
// pipeline changes.
//
// # Frequency Ordering
//
// Profile.Frequencies is ordered from highest to lowest. The frequency
// quantizer assigns bucket 0 to the highest frequency band, so the bucket
// index can be used directly to index Frequencies during playback.
//
// # Timing
//
// Playback duration is measured in hardware timer ticks of 100 ns.
// BaseDuration returns the tick count of one analysis window; every tone
// event duration is a whole multiple of it.
package hardware
