// SPDX-License-Identifier: EPL-2.0

// Package preview renders converted tone events back into listenable audio.
//
// Converting a song and flashing it onto a device is a slow feedback loop.
// Render produces the PCM a device with the given profile would play: each
// event becomes a pulse wave at its bucket frequency with the duty level as
// pulse width. WriteWAV saves the result as a mono WAV file:
//
//	f, _ := os.Create("preview.wav")
//	defer f.Close()
//	err := preview.WriteWAV(f, events, hardware.ATmega328P(), 44100)
//
// The rendering is crude on purpose: it approximates the device's output,
// not the source recording.
package preview
