// SPDX-License-Identifier: EPL-2.0

// Package export serializes tone events for embedding into firmware.
//
// The pipeline's output is a plain event slice; this package turns it into a
// C source fragment the playback sketch includes directly:
//
//	f, _ := os.Create("result.txt")
//	defer f.Close()
//	err := export.WriteCSource(f, events)
//
// The array layout is fixed by the playback code on the device: a length
// header and rows of {duration, bucket, level} hex triples. Field widths are
// checked here (duration 32 bits, bucket 4 bits, level 8 bits) so range
// bugs surface at export time rather than as garbage on the device.
package export
