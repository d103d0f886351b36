// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/ik5/pwmtones"
	"github.com/ik5/pwmtones/export"
	"github.com/ik5/pwmtones/formats/mp3"
	"github.com/ik5/pwmtones/hardware"
)

// ExampleDecoder_Decode shows how to decode an MP3 file.
func ExampleDecoder_Decode() {
	// Create MP3 decoder
	decoder := mp3.Decoder{}

	// Open MP3 file
	f, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	// Decode MP3 to audio source
	src, err := decoder.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded MP3: %d Hz, %d channels\n",
		src.SampleRate(), src.Channels())
}

// ExampleDecoder_Decode_toTones demonstrates converting an MP3 file into a
// tone sequence for the ATmega328P.
func ExampleDecoder_Decode_toTones() {
	f, err := os.Open("song.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	decoder := mp3.Decoder{}
	src, err := decoder.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	// Run the conversion pipeline
	events, err := pwmtones.Convert(src, hardware.ATmega328P())
	if err != nil {
		log.Fatal(err)
	}

	// Emit the firmware source array
	out, err := os.Create("result.txt")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	if err := export.WriteCSource(out, events); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Converted to %d tone events\n", len(events))
}

// ExampleDecoder_Decode_errorHandling shows error handling for invalid MP3 files.
func ExampleDecoder_Decode_errorHandling() {
	decoder := mp3.Decoder{}

	// Try to decode invalid MP3 data
	invalidData := bytes.NewReader([]byte("not an mp3 file"))
	_, err := decoder.Decode(invalidData)
	if err != nil {
		fmt.Println("not a valid MP3 file")
		return
	}

	fmt.Println("MP3 decoded successfully")
	// Output: not a valid MP3 file
}
