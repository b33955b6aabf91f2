// Package mpegaudio reads the duration, bitrate, sample rate and channel
// layout of MPEG audio streams (MPEG-1/2/2.5, Layers I to III) without
// decoding any audio.
//
// # Quick Start
//
// Reading the properties of an MP3 file:
//
//	header, err := mpegaudio.ReadFile("song.mp3", mpegaudio.PreferVBRHeaders)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s, %s\n", header.TotalDuration, header.Source)
//
// Any io.Reader works as a source. The reader is consumed sequentially and
// never seeked; wrap unbuffered sources in a bufio.Reader:
//
//	header, err := mpegaudio.ReadFrom(bufio.NewReader(conn), mpegaudio.IgnoreVBRHeaders)
//
// # Parse Modes
//
// Most VBR encoders write a Xing/Info or VBRI summary into the first frame.
// With PreferVBRHeaders the summary is returned as soon as it is found,
// which only reads the first few kilobytes of a file. With
// IgnoreVBRHeaders every frame is scanned and aggregated, which reflects
// the frames actually present (useful for truncated or edited files).
//
// # Tags
//
// ID3v2, APEv2 and ID3v1 tags in front of the audio are skipped. The first
// tag after the audio ends the scan. Tag contents are not parsed.
//
// # Error Handling
//
// Every error is a *PositionalError carrying the byte offset and playback
// time at which it was detected:
//
//	header, err := mpegaudio.ReadFile(path, mpegaudio.PreferVBRHeaders)
//	var perr *mpegaudio.PositionalError
//	if errors.As(err, &perr) {
//		log.Printf("failed at byte %d", perr.Position.ByteOffset)
//	}
//
// A stream that ends inside a frame after audio has been read is not an
// error: the incomplete frame is dropped and the summary of the complete
// frames is returned.
//
// # Concurrency
//
// A single parse is sequential. Independent parses share no state and can
// run concurrently; ReadFiles parses many files in parallel.
package mpegaudio
