package mpegaudio

import "testing"

func TestIsMPEGAudioPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"SONG.MP3", true},
		{"/music/album/01 - intro.Mp3", true},
		{"broadcast.mp2", true},
		{"old.mp1", true},
		{"stream.mpa", true},
		{"song.flac", false},
		{"book.m4b", false},
		{"mp3", false},
		{"archive.mp3.zip", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsMPEGAudioPath(tt.path); got != tt.want {
				t.Errorf("IsMPEGAudioPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ParseMode
		wantErr bool
	}{
		{"prefer-vbr", PreferVBRHeaders, false},
		{"", PreferVBRHeaders, false},
		{"ignore-vbr", IgnoreVBRHeaders, false},
		{"frames", IgnoreVBRHeaders, false},
		{"fast", PreferVBRHeaders, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseParseMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{VersionMPEG25.String(), "MPEG-2.5"},
		{LayerII.String(), "Layer II"},
		{ModeDualChannel.String(), "Dual Channel"},
		{SourceVBRIHeader.String(), "VBRI header"},
		{IgnoreVBRHeaders.String(), "ignore-vbr"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
