package pipeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/frame-vision-mcp/internal/imaging"
)

func TestDefaultParameters(t *testing.T) {
	p := DefaultParameters()
	if err := p.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
	if p.OutputChannel != OutputAllContours {
		t.Errorf("OutputChannel: got %v, want %v", p.OutputChannel, OutputAllContours)
	}
	if p.BinaryLow != 1 || p.BinaryHigh != 255 {
		t.Errorf("binary bounds: got [%d,%d], want [1,255]", p.BinaryLow, p.BinaryHigh)
	}
}

func TestParameters_HSVRange(t *testing.T) {
	p := Parameters{HueLow: 1, HueHigh: 2, SatLow: 3, SatHigh: 4, ValLow: 5, ValHigh: 6}
	want := imaging.HSVRange{HueLow: 1, HueHigh: 2, SatLow: 3, SatHigh: 4, ValLow: 5, ValHigh: 6}
	if diff := cmp.Diff(want, p.HSVRange()); diff != "" {
		t.Errorf("HSVRange (-want +got):\n%s", diff)
	}
}

func TestParameters_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Parameters)
		wantErr bool
	}{
		{"defaults", func(p *Parameters) {}, false},
		{"inverted hue range", func(p *Parameters) { p.HueLow, p.HueHigh = 170, 10 }, false},
		{"unknown output channel", func(p *Parameters) { p.OutputChannel = 42 }, false},
		{"zero and max", func(p *Parameters) { p.SatLow, p.SatHigh = 0, 255 }, false},
		{"negative bound", func(p *Parameters) { p.ValLow = -1 }, true},
		{"bound above 255", func(p *Parameters) { p.BinaryHigh = 256 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.modify(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOutputChannel_Resolve(t *testing.T) {
	tests := []struct {
		in   OutputChannel
		want OutputChannel
	}{
		{OutputRaw, OutputRaw},
		{OutputGray, OutputGray},
		{OutputHSV, OutputHSV},
		{OutputAllContours, OutputAllContours},
		{OutputMaxContour, OutputMaxContour},
		{OutputBoundingRect, OutputBoundingRect},
		{0, OutputAllContours},
		{7, OutputAllContours},
		{-3, OutputAllContours},
	}

	for _, tt := range tests {
		if got := tt.in.Resolve(); got != tt.want {
			t.Errorf("OutputChannel(%d).Resolve() = %v, want %v", int(tt.in), got, tt.want)
		}
	}
}

func TestOutputChannel_Names(t *testing.T) {
	for c := OutputRaw; c <= OutputBoundingRect; c++ {
		got, err := ParseOutputChannel(c.String())
		if err != nil {
			t.Errorf("ParseOutputChannel(%q) failed: %v", c.String(), err)
			continue
		}
		if got != c {
			t.Errorf("ParseOutputChannel(%q) = %v, want %v", c.String(), got, c)
		}
	}

	if _, err := ParseOutputChannel("thermal"); err == nil {
		t.Error("expected error for unknown name")
	}
	if got := OutputChannel(9).String(); got != "OutputChannel(9)" {
		t.Errorf("String for unknown channel: got %q", got)
	}
}
