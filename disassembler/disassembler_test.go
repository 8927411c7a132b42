package main

import (
	"testing"

	"github.com/go-test/deep"
)

func TestListing(t *testing.T) {
	tests := []struct {
		name   string
		b      []byte
		pc     uint16
		offset uint16
		basic  bool
		want   []string
	}{
		{
			name:   "program",
			b:      []byte{0xA9, 0x05, 0x85, 0x10, 0x00},
			pc:     0x4000,
			offset: 0x4000,
			want: []string{
				"4000 A9 05      LDA #05       ",
				"4002 85 10      STA 10        ",
				"4004 00 00      BRK #00       ",
			},
		},
		{
			name:   "truncated at top of memory",
			b:      []byte{0xEA, 0xEA, 0xEA, 0xEA},
			pc:     0xFFFE,
			offset: 0xFFFE,
			want: []string{
				"FFFE EA         NOP           ",
				"FFFF EA         NOP           ",
			},
		},
		{
			name: "basic stub",
			// 10 SYS2061 then LDA #01, RTS at 0x080D
			b: []byte{
				0x0B, 0x08, 0x0A, 0x00, 0x9E, '2', '0', '6', '1', 0x00,
				0x00, 0x00,
				0xA9, 0x01, 0x60,
			},
			pc:     0x0801,
			offset: 0x0801,
			basic:  true,
			want: []string{
				"0801 10 SYS2061",
				"080D A9 01      LDA #01       ",
				"080F 60         RTS           ",
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := listing(test.b, test.pc, test.offset, test.basic)
			if err != nil {
				t.Fatalf("listing: %v", err)
			}
			if diff := deep.Equal(got, test.want); diff != nil {
				t.Errorf("listing differs: %v", diff)
			}
		})
	}
}
