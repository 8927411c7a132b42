package main

import (
	"strings"
	"testing"

	"github.com/go-test/deep"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		offset  int
		want    []byte
		wantErr bool
	}{
		{
			name: "listing",
			in: "; quick test\n" +
				"4000 A9 05\tLDA #$05\n" +
				"4002 85 10 (*) STA $10\n" +
				"\n" +
				"4004 00\n",
			want: []byte{0xA9, 0x05, 0x85, 0x10, 0x00},
		},
		{
			name:   "offset",
			in:     "0002 EA\n",
			offset: 2,
			want:   []byte{0x00, 0x00, 0xEA},
		},
		{
			name: "address only",
			in:   "4000\n4001 EA\n",
			want: []byte{0xEA},
		},
		{
			name:    "too many tokens",
			in:      "4000 A9 05 85 10\n",
			wantErr: true,
		},
		{
			name:    "not hex",
			in:      "4000 LDA\n",
			wantErr: true,
		},
		{
			name:    "bad offset",
			in:      "",
			offset:  -1,
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := assemble(strings.NewReader(test.in), test.offset)
			switch {
			case test.wantErr && err == nil:
				t.Fatalf("didn't get an error. Got % X", got)
			case test.wantErr:
				return
			case err != nil:
				t.Fatalf("assemble: %v", err)
			}
			if diff := deep.Equal(got, test.want); diff != nil {
				t.Errorf("output differs: %v", diff)
			}
		})
	}
}
