package statsview

import (
	"bytes"
	"strings"
	"testing"
)

func TestURL(t *testing.T) {
	for _, test := range []struct {
		addr    string
		want    string
		wantErr bool
	}{
		{DefaultAddress, "http://localhost:12600/debug/statsview", false},
		{":8080", "http://:8080/debug/statsview", false},
		{"localhost", "", true},
		{"", "", true},
	} {
		got, err := URL(test.addr)
		if (err != nil) != test.wantErr {
			t.Fatalf("URL(%q): err=%v, wantErr=%t", test.addr, err, test.wantErr)
		}
		if got != test.want {
			t.Fatalf("URL(%q): got=%q, want=%q", test.addr, got, test.want)
		}
	}
}

func TestLaunchRejectsBadAddress(t *testing.T) {
	out := &bytes.Buffer{}
	if err := Launch(out, "no-port"); err == nil {
		t.Fatalf("Launch(no-port): want error")
	}
	if out.Len() != 0 {
		t.Fatalf("output on error: %q", out)
	}
}

func TestLaunch(t *testing.T) {
	out := &bytes.Buffer{}
	if err := Launch(out, "127.0.0.1:0"); err != nil {
		t.Fatal(err)
	}
	if want := "http://127.0.0.1:0/debug/statsview"; !strings.Contains(out.String(), want) {
		t.Fatalf("output does not contain %q: %q", want, out)
	}
}
