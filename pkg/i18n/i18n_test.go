package i18n

import (
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	cases := []struct {
		name   string
		url    string
		accept string
		want   language.Tag
	}{
		{name: "default", url: "/", want: language.Swedish},
		{name: "accept english", url: "/", accept: "en-US,en;q=0.9", want: language.English},
		{name: "accept swedish", url: "/", accept: "sv-SE", want: language.Swedish},
		{name: "unsupported falls back", url: "/", accept: "ja", want: language.Swedish},
		{name: "query wins", url: "/?lang=en", accept: "sv", want: language.English},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.url, nil)
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			if got := ResolveTag(req); got != tc.want {
				t.Fatalf("ResolveTag = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPrinterCatalogs(t *testing.T) {
	if got := Printer(language.Swedish).Sprintf(KeyNameRequired); got != "Namn är obligatoriskt" {
		t.Fatalf("sv name required = %q", got)
	}
	if got := Printer(language.English).Sprintf(KeyProgress, 2, 5); got != "Step 2 of 5" {
		t.Fatalf("en progress = %q", got)
	}
	if got := DefaultPrinter().Sprintf(KeyProgress, 1, 3); got != "Steg 1 av 3" {
		t.Fatalf("default progress = %q", got)
	}
}
