package wikipedia

import "testing"

func TestValidateArticleURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantValid bool
		wantTitle string
	}{
		{"plain article", "https://en.wikipedia.org/wiki/96th_Academy_Awards", true, "96th_Academy_Awards"},
		{"percent encoded", "https://en.wikipedia.org/wiki/C%C3%A9sar_Awards", true, "César_Awards"},
		{"bare domain", "https://wikipedia.org/wiki/Some_Page", true, "Some_Page"},
		{"other language", "https://fr.wikipedia.org/wiki/Oscars", true, "Oscars"},
		{"wrong host", "https://en.wikipedia.com/wiki/96th_Academy_Awards", false, ""},
		{"lookalike host", "https://notwikipedia.org/wiki/Page", false, ""},
		{"missing marker", "https://en.wikipedia.org/w/index.php?title=Foo", false, ""},
		{"empty title", "https://en.wikipedia.org/wiki/", false, ""},
		{"not a url", "://nope", false, ""},
		{"empty string", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateArticleURL(tt.url)
			if result.IsValid != tt.wantValid {
				t.Errorf("ValidateArticleURL(%q).IsValid = %v, expected %v", tt.url, result.IsValid, tt.wantValid)
			}
			if result.PageTitle != tt.wantTitle {
				t.Errorf("ValidateArticleURL(%q).PageTitle = %q, expected %q", tt.url, result.PageTitle, tt.wantTitle)
			}
		})
	}
}
