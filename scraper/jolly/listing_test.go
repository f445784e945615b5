package jolly

import "testing"

const listFixture = `<html><body>
<div class="list" data-url="/antalya-hotel-a"><span class="name">Hotel A</span></div>
<div class="list" data-url="/antalya-hotel-b">
	<div class="alert alert-danger alert-error">Seçilen tarihlerde uygun oda bulunamadı</div>
</div>
<div class="list"><span class="name">No URL</span></div>
<div class="list" data-url="/antalya-hotel-c"><span class="name">Hotel C</span></div>
</body></html>`

func TestListingURLsSkipsUnavailable(t *testing.T) {
	urls, err := listingURLs(listFixture)
	if err != nil {
		t.Fatalf("listingURLs: %v", err)
	}

	want := []string{"/antalya-hotel-a", "/antalya-hotel-c"}
	if len(urls) != len(want) {
		t.Fatalf("urls: got %v, want %v", urls, want)
	}
	for i := range want {
		if urls[i] != want[i] {
			t.Errorf("urls[%d]: got %q, want %q", i, urls[i], want[i])
		}
	}
}

func TestListingURLsEmptyPage(t *testing.T) {
	urls, err := listingURLs(`<html><body><p>Sonuç bulunamadı</p></body></html>`)
	if err != nil {
		t.Fatalf("listingURLs: %v", err)
	}
	if len(urls) != 0 {
		t.Errorf("expected no urls, got %v", urls)
	}
}
