package images

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"
)

func TestList_DocumentOrderAndResolution(t *testing.T) {
	html := `<html><body>
	  <img src="/a.png">
	  <p>text</p>
	  <img src="https://cdn.example.com/b.jpg">
	  <img src="c.gif">
	</body></html>`

	base, _ := url.Parse("https://example.com/articles/page.html")
	got, err := List([]byte(html), base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"https://example.com/a.png",
		"https://cdn.example.com/b.jpg",
		"https://example.com/articles/c.gif",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("list mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestList_SkipsEmptySrc(t *testing.T) {
	html := `<html><body><img><img src=""><img src="x.png"></body></html>`
	base, _ := url.Parse("https://example.com/")

	got, err := List([]byte(html), base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "https://example.com/x.png" {
		t.Fatalf("expected single resolved src, got %v", got)
	}
}

func TestList_NoImages(t *testing.T) {
	got, err := List([]byte("<html><body><p>plain</p></body></html>"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no images, got %v", got)
	}
}

type fakeGetter struct {
	responses map[string][]byte
}

func (f *fakeGetter) Get(_ context.Context, url string) ([]byte, string, error) {
	data, ok := f.responses[url]
	if !ok {
		return nil, "", fmt.Errorf("unreachable: %s", url)
	}
	return data, "image/png", nil
}

func TestCollect_PartialFailureKeepsOrder(t *testing.T) {
	getter := &fakeGetter{responses: map[string][]byte{
		"https://example.com/a.png": []byte("aaa"),
		"https://example.com/c.png": []byte("ccc"),
	}}
	srcs := []string{
		"https://example.com/a.png",
		"https://example.com/broken.png",
		"https://example.com/c.png",
	}

	items := Collect(context.Background(), getter, srcs)
	if len(items) != 3 {
		t.Fatalf("expected 3 items (2 images + 1 failure), got %d", len(items))
	}
	if items[0].Err != nil || string(items[0].Data) != "aaa" {
		t.Fatalf("item 0 should be the first image: %+v", items[0])
	}
	if items[1].Err == nil {
		t.Fatalf("item 1 should carry the download failure: %+v", items[1])
	}
	if items[2].Err != nil || string(items[2].Data) != "ccc" {
		t.Fatalf("item 2 should be the last image: %+v", items[2])
	}
}

func TestCollect_AgainstHTTPServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("pngbytes"))
	}))
	defer srv.Close()

	getter := &httpGetter{}
	items := Collect(context.Background(), getter, []string{srv.URL + "/ok.png", srv.URL + "/missing.png"})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Err != nil {
		t.Fatalf("expected first image to succeed: %v", items[0].Err)
	}
	if items[1].Err == nil {
		t.Fatalf("expected second image to fail")
	}
}

// httpGetter is a minimal Getter for the httptest case, mirroring what
// fetch.Client does without importing it across the package boundary.
type httpGetter struct{}

func (httpGetter) Get(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("status %d", resp.StatusCode)
	}
	buf := make([]byte, 64)
	n, _ := resp.Body.Read(buf)
	return buf[:n], resp.Header.Get("Content-Type"), nil
}
