// Package images lists the image references of a page and downloads them
// for the gallery view.
package images

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// Getter is the narrow fetching contract the gallery needs. *fetch.Client
// satisfies it.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, string, error)
}

// Item is one gallery slot: either downloaded image bytes or the error
// that prevented the download. Order follows document order.
type Item struct {
	URL         string
	Data        []byte
	ContentType string
	Err         error
}

// List returns the src of every <img> in document order. Relative
// references are resolved against base so the gallery can fetch them;
// empty src attributes are dropped.
func List(input []byte, base *url.URL) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(input)))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var srcs []string
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		src = strings.TrimSpace(src)
		if !ok || src == "" {
			return
		}
		if base != nil {
			if ref, err := url.Parse(src); err == nil {
				src = base.ResolveReference(ref).String()
			}
		}
		srcs = append(srcs, src)
	})
	return srcs, nil
}

// Collect downloads every listed image sequentially. Each download has its
// own failure boundary: a broken link records the error on its Item and
// the loop moves on, so one bad image never aborts the gallery.
func Collect(ctx context.Context, getter Getter, srcs []string) []Item {
	items := make([]Item, 0, len(srcs))
	for _, src := range srcs {
		data, ct, err := getter.Get(ctx, src)
		if err != nil {
			log.Warn().Str("image", src).Err(err).Msg("image download failed")
			items = append(items, Item{URL: src, Err: err})
			continue
		}
		items = append(items, Item{URL: src, Data: data, ContentType: ct})
	}
	return items
}
