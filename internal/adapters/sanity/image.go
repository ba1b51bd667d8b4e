package sanity

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"villa_site/internal/domain"
)

// ImageBuilder turns asset references into CDN URLs with transforms.
type ImageBuilder struct {
	ProjectID string
	Dataset   string
	// Host defaults to https://cdn.sanity.io.
	Host string
}

func NewImageBuilder(projectID, dataset string) *ImageBuilder {
	return &ImageBuilder{ProjectID: projectID, Dataset: dataset}
}

// ImageURL returns "" for an empty or malformed reference.
func (b *ImageBuilder) ImageURL(ref domain.ImageRef, o domain.ImageOpts) string {
	file, ok := assetFile(ref.Asset.Ref)
	if !ok {
		return ""
	}
	host := b.Host
	if host == "" {
		host = "https://cdn.sanity.io"
	}
	u := fmt.Sprintf("%s/images/%s/%s/%s", strings.TrimRight(host, "/"), b.ProjectID, b.Dataset, file)

	q := url.Values{}
	if o.Width > 0 {
		q.Set("w", strconv.Itoa(o.Width))
	}
	if o.Height > 0 {
		q.Set("h", strconv.Itoa(o.Height))
	}
	if o.Fit != "" {
		q.Set("fit", o.Fit)
	}
	if len(q) == 0 {
		return u
	}
	return u + "?" + q.Encode()
}

// assetFile maps "image-<id>-<w>x<h>-<ext>" to "<id>-<w>x<h>.<ext>".
func assetFile(ref string) (string, bool) {
	if !strings.HasPrefix(ref, "image-") {
		return "", false
	}
	parts := strings.Split(strings.TrimPrefix(ref, "image-"), "-")
	if len(parts) != 3 || parts[0] == "" || !strings.Contains(parts[1], "x") || parts[2] == "" {
		return "", false
	}
	return parts[0] + "-" + parts[1] + "." + parts[2], true
}
