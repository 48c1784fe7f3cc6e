package content

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/jobscout-app/jobscout-api/internal/apperr"
)

// FetchURL downloads a remote image or document and normalizes it into a
// Part. A non-2xx response is a RemoteContentUnavailable error carrying the
// status; the body is never read in that case.
//
// MIME resolution order: response Content-Type, then fallbackMIME.
func FetchURL(ctx context.Context, client *http.Client, rawURL, fallbackMIME string) (Part, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Part{}, apperr.New(apperr.KindInvalidRequest, fmt.Sprintf("invalid content URL %q", rawURL), err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return Part{}, apperr.New(apperr.KindRemoteContent, fmt.Sprintf("fetching %q failed", rawURL), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Part{}, apperr.New(apperr.KindRemoteContent,
			fmt.Sprintf("fetching %q returned status %d", rawURL, resp.StatusCode), nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Part{}, apperr.New(apperr.KindRemoteContent, fmt.Sprintf("reading body of %q", rawURL), err)
	}

	return Part{
		Data:     data,
		MIMEType: resolveMIME(resp.Header.Get("Content-Type"), fallbackMIME),
	}, nil
}

// FromUpload normalizes an in-memory multipart upload into a Part. No network
// call is made. MIME resolution order: the upload's declared Content-Type,
// then fallbackMIME.
func FromUpload(fh *multipart.FileHeader, fallbackMIME string) (Part, error) {
	f, err := fh.Open()
	if err != nil {
		return Part{}, apperr.New(apperr.KindInvalidRequest, fmt.Sprintf("opening upload %q", fh.Filename), err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Part{}, apperr.New(apperr.KindInvalidRequest, fmt.Sprintf("reading upload %q", fh.Filename), err)
	}

	return Part{
		Data:     data,
		MIMEType: resolveMIME(fh.Header.Get("Content-Type"), fallbackMIME),
	}, nil
}

// resolveMIME strips any media-type parameters ("image/png; charset=...")
// and falls back when the declared type is empty.
func resolveMIME(declared, fallback string) string {
	declared = strings.TrimSpace(strings.Split(declared, ";")[0])
	if declared == "" {
		return fallback
	}
	return declared
}
