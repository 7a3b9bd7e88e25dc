package http

import (
	"io"
	stdhttp "net/http"
	"strings"
	"testing"

	"github.com/peerdrop/peerdrop/internal/core"
)

func TestUploadWithoutCode(t *testing.T) {
	ts, _ := startTestServer(t)

	body, contentType := multipartUpload(t, "", "a.txt", []byte("x"))
	resp, err := ts.Client().Post(ts.URL+"/upload", contentType, body)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUploadUnknownRoom(t *testing.T) {
	ts, _ := startTestServer(t)

	body, contentType := multipartUpload(t, "ZZZZZ", "a.txt", []byte("x"))
	resp, err := ts.Client().Post(ts.URL+"/upload", contentType, body)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestUploadBeforeReceiverJoined(t *testing.T) {
	ts, hub := startTestServer(t)

	code, err := hub.RegisterSender(core.NewClient("s"))
	if err != nil {
		t.Fatalf("RegisterSender: %v", err)
	}

	body, contentType := multipartUpload(t, code, "a.txt", []byte("x"))
	resp, err := ts.Client().Post(ts.URL+"/upload", contentType, body)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	respBody, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
	if !strings.Contains(string(respBody), "not connected") {
		t.Fatalf("body = %q", respBody)
	}
}

func TestUploadEmptyFile(t *testing.T) {
	ts, hub := startTestServer(t)

	sender := core.NewClient("s")
	code, _ := hub.RegisterSender(sender)
	if err := hub.RegisterReceiver(core.NewClient("r"), code); err != nil {
		t.Fatalf("RegisterReceiver: %v", err)
	}

	body, contentType := multipartUpload(t, code, "empty.txt", nil)
	resp, err := ts.Client().Post(ts.URL+"/upload", contentType, body)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestDownloadUnknownCode(t *testing.T) {
	ts, _ := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/download?code=ZZZZZ")
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestDownloadWithoutCode(t *testing.T) {
	ts, _ := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/download")
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUploadDownloadRoundTrip(t *testing.T) {
	ts, hub := startTestServer(t)

	sender := core.NewClient("s")
	receiver := core.NewClient("r")
	code, _ := hub.RegisterSender(sender)
	if err := hub.RegisterReceiver(receiver, code); err != nil {
		t.Fatalf("RegisterReceiver: %v", err)
	}

	payload := []byte{0x00, 0x10, 0xFF, 0x7F, 0x80}
	body, contentType := multipartUpload(t, code, "blob.bin", payload)
	resp, err := ts.Client().Post(ts.URL+"/upload", contentType, body)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("upload status = %d", resp.StatusCode)
	}

	resp, err = ts.Client().Get(ts.URL + "/download?code=" + code)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	got, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("download status = %d", resp.StatusCode)
	}
	if string(got) != string(payload) {
		t.Fatalf("payload mismatch: %v", got)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/octet-stream" {
		t.Fatalf("content type = %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "blob.bin") {
		t.Fatalf("content disposition = %q", cd)
	}
}
