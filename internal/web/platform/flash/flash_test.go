package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/requestmeta"
)

func TestWriteReadAndClearRoundTrip(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodGet, "http://shop.test", nil), NoticeSuccess("Added to cart"))

	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "http://shop.test", nil)
	req.AddCookie(cookie)
	clearRR := httptest.NewRecorder()

	notice, ok := ReadAndClear(clearRR, req)
	if !ok {
		t.Fatalf("expected notice")
	}
	if notice.Kind != KindSuccess || notice.Message != "Added to cart" {
		t.Fatalf("notice = %+v, want success/Added to cart", notice)
	}

	cleared, err := http.ParseSetCookie(clearRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cleared.MaxAge >= 0 {
		t.Fatalf("clear max-age = %d, want < 0", cleared.MaxAge)
	}
}

func TestWriteDropsEmptyAndUnknownNotices(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodGet, "http://shop.test", nil), Notice{Kind: KindSuccess})
	if rr.Header().Get("Set-Cookie") != "" {
		t.Fatalf("expected no cookie for empty message")
	}

	rr = httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodGet, "http://shop.test", nil), Notice{Kind: "sparkly", Message: "hi"})
	if rr.Header().Get("Set-Cookie") != "" {
		t.Fatalf("expected no cookie for unknown kind")
	}
}

func TestClearHonorsForwardedProtoPolicy(t *testing.T) {
	t.Parallel()

	policy := requestmeta.SchemePolicy{TrustForwardedProto: true}

	req := httptest.NewRequest(http.MethodGet, "http://shop.test", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "ignored"})

	rr := httptest.NewRecorder()
	WriteWithPolicy(rr, req, NoticeSuccess("hi"), policy)
	written, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}

	rr = httptest.NewRecorder()
	_, _ = ReadAndClearWithPolicy(rr, req, policy)
	cleared, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}

	// Behind a trusted proxy the expiring cookie must carry the same
	// Secure flag as the write or the browser keeps the original.
	if !written.Secure || !cleared.Secure {
		t.Fatalf("Secure flags: write = %t, clear = %t, want both true", written.Secure, cleared.Secure)
	}
}

func TestReadAndClearToleratesCorruptCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://shop.test", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "!!!"})
	if _, ok := ReadAndClear(httptest.NewRecorder(), req); ok {
		t.Fatalf("expected corrupt cookie to read as absent")
	}
}
