package updater

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		v1, v2 string
		want   int
	}{
		{"1.0.0", "1.0.0", 0},
		{"v1.0.0", "1.0.0", 0},
		{"1.0.1", "1.0.0", 1},
		{"1.0.0", "1.0.1", -1},
		{"2.0.0", "1.9.9", 1},
		{"0.3.0", "0.3", 0},
		{"1.0.0", "1.0.0-rc1", 1},
		{"1.0.0-rc1", "1.0.0", -1},
		{"1.0.0-beta", "1.0.0-alpha", 1},
		// Non-semver tags fall back to a lexical compare.
		{"nightly", "1.0.0", 1},
		{"1.0.0", "nightly", -1},
	}

	for _, tt := range tests {
		if got := compareVersions(tt.v1, tt.v2); got != tt.want {
			t.Errorf("compareVersions(%q, %q) = %d, want %d", tt.v1, tt.v2, got, tt.want)
		}
	}
}

func releaseServer(t *testing.T, status int, rel Release) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "termy-update-check" {
			t.Errorf("User-Agent = %q", got)
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(rel)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckFindsNewerRelease(t *testing.T) {
	srv := releaseServer(t, http.StatusOK, Release{
		TagName: "v0.4.0",
		HTMLURL: "https://github.com/termyhq/termy/releases/tag/v0.4.0",
		Name:    "termy 0.4.0",
	})

	info, err := check(srv.Client(), srv.URL, "v0.3.1")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !info.Available {
		t.Fatal("expected an update to be available")
	}
	if info.NewVersion != "v0.4.0" {
		t.Errorf("NewVersion = %q, want v0.4.0", info.NewVersion)
	}
	if info.ReleaseURL == "" || info.ReleaseName != "termy 0.4.0" {
		t.Errorf("release metadata not carried: %+v", info)
	}
}

func TestCheckUpToDate(t *testing.T) {
	srv := releaseServer(t, http.StatusOK, Release{TagName: "v0.3.1"})

	info, err := check(srv.Client(), srv.URL, "v0.3.1")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if info.Available {
		t.Error("same tag must not report an update")
	}
}

func TestCheckDevBuildNeverDowngrades(t *testing.T) {
	// A "dev" binary compares lexically above any release tag, so the
	// check stays quiet instead of suggesting a downgrade.
	srv := releaseServer(t, http.StatusOK, Release{TagName: "v0.3.1"})

	info, err := check(srv.Client(), srv.URL, "dev")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if info.Available {
		t.Error("dev build must not report an update")
	}
}

func TestCheckAPIFailureIsQuiet(t *testing.T) {
	// Rate limits and outages must not surface as errors; the check is
	// best-effort.
	srv := releaseServer(t, http.StatusForbidden, Release{})

	info, err := check(srv.Client(), srv.URL, "v0.3.1")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if info == nil || info.Available {
		t.Errorf("non-200 must yield a quiet no-update result, got %+v err=%v", info, err)
	}
	if info.CurrentVer != "v0.3.1" {
		t.Errorf("CurrentVer = %q, want v0.3.1", info.CurrentVer)
	}
}
