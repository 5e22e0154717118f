// Package updater checks for newer termy releases.
package updater

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// ReleaseAPIURL is the endpoint for checking releases.
	ReleaseAPIURL = "https://api.github.com/repos/termyhq/termy/releases/latest"
	// CheckTimeout bounds the update check so startup never hangs on it.
	CheckTimeout = 2 * time.Second
)

// Release is the subset of a GitHub release the check needs.
type Release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
	Name    string `json:"name"`
}

// Info describes the outcome of an update check.
type Info struct {
	Available   bool   `json:"available" yaml:"available"`
	NewVersion  string `json:"new_version,omitempty" yaml:"new_version,omitempty"`
	CurrentVer  string `json:"current_version" yaml:"current_version"`
	ReleaseURL  string `json:"release_url,omitempty" yaml:"release_url,omitempty"`
	ReleaseName string `json:"release_name,omitempty" yaml:"release_name,omitempty"`
}

// Check queries the release endpoint for a version newer than
// currentVersion.
func Check(currentVersion string) (*Info, error) {
	client := &http.Client{Timeout: CheckTimeout}
	return check(client, ReleaseAPIURL, currentVersion)
}

func check(client *http.Client, url, currentVersion string) (*Info, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "termy-update-check")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Rate limits and transient failures report "no update" rather than
	// an error; the check is best-effort.
	if resp.StatusCode != http.StatusOK {
		return &Info{Available: false, CurrentVer: currentVersion}, nil
	}

	var rel Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, err
	}

	info := &Info{
		CurrentVer:  currentVersion,
		NewVersion:  rel.TagName,
		ReleaseURL:  rel.HTMLURL,
		ReleaseName: rel.Name,
	}
	if compareVersions(rel.TagName, currentVersion) > 0 {
		info.Available = true
	}
	return info, nil
}

// compareVersions compares semver-ish strings with optional leading 'v'
// and optional pre-release suffix (e.g., v1.2.3-alpha). Pre-release
// versions rank below their corresponding release version.
// Returns 1 if v1>v2, -1 if v1<v2, 0 if equal.
func compareVersions(v1, v2 string) int {
	type parsed struct {
		parts      []int
		prerelease bool
		preLabel   string
	}

	parse := func(v string) *parsed {
		v = strings.TrimPrefix(v, "v")
		prerelease := false
		preLabel := ""
		if idx := strings.Index(v, "-"); idx != -1 {
			prerelease = true
			preLabel = v[idx+1:]
			v = v[:idx]
		}
		parts := strings.Split(v, ".")
		res := make([]int, 3)
		for i := 0; i < len(res) && i < len(parts); i++ {
			if n, err := strconv.Atoi(parts[i]); err == nil {
				res[i] = n
			} else {
				return nil
			}
		}
		return &parsed{parts: res, prerelease: prerelease, preLabel: preLabel}
	}

	p1 := parse(v1)
	p2 := parse(v2)

	if p1 != nil && p2 != nil {
		for i := 0; i < 3; i++ {
			if p1.parts[i] > p2.parts[i] {
				return 1
			}
			if p1.parts[i] < p2.parts[i] {
				return -1
			}
		}
		if p1.prerelease || p2.prerelease {
			if p1.prerelease && !p2.prerelease {
				return -1
			}
			if !p1.prerelease && p2.prerelease {
				return 1
			}
			if p1.preLabel > p2.preLabel {
				return 1
			}
			if p1.preLabel < p2.preLabel {
				return -1
			}
		}
		return 0
	}

	// Fallback: lexicographic.
	v1 = strings.TrimPrefix(v1, "v")
	v2 = strings.TrimPrefix(v2, "v")
	if v1 > v2 {
		return 1
	} else if v1 < v2 {
		return -1
	}
	return 0
}
