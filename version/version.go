// Package version checks for newer tiramisu releases.
package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/grngxd/tiramisu/filesystem"
	"github.com/grngxd/tiramisu/network"
	"github.com/grngxd/tiramisu/util"
	"github.com/grngxd/tiramisu/where"
	"github.com/metafates/gache"
)

// ReleasesURL is the endpoint describing the latest published release.
var ReleasesURL = "https://api.github.com/repos/grngxd/tiramisu/releases/latest"

var latestCache = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the newest released version without the "v" prefix.
// Results are cached for two days.
func Latest() (string, error) {
	cached, expired, err := latestCache.Get()
	if err != nil {
		return "", err
	}

	if !expired && cached != "" {
		return cached, nil
	}

	latest, err := fetch(ReleasesURL)
	if err != nil {
		return "", err
	}

	_ = latestCache.Set(latest)
	return latest, nil
}

func fetch(url string) (string, error) {
	resp, err := network.Client.Get(url)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s from %s", resp.Status, url)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("release has no tag name")
	}

	return strings.TrimPrefix(release.TagName, "v"), nil
}
