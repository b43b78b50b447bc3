package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/twshades/twshades/filesystem"
	"github.com/twshades/twshades/log"
	"github.com/twshades/twshades/network"
	"github.com/twshades/twshades/util"
	"github.com/twshades/twshades/where"
)

// ReleasesURL is the endpoint describing the latest published release.
var ReleasesURL = "https://api.github.com/repos/twshades/twshades/releases/latest"

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the latest released version without the "v" prefix.
// Results are cached for two days.
func Latest(ctx context.Context) (string, error) {
	cached, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && cached != "" {
		return cached, nil
	}

	latest, err := fetch(ctx)
	if err != nil {
		return "", err
	}

	log.Infof("latest release is %s", latest)
	_ = versionCacher.Set(latest)
	return latest, nil
}

func fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ReleasesURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release lookup: %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	return strings.TrimPrefix(release.TagName, "v"), nil
}
