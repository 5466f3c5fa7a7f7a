package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rookery-deps/internal/ports"
	"rookery-deps/internal/shared"
	"rookery-deps/internal/types"
)

// ArchWebAdapter fetches package metadata from the archlinux.org JSON
// API, trying the official repositories in order and falling back to
// the AUR RPC endpoint. Every request carries a fixed timeout; a failed
// lookup is reported to the caller, never retried beyond the alternate
// sources.
type ArchWebAdapter struct {
	Endpoint    string
	AUREndpoint string
	Repos       []string
	Timeout     time.Duration
	client      *http.Client
}

const defaultArchWebEndpoint = "https://archlinux.org"
const defaultAUREndpoint = "https://aur.archlinux.org"
const defaultArchWebTimeout = 10 * time.Second

// defaultArchRepos is the lookup order for official repositories.
var defaultArchRepos = []string{"extra", "core", "multilib"}

func NewArchWebAdapter(endpoint string, aurEndpoint string, timeoutSec int) ArchWebAdapter {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = defaultArchWebEndpoint
	}
	if strings.TrimSpace(aurEndpoint) == "" {
		aurEndpoint = defaultAUREndpoint
	}
	timeout := time.Duration(timeoutSec) * time.Second
	if timeout <= 0 {
		timeout = defaultArchWebTimeout
	}
	return ArchWebAdapter{
		Endpoint:    strings.TrimRight(endpoint, "/"),
		AUREndpoint: strings.TrimRight(aurEndpoint, "/"),
		Repos:       defaultArchRepos,
		Timeout:     timeout,
		client:      &http.Client{Timeout: timeout},
	}
}

// archWebPayload is the official package JSON document.
type archWebPayload struct {
	PkgName     string   `json:"pkgname"`
	PkgVer      string   `json:"pkgver"`
	Depends     []string `json:"depends"`
	MakeDepends []string `json:"makedepends"`
	OptDepends  []string `json:"optdepends"`
	Provides    []string `json:"provides"`
}

// aurPayload is the AUR RPC v5 info response.
type aurPayload struct {
	ResultCount int `json:"resultcount"`
	Results     []struct {
		Name        string   `json:"Name"`
		Version     string   `json:"Version"`
		Depends     []string `json:"Depends"`
		MakeDepends []string `json:"MakeDepends"`
		OptDepends  []string `json:"OptDepends"`
		Provides    []string `json:"Provides"`
	} `json:"results"`
}

// Fetch looks up a package across the official repositories, then the
// AUR. Sources that fail or do not know the package are skipped; only
// when every source comes up empty is a not-found error returned.
func (a ArchWebAdapter) Fetch(ctx context.Context, name string) (types.ArchPackage, error) {
	for _, repo := range a.Repos {
		pkg, found, err := a.fetchOfficial(ctx, repo, name)
		if err != nil {
			log.Warn().Err(err).
				Str("package", name).
				Str("repo", repo).
				Msg("arch repo lookup failed, trying next source")
			continue
		}
		if found {
			return pkg, nil
		}
	}
	pkg, found, err := a.fetchAUR(ctx, name)
	if err != nil {
		log.Warn().Err(err).Str("package", name).Msg("aur lookup failed")
	}
	if found {
		return pkg, nil
	}
	return types.ArchPackage{}, errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("package %s not found in any arch source", name))
}

func (a ArchWebAdapter) fetchOfficial(ctx context.Context, repo string, name string) (types.ArchPackage, bool, error) {
	lookupURL := fmt.Sprintf("%s/packages/%s/x86_64/%s/json/", a.Endpoint, repo, url.PathEscape(name))
	body, status, err := a.get(ctx, lookupURL)
	if err != nil {
		return types.ArchPackage{}, false, err
	}
	if status == http.StatusNotFound {
		return types.ArchPackage{}, false, nil
	}
	if status < 200 || status >= 300 {
		return types.ArchPackage{}, false, shared.HTTPStatusError(status, lookupURL)
	}
	var payload archWebPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return types.ArchPackage{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse arch package json").
			WithCause(err)
	}
	if payload.PkgName == "" {
		payload.PkgName = name
	}
	return types.ArchPackage{
		Name:        payload.PkgName,
		Version:     payload.PkgVer,
		Depends:     payload.Depends,
		MakeDepends: payload.MakeDepends,
		OptDepends:  stripOptDescriptions(payload.OptDepends),
		Provides:    payload.Provides,
	}, true, nil
}

func (a ArchWebAdapter) fetchAUR(ctx context.Context, name string) (types.ArchPackage, bool, error) {
	lookupURL := fmt.Sprintf("%s/rpc/?v=5&type=info&arg=%s", a.AUREndpoint, url.QueryEscape(name))
	body, status, err := a.get(ctx, lookupURL)
	if err != nil {
		return types.ArchPackage{}, false, err
	}
	if status < 200 || status >= 300 {
		return types.ArchPackage{}, false, shared.HTTPStatusError(status, lookupURL)
	}
	var payload aurPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return types.ArchPackage{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse aur rpc json").
			WithCause(err)
	}
	if payload.ResultCount == 0 || len(payload.Results) == 0 {
		return types.ArchPackage{}, false, nil
	}
	result := payload.Results[0]
	pkgName := result.Name
	if pkgName == "" {
		pkgName = name
	}
	return types.ArchPackage{
		Name:        pkgName,
		Version:     result.Version,
		Depends:     result.Depends,
		MakeDepends: result.MakeDepends,
		OptDepends:  stripOptDescriptions(result.OptDepends),
		Provides:    result.Provides,
	}, true, nil
}

func (a ArchWebAdapter) get(ctx context.Context, lookupURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create arch lookup request").
			WithCause(err)
	}
	resp, err := a.httpClient().Do(req)
	if err != nil {
		return nil, 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("arch lookup request failed").
			WithCause(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read arch lookup response").
			WithCause(err)
	}
	return body, resp.StatusCode, nil
}

func (a ArchWebAdapter) httpClient() *http.Client {
	if a.client != nil {
		return a.client
	}
	return &http.Client{Timeout: a.Timeout}
}

// stripOptDescriptions drops the free-text annotation from optional
// dependency tokens, e.g. "kio: remote file access" -> "kio".
func stripOptDescriptions(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	stripped := make([]string, 0, len(tokens))
	for _, token := range tokens {
		stripped = append(stripped, strings.TrimSpace(strings.SplitN(token, ":", 2)[0]))
	}
	return stripped
}

var _ ports.ArchCatalogPort = ArchWebAdapter{}
