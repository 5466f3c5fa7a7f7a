//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"rookery-deps/internal/app"
	"rookery-deps/tests/testutil"
)

// TestE2ECheckFixWithTestcontainers runs the check/fix pipeline against
// an Arch catalog mock served from a container, so the HTTP adapter is
// exercised over a real network boundary.
func TestE2ECheckFixWithTestcontainers(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainers e2e in short mode")
	}

	ctx := t.Context()
	endpoint, cleanup := startArchCatalogMock(ctx, t)
	t.Cleanup(cleanup)

	service := app.NewService(app.ServiceOptions{
		ArchEndpoint:   endpoint,
		AUREndpoint:    endpoint,
		HTTPTimeoutSec: 10,
	})

	specsDir := t.TempDir()
	specPath := testutil.WriteSpecFile(t, specsDir, "dolphin", dolphinSpec)
	reportPath := specsDir + "/deps.txt"

	checkResult, err := service.Check(ctx, app.CheckRequest{
		SpecsDir:   specsDir,
		Package:    "dolphin",
		ReportPath: reportPath,
	})
	require.NoError(t, err)
	require.Len(t, checkResult.Entries, 1)
	assert.Equal(t, []string{"kf6-kio", "openssl"}, checkResult.Entries[0].Diff.MissingDepends)

	fixResult, err := service.Fix(ctx, app.FixRequest{
		ReportPath: reportPath,
		SpecsDir:   specsDir,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fixResult.FilesModified)

	patched, err := os.ReadFile(specPath)
	require.NoError(t, err)
	assert.Contains(t, string(patched), `openssl = ">= 3.0"`)

	second, err := service.Check(ctx, app.CheckRequest{SpecsDir: specsDir, Package: "dolphin"})
	require.NoError(t, err)
	assert.Empty(t, second.Entries)
}

func startArchCatalogMock(ctx context.Context, t *testing.T) (string, func()) {
	t.Helper()
	req := testcontainers.ContainerRequest{
		Image:        "python:3.12-alpine",
		ExposedPorts: []string{"8080/tcp"},
		Cmd:          []string{"python", "-c", archCatalogMockScript},
		WaitingFor:   wait.ForListeningPort("8080/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "8080/tcp")
	require.NoError(t, err)

	endpoint := fmt.Sprintf("http://%s:%s", host, port.Port())
	cleanup := func() {
		_ = container.Terminate(ctx)
	}
	return endpoint, cleanup
}

const archCatalogMockScript = `
import json
from http.server import BaseHTTPRequestHandler, ThreadingHTTPServer

packages = {
    "dolphin": {
        "pkgname": "dolphin",
        "pkgver": "24.02.2-1",
        "depends": ["qt6-base", "kio", "glibc", "libcrypto.so"],
        "makedepends": ["cmake", "extra-cmake-modules"],
        "optdepends": ["ffmpeg: video preview thumbnails"],
    },
}

class Handler(BaseHTTPRequestHandler):
    def do_GET(self):
        parts = [p for p in self.path.split("/") if p]
        if len(parts) == 5 and parts[0] == "packages" and parts[4] == "json":
            pkg = packages.get(parts[3])
            if pkg is not None and parts[1] == "extra":
                self.send_response(200)
                self.send_header("Content-Type", "application/json")
                self.end_headers()
                self.wfile.write(json.dumps(pkg).encode("utf-8"))
                return
            self.send_response(404)
            self.end_headers()
            return
        if parts and parts[0].startswith("rpc"):
            self.send_response(200)
            self.send_header("Content-Type", "application/json")
            self.end_headers()
            self.wfile.write(b'{"resultcount": 0, "results": []}')
            return
        self.send_response(404)
        self.end_headers()

    def log_message(self, format, *args):
        return

def main():
    server = ThreadingHTTPServer(("0.0.0.0", 8080), Handler)
    server.serve_forever()

if __name__ == "__main__":
    main()
`
