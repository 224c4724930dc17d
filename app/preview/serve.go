package previewcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/blessnetwork/blessnet/app/base/util"
	"github.com/blessnetwork/blessnet/blsapi"
	"github.com/blessnetwork/blessnet/pkg/blsruntime"
	"github.com/blessnetwork/blessnet/pkg/logging"
)

var serveCmdDef = &cli.Command{
	Name:      "serve",
	Usage:     "Serve the built project over http, running it once per request",
	ArgsUsage: "[project-dir]",
	Action:    util.StandardMiddleware(cmdServe),
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Usage: "Address to listen on",
			Value: "127.0.0.1",
		},
		&cli.IntFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   "Port to listen on",
			Value:   3000,
		},
	},
}

// Handler answers each GET by running the artifact with the request path on stdin
// and replying with whatever it wrote to stdout.
type Handler struct {
	Invocation blsruntime.Invocation
	// Run executes the invocation; blsruntime.Run when nil.
	Run func(ctx context.Context, inv blsruntime.Invocation) error
	// Log receives the runtime's stderr.
	Log io.Writer
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	run := h.Run
	if run == nil {
		run = blsruntime.Run
	}
	var body bytes.Buffer
	inv := h.Invocation
	inv.Stdin = strings.NewReader(r.URL.Path)
	inv.Stdout = &body
	inv.Stderr = h.Log
	if inv.Stderr == nil {
		inv.Stderr = io.Discard
	}
	if err := run(r.Context(), inv); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", http.DetectContentType(body.Bytes()))
	w.Header().Set("Content-Length", strconv.Itoa(body.Len()))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		w.Write(body.Bytes())
	}
}

func cmdServe(c *cli.Context) error {
	log := logging.Ctx(c.Context)
	inv, name, err := invocationFor(c)
	if err != nil {
		return err
	}
	if err := blsruntime.Check(inv.Binary); err != nil {
		return err
	}

	addr := net.JoinHostPort(c.String("host"), strconv.Itoa(c.Int("port")))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return blsapi.ErrorIo("unable to listen", addr, err)
	}
	log.Out("Serving %s at %s", name, color.BlueString(fmt.Sprintf("http://%s/", ln.Addr())))
	return Serve(c.Context, ln, &Handler{Invocation: inv, Log: log.InfoWriter("runtime")})
}

// Serve answers requests on ln with h until ctx ends, then shuts down gracefully.
func Serve(ctx context.Context, ln net.Listener, h http.Handler) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	err := srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		<-stopped
		return nil
	}
	return err
}
