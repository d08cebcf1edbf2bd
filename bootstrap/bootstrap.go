package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fulldump/box"
	"github.com/go-json-experiment/json"
	"golang.org/x/sync/errgroup"

	"github.com/fulldump/recordlist/api"
	"github.com/fulldump/recordlist/configuration"
	"github.com/fulldump/recordlist/listing"
	"github.com/fulldump/recordlist/service"
	"github.com/fulldump/recordlist/source"
)

var VERSION = "dev"

// Build wires engine, source, service and HTTP handler from a configuration.
func Build(c *configuration.Configuration) (*service.Service, *box.B, error) {

	filter := map[string]interface{}{}
	if c.SourceFilter != "" {
		err := json.Unmarshal([]byte(c.SourceFilter), &filter)
		if err != nil {
			return nil, nil, fmt.Errorf("parse source filter: %w", err)
		}
	}

	src, err := source.New(&source.Config{
		URL:     c.SourceURL,
		File:    c.SourceFile,
		Filter:  filter,
		Timeout: c.FetchTimeout,
	})
	if err != nil {
		return nil, nil, err
	}

	engineConfig := listing.DefaultConfig()
	engineConfig.PageSize = c.PageSize
	engineConfig.NextID = c.NextID
	engineConfig.AuthorID = c.AuthorID
	engine, err := listing.New(engineConfig)
	if err != nil {
		return nil, nil, err
	}

	s := service.NewService(engine, src)

	b := api.Build(s, VERSION, c.ApiKey, c.ApiSecret)
	if c.EnableCompression {
		b.WithInterceptors(api.Compression)
	}
	b.WithInterceptors(
		api.AccessLog(log.New(os.Stdout, "ACCESS: ", log.Lshortfile)),
		api.PrettyErrorInterceptor,
		api.RecoverFromPanic,
	)

	return s, b, nil
}

// Bootstrap returns a blocking start function and an idempotent stop function.
func Bootstrap(c *configuration.Configuration) (start func() error, stop func(), err error) {

	s, b, err := Build(c)
	if err != nil {
		return nil, nil, err
	}

	server := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("listen: %w", err)
	}
	log.Println("listening on", ln.Addr().String())

	ctx, cancel := context.WithCancel(context.Background())

	stop = func() {
		cancel()
		server.Shutdown(context.Background())
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		for sig := range signalChan {
			fmt.Println("Signal received", sig.String())
			stop()
		}
	}()

	start = func() error {

		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			// the first load failing is not fatal, clients can retry with :load
			s.Load(gctx)
			return nil
		})

		g.Go(func() error {
			err := server.Serve(ln)
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		})

		return g.Wait()
	}

	return start, stop, nil
}
