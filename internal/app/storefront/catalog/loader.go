package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopeasy/storefront-service/internal/app/storefront/contracts"
	"github.com/shopeasy/storefront-service/internal/app/storefront/domain"
	"github.com/shopeasy/storefront-service/internal/pkg/clock"
)

const fetchTimeout = 10 * time.Second

// Loader populates the Catalog from a static JSON resource. The source
// may be an HTTP(S) URL or a local file path. On any failure the fixed
// sample set is substituted; a load failure is never surfaced to the
// caller as an error.
type Loader struct {
	// Client is used for HTTP sources. Left nil, a default client with
	// a ten second timeout is used.
	Client *http.Client

	source  string
	catalog *Catalog
	events  contracts.EventPublisher
	clock   clock.Clock
	log     zerolog.Logger

	once sync.Once
}

// NewLoader constructs a Loader for the given source.
func NewLoader(source string, cat *Catalog, events contracts.EventPublisher, clk clock.Clock, log zerolog.Logger) *Loader {
	return &Loader{
		source:  source,
		catalog: cat,
		events:  events,
		clock:   clk,
		log:     log,
	}
}

// Load fetches the catalog, populates the collection exactly once and
// publishes the catalog-loaded signal. Subsequent calls return the
// already-loaded products without refetching.
func (l *Loader) Load(ctx context.Context) []*domain.Product {
	l.once.Do(func() {
		products, err := l.fetch(ctx)
		fromFallback := false
		if err != nil {
			l.log.Warn().Err(err).Str("source", l.source).
				Msg("catalog fetch failed, substituting sample products")
			products = SampleProducts()
			fromFallback = true
		}
		l.catalog.SetProducts(products)
		if l.events != nil {
			l.events.Publish(&domain.CatalogLoadedEvent{
				Products:     products,
				FromFallback: fromFallback,
				LoadedAt:     l.clock.Now(),
			})
		}
	})
	return l.catalog.Products()
}

func (l *Loader) fetch(ctx context.Context) ([]*domain.Product, error) {
	if strings.HasPrefix(l.source, "http://") || strings.HasPrefix(l.source, "https://") {
		return l.fetchHTTP(ctx)
	}
	return l.fetchFile()
}

func (l *Loader) fetchHTTP(ctx context.Context) ([]*domain.Product, error) {
	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch catalog: unexpected status %s", resp.Status)
	}

	var products []*domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return products, nil
}

func (l *Loader) fetchFile() ([]*domain.Product, error) {
	raw, err := os.ReadFile(l.source)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var products []*domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}
	return products, nil
}
