package web

import (
	"context"
	"net/http"
	"sync"
	"time"

	"hostel-store/internal/cart"
	"hostel-store/internal/session"

	"github.com/google/uuid"
)

const (
	storefrontCookie = "storefront_id"
	refreshCookie    = "store_refresh_token"

	// Idle storefronts are dropped after this; the cart is a per-visit
	// scratch pad with no persistence guarantee.
	storefrontTTL = 2 * time.Hour
)

// Storefront is the state owned by one visitor: their cart store and
// their session store. Exactly one logical session owns each pair.
type Storefront struct {
	Cart    *cart.Store
	Session *session.Store

	lastSeen time.Time
}

// Registry hands each visitor cookie its storefront and evicts idle ones.
type Registry struct {
	auth session.Authenticator

	mu          sync.Mutex
	storefronts map[string]*Storefront
}

func NewRegistry(auth session.Authenticator) *Registry {
	r := &Registry{
		auth:        auth,
		storefronts: make(map[string]*Storefront),
	}
	go r.cleanup()
	return r
}

// Middleware binds the request to its visitor's storefront, creating one
// (and kicking off the async session restore) on first sight.
func (reg *Registry) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sf *Storefront

		if c, err := r.Cookie(storefrontCookie); err == nil && c.Value != "" {
			sf = reg.lookup(c.Value)
		}

		if sf == nil {
			restoreToken := ""
			if c, err := r.Cookie(refreshCookie); err == nil {
				restoreToken = c.Value
			}

			var id string
			id, sf = reg.create(restoreToken)

			http.SetCookie(w, &http.Cookie{
				Name:     storefrontCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			go sf.Session.Restore(context.WithoutCancel(r.Context()))
		}

		next.ServeHTTP(w, r.WithContext(withStorefront(r.Context(), sf)))
	})
}

func (reg *Registry) lookup(id string) *Storefront {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	sf, ok := reg.storefronts[id]
	if !ok {
		return nil
	}
	sf.lastSeen = time.Now()
	return sf
}

func (reg *Registry) create(restoreToken string) (string, *Storefront) {
	sf := &Storefront{
		Cart:     cart.NewStore(),
		Session:  session.NewStore(reg.auth, restoreToken),
		lastSeen: time.Now(),
	}

	id := uuid.New().String()

	reg.mu.Lock()
	reg.storefronts[id] = sf
	reg.mu.Unlock()

	return id, sf
}

// cleanup removes idle storefronts to keep the map from growing forever.
func (reg *Registry) cleanup() {
	for {
		time.Sleep(time.Minute)

		reg.mu.Lock()
		for id, sf := range reg.storefronts {
			if time.Since(sf.lastSeen) > storefrontTTL {
				delete(reg.storefronts, id)
			}
		}
		reg.mu.Unlock()
	}
}

type ctxKey string

const storefrontKey ctxKey = "storefront"

func withStorefront(ctx context.Context, sf *Storefront) context.Context {
	return context.WithValue(ctx, storefrontKey, sf)
}

func storefrontFrom(ctx context.Context) *Storefront {
	sf, _ := ctx.Value(storefrontKey).(*Storefront)
	return sf
}
