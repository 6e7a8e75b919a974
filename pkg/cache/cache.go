package cache

import (
	"bufio"
	"bytes"
	"context"
	"net/http"
	"net/http/httputil"
)

// ResponseCache stores http.Responses in a Store.
type ResponseCache struct {
	store  Store
	GetKey func(r *http.Request) string
}

func NewResponseCache(store Store) *ResponseCache {
	return &ResponseCache{
		store:  store,
		GetKey: RequestKey,
	}
}

// RequestKey identifies a request by its method, path and query. The api_key parameter is left out, so
// credentials never end up in the Store.
func RequestKey(r *http.Request) string {
	q := r.URL.Query()
	q.Del("api_key")
	return r.Method + "|" + r.URL.Path + "?" + q.Encode()
}

// Get attempts to retrieve a http.Response from the cache for the request r.  On return, key will hold the key used to store the response
// (to be passed to Put), resp will contain the cached response (if found) and ok indicates if the response was found in the cache.
//
// Clients must call resp.Body.Close when finished reading resp.Body.
func (c *ResponseCache) Get(ctx context.Context, r *http.Request) (key string, resp *http.Response, ok bool, err error) {
	key = c.GetKey(r)
	body, found, err := c.store.Get(ctx, key)
	if err != nil || !found {
		return key, nil, false, err
	}

	resp, err = http.ReadResponse(bufio.NewReader(bytes.NewReader(body)), r)
	return key, resp, err == nil, err
}

// Put stores a http.Response in the cache, using the provided key. resp.Body remains readable after the call.
func (c *ResponseCache) Put(ctx context.Context, key string, resp *http.Response) error {
	buf, err := httputil.DumpResponse(resp, true)
	if err == nil {
		err = c.store.Set(ctx, key, buf)
	}
	return err
}
