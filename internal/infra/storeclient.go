// Package infra holds the content-store HTTP client, the only I/O boundary
// of the service. The store is a generic document store (Strapi-compatible):
// depending on deployment version it answers with a flat record shape or a
// legacy nested one (fields under "attributes"). Record folds both into one
// canonical shape right at the boundary so nothing above ever checks twice.
package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"

	"autopage/internal/config"
	"autopage/pkg/utils"
)

const (
	storeAttempts   = 3
	storeRetryDelay = 200 * time.Millisecond
	storeTimeout    = 15 * time.Second
)

type StoreClient struct {
	baseURL string
	token   string
	http    *http.Client
	log     *zap.Logger
}

func NewStoreClient(cfg config.Config, log *zap.Logger) *StoreClient {
	return &StoreClient{
		baseURL: cfg.StoreURL,
		token:   cfg.StoreToken,
		http:    &http.Client{Timeout: storeTimeout},
		log:     log,
	}
}

// Record is the canonical view of one store record. UnmarshalJSON folds the
// nested "attributes" shape into the flat one, so Fields always contains the
// record's fields directly.
type Record struct {
	ID         string
	DocumentID string
	Fields     map[string]interface{}
}

func (r *Record) UnmarshalJSON(b []byte) error {
	raw := map[string]interface{}{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	rec := Record{Fields: raw}
	if attrs, ok := raw["attributes"].(map[string]interface{}); ok {
		// Legacy nested shape: fields live one level down. Top-level keys
		// (id, documentId) still win on conflict.
		merged := make(map[string]interface{}, len(attrs)+2)
		for k, v := range attrs {
			merged[k] = v
		}
		for k, v := range raw {
			if k == "attributes" {
				continue
			}
			merged[k] = v
		}
		rec.Fields = merged
	}
	rec.ID = asID(rec.Fields["id"])
	rec.DocumentID, _ = rec.Fields["documentId"].(string)
	*r = rec
	return nil
}

func asID(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatInt(int64(id), 10)
	case json.Number:
		return id.String()
	}
	return ""
}

// Ref returns DocumentID when the store assigned one, else the numeric ID.
func (r *Record) Ref() string {
	if r.DocumentID != "" {
		return r.DocumentID
	}
	return r.ID
}

func (r *Record) Str(key string) string {
	s, _ := r.Fields[key].(string)
	return s
}

func (r *Record) Bool(key string) bool {
	b, _ := r.Fields[key].(bool)
	return b
}

func (r *Record) Float(key string) float64 {
	switch n := r.Fields[key].(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

func (r *Record) Int(key string) int {
	return int(r.Float(key))
}

func (r *Record) Time(key string) time.Time {
	return utils.ParseStoreTime(r.Str(key))
}

func (r *Record) Map(key string) map[string]interface{} {
	m, _ := r.Fields[key].(map[string]interface{})
	return m
}

func (r *Record) Slice(key string) []interface{} {
	s, _ := r.Fields[key].([]interface{})
	return s
}

// RelationID resolves a to-one relation in either shape: a plain id, a flat
// related object, or the nested {"data": {...}} wrapper.
func (r *Record) RelationID(key string) string {
	switch rel := r.Fields[key].(type) {
	case nil:
		return ""
	case string:
		return rel
	case float64:
		return asID(rel)
	case map[string]interface{}:
		if data, ok := rel["data"].(map[string]interface{}); ok {
			return relRef(data)
		}
		return relRef(rel)
	}
	return ""
}

func relRef(m map[string]interface{}) string {
	if doc, ok := m["documentId"].(string); ok && doc != "" {
		return doc
	}
	return asID(m["id"])
}

// RelationRecords resolves a to-many relation in either shape: a bare array
// or the nested {"data": [...]} wrapper.
func (r *Record) RelationRecords(key string) []Record {
	var items []interface{}
	switch rel := r.Fields[key].(type) {
	case []interface{}:
		items = rel
	case map[string]interface{}:
		items, _ = rel["data"].([]interface{})
	}
	if len(items) == 0 {
		return nil
	}
	out := make([]Record, 0, len(items))
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			continue
		}
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		out = append(out, rec)
	}
	return out
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *storeError     `json:"error"`
}

type storeError struct {
	Status  int    `json:"status"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// List fetches all records of a collection matching the given filter params.
func (c *StoreClient) List(ctx context.Context, collection string, params url.Values) ([]Record, error) {
	body, err := c.do(ctx, http.MethodGet, c.endpoint(collection, "", params), nil)
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("store: decoding %s list: %w", collection, err)
	}
	return records, nil
}

func (c *StoreClient) Get(ctx context.Context, collection, id string, params url.Values) (*Record, error) {
	body, err := c.do(ctx, http.MethodGet, c.endpoint(collection, id, params), nil)
	if err != nil {
		return nil, err
	}
	return decodeRecord(collection, body)
}

func (c *StoreClient) Create(ctx context.Context, collection string, data interface{}) (*Record, error) {
	payload, err := json.Marshal(map[string]interface{}{"data": data})
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodPost, c.endpoint(collection, "", nil), payload)
	if err != nil {
		return nil, err
	}
	return decodeRecord(collection, body)
}

func (c *StoreClient) Update(ctx context.Context, collection, id string, data interface{}) (*Record, error) {
	payload, err := json.Marshal(map[string]interface{}{"data": data})
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodPut, c.endpoint(collection, id, nil), payload)
	if err != nil {
		return nil, err
	}
	return decodeRecord(collection, body)
}

func (c *StoreClient) Delete(ctx context.Context, collection, id string) error {
	_, err := c.do(ctx, http.MethodDelete, c.endpoint(collection, id, nil), nil)
	return err
}

func decodeRecord(collection string, body []byte) (*Record, error) {
	var rec Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("store: decoding %s record: %w", collection, err)
	}
	return &rec, nil
}

func (c *StoreClient) endpoint(collection, id string, params url.Values) string {
	u := c.baseURL + "/api/" + collection
	if id != "" {
		u += "/" + url.PathEscape(id)
	}
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// do issues one store call with retries on transient failures and returns
// the raw "data" element of the response envelope.
func (c *StoreClient) do(ctx context.Context, method, endpoint string, payload []byte) (json.RawMessage, error) {
	var data json.RawMessage

	err := retry.Do(
		func() error {
			var body io.Reader
			if payload != nil {
				body = bytes.NewReader(payload)
			}
			req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+c.token)

			resp, err := c.http.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			raw, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}

			if resp.StatusCode >= 500 {
				return fmt.Errorf("store: %s %s: status %d", method, endpoint, resp.StatusCode)
			}
			if resp.StatusCode >= 400 {
				return retry.Unrecoverable(statusError(resp.StatusCode, raw))
			}

			var env envelope
			if err := json.Unmarshal(raw, &env); err != nil {
				return retry.Unrecoverable(fmt.Errorf("store: decoding envelope: %w", err))
			}
			data = env.Data
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(storeAttempts),
		retry.Delay(storeRetryDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		if isUnrecoverable(err) {
			return nil, err
		}
		c.log.Warn("content store call failed after retries",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrStoreUnavailable, err)
	}
	return data, nil
}

func statusError(status int, body []byte) error {
	var env envelope
	msg := ""
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		msg = env.Error.Message
	}
	switch status {
	case http.StatusNotFound:
		return utils.ErrRecordNotFound
	case http.StatusConflict:
		return utils.ErrSlugConflict
	case http.StatusUnauthorized, http.StatusForbidden:
		return utils.ErrUnauthorized
	}
	if msg != "" && (msg == "This attribute must be unique" || msg == "slug must be unique") {
		return utils.ErrSlugConflict
	}
	return fmt.Errorf("%w: store status %d %s", utils.ErrValidation, status, msg)
}

func isUnrecoverable(err error) bool {
	return errors.Is(err, utils.ErrRecordNotFound) ||
		errors.Is(err, utils.ErrSlugConflict) ||
		errors.Is(err, utils.ErrUnauthorized) ||
		errors.Is(err, utils.ErrValidation)
}
